// Package server exposes render dispatch over HTTP.
//
// The portal POSTs a JSON payload to /soffit/{module} and names its type in
// the X-Soffit-PayloadClass header. The handler dispatches it, renders the
// selected view with the payload bound under the name "soffit", and sets
// Cache-Control from the module's configured policy.
package server
