// Package render turns an inbound render request into a view selection.
//
// Dispatcher decodes the payload by its declared type, selects the view for
// the payload's mode and window state, and resolves the Cache-Control
// directive for the module. Producing output from the selected view is the
// transport's job.
package render
