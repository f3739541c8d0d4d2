// Package cachecontrol derives the Cache-Control directive for a module's
// rendered output from configuration.
//
// A module opts into caching by setting both soffit.<module>.cache.scope and
// soffit.<module>.cache.max-age. Anything less yields NoCache.
package cachecontrol
