// Package view selects the view file that renders a payload.
//
// A Selector looks under a module's path for the most specific view: first
// "<mode>.<windowState>.<ext>", then "<mode>.<ext>". Successful selections
// are memoized per (module path, mode, window state) for the life of the
// process; failures are never cached, so a view added later is picked up on
// the next request.
//
// Resources are enumerated through a Catalog. FSCatalog lists an io/fs.FS
// the way a servlet container lists its resource paths.
package view
