// Package health reports whether a renderer can serve requests.
//
// A Checker reports the Status of one component. The renderer registers a
// CatalogChecker for its views location and a CapacityChecker for its
// bulkhead; an Aggregator runs them together and RegisterHandlers exposes
// the result as probe endpoints:
//
//	agg := health.NewAggregator()
//	agg.Register("views", health.NewCatalogChecker(catalog, "/WEB-INF/soffit/"))
//	agg.Register("capacity", health.NewCapacityChecker(bulkhead, 0.9))
//	health.RegisterHandlers(mux, agg)
package health
