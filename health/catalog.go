package health

import (
	"context"
	"fmt"
	"path"
	"strings"

	"github.com/jonwraymond/soffit/resilience"
	"github.com/jonwraymond/soffit/view"
)

// CatalogChecker verifies that the views location can be listed and holds
// at least one module directory.
type CatalogChecker struct {
	catalog       view.Catalog
	viewsLocation string
}

// NewCatalogChecker returns a checker listing viewsLocation through catalog.
func NewCatalogChecker(catalog view.Catalog, viewsLocation string) *CatalogChecker {
	return &CatalogChecker{catalog: catalog, viewsLocation: viewsLocation}
}

// Name returns "views".
func (c *CatalogChecker) Name() string { return "views" }

// Check lists the views location. A listing error is unhealthy; an empty
// location is degraded, since every render would fail with no matching view.
func (c *CatalogChecker) Check(ctx context.Context) Result {
	if err := ctx.Err(); err != nil {
		return Unhealthy("context cancelled", err)
	}
	set, err := c.catalog.ListResources(ctx, c.viewsLocation)
	if err != nil {
		return Unhealthy("views location unreadable", err)
	}

	var modules []string
	for _, p := range set.Paths() {
		if strings.HasSuffix(p, "/") {
			modules = append(modules, path.Base(strings.TrimSuffix(p, "/")))
		}
	}
	details := map[string]any{
		"views_location": c.viewsLocation,
		"modules":        modules,
	}
	if len(modules) == 0 {
		return Degraded("no modules deployed", ErrNoModules).WithDetails(details)
	}
	return Healthy(fmt.Sprintf("%d modules deployed", len(modules))).WithDetails(details)
}

// CapacityChecker reports a bulkhead that is close to full as degraded.
type CapacityChecker struct {
	bulkhead  *resilience.Bulkhead
	threshold float64
}

// NewCapacityChecker returns a checker that degrades once the share of busy
// slots reaches threshold. A threshold outside (0, 1] becomes 0.9.
func NewCapacityChecker(b *resilience.Bulkhead, threshold float64) *CapacityChecker {
	if threshold <= 0 || threshold > 1 {
		threshold = 0.9
	}
	return &CapacityChecker{bulkhead: b, threshold: threshold}
}

// Name returns "capacity".
func (c *CapacityChecker) Name() string { return "capacity" }

// Check compares bulkhead usage to the threshold.
func (c *CapacityChecker) Check(context.Context) Result {
	m := c.bulkhead.Metrics()
	usage := float64(m.Active) / float64(m.MaxConcurrent)
	details := map[string]any{
		"active":         m.Active,
		"max_active":     m.MaxActive,
		"max_concurrent": m.MaxConcurrent,
		"rejected":       m.Rejected,
	}
	if usage >= c.threshold {
		return Degraded(fmt.Sprintf("%.0f%% of render slots busy", usage*100), nil).WithDetails(details)
	}
	return Healthy("render capacity available").WithDetails(details)
}
