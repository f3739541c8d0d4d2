package cache

import (
	"context"
	"fmt"
	"strings"
)

// ViewKey identifies one view selection. It is comparable and used directly
// as a map key; two keys are equal iff all three fields are equal.
type ViewKey struct {
	ModulePath  string
	Mode        string
	WindowState string
}

// NewViewKey builds a ViewKey with mode and window state lower-cased.
func NewViewKey(modulePath, mode, windowState string) ViewKey {
	return ViewKey{
		ModulePath:  modulePath,
		Mode:        strings.ToLower(mode),
		WindowState: strings.ToLower(windowState),
	}
}

// String returns the key's text form. Each field is quoted, so distinct
// keys never share a text form whatever bytes their fields hold.
func (k ViewKey) String() string {
	return fmt.Sprintf("%q %q %q", k.ModulePath, k.Mode, k.WindowState)
}

// Cache stores resolved view paths by ViewKey.
//
// Contract:
// - Concurrency: implementations must be safe for concurrent use.
// - Lifetime: entries are never evicted; a key once set keeps its value.
// - Keys: every ViewKey is accepted, including empty fields.
// - Errors: Get never errors; it returns ("", false) on miss.
type Cache interface {
	// Get retrieves a cached view path. Returns ("", false) on miss.
	Get(ctx context.Context, key ViewKey) (string, bool)

	// Set stores a view path. Setting an existing key overwrites it.
	Set(ctx context.Context, key ViewKey, viewPath string) error

	// Len reports the number of cached entries.
	Len() int
}
