package view

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrNoMatchingView indicates neither candidate view exists.
	ErrNoMatchingView = errors.New("view: no matching view")

	// ErrNilCatalog indicates a Selector was built without a Catalog.
	ErrNilCatalog = errors.New("view: catalog is nil")
)

// NoMatchingViewError describes a failed selection. It matches
// ErrNoMatchingView with errors.Is.
type NoMatchingViewError struct {
	ModulePath  string
	Mode        string
	WindowState string
	Tried       []string
}

func (e *NoMatchingViewError) Error() string {
	return fmt.Sprintf("%s for module path %q, mode %q, window state %q (tried %s)",
		ErrNoMatchingView, e.ModulePath, e.Mode, e.WindowState, strings.Join(e.Tried, ", "))
}

// Is reports whether target is ErrNoMatchingView.
func (e *NoMatchingViewError) Is(target error) bool {
	return target == ErrNoMatchingView
}
