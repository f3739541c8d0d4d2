package view

import "strings"

// DefaultExtension is the view file extension used when none is configured.
const DefaultExtension = "jsp"

// ModulePath returns the resource path holding module's views. The result
// is viewsLocation, a "/" if viewsLocation lacks one, the module name and a
// single trailing "/".
func ModulePath(viewsLocation, module string) string {
	var b strings.Builder
	b.WriteString(viewsLocation)
	if !strings.HasSuffix(viewsLocation, "/") {
		b.WriteByte('/')
	}
	b.WriteString(strings.Trim(module, "/"))
	b.WriteByte('/')
	return b.String()
}

// CandidatePaths returns the view paths tried for a selection, most
// specific first. mode and windowState are expected lower-case.
func CandidatePaths(modulePath, mode, windowState, ext string) []string {
	return []string{
		modulePath + mode + "." + windowState + "." + ext,
		modulePath + mode + "." + ext,
	}
}
