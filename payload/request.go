package payload

// Request describes the portal request being rendered.
type Request struct {
	etag                  string
	windowID              string
	namespace             string
	authType              string
	portalInfo            string
	mode                  string
	windowState           string
	scheme                string
	serverName            string
	serverPort            int
	secure                bool
	preferences           values
	parameters            values
	properties            values
	supportedModes        []string
	supportedWindowStates []string
	supportedLocales      []string
	supportedContentTypes []string
}

func (r Request) Etag() string        { return r.etag }
func (r Request) WindowID() string    { return r.windowID }
func (r Request) Namespace() string   { return r.namespace }
func (r Request) AuthType() string    { return r.authType }
func (r Request) PortalInfo() string  { return r.portalInfo }
func (r Request) Mode() string        { return r.mode }
func (r Request) WindowState() string { return r.windowState }
func (r Request) Scheme() string      { return r.scheme }
func (r Request) ServerName() string  { return r.serverName }
func (r Request) ServerPort() int     { return r.serverPort }
func (r Request) Secure() bool        { return r.secure }

// Parameter returns the values of request parameter name, or nil.
func (r Request) Parameter(name string) []string { return r.parameters.get(name) }

// ParameterValue returns the first value of request parameter name, or "".
func (r Request) ParameterValue(name string) string { return r.parameters.first(name) }

// ParameterNames returns the parameter names in sorted order.
func (r Request) ParameterNames() []string { return r.parameters.keys() }

// Preference returns the values of portlet preference name, or nil.
func (r Request) Preference(name string) []string { return r.preferences.get(name) }

// PreferenceValue returns the first value of preference name, or "".
func (r Request) PreferenceValue(name string) string { return r.preferences.first(name) }

// PreferenceNames returns the preference names in sorted order.
func (r Request) PreferenceNames() []string { return r.preferences.keys() }

// Property returns the values of request property name, or nil.
func (r Request) Property(name string) []string { return r.properties.get(name) }

// PropertyNames returns the property names in sorted order.
func (r Request) PropertyNames() []string { return r.properties.keys() }

// SupportedModes returns the supported modes in sorted order.
func (r Request) SupportedModes() []string { return cloneList(r.supportedModes) }

// SupportsMode reports whether mode is supported, ignoring case.
func (r Request) SupportsMode(mode string) bool { return containsFold(r.supportedModes, mode) }

// SupportedWindowStates returns the supported window states in sorted order.
func (r Request) SupportedWindowStates() []string { return cloneList(r.supportedWindowStates) }

// SupportsWindowState reports whether state is supported, ignoring case.
func (r Request) SupportsWindowState(state string) bool {
	return containsFold(r.supportedWindowStates, state)
}

// SupportedLocales returns the supported locales, most preferred first.
func (r Request) SupportedLocales() []string { return cloneList(r.supportedLocales) }

// PreferredLocale returns the first supported locale, or "" if none.
func (r Request) PreferredLocale() string {
	if len(r.supportedLocales) == 0 {
		return ""
	}
	return r.supportedLocales[0]
}

// SupportedContentTypes returns the supported content types in order.
func (r Request) SupportedContentTypes() []string { return cloneList(r.supportedContentTypes) }

// WithMode returns a copy of r with mode set.
func (r Request) WithMode(mode string) Request {
	r.mode = mode
	return r
}

// WithWindowState returns a copy of r with window state set.
func (r Request) WithWindowState(state string) Request {
	r.windowState = state
	return r
}

// WithParameter returns a copy of r with parameter name set.
// A nil vals removes the parameter.
func (r Request) WithParameter(name string, vals []string) Request {
	r.parameters = r.parameters.with(name, vals)
	return r
}

// WithPreference returns a copy of r with preference name set.
// A nil vals removes the preference.
func (r Request) WithPreference(name string, vals []string) Request {
	r.preferences = r.preferences.with(name, vals)
	return r
}

// WithProperty returns a copy of r with property name set.
// A nil vals removes the property.
func (r Request) WithProperty(name string, vals []string) Request {
	r.properties = r.properties.with(name, vals)
	return r
}

// Builder assembles a Request.
type Builder struct {
	r Request
}

// NewBuilder returns an empty builder.
func NewBuilder() *Builder {
	return &Builder{}
}

func (b *Builder) Etag(v string) *Builder        { b.r.etag = v; return b }
func (b *Builder) WindowID(v string) *Builder    { b.r.windowID = v; return b }
func (b *Builder) Namespace(v string) *Builder   { b.r.namespace = v; return b }
func (b *Builder) AuthType(v string) *Builder    { b.r.authType = v; return b }
func (b *Builder) PortalInfo(v string) *Builder  { b.r.portalInfo = v; return b }
func (b *Builder) Mode(v string) *Builder        { b.r.mode = v; return b }
func (b *Builder) WindowState(v string) *Builder { b.r.windowState = v; return b }
func (b *Builder) Scheme(v string) *Builder      { b.r.scheme = v; return b }
func (b *Builder) ServerName(v string) *Builder  { b.r.serverName = v; return b }
func (b *Builder) ServerPort(v int) *Builder     { b.r.serverPort = v; return b }
func (b *Builder) Secure(v bool) *Builder        { b.r.secure = v; return b }

// Parameter sets request parameter name.
func (b *Builder) Parameter(name string, vals ...string) *Builder {
	b.r.parameters = b.r.parameters.with(name, vals)
	return b
}

// Preference sets portlet preference name.
func (b *Builder) Preference(name string, vals ...string) *Builder {
	b.r.preferences = b.r.preferences.with(name, vals)
	return b
}

// Property sets request property name.
func (b *Builder) Property(name string, vals ...string) *Builder {
	b.r.properties = b.r.properties.with(name, vals)
	return b
}

// SupportedModes adds supported modes.
func (b *Builder) SupportedModes(modes ...string) *Builder {
	b.r.supportedModes = set(append(cloneList(b.r.supportedModes), modes...))
	return b
}

// SupportedWindowStates adds supported window states.
func (b *Builder) SupportedWindowStates(states ...string) *Builder {
	b.r.supportedWindowStates = set(append(cloneList(b.r.supportedWindowStates), states...))
	return b
}

// SupportedLocales appends supported locales, most preferred first.
func (b *Builder) SupportedLocales(locales ...string) *Builder {
	b.r.supportedLocales = append(cloneList(b.r.supportedLocales), locales...)
	return b
}

// SupportedContentTypes appends supported content types.
func (b *Builder) SupportedContentTypes(types ...string) *Builder {
	b.r.supportedContentTypes = append(cloneList(b.r.supportedContentTypes), types...)
	return b
}

// Build returns the assembled Request. The builder may be reused; later
// changes do not affect Requests already built.
func (b *Builder) Build() Request {
	return b.r
}
