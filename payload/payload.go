package payload

// Payload is the decoded data object rendered by a view.
//
// Mode and WindowState are the two facets view selection needs; an empty
// string means the facet is absent.
type Payload interface {
	Mode() string
	WindowState() string
}

// V1TypeID is the type identifier of the version 1.0 payload.
const V1TypeID = "org.apereo.portlet.soffit.model.v1_0.Payload"

// V1 is the version 1.0 payload: the portal request plus the publication
// definition of the rendering module.
type V1 struct {
	request    Request
	definition Definition
}

// NewV1 builds a V1 payload.
func NewV1(request Request, definition Definition) V1 {
	return V1{request: request, definition: definition}
}

// Request returns the portal request.
func (p V1) Request() Request { return p.request }

// Definition returns the module's publication definition.
func (p V1) Definition() Definition { return p.definition }

// Mode returns the request's rendering mode.
func (p V1) Mode() string { return p.request.Mode() }

// WindowState returns the request's window state.
func (p V1) WindowState() string { return p.request.WindowState() }

// WithRequest returns a copy of p with request replaced.
func (p V1) WithRequest(r Request) V1 {
	p.request = r
	return p
}

// WithDefinition returns a copy of p with definition replaced.
func (p V1) WithDefinition(d Definition) V1 {
	p.definition = d
	return p
}

var _ Payload = V1{}
