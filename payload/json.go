package payload

import "encoding/json"

type requestJSON struct {
	Etag                  string              `json:"etag,omitempty"`
	WindowID              string              `json:"windowId,omitempty"`
	Namespace             string              `json:"namespace,omitempty"`
	AuthType              string              `json:"authType,omitempty"`
	PortalInfo            string              `json:"portalInfo,omitempty"`
	Mode                  string              `json:"mode,omitempty"`
	WindowState           string              `json:"windowState,omitempty"`
	Scheme                string              `json:"scheme,omitempty"`
	ServerName            string              `json:"serverName,omitempty"`
	ServerPort            int                 `json:"serverPort,omitempty"`
	Secure                bool                `json:"secure"`
	Preferences           map[string][]string `json:"preferences,omitempty"`
	Parameters            map[string][]string `json:"parameters,omitempty"`
	Properties            map[string][]string `json:"properties,omitempty"`
	SupportedModes        []string            `json:"supportedModes,omitempty"`
	SupportedWindowStates []string            `json:"supportedWindowStates,omitempty"`
	SupportedLocales      []string            `json:"supportedLocales,omitempty"`
	SupportedContentTypes []string            `json:"supportedContentTypes,omitempty"`
}

type definitionJSON struct {
	Title       string              `json:"title,omitempty"`
	Fname       string              `json:"fname,omitempty"`
	Description string              `json:"description,omitempty"`
	Categories  []string            `json:"categories,omitempty"`
	Parameters  map[string][]string `json:"parameters,omitempty"`
	Preferences map[string][]string `json:"preferences,omitempty"`
}

type v1JSON struct {
	Request    *requestJSON    `json:"request,omitempty"`
	Definition *definitionJSON `json:"definition,omitempty"`
}

func (r Request) toJSON() *requestJSON {
	return &requestJSON{
		Etag:                  r.etag,
		WindowID:              r.windowID,
		Namespace:             r.namespace,
		AuthType:              r.authType,
		PortalInfo:            r.portalInfo,
		Mode:                  r.mode,
		WindowState:           r.windowState,
		Scheme:                r.scheme,
		ServerName:            r.serverName,
		ServerPort:            r.serverPort,
		Secure:                r.secure,
		Preferences:           r.preferences.clone(),
		Parameters:            r.parameters.clone(),
		Properties:            r.properties.clone(),
		SupportedModes:        cloneList(r.supportedModes),
		SupportedWindowStates: cloneList(r.supportedWindowStates),
		SupportedLocales:      cloneList(r.supportedLocales),
		SupportedContentTypes: cloneList(r.supportedContentTypes),
	}
}

func (j *requestJSON) toRequest() Request {
	if j == nil {
		return Request{}
	}
	return Request{
		etag:                  j.Etag,
		windowID:              j.WindowID,
		namespace:             j.Namespace,
		authType:              j.AuthType,
		portalInfo:            j.PortalInfo,
		mode:                  j.Mode,
		windowState:           j.WindowState,
		scheme:                j.Scheme,
		serverName:            j.ServerName,
		serverPort:            j.ServerPort,
		secure:                j.Secure,
		preferences:           newValues(j.Preferences),
		parameters:            newValues(j.Parameters),
		properties:            newValues(j.Properties),
		supportedModes:        set(j.SupportedModes),
		supportedWindowStates: set(j.SupportedWindowStates),
		supportedLocales:      cloneList(j.SupportedLocales),
		supportedContentTypes: cloneList(j.SupportedContentTypes),
	}
}

func (d Definition) toJSON() *definitionJSON {
	return &definitionJSON{
		Title:       d.title,
		Fname:       d.fname,
		Description: d.description,
		Categories:  cloneList(d.categories),
		Parameters:  d.parameters.clone(),
		Preferences: d.preferences.clone(),
	}
}

func (j *definitionJSON) toDefinition() Definition {
	if j == nil {
		return Definition{}
	}
	return Definition{
		title:       j.Title,
		fname:       j.Fname,
		description: j.Description,
		categories:  set(j.Categories),
		parameters:  newValues(j.Parameters),
		preferences: newValues(j.Preferences),
	}
}

// MarshalJSON encodes r using the upstream field names.
func (r Request) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.toJSON())
}

// MarshalJSON encodes d using the upstream field names.
func (d Definition) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.toJSON())
}

// MarshalJSON encodes p as {"request": ..., "definition": ...}.
func (p V1) MarshalJSON() ([]byte, error) {
	return json.Marshal(v1JSON{
		Request:    p.request.toJSON(),
		Definition: p.definition.toJSON(),
	})
}
