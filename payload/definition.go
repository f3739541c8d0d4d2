package payload

// Definition is the publication record of a rendering module.
type Definition struct {
	title       string
	fname       string
	description string
	categories  []string
	parameters  values
	preferences values
}

// NewDefinition builds a Definition. Categories are de-duplicated.
func NewDefinition(title, fname, description string, categories ...string) Definition {
	return Definition{
		title:       title,
		fname:       fname,
		description: description,
		categories:  set(categories),
	}
}

func (d Definition) Title() string       { return d.title }
func (d Definition) Fname() string       { return d.fname }
func (d Definition) Description() string { return d.description }

// Categories returns the categories in sorted order.
func (d Definition) Categories() []string { return cloneList(d.categories) }

// InCategory reports whether the definition belongs to category.
func (d Definition) InCategory(category string) bool {
	for _, c := range d.categories {
		if c == category {
			return true
		}
	}
	return false
}

// Parameter returns the values of definition parameter name, or nil.
func (d Definition) Parameter(name string) []string { return d.parameters.get(name) }

// ParameterNames returns the parameter names in sorted order.
func (d Definition) ParameterNames() []string { return d.parameters.keys() }

// Preference returns the values of default preference name, or nil.
func (d Definition) Preference(name string) []string { return d.preferences.get(name) }

// PreferenceNames returns the preference names in sorted order.
func (d Definition) PreferenceNames() []string { return d.preferences.keys() }

// WithParameter returns a copy of d with parameter name set.
// A nil vals removes the parameter.
func (d Definition) WithParameter(name string, vals []string) Definition {
	d.parameters = d.parameters.with(name, vals)
	return d
}

// WithPreference returns a copy of d with preference name set.
// A nil vals removes the preference.
func (d Definition) WithPreference(name string, vals []string) Definition {
	d.preferences = d.preferences.with(name, vals)
	return d
}

// WithCategory returns a copy of d that also belongs to category.
func (d Definition) WithCategory(category string) Definition {
	d.categories = set(append(cloneList(d.categories), category))
	return d
}

// Equal reports whether d and o hold the same values.
func (d Definition) Equal(o Definition) bool {
	return d.title == o.title &&
		d.fname == o.fname &&
		d.description == o.description &&
		equalList(d.categories, o.categories) &&
		equalValues(d.parameters, o.parameters) &&
		equalValues(d.preferences, o.preferences)
}

func equalList(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func equalValues(a, b values) bool {
	if len(a) != len(b) {
		return false
	}
	for k, av := range a {
		bv, ok := b[k]
		if !ok || !equalList(av, bv) {
			return false
		}
	}
	return true
}
