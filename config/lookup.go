package config

import (
	"os"
	"sort"
	"strings"
)

// Lookup is the configuration boundary.
//
// Contract:
// - Concurrency: implementations must be safe for concurrent use.
// - Errors: absence is not an error; Get returns ("", false).
type Lookup interface {
	Get(key string) (string, bool)
}

// LookupFunc adapts a function to Lookup.
type LookupFunc func(key string) (string, bool)

// Get calls f(key).
func (f LookupFunc) Get(key string) (string, bool) {
	return f(key)
}

// Properties is an immutable set of key-value pairs.
type Properties struct {
	values map[string]string
}

// NewProperties copies values into a new Properties.
func NewProperties(values map[string]string) Properties {
	cp := make(map[string]string, len(values))
	for k, v := range values {
		cp[k] = v
	}
	return Properties{values: cp}
}

// Get returns the value for key.
func (p Properties) Get(key string) (string, bool) {
	v, ok := p.values[key]
	return v, ok
}

// With returns a copy of p with key set to value.
func (p Properties) With(key, value string) Properties {
	cp := make(map[string]string, len(p.values)+1)
	for k, v := range p.values {
		cp[k] = v
	}
	cp[key] = value
	return Properties{values: cp}
}

// Keys returns all keys in sorted order.
func (p Properties) Keys() []string {
	keys := make([]string, 0, len(p.values))
	for k := range p.values {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Len returns the number of properties.
func (p Properties) Len() int {
	return len(p.values)
}

// EnvLookup reads keys from the environment using relaxed binding.
type EnvLookup struct {
	// LookupEnv defaults to os.LookupEnv.
	LookupEnv func(string) (string, bool)
}

// Get looks up EnvName(key).
func (e EnvLookup) Get(key string) (string, bool) {
	lookup := e.LookupEnv
	if lookup == nil {
		lookup = os.LookupEnv
	}
	return lookup(EnvName(key))
}

// EnvName maps a dotted property key to an environment variable name:
// upper case, with '.' and '-' replaced by '_'.
func EnvName(key string) string {
	r := strings.NewReplacer(".", "_", "-", "_")
	return strings.ToUpper(r.Replace(key))
}

// Chain consults lookups in order and returns the first hit.
type Chain []Lookup

// Get returns the first value found for key.
func (c Chain) Get(key string) (string, bool) {
	for _, l := range c {
		if l == nil {
			continue
		}
		if v, ok := l.Get(key); ok {
			return v, true
		}
	}
	return "", false
}

var (
	_ Lookup = Properties{}
	_ Lookup = EnvLookup{}
	_ Lookup = Chain(nil)
	_ Lookup = LookupFunc(nil)
)
