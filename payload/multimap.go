package payload

import (
	"sort"
	"strings"
)

// values is an immutable string multimap shared by Request and Definition.
type values map[string][]string

func (v values) get(key string) []string {
	vs, ok := v[key]
	if !ok {
		return nil
	}
	out := make([]string, len(vs))
	copy(out, vs)
	return out
}

func (v values) first(key string) string {
	if vs := v[key]; len(vs) > 0 {
		return vs[0]
	}
	return ""
}

func (v values) keys() []string {
	keys := make([]string, 0, len(v))
	for k := range v {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// with returns a copy with key set; a nil vals removes key.
func (v values) with(key string, vals []string) values {
	out := make(values, len(v)+1)
	for k, vs := range v {
		out[k] = vs
	}
	if vals == nil {
		delete(out, key)
		return out
	}
	cp := make([]string, len(vals))
	copy(cp, vals)
	out[key] = cp
	return out
}

func (v values) clone() map[string][]string {
	if v == nil {
		return nil
	}
	out := make(map[string][]string, len(v))
	for k, vs := range v {
		cp := make([]string, len(vs))
		copy(cp, vs)
		out[k] = cp
	}
	return out
}

func newValues(m map[string][]string) values {
	return values(m).clone()
}

// set returns the sorted distinct members of in.
func set(in []string) []string {
	if len(in) == 0 {
		return nil
	}
	seen := make(map[string]struct{}, len(in))
	out := make([]string, 0, len(in))
	for _, s := range in {
		if _, dup := seen[s]; dup {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	sort.Strings(out)
	return out
}

func containsFold(list []string, s string) bool {
	for _, item := range list {
		if strings.EqualFold(item, s) {
			return true
		}
	}
	return false
}

func cloneList(in []string) []string {
	if in == nil {
		return nil
	}
	out := make([]string, len(in))
	copy(out, in)
	return out
}
