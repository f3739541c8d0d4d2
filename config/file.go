package config

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// LoadFile reads a YAML property file into Properties.
//
// Nested maps are flattened to dotted keys, so
//
//	soffit:
//	  hello:
//	    cache:
//	      scope: public
//
// yields soffit.hello.cache.scope=public. Sequences are joined with ",".
// Values are expanded with ExpandEnvStrict.
func LoadFile(path string) (Properties, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Properties{}, fmt.Errorf("%w: %w", ErrReadFile, err)
	}
	return Parse(data)
}

// Parse flattens YAML document data into Properties.
func Parse(data []byte) (Properties, error) {
	var doc map[string]any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return Properties{}, fmt.Errorf("%w: %w", ErrParseFile, err)
	}

	values := make(map[string]string)
	if err := flatten("", doc, values); err != nil {
		return Properties{}, err
	}
	return Properties{values: values}, nil
}

func flatten(prefix string, node map[string]any, out map[string]string) error {
	keys := make([]string, 0, len(node))
	for k := range node {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		key := k
		if prefix != "" {
			key = prefix + "." + k
		}

		switch v := node[k].(type) {
		case map[string]any:
			if err := flatten(key, v, out); err != nil {
				return err
			}
		case []any:
			parts := make([]string, 0, len(v))
			for _, item := range v {
				parts = append(parts, scalar(item))
			}
			expanded, err := ExpandEnvStrict(strings.Join(parts, ","))
			if err != nil {
				return fmt.Errorf("property %q: %w", key, err)
			}
			out[key] = expanded
		case nil:
			out[key] = ""
		default:
			expanded, err := ExpandEnvStrict(scalar(v))
			if err != nil {
				return fmt.Errorf("property %q: %w", key, err)
			}
			out[key] = expanded
		}
	}
	return nil
}

func scalar(v any) string {
	if v == nil {
		return ""
	}
	return fmt.Sprint(v)
}
