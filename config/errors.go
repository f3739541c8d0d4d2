package config

import "errors"

var (
	// ErrMissingEnv indicates a ${VAR} reference names an unset variable.
	ErrMissingEnv = errors.New("config: missing required environment variables")

	// ErrReadFile indicates the property file could not be read.
	ErrReadFile = errors.New("config: failed to read property file")

	// ErrParseFile indicates the property file is not valid YAML.
	ErrParseFile = errors.New("config: failed to parse property file")

	// ErrInvalidValue indicates a setting could not be parsed.
	ErrInvalidValue = errors.New("config: invalid value")
)
