package observe

import (
	"errors"
	"fmt"
)

// ErrMissingServiceName is returned by Validate when Config.ServiceName is
// empty. Every span, metric and log line carries the service name.
var ErrMissingServiceName = errors.New("observe: service name is required")

// ErrInvalidConfig matches every *ConfigError with errors.Is.
var ErrInvalidConfig = errors.New("observe: invalid config")

// ConfigError names the Config field Validate rejected and its value.
type ConfigError struct {
	Field string
	Value string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("observe: invalid %s %q", e.Field, e.Value)
}

// Is reports whether target is ErrInvalidConfig.
func (e *ConfigError) Is(target error) bool {
	return target == ErrInvalidConfig
}

// RedactedFields lists field keys whose values the logger replaces with
// "[REDACTED]". Payload bodies carry portal user data.
var RedactedFields = []string{
	"body",
	"password",
	"secret",
	"token",
	"api_key",
	"apiKey",
	"credential",
}
