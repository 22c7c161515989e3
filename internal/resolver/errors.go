package resolver

import "fmt"

// MissingFieldError is returned when no source provides a required
// configuration key. It is fatal: resolution produces no partial results.
type MissingFieldError struct {
	Key string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("missing required configuration key %s", e.Key)
}

// InvalidValueError is returned when a provided value cannot be converted to
// the field's type, such as a non-integer or negative CLIENT_ID. It is fatal.
type InvalidValueError struct {
	Key   string
	Value string
}

func (e *InvalidValueError) Error() string {
	return fmt.Sprintf("invalid value %q for configuration key %s", e.Value, e.Key)
}
