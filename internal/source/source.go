package source

import (
	"errors"
	"fmt"
	"strings"
)

// ErrSourceUnavailable indicates a source's backing medium could not be read
// (file absent, permission denied, unparseable content). The resolver treats
// it as recoverable and skips to the next source in precedence order.
var ErrSourceUnavailable = errors.New("configuration source unavailable")

// RawEntry holds the one-or-many string values a source produced for a key,
// before any validation or type conversion.
type RawEntry []string

// First returns the entry's first value, or the empty string for an empty
// entry. Single-valued lookups use it to ignore surplus values.
func (e RawEntry) First() string {
	if len(e) == 0 {
		return ""
	}
	return e[0]
}

// Source is a named origin of raw key/value configuration data.
type Source interface {
	// Name identifies the source in diagnostics and logs.
	Name() string
	// Produce reads the backing medium and returns its key/value data with
	// canonical upper-case keys. It fails with an error wrapping
	// ErrSourceUnavailable when the medium cannot be read.
	Produce() (map[string]RawEntry, error)
}

// canonicalKey normalizes a raw key for case-insensitive merging.
func canonicalKey(key string) string {
	return strings.ToUpper(strings.TrimSpace(key))
}

func unavailable(name string, err error) error {
	return fmt.Errorf("%w: %s: %v", ErrSourceUnavailable, name, err)
}
