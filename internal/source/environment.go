package source

import (
	"os"
	"strings"
)

// Environment reads configuration from the process environment. The
// environment is snapshotted at Produce time; values are copied verbatim with
// no parsing beyond the key/value split.
type Environment struct {
	environ func() []string
}

// NewEnvironment creates an environment source backed by os.Environ.
func NewEnvironment() *Environment {
	return &Environment{environ: os.Environ}
}

// Name implements Source.
func (e *Environment) Name() string {
	return "environment"
}

// Produce snapshots the environment. The process environment is always
// readable, so Produce never fails.
func (e *Environment) Produce() (map[string]RawEntry, error) {
	pairs := e.environ()
	entries := make(map[string]RawEntry, len(pairs))
	for _, pair := range pairs {
		key, value, ok := strings.Cut(pair, "=")
		if !ok {
			continue
		}
		key = canonicalKey(key)
		if key == "" {
			continue
		}
		if _, exists := entries[key]; exists {
			continue
		}
		entries[key] = RawEntry{value}
	}
	return entries, nil
}
