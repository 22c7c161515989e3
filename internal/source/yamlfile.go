package source

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// YAMLFile reads configuration from a flat YAML mapping. Scalar values become
// single-value entries; sequences of scalars become multi-value entries.
// Nested mappings are ignored: the resolver works on flat key sets.
type YAMLFile struct {
	path string
}

// NewYAMLFile creates a YAML source for the given path. The file is not
// touched until Produce is called.
func NewYAMLFile(path string) *YAMLFile {
	return &YAMLFile{path: path}
}

// Name implements Source.
func (y *YAMLFile) Name() string {
	return "yaml:" + y.path
}

// Produce reads and parses the file. A file that is absent, unreadable, or
// not a YAML mapping makes the source unavailable.
func (y *YAMLFile) Produce() (map[string]RawEntry, error) {
	data, err := os.ReadFile(y.path)
	if err != nil {
		return nil, unavailable(y.path, err)
	}

	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, unavailable(y.path, err)
	}

	entries := make(map[string]RawEntry, len(raw))
	for key, value := range raw {
		key = canonicalKey(key)
		if key == "" {
			continue
		}
		entry, ok := asEntry(value)
		if !ok {
			continue
		}
		entries[key] = entry
	}
	return entries, nil
}

func asEntry(value any) (RawEntry, bool) {
	switch v := value.(type) {
	case nil:
		return nil, false
	case []any:
		entry := make(RawEntry, 0, len(v))
		for _, item := range v {
			scalar, ok := asScalar(item)
			if !ok {
				return nil, false
			}
			entry = append(entry, scalar)
		}
		if len(entry) == 0 {
			return nil, false
		}
		return entry, true
	default:
		scalar, ok := asScalar(value)
		if !ok {
			return nil, false
		}
		return RawEntry{scalar}, true
	}
}

func asScalar(value any) (string, bool) {
	switch value.(type) {
	case string, bool, int, int64, uint64, float64:
		return fmt.Sprint(value), true
	default:
		return "", false
	}
}
