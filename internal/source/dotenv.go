package source

import (
	"os"

	"github.com/joho/godotenv"
)

// DotEnvFile reads configuration from a `.env`-style file: one KEY=VALUE per
// line, UTF-8 text, blank lines and #-prefixed comment lines ignored, each
// remaining line split on the first equals sign.
type DotEnvFile struct {
	path string
}

// NewDotEnvFile creates a dotenv source for the given path. The file is not
// touched until Produce is called.
func NewDotEnvFile(path string) *DotEnvFile {
	return &DotEnvFile{path: path}
}

// Name implements Source.
func (d *DotEnvFile) Name() string {
	return "dotenv:" + d.path
}

// Produce reads and parses the file. A file that is absent, unreadable, or
// malformed makes the source unavailable.
func (d *DotEnvFile) Produce() (map[string]RawEntry, error) {
	data, err := os.ReadFile(d.path)
	if err != nil {
		return nil, unavailable(d.path, err)
	}

	values, err := godotenv.UnmarshalBytes(data)
	if err != nil {
		return nil, unavailable(d.path, err)
	}

	entries := make(map[string]RawEntry, len(values))
	for key, value := range values {
		key = canonicalKey(key)
		if key == "" {
			continue
		}
		entries[key] = RawEntry{value}
	}
	return entries, nil
}
