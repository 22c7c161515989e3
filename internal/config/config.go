package config

// Recognized configuration keys. Key matching is case-insensitive on input;
// source adapters normalize keys to this canonical upper-case form before
// the resolver merges them.
const (
	KeyDBName     = "DB_NAME"
	KeyDBPassword = "DB_PASSWORD"
	KeyBaseURL    = "BASE_URL"
	KeyClientID   = "CLIENT_ID"
)

var requiredKeys = []string{KeyDBName, KeyDBPassword, KeyBaseURL, KeyClientID}

// RequiredKeys returns a copy of the canonical key names every resolved
// configuration must provide.
func RequiredKeys() []string {
	out := make([]string, len(requiredKeys))
	copy(out, requiredKeys)
	return out
}

// Record is the final validated configuration value consumed by the rest of
// the application. Once constructed by the resolver, all fields are populated
// and ClientID is non-negative. Records are plain values; callers share them
// read-only and never mutate them after construction.
type Record struct {
	DBName     string
	DBPassword string
	BaseURL    string
	ClientID   int
}
