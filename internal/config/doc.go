// Package config defines the validated configuration record produced by the
// resolver, the set of recognized configuration keys, and the `.env`
// serialization of a record. A Record is constructed once at startup and is
// safe to share read-only afterwards.
package config
