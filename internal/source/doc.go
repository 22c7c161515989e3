// Package source provides adapters that read raw key/value configuration
// data from a backing medium: command-line tokens, the process environment,
// `.env` files, and flat YAML files. Each adapter is constructed once per
// process start and is read-only thereafter; Produce reads the medium and
// returns a mapping of canonical upper-case keys to raw entries.
//
// An adapter whose medium cannot be read fails with an error wrapping
// ErrSourceUnavailable. That failure is recoverable only by falling back to
// a lower-precedence source, which the resolver does automatically.
package source
