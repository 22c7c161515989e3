// Package resolver merges an ordered sequence of configuration sources into
// one validated record. Merging is first-write-wins: a key present in an
// earlier source masks the same key from every later source. Sources whose
// backing medium cannot be read are skipped with a warning; missing required
// fields and unparseable values are fatal.
package resolver
