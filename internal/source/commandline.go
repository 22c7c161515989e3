package source

import "strings"

// CommandLine reads configuration from a flat sequence of command-line
// tokens. Tokens of the form KEY=VALUE or KEY=V1,V2,... contribute entries;
// tokens without an equals sign are collected as positional arguments and do
// not take part in the merge.
type CommandLine struct {
	tokens []string
}

// NewCommandLine creates a command-line source over a copy of the provided
// token sequence.
func NewCommandLine(tokens []string) *CommandLine {
	copied := make([]string, len(tokens))
	copy(copied, tokens)
	return &CommandLine{tokens: copied}
}

// Name implements Source.
func (c *CommandLine) Name() string {
	return "command-line"
}

// Produce parses the token sequence. When the same key appears in several
// tokens, the first occurrence wins, mirroring the resolver's own precedence
// rule. The argument vector is always readable, so Produce never fails.
func (c *CommandLine) Produce() (map[string]RawEntry, error) {
	entries := make(map[string]RawEntry, len(c.tokens))
	for _, token := range c.tokens {
		key, rawValue, ok := strings.Cut(token, "=")
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
		entries[key] = RawEntry(strings.Split(rawValue, ","))
	}
	return entries, nil
}

// Positionals returns the tokens that carry no KEY=VALUE form, in their
// original order.
func (c *CommandLine) Positionals() []string {
	var out []string
	for _, token := range c.tokens {
		if !strings.Contains(token, "=") {
			out = append(out, token)
		}
	}
	return out
}
