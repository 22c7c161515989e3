// Package application wires the configuration sources selected on the
// command line into a resolver and exposes the operations the CLI runs:
// one-shot resolution, a validation check, and a watch loop that re-resolves
// over time. It keeps the main package focused on CLI parsing and
// orchestration.
package application
