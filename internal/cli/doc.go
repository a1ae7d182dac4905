// Package cli implements the command-line interface for meeting-docs.
//
// The cli package provides the Cobra-based command that wires together the
// browser session, crawler, document store, and CSV reporter. The summary
// CSV is written on every exit path after the walk ends, and the browser
// session is closed via defer before the process exits.
package cli
