// Package logging provides concrete implementations of the normhash.Logger interface.
//
// Available implementations:
//   - ConsoleLogger: Writes formatted messages to stderr with thread-safe output
//   - NullLogger: Discards all messages (useful for testing)
//
// Prefixes are styled with lipgloss only when the destination is a terminal
// and NO_COLOR is not set, so redirected logs stay plain text.
//
// All logger implementations are safe for concurrent use by multiple goroutines.
package logging
