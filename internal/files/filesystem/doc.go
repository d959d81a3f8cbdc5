// Package filesystem provides filesystem abstraction interfaces and implementations.
//
// This package defines the streaming file operations the hasher needs, enabling
// testability through an in-memory implementation while using the OS
// filesystem in production.
//
// Implementations:
//   - OSFileSystem: Production implementation using OS filesystem
//   - MemoryFileSystem: In-memory implementation for testing
package filesystem
