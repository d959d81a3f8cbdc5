// Package files groups file access for normhash.
//
// Sub-packages:
//   - filesystem: provider abstraction with an OS implementation and an
//     in-memory implementation for tests
package files
