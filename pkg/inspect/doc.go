// Package inspect provides property inspection and manipulation utilities
// for the command line tools.
//
// The inspect package offers a unified interface for:
//   - Resolving property names case-insensitively
//   - Parsing textual values according to a property descriptor
//   - Reading and writing properties of an opened camera
//   - Formatting schemas and values for display
package inspect
