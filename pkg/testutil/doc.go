// Package testutil provides utilities for testing globwalk components.
//
// Key components:
//   - MemoryFS: In-memory types.FS with Unix, Windows and UNC roots, error
//     injection and call counters
//   - NewTree / BuildAferoTree: declarative tree setup from a path list
//   - AssertSamePaths: order-insensitive comparison of matched paths
//
// Usage guidelines:
//   - Prefer MemoryFS for speed and isolation
//   - All test trees should be defined inline, not in external files
//   - Each test should build its own tree; MemoryFS counters are per instance
package testutil
