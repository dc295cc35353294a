// Package filesystem provides filesystem implementations for globwalk.
//
// This package contains implementations of the types.FS interface:
// the host operating system and any afero.Fs (including the in-memory
// MemMapFs used in tests).
package filesystem
