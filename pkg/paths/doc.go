// Package paths provides separator-normalized absolute locations for globwalk.
//
// A Location is an absolute path split into a root and a list of name parts.
// Three root forms are understood regardless of the host operating system:
//
//   - Unix:    /usr/local
//   - Windows: C:/Users  (also C:\Users)
//   - UNC:     //server/share  (also \\server\share)
//
// Both separators are accepted on input. Output always uses forward slashes,
// which every supported platform accepts, so the same Location can be handed
// to a host file system or to an in-memory one used in tests.
//
// # Usage
//
//	loc, err := paths.Parse(`C:\Working\src`)
//	// loc.String() == "C:/Working/src"
//
//	child := loc.Join("main.cs")   // C:/Working/src/main.cs
//	parent, ok := loc.Parent()     // C:/Working, true
//	key := loc.Key(false)          // "c:/working/src", for case-insensitive sets
package paths
