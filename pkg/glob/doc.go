// Package glob compiles file-matching patterns and evaluates them against a
// file system.
//
// A pattern is lexed into tokens, parsed into one Root followed by an ordered
// list of Segments, and each wildcard segment is compiled to an anchored
// regular expression once. The resulting *Pattern is immutable and can be
// matched any number of times, concurrently, against any types.FS.
//
// # Pattern Syntax
//
//   - "*"  matches any run of characters within one path segment
//   - "?"  matches exactly one character
//   - "**" matches zero or more directory levels; it must fill a whole segment
//   - ".." moves one level up, "." stays where it is
//   - "/" and "\" are both separators
//
// Roots:
//
//   - "C:/src"           Windows drive
//   - "//server/share"   UNC server (also "\\server\share")
//   - "/usr/src"         Unix absolute
//   - "src", "./src"     relative to a working directory
//
// "a**b" is not recursive: a "**" glued to other text degrades to two
// ordinary wildcards. A "**" that starts a segment but is followed by more
// text ("**.cs") is rejected as ambiguous.
//
// # Matching
//
//	p, err := glob.Parse("/Working/**/*.cs")
//	if err != nil {
//	    return err
//	}
//	res, err := p.Match(ctx, filesystem.NewOS())
//	for _, m := range res.Sorted() {
//	    fmt.Println(m.Path)
//	}
//
// Case sensitivity is chosen at match time. By default Unix roots match
// case-sensitively and Windows/UNC roots do not; see RootResolver and
// WithCaseSensitivity. Matched paths carry the spelling the file system
// reports, and two paths differing only by case are merged only when the
// file system itself ignores case (types.FoldsCase). Directories that cannot
// be read are skipped, and a pattern that matches nothing yields an empty
// Result rather than an error. Glob parses and matches in one call.
package glob
