// Package buffer provides the read-only, line-oriented text store that the
// viewer displays, together with the Position coordinate type.
//
// A Buffer is loaded once (from a file, a reader, or a string) and never
// mutated afterwards. Consumers only read from it:
//
//   - LineCount: number of lines
//   - LineLength: number of characters on a line
//   - LineContent: the characters of a line
//
// Loading normalizes line endings, expands tabs to spaces, and does not
// treat a trailing newline as the start of an extra empty line:
//
//	buf := buffer.FromString("alpha\nbeta\n")
//	buf.LineCount()    // 2
//	buf.LineLength(1)  // 4
//
// Positions are zero-based (line, column) pairs where column counts
// characters (runes), not bytes.
package buffer
