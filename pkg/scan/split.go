// Package scan implements the strict line-oriented parsing layer of
// the shell: word splitting, unsigned-integer validation, and the
// Scanner that reads command lines and fixed-arity integer records
// from a stream.
package scan

import "strings"

// DefaultDelimiters are the separators used for both command lines and
// record lines: space, newline, tab, comma.
const DefaultDelimiters = " \n\t,"

// Split breaks line into its non-empty tokens, treating any run of
// delimiter characters as a single separator. An empty line, or one
// made up entirely of delimiters, yields no tokens.
func Split(line, delimiters string) []string {
	var tokens []string
	start := -1
	for i := 0; i < len(line); i++ {
		if strings.IndexByte(delimiters, line[i]) >= 0 {
			if start >= 0 {
				tokens = append(tokens, line[start:i])
				start = -1
			}
			continue
		}
		if start < 0 {
			start = i
		}
	}
	if start >= 0 {
		tokens = append(tokens, line[start:])
	}
	return tokens
}
