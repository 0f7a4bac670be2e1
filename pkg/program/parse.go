package program

import "strings"

// Tokenize splits source into words. A # starts a comment running to the
// end of the line.
func Tokenize(src []byte) []string {
	words := make([]string, 0)
	for line := range strings.Lines(string(src)) {
		if i := strings.IndexByte(line, '#'); i >= 0 {
			line = line[:i]
		}
		words = append(words, strings.Fields(line)...)
	}
	return words
}
