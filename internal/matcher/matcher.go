// Package matcher checks every line of the buffer for the query substring and returns matching lines
package matcher

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Search returns the lines of contents containing query, in their original order.
// Returned strings are substrings of contents, nothing is copied.
func Search(query, contents string) []string {
	result := []string{}
	forEachLine(contents, func(line string) {
		if strings.Contains(line, query) {
			result = append(result, line)
		}
	})
	return result
}

// SearchCaseInsensitive lowercases the query and every line (full Unicode mapping)
// before the containment check but returns the original lines.
func SearchCaseInsensitive(query, contents string) []string {
	// Caser хранит состояние, поэтому свой экземпляр на каждый вызов
	lower := cases.Lower(language.Und)
	query = lower.String(query)

	result := []string{}
	forEachLine(contents, func(line string) {
		if strings.Contains(lower.String(line), query) {
			result = append(result, line)
		}
	})
	return result
}

// forEachLine splits on '\n' and drops a '\r' right before it (a bare '\r' at the very end stays).
// A trailing terminator does not produce an empty last line.
func forEachLine(contents string, fn func(line string)) {
	for contents != "" {
		line, rest, found := strings.Cut(contents, "\n")
		if found {
			line = strings.TrimSuffix(line, "\r")
		}
		fn(line)
		contents = rest
	}
}
