// Package matcher selects the lines of a document that contain the query as a literal substring
package matcher

import "strings"

// Search returns the trimmed lines of document containing query, in document order.
// Returned strings are substrings of document, nothing is copied.
// An empty query matches every line; an empty document has no lines.
func Search(query, document string, caseSensitive bool) []string {
	result := []string{}

	if !caseSensitive {
		query = strings.ToLower(query) // один раз на весь документ
	}

	for len(document) > 0 {
		line, rest, _ := strings.Cut(document, "\n")
		document = rest
		line = strings.TrimSuffix(line, "\r")

		if containsQuery(line, query, caseSensitive) {
			result = append(result, strings.TrimSpace(line))
		}
	}

	return result
}

// query must already be lower-cased when caseSensitive is false
func containsQuery(line, query string, caseSensitive bool) bool {
	if !caseSensitive { //-i
		line = strings.ToLower(line)
	}
	return strings.Contains(line, query)
}
