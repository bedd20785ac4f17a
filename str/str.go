// Package str holds string predicates.
package str

import "regexp"

// urlExpr accepts http, https, ftp and file URLs. Matching is
// case-insensitive and multi-line: ^ and $ anchor at line boundaries.
var urlExpr = regexp.MustCompile(`(?im)^(?:https?|ftp|file)://[A-Za-z0-9+&@#/%?=~_|!:,.;-]*[A-Za-z0-9+&@#/%=~_|-]$`)

// IsString reports whether v holds a string.
func IsString(v any) bool {
	_, ok := v.(string)
	return ok
}

// IsURL reports whether s looks like an http(s), ftp or file URL.
// A trailing punctuation character such as '.' or '?' is rejected. In
// multi-line input it is enough for one line to be a URL.
func IsURL(s string) bool {
	return urlExpr.MatchString(s)
}
