package mysql

import "strings"

// keyOrDefault returns "ideas" when the configured key is empty/whitespace
func keyOrDefault(s string) string {
	if strings.TrimSpace(s) == "" {
		return "ideas"
	}
	return s
}
