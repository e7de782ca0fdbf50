package mapping

import (
	"regexp"
	"strings"
)

var columnCodeRe = regexp.MustCompile(`\s*\([a-zA-Z0-9]+\)\s*$`)

// CleanColumnName strips a trailing parenthetical column code:
// "Name (b)" becomes "Name" and "Subject (Array) (c)" becomes "Subject (Array)".
func CleanColumnName(name string) string {
	return strings.TrimSpace(columnCodeRe.ReplaceAllString(name, ""))
}
