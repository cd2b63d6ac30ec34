package logging

import (
	"strconv"
	"strings"
)

// CommandLine renders name and args the way an operator would type them,
// quoting arguments that contain whitespace or quotes.
func CommandLine(name string, args []string) string {
	parts := make([]string, 0, len(args)+1)
	parts = append(parts, name)
	for _, arg := range args {
		if needsQuotes(arg) {
			parts = append(parts, strconv.Quote(arg))
			continue
		}
		parts = append(parts, arg)
	}
	return strings.Join(parts, " ")
}
