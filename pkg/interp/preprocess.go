package interp

import "strings"

// quoteFolds maps the punctuation mobile keyboards substitute for ASCII
// quotes and dashes back to their ASCII forms.
var quoteFolds = strings.NewReplacer(
	"“", `"`, // left double quotation mark
	"”", `"`, // right double quotation mark
	"‘", "'", // left single quotation mark
	"’", "'", // right single quotation mark
	"–", "-", // en dash
	"—", "-", // em dash
)

// Sanitize normalizes raw source before lexing: CRLF line endings become
// LF, smart quotes and dashes fold to ASCII, and every line whose first
// non-whitespace character is '#' is dropped. No macro expansion happens;
// line numbers reported downstream refer to the sanitized text.
func Sanitize(src string) string {
	src = strings.ReplaceAll(src, "\r\n", "\n")
	src = quoteFolds.Replace(src)

	lines := strings.Split(src, "\n")
	kept := lines[:0]
	for _, line := range lines {
		trimmed := strings.TrimLeft(line, " \t")
		if strings.HasPrefix(trimmed, "#") {
			continue
		}
		kept = append(kept, line)
	}
	return strings.Join(kept, "\n")
}
