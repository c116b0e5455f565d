package formscript

import (
	"encoding/json"
	"strings"
)

// ToLiteral renders raw text as a double-quoted string literal that is safe
// to embed in generated Apps Script source. JSON string encoding already
// covers quotes, backslashes, and control characters; U+2028 and U+2029 get
// an explicit pass because the script host's parser treats them as line
// terminators even inside a literal, which would split the statement.
func ToLiteral(raw string) string {
	b, err := json.Marshal(raw)
	if err != nil {
		// Marshal of a string cannot fail; keep the escaper total anyway.
		return `""`
	}
	lit := string(b)
	lit = strings.ReplaceAll(lit, "\u2028", `\u2028`)
	lit = strings.ReplaceAll(lit, "\u2029", `\u2029`)
	return lit
}
