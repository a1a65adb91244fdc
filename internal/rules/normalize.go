package rules

import "strings"

// Typographic punctuation variants mapped to their ASCII equivalents so
// patterns written with plain ASCII still match statements authored with
// smart quotes, dashes or ellipses.
var normalizer = strings.NewReplacer(
	"‘", "'", // left single quote
	"’", "'", // right single quote
	"“", `"`, // left double quote
	"”", `"`, // right double quote
	"–", "-", // en dash
	"—", "-", // em dash
	"…", "...", // ellipsis
)

// Normalize maps typographic punctuation to ASCII. Pure; idempotent on
// already-normalized input.
func Normalize(s string) string {
	return normalizer.Replace(s)
}
