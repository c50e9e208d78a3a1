package matching

import (
	"strings"

	"github.com/pmezard/go-difflib/difflib"
)

// Similarity returns a 0..100 closeness score between two strings using
// the Ratcliff/Obershelp matching-blocks ratio. Comparison is
// case-insensitive; an empty input on either side scores 0.
func Similarity(a, b string) float64 {
	if a == "" || b == "" {
		return 0
	}
	m := difflib.NewMatcher(
		strings.Split(strings.ToUpper(a), ""),
		strings.Split(strings.ToUpper(b), ""),
	)
	return m.Ratio() * 100
}
