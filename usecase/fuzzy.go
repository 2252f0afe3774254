package usecase

import (
	"strings"

	"github.com/agnivade/levenshtein"
)

// maxEditDistance bounds how loose the language-name filter is.
const maxEditDistance = 1

// fuzzyContains reports whether text contains a substring within edit
// distance 1 of query. Both arguments must already be lowercased. An exact
// substring hit short-circuits; otherwise every window of query's length
// plus or minus one character is compared.
func fuzzyContains(text, query string) bool {
	if query == "" {
		return true
	}
	if strings.Contains(text, query) {
		return true
	}

	runes := []rune(text)
	n := len(runes)
	m := len([]rune(query))

	for width := m - 1; width <= m+1; width++ {
		if width <= 0 || width > n {
			continue
		}
		for i := 0; i+width <= n; i++ {
			if levenshtein.ComputeDistance(string(runes[i:i+width]), query) <= maxEditDistance {
				return true
			}
		}
	}
	return false
}
