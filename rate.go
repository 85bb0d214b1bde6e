package ratewatch

import "regexp"

// MaxRateTokens caps how many distinct rate tokens a single unstructured
// document contributes.
const MaxRateTokens = 3

// rateTokenRe matches percentage-shaped tokens such as "8.50%" or "8.50 %".
var rateTokenRe = regexp.MustCompile(`\d+\.\d+\s?%`)

// FindRates scans text for percentage-shaped tokens and returns up to max
// distinct matches in first-seen order. Returns nil when text has none.
func FindRates(text string, max int) []string {
	matches := rateTokenRe.FindAllString(text, -1)
	if len(matches) == 0 {
		return nil
	}

	seen := make(map[string]bool, len(matches))
	var rates []string
	for _, m := range matches {
		if seen[m] {
			continue
		}
		seen[m] = true
		rates = append(rates, m)
		if max > 0 && len(rates) >= max {
			break
		}
	}
	return rates
}
