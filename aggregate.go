package ratewatch

import (
	"sort"
	"strings"
)

// Aggregate filters and sorts extracted records into the final result set.
// When terms is non-empty, only records whose concatenated field values
// contain every term (case-insensitive substring, logical AND) survive.
// The result is sorted ascending by (LoanCategory, SubCategory, Bank) using
// case-sensitive lexical ordering. An empty result is a valid result.
func Aggregate(records []Record, terms []string) []Record {
	result := make([]Record, 0, len(records))
	for _, rec := range records {
		if matchesTerms(rec, terms) {
			result = append(result, rec)
		}
	}

	sort.Slice(result, func(i, j int) bool {
		a, b := result[i], result[j]
		if a.LoanCategory != b.LoanCategory {
			return a.LoanCategory < b.LoanCategory
		}
		if a.SubCategory != b.SubCategory {
			return a.SubCategory < b.SubCategory
		}
		return a.Bank < b.Bank
	})

	return result
}

// matchesTerms reports whether every term appears somewhere in the record's
// concatenated field values.
func matchesTerms(rec Record, terms []string) bool {
	if len(terms) == 0 {
		return true
	}

	haystack := strings.ToLower(strings.Join([]string{
		rec.Bank, string(rec.BankType), rec.LoanCategory, rec.SubCategory,
		rec.InterestRate, rec.Details, rec.Source,
	}, " "))

	for _, term := range terms {
		if !strings.Contains(haystack, strings.ToLower(term)) {
			return false
		}
	}
	return true
}
