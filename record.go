package ratewatch

import "strings"

// MaxRateLength bounds the interest rate field of a record. Table cells on
// bank sites occasionally hold whole paragraphs; anything longer is
// truncated with a marker.
const MaxRateLength = 50

// Record is one extracted loan rate offer. Field names and casing in the
// JSON tags are part of the contract with existing result consumers.
type Record struct {
	Bank         string   `json:"Bank"`
	BankType     BankType `json:"Bank Type"`
	LoanCategory string   `json:"Loan Category"`
	SubCategory  string   `json:"Sub-Category"`
	InterestRate string   `json:"Interest Rate"`
	Details      string   `json:"Details"`
	Source       string   `json:"Source"`
}

// Validate returns an error if the record is missing a required field.
// InterestRate is deliberately not required: HTML rows without a readable
// rate cell carry "N/A" while unstructured extractions never emit without
// at least one matched token, so emptiness is decided upstream.
func (rec *Record) Validate() error {
	if rec.Bank == "" {
		return Errorf(EINVALID, "record bank required")
	}
	if rec.BankType == "" {
		return Errorf(EINVALID, "record bank type required")
	}
	if rec.LoanCategory == "" {
		return Errorf(EINVALID, "record loan category required")
	}
	if rec.SubCategory == "" {
		return Errorf(EINVALID, "record sub-category required")
	}
	if rec.Source == "" {
		return Errorf(EINVALID, "record source URL required")
	}
	return nil
}

// TruncateRate bounds a rate string to MaxRateLength characters, appending
// an ellipsis marker when it was cut. Shorter values pass through unchanged.
// The bound counts runes, not bytes: rate cells carry currency symbols and
// typographic dashes, and a byte cut could split one mid-sequence.
func TruncateRate(rate string) string {
	runes := []rune(rate)
	if len(runes) <= MaxRateLength {
		return rate
	}
	return string(runes[:MaxRateLength]) + "..."
}

// Capitalize upper-cases the first letter of s and lower-cases the rest,
// matching how loan categories and sub-categories are displayed.
func Capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + strings.ToLower(s[1:])
}
