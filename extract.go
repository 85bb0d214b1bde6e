package ratewatch

import "strings"

// classifyWindow bounds how much unstructured text feeds sub-category
// classification. PDF and OCR text can run to hundreds of pages; the
// heading material that identifies the loan product sits at the front.
const classifyWindow = 1000

// ExtractUnstructured applies the shared extraction rules for unstructured
// text (PDF pages, OCR output): up to MaxRateTokens distinct rate tokens,
// bank identity from the first registered name variant found anywhere in
// the text with placeholder as the fallback identity, and sub-category
// classified over the leading text window. Returns nil when the text holds
// no rate token at all.
func ExtractUnstructured(banks *Registry, taxonomy *Taxonomy, text string, entry Entry, placeholder, detailsLabel string) []Record {
	rates := FindRates(text, MaxRateTokens)
	if len(rates) == 0 {
		return nil
	}

	bank := placeholder
	if name, ok := banks.FindName(text); ok {
		bank = name
	}

	window := text
	if len(window) > classifyWindow {
		window = window[:classifyWindow]
	}

	return []Record{{
		Bank:         bank,
		BankType:     banks.ResolveType(bank),
		LoanCategory: Capitalize(entry.Category),
		SubCategory:  Capitalize(taxonomy.Classify(window, entry.Category)),
		InterestRate: strings.Join(rates, ", "),
		Details:      detailsLabel,
		Source:       entry.URL,
	}}
}
