// Package goquery provides the HTML table extractor for loan rate pages.
package goquery

import (
	"bytes"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/apatil/ratewatch"
)

// Ensure Extractor implements ratewatch.Extractor at compile time.
var _ ratewatch.Extractor = (*Extractor)(nil)

// fallbackBank is the identity credited for whole-page regex extractions.
// The curated URL list is overwhelmingly SBI pages, so unattributable
// rates default there.
const fallbackBank = "SBI (Regex)"

// Extractor extracts rate records from HTML documents. Bank rate tables
// share no schema across sites, so extraction is heuristic: column-position
// plus header-keyword detection, with a whole-page regex scan as a last
// resort for unstructured pages.
type Extractor struct {
	banks    *ratewatch.Registry
	taxonomy *ratewatch.Taxonomy
	text     ratewatch.TextExtractor
}

// NewExtractor creates an Extractor. The text extractor supplies readable
// page text for the fallback scan and may be nil, in which case the raw
// DOM text is used.
func NewExtractor(banks *ratewatch.Registry, taxonomy *ratewatch.Taxonomy, text ratewatch.TextExtractor) *Extractor {
	return &Extractor{banks: banks, taxonomy: taxonomy, text: text}
}

// Extract walks every table in the document, treating the first row as a
// header row and resolving each data row to a bank identity. When the
// document as a whole yields no accepted rows (no tables, or tables whose
// rows all resolved to unknown banks), it falls back to scanning the full
// page text for rate tokens.
func (e *Extractor) Extract(doc *ratewatch.Document, entry ratewatch.Entry) ([]ratewatch.Record, error) {
	d, err := goquery.NewDocumentFromReader(bytes.NewReader(doc.Body))
	if err != nil {
		return nil, ratewatch.Errorf(ratewatch.EINVALID, "parse HTML for %s: %v", doc.URL, err)
	}

	title := strings.TrimSpace(d.Find("title").First().Text())

	var records []ratewatch.Record
	d.Find("table").Each(func(_ int, table *goquery.Selection) {
		records = append(records, e.extractTable(table, title, entry, doc.URL)...)
	})

	if len(records) > 0 {
		return records, nil
	}
	return e.fallback(d, doc, entry), nil
}

// extractTable extracts accepted rows from a single table.
func (e *Extractor) extractTable(table *goquery.Selection, title string, entry ratewatch.Entry, sourceURL string) []ratewatch.Record {
	rows := table.Find("tr")
	if rows.Length() == 0 {
		return nil
	}

	var headers []string
	rows.First().Find("th, td").Each(func(_ int, cell *goquery.Selection) {
		headers = append(headers, strings.ToLower(strings.TrimSpace(cell.Text())))
	})
	rateCol := rateColumn(headers)

	var records []ratewatch.Record
	rows.Slice(1, rows.Length()).Each(func(_ int, row *goquery.Selection) {
		var cells []string
		row.Find("td, th").Each(func(_ int, cell *goquery.Selection) {
			cells = append(cells, strings.TrimSpace(cell.Text()))
		})
		if len(cells) == 0 {
			return
		}

		bank := cells[0]
		bankType := e.banks.ResolveType(bank)

		// Rows often omit the bank name when the whole page belongs to
		// one bank; the page title carries the identity instead.
		if bankType == ratewatch.BankTypeOther {
			if e.banks.ResolveType(title) != ratewatch.BankTypeOther && !strings.Contains(bank, "Bank") {
				if fields := strings.Fields(title); len(fields) > 0 {
					bank = fields[0] + " - " + bank
					bankType = e.banks.ResolveType(bank)
				}
			}
		}
		if bankType == ratewatch.BankTypeOther {
			return
		}

		rate := "N/A"
		if len(cells) > rateCol {
			rate = ratewatch.TruncateRate(cells[rateCol])
		}

		rowText := strings.Join(cells, " ")
		subCategory := e.taxonomy.Classify(rowText+" "+sourceURL, entry.Category)

		records = append(records, ratewatch.Record{
			Bank:         bank,
			BankType:     bankType,
			LoanCategory: ratewatch.Capitalize(entry.Category),
			SubCategory:  ratewatch.Capitalize(subCategory),
			InterestRate: rate,
			Details:      rowText,
			Source:       sourceURL,
		})
	})

	return records
}

// rateColumn returns the index of the first header cell containing
// "interest" or "rate" but not "rating". Defaults to column 1, also used
// when the matched index falls outside the header row.
func rateColumn(headers []string) int {
	col := 1
	for i, h := range headers {
		if (strings.Contains(h, "interest") || strings.Contains(h, "rate")) && !strings.Contains(h, "rating") {
			col = i
			break
		}
	}
	if col >= len(headers) {
		col = 1
	}
	return col
}

// fallback scans the full readable page text for rate tokens and emits a
// single record when any are found.
func (e *Extractor) fallback(d *goquery.Document, doc *ratewatch.Document, entry ratewatch.Entry) []ratewatch.Record {
	var text string
	if e.text != nil {
		if extracted, err := e.text.Text(string(doc.Body)); err == nil && extracted != "" {
			text = extracted
		}
	}
	if text == "" {
		text = d.Text()
	}

	rates := ratewatch.FindRates(text, ratewatch.MaxRateTokens)
	if len(rates) == 0 {
		return nil
	}

	return []ratewatch.Record{{
		Bank:         fallbackBank,
		BankType:     ratewatch.BankTypePublic,
		LoanCategory: ratewatch.Capitalize(entry.Category),
		SubCategory:  "General",
		InterestRate: strings.Join(rates, ", "),
		Details:      "Extracted via Regex",
		Source:       doc.URL,
	}}
}
