package ratewatch

import "strings"

// BankType is the ownership tier of a bank.
type BankType string

// Bank ownership tiers.
const (
	BankTypePublic      BankType = "public"
	BankTypePrivate     BankType = "private"
	BankTypeCooperative BankType = "cooperative"
	BankTypeOther       BankType = "other"
)

// Tier pairs an ownership tier with its recognized bank name variants.
// Variant order matters for full-text name resolution (first hit wins).
type Tier struct {
	Type     BankType
	Variants []string
}

// Registry resolves free text to bank identities and ownership tiers.
// Tiers are evaluated in declaration order, so a registry constructed
// public-first gives public banks priority when text mentions several.
// A Registry is immutable after construction and safe for concurrent use.
type Registry struct {
	tiers []Tier
}

// NewRegistry creates a Registry from the given tiers. The slice is copied
// so later mutation by the caller cannot affect the registry.
func NewRegistry(tiers []Tier) *Registry {
	copied := make([]Tier, len(tiers))
	for i, t := range tiers {
		copied[i] = Tier{
			Type:     t.Type,
			Variants: append([]string(nil), t.Variants...),
		}
	}
	return &Registry{tiers: copied}
}

// DefaultRegistry returns the registry of tracked banks.
func DefaultRegistry() *Registry {
	return NewRegistry([]Tier{
		{Type: BankTypePublic, Variants: []string{
			"State Bank of India", "SBI", "Punjab National Bank", "PNB",
			"Bank of Baroda", "BoB", "Canara", "Union Bank", "Bank of India",
		}},
		{Type: BankTypePrivate, Variants: []string{
			"HDFC", "ICICI", "Axis", "Kotak", "IDFC",
		}},
		{Type: BankTypeCooperative, Variants: []string{
			"Maharashtra State Cooperative", "Saraswat",
		}},
	})
}

// ResolveType returns the ownership tier of the first tier with any name
// variant appearing in text (case-insensitive substring match), checking
// tiers in declaration order. Returns BankTypeOther when nothing matches.
// Safe to call with arbitrary free text.
func (r *Registry) ResolveType(text string) BankType {
	lower := strings.ToLower(text)
	for _, tier := range r.tiers {
		for _, name := range tier.Variants {
			if strings.Contains(lower, strings.ToLower(name)) {
				return tier.Type
			}
		}
	}
	return BankTypeOther
}

// FindName scans text for any registered name variant across all tiers and
// returns the first variant found in registry declaration order. This is
// the resolution rule for unstructured PDF/OCR text; unlike ResolveType it
// identifies a specific display name, not a tier.
func (r *Registry) FindName(text string) (string, bool) {
	lower := strings.ToLower(text)
	for _, tier := range r.tiers {
		for _, name := range tier.Variants {
			if strings.Contains(lower, strings.ToLower(name)) {
				return name, true
			}
		}
	}
	return "", false
}
