package ratewatch

import "strings"

// GeneralSubCategory is returned when no sub-category keyword matches.
const GeneralSubCategory = "general"

// SubCategory pairs a sub-category name with the keywords that select it.
// Declaration order matters: the first sub-category with a keyword hit wins.
type SubCategory struct {
	Name     string
	Keywords []string
}

// Taxonomy classifies free text into a sub-category within a loan category.
// A Taxonomy is immutable after construction and safe for concurrent use.
type Taxonomy struct {
	categories map[string][]SubCategory
}

// NewTaxonomy creates a Taxonomy from the given category map. Keys are
// normalized to lower case; the map and its slices are copied.
func NewTaxonomy(categories map[string][]SubCategory) *Taxonomy {
	copied := make(map[string][]SubCategory, len(categories))
	for cat, subs := range categories {
		entries := make([]SubCategory, len(subs))
		for i, s := range subs {
			entries[i] = SubCategory{
				Name:     s.Name,
				Keywords: append([]string(nil), s.Keywords...),
			}
		}
		copied[strings.ToLower(cat)] = entries
	}
	return &Taxonomy{categories: copied}
}

// DefaultTaxonomy returns the loan category taxonomy.
func DefaultTaxonomy() *Taxonomy {
	return NewTaxonomy(map[string][]SubCategory{
		"home": {
			{Name: "construction", Keywords: []string{"construction", "plot", "land", "builder"}},
			{Name: "renovation", Keywords: []string{"renovation", "improvement", "repair", "decor", "extension", "furnish"}},
			{Name: "regular", Keywords: []string{"regular", "housing loan", "home loan", "privilege", "salary"}},
		},
		"agriculture": {
			{Name: "crops", Keywords: []string{"crop", "kisan", "kcc", "cultivation", "harvest", "short term", "production"}},
			{Name: "machines", Keywords: []string{"tractor", "machinery", "equipment", "harvester", "combine", "implement"}},
			{Name: "livestock", Keywords: []string{"dairy", "poultry", "livestock", "animal", "fishery", "sheep", "goat"}},
			{Name: "land", Keywords: []string{"land purchase", "farm land", "estate"}},
		},
		"education": {
			{Name: "medical", Keywords: []string{"medical", "mbbs", "doctor", "health", "nursing", "dental"}},
			{Name: "undergrad", Keywords: []string{"undergraduate", "bachelor", "ug", "college", "university"}},
			{Name: "postgrad", Keywords: []string{"postgraduate", "master", "mba", "pg", "higher education", "abroad", "foreign", "overseas"}},
		},
	})
}

// Classify returns the first sub-category under category whose keyword set
// has a case-insensitive substring hit anywhere in text. Returns
// GeneralSubCategory when nothing matches or the category is unknown.
func (t *Taxonomy) Classify(text, category string) string {
	lower := strings.ToLower(text)
	for _, sub := range t.categories[strings.ToLower(category)] {
		for _, keyword := range sub.Keywords {
			if strings.Contains(lower, keyword) {
				return sub.Name
			}
		}
	}
	return GeneralSubCategory
}

// HasCategory reports whether category is a known top-level loan category.
// The query interface uses this to split query words into category filters
// and search terms.
func (t *Taxonomy) HasCategory(category string) bool {
	_, ok := t.categories[strings.ToLower(category)]
	return ok
}

// Categories returns the known top-level loan categories.
func (t *Taxonomy) Categories() []string {
	names := make([]string, 0, len(t.categories))
	for cat := range t.categories {
		names = append(names, cat)
	}
	return names
}
