package catalog

import "strings"

// Spec is one labelled attribute of a plan, e.g. {"Size", "14x14 ft"}.
type Spec struct {
	Label string `json:"label" yaml:"label"`
	Value string `json:"value" yaml:"value"`
}

// Product is a pergola plan offered in the catalog. Specs are free-form and
// may omit any label.
type Product struct {
	ID         string `json:"id" yaml:"id"`
	Title      string `json:"title" yaml:"title"`
	Slug       string `json:"slug" yaml:"slug"`
	Image      string `json:"image,omitempty" yaml:"image"`
	ProductURL string `json:"productUrl,omitempty" yaml:"product_url"`
	Specs      []Spec `json:"specs" yaml:"specs"`
}

// Well-known spec labels. Matching is case-insensitive.
const (
	LabelSize  = "size"
	LabelRoof  = "roof"
	LabelStyle = "style"
)

// Spec returns the first spec whose lower-cased label equals the lower-cased
// label. Only lower-casing is applied, no Unicode folding, so "ſize" is not
// "size".
func (p Product) Spec(label string) (Spec, bool) {
	label = strings.ToLower(label)
	for _, s := range p.Specs {
		if strings.ToLower(s.Label) == label {
			return s, true
		}
	}
	return Spec{}, false
}

// SpecValue is Spec without the label; missing labels yield "".
func (p Product) SpecValue(label string) string {
	s, _ := p.Spec(label)
	return s.Value
}

func (p Product) clone() Product {
	if p.Specs != nil {
		specs := make([]Spec, len(p.Specs))
		copy(specs, p.Specs)
		p.Specs = specs
	}
	return p
}

// DefaultPlans returns the built-in sample catalog.
func DefaultPlans() []Product {
	return []Product{
		{
			ID:         "la-luxe-14x14",
			Title:      "Los Angeles Luxe 14x14 Pergola",
			Slug:       "los-angeles-luxe-14x14",
			Image:      "https://images.unsplash.com/photo-1505692952047-1a78307da8f3?q=80&w=1200&auto=format&fit=crop",
			ProductURL: "https://bamboodesigns.com/plans/los-angeles-luxe-14x14",
			Specs: []Spec{
				{Label: "Size", Value: "14x14 ft"},
				{Label: "Roof", Value: "Flat"},
				{Label: "Style", Value: "Modern"},
			},
		},
		{
			ID:         "denver-peak-16x16",
			Title:      "Denver Peak 16x16 Pergola",
			Slug:       "denver-peak-16x16",
			Image:      "https://images.unsplash.com/photo-1505692794403-34d4982b49a1?q=80&w=1200&auto=format&fit=crop",
			ProductURL: "https://bamboodesigns.com/plans/denver-peak-16x16",
			Specs: []Spec{
				{Label: "Size", Value: "16x16 ft"},
				{Label: "Roof", Value: "Gable"},
				{Label: "Style", Value: "Classic"},
			},
		},
		{
			ID:         "orlando-oasis-12x16",
			Title:      "Orlando Oasis 12x16 Pergola",
			Slug:       "orlando-oasis-12x16",
			Image:      "https://images.unsplash.com/photo-1470246973918-29a93221c455?q=80&w=1200&auto=format&fit=crop",
			ProductURL: "https://bamboodesigns.com/plans/orlando-oasis-12x16",
			Specs: []Spec{
				{Label: "Size", Value: "12x16 ft"},
				{Label: "Roof", Value: "Sloped"},
				{Label: "Style", Value: "Tropical"},
			},
		},
	}
}
