package option

// Item is one choice of a select field in the planner form.
type Item struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// UseCases lists the supported main use cases. The empty value means
// "not selected".
var UseCases = []Item{
	{Value: "dining", Label: "Outdoor Dining"},
	{Value: "lounge", Label: "Lounging / Seating"},
	{Value: "hottub", Label: "Hot Tub / Spa"},
	{Value: "general", Label: "General Shade"},
}

// Styles lists the supported style preferences. The empty value means "Any".
var Styles = []Item{
	{Value: "modern", Label: "Modern"},
	{Value: "farmhouse", Label: "Farmhouse"},
	{Value: "tropical", Label: "Tropical"},
	{Value: "classic", Label: "Classic"},
}

// Valid reports whether v is empty or one of items' values.
func Valid(items []Item, v string) bool {
	if v == "" {
		return true
	}
	for _, it := range items {
		if it.Value == v {
			return true
		}
	}
	return false
}
