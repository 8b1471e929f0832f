package content

// Content is the static copy shown around the planner. None of it carries
// logic; it is configured per deployment.
type Content struct {
	Title          string `json:"title"`
	Subtitle       string `json:"subtitle"`
	NoMatchMessage string `json:"noMatchMessage"`
	ViewAllURL     string `json:"viewAllUrl"`
	ViewAllLabel   string `json:"viewAllLabel"`
	Disclaimer     string `json:"disclaimer"`
}

const (
	DefaultViewAllURL = "https://bamboodesigns.com/products?category=pergolas"
	DefaultDisclaimer = "This tool provides preliminary recommendations only. Always confirm local code, structural requirements, and exact clearances before building."
)

// Default returns the stock copy. Empty viewAllURL or disclaimer fall back to
// the defaults.
func Default(viewAllURL, disclaimer string) Content {
	if viewAllURL == "" {
		viewAllURL = DefaultViewAllURL
	}
	if disclaimer == "" {
		disclaimer = DefaultDisclaimer
	}
	return Content{
		Title:          "Pergola Planner",
		Subtitle:       "Tell us your space. We'll suggest pergolas that actually fit.",
		NoMatchMessage: "No direct matches found. Try different dimensions or view all plans.",
		ViewAllURL:     viewAllURL,
		ViewAllLabel:   "View All Pergolas",
		Disclaimer:     disclaimer,
	}
}

// Fallback is attached to result payloads that came back empty.
type Fallback struct {
	Message    string `json:"message"`
	ViewAllURL string `json:"viewAllUrl"`
}

// FallbackFor returns the no-match fallback when count is zero, nil otherwise.
func (c Content) FallbackFor(count int) *Fallback {
	if count > 0 {
		return nil
	}
	return &Fallback{Message: c.NoMatchMessage, ViewAllURL: c.ViewAllURL}
}
