package entities

// Attribute is the enrichment classification guessed for one handle.
type Attribute struct {
	// Label is the classification value, e.g. "female" or "male".
	// Empty when the upstream service answered but could not classify the handle.
	Label       string  `json:"label,omitempty"`
	Probability float64 `json:"probability,omitempty"`
	Count       int     `json:"count,omitempty"`
}

// Known reports whether the upstream service produced a label.
func (a Attribute) Known() bool {
	return a.Label != ""
}

// LabelOr returns the label, or fallback when it is unknown.
func (a Attribute) LabelOr(fallback string) string {
	if a.Label == "" {
		return fallback
	}
	return a.Label
}
