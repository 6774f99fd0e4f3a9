package models

// FilterKind identifies how a host should render a filter.
type FilterKind string

const (
	FilterHeader FilterKind = "header"
	FilterSelect FilterKind = "select"
)

// Filter is a single entry of a provider's filter surface.
type Filter struct {
	Kind    FilterKind `json:"kind"`
	Name    string     `json:"name"`
	Options []string   `json:"options,omitempty"`
	Default int        `json:"default"`
}

// HeaderFilter builds a non-interactive note.
func HeaderFilter(text string) Filter {
	return Filter{Kind: FilterHeader, Name: text}
}

// SelectFilter builds a single-choice selector over options.
func SelectFilter(name string, options []string) Filter {
	return Filter{Kind: FilterSelect, Name: name, Options: options}
}

// FilterState is the caller's current filter selection.
type FilterState struct {
	TagIndex int `json:"tag_index"`
}
