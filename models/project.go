package models

// Project is a portfolio entry. Projects never touch the hosted
// database; the registry persists them as a JSON snapshot in the local
// key-value store.
type Project struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Details     string   `json:"details,omitempty"`
	Tags        []string `json:"tags"`
	Images      []string `json:"images,omitempty"`
}

// DetailText returns the long-form details, falling back to the short
// description when no details were written.
func (p Project) DetailText() string {
	if p.Details != "" {
		return p.Details
	}
	return p.Description
}
