package finding

// Finding is one normalized vulnerability record tied to a host.
// Immutable once loaded; Severity has already been through
// ParseSeverity. Missing optional fields (Description, Solution) are
// empty strings and render as blank text, never as errors.
type Finding struct {
	Host        string   `json:"host"`
	Severity    Severity `json:"severity"`
	Title       string   `json:"title"`
	Description string   `json:"description,omitempty"`
	Solution    string   `json:"solution,omitempty"`
}
