package entity

// Book is a single catalog entry. Reviews are keyed by the reviewer's
// username, so each user holds at most one review per book.
type Book struct {
	ISBN    string            `json:"isbn"`
	Title   string            `json:"title"`
	Author  string            `json:"author"`
	Reviews map[string]string `json:"reviews"`
}

// ReviewOutcome reports whether an upsert created a new review or replaced
// an existing one. The distinction is observable at the API surface.
type ReviewOutcome int

const (
	ReviewCreated ReviewOutcome = iota
	ReviewModified
)

// String implements fmt.Stringer for log output.
func (o ReviewOutcome) String() string {
	if o == ReviewModified {
		return "modified"
	}

	return "created"
}
