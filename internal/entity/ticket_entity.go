package entity

// Ticket is the inbound support ticket as submitted for triage.
type Ticket struct {
	Id          string
	Title       string
	Description string
	Category    Category
}

// Text returns the free-text body the classifier and retriever work on.
func (t Ticket) Text() string {
	return t.Title + " " + t.Description
}
