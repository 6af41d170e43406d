package entity

// ClassificationResult is the category prediction for one ticket.
type ClassificationResult struct {
	PredictedCategory Category
	Confidence        float64
}

// ModelInfo records which provider produced a suggestion and how long it took.
type ModelInfo struct {
	Provider      string
	Model         string
	PromptVersion string
	LatencyMs     int64
}

// AgentSuggestion is the final triage output. Immutable once built;
// ArticleIds preserve retrieval ranking order.
type AgentSuggestion struct {
	TicketId          string
	PredictedCategory Category
	ArticleIds        []string
	DraftReply        string
	Confidence        float64
	AutoClose         bool
	ModelInfo         ModelInfo
}
