package dto

// Wire format follows the upstream helpdesk contract, hence camelCase keys.

type TicketDTO struct {
	Id          string `json:"id" validate:"required"`
	Title       string `json:"title" validate:"required"`
	Description string `json:"description" validate:"required"`
	Category    string `json:"category,omitempty" validate:"omitempty,oneof=billing tech shipping other"`
}

type TriageRequest struct {
	Ticket  TicketDTO `json:"ticket" validate:"required"`
	TraceId string    `json:"traceId,omitempty"`
}

type ModelInfoDTO struct {
	Provider      string `json:"provider"`
	Model         string `json:"model"`
	PromptVersion string `json:"promptVersion"`
	LatencyMs     int64  `json:"latencyMs"`
}

type SuggestionDTO struct {
	PredictedCategory string       `json:"predictedCategory"`
	ArticleIds        []string     `json:"articleIds"`
	DraftReply        string       `json:"draftReply"`
	Confidence        float64      `json:"confidence"`
	AutoClose         bool         `json:"autoClose"`
	ModelInfo         ModelInfoDTO `json:"modelInfo"`
}

type TriageResponse struct {
	Suggestion       SuggestionDTO `json:"suggestion"`
	ProcessingTimeMs int64         `json:"processingTimeMs"`
}
