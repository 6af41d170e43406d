package dto

import "time"

type AuditEventResponse struct {
	Action     string                 `json:"action"`
	Actor      string                 `json:"actor"`
	TraceId    string                 `json:"traceId"`
	Meta       map[string]interface{} `json:"meta,omitempty"`
	OccurredAt time.Time              `json:"occurredAt"`
}

type AuditTrailResponse struct {
	TicketId string               `json:"ticketId"`
	Events   []AuditEventResponse `json:"events"`
}
