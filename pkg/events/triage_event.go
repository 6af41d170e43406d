package events

import "time"

// TopicTriageAudit is the in-process topic carrying triage audit events.
const TopicTriageAudit = "TRIAGE_AUDIT"

// ActorSystem marks events emitted by the agent itself rather than a user.
const ActorSystem = "system"

// TriageAction identifies a step in the triage audit trail.
type TriageAction string

const (
	ActionTriageStarted   TriageAction = "TRIAGE_STARTED"
	ActionAgentClassified TriageAction = "AGENT_CLASSIFIED"
	ActionKBRetrieved     TriageAction = "KB_RETRIEVED"
	ActionDraftGenerated  TriageAction = "DRAFT_GENERATED"
	ActionAutoClosed      TriageAction = "AUTO_CLOSED"
	ActionAssignedToHuman TriageAction = "ASSIGNED_TO_HUMAN"
	ActionTriageCompleted TriageAction = "TRIAGE_COMPLETED"
	ActionTriageFailed    TriageAction = "TRIAGE_FAILED"
)

// TriageEvent is one audit record for a ticket's triage run.
type TriageEvent struct {
	TicketId   string                 `json:"ticket_id"`
	TraceId    string                 `json:"trace_id"`
	Actor      string                 `json:"actor"`
	Action     TriageAction           `json:"action"`
	Meta       map[string]interface{} `json:"meta,omitempty"`
	OccurredAt time.Time              `json:"occurred_at"`
}
