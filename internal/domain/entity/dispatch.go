package entity

// AudienceKind names who a dispatch goes to.
type AudienceKind string

const (
	AudienceSingle  AudienceKind = "single"
	AudienceBulk    AudienceKind = "bulk"
	AudienceChannel AudienceKind = "channel"
)

// Audience is one of SingleAudience, BulkAudience or ChannelAudience.
type Audience interface {
	Kind() AudienceKind
}

// SingleAudience targets one previously selected user. A zero UserID means
// nobody has been selected yet.
type SingleAudience struct {
	UserID int64
}

func (SingleAudience) Kind() AudienceKind { return AudienceSingle }

// BulkAudience targets every user matching Criteria.
type BulkAudience struct {
	Criteria Criteria
}

func (BulkAudience) Kind() AudienceKind { return AudienceBulk }

// ChannelAudience targets the messenger's configured broadcast channel.
type ChannelAudience struct{}

func (ChannelAudience) Kind() AudienceKind { return AudienceChannel }

// DispatchRequest is one send the operator asked for.
type DispatchRequest struct {
	Messenger Channel
	Text      string
	Link      string
	Audience  Audience
}

// OutcomeStatus is the normalized result class of a dispatch.
type OutcomeStatus string

const (
	OutcomeAccepted         OutcomeStatus = "accepted"
	OutcomeRejected         OutcomeStatus = "rejected"
	OutcomeTransportFailure OutcomeStatus = "transport_failure"
)

// DeliveryOutcome is what the operator is shown after a dispatch.
type DeliveryOutcome struct {
	Status      OutcomeStatus `json:"status"`
	Code        string        `json:"code,omitempty"`   // Business error code when not accepted.
	Detail      string        `json:"detail"`           // Backend message or rejection reason, verbatim.
	QueuedCount *int          `json:"queued_count,omitempty"`
	Warnings    []string      `json:"warnings,omitempty"`
}

// Accepted reports whether the backend took the request.
func (o DeliveryOutcome) Accepted() bool {
	return o.Status == OutcomeAccepted
}
