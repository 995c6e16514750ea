package usecase

import (
	"context"

	"notifyconsole/internal/domain/audience"
	"notifyconsole/internal/domain/entity"
)

// AudiencePreview shows what a bulk dispatch would target.
type AudiencePreview struct {
	Criteria entity.Criteria `json:"criteria"`
	Query    string          `json:"query"` // Encoded backend parameters
	Warnings []string        `json:"warnings,omitempty"`
}

// DispatchUsecase defines the notification dispatch use cases
type DispatchUsecase interface {
	// Send never returns an error: every failure is folded into the outcome
	Send(ctx context.Context, req entity.DispatchRequest) entity.DeliveryOutcome

	// Preview resolves operator selections into the bulk query that would be sent
	Preview(sel audience.Selections, draft audience.Draft) (*AudiencePreview, error)
}
