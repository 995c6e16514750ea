package service

import "notifyconsole/internal/domain/entity"

// DispatchRecorder counts dispatch outcomes
type DispatchRecorder interface {
	RecordOutcome(kind entity.AudienceKind, messenger entity.Channel, outcome entity.DeliveryOutcome)
}
