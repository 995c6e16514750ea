package pubsub

import "notifyconsole/internal/domain/service"

// eventAttributes are the message attributes subscribers filter on.
func eventAttributes(event *service.DispatchEvent) map[string]string {
	attributes := map[string]string{
		"dispatch_id":    event.DispatchID,
		"audience":       event.Audience,
		"messenger_type": event.Messenger,
		"status":         event.Status,
	}
	if event.Code != "" {
		attributes["code"] = event.Code
	}
	if event.RequestID != "" {
		attributes["request_id"] = event.RequestID
	}

	return attributes
}
