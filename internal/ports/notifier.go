package ports

import "context"

// Port: a boundary for delivering a rendered itinerary to a recipient
// (e.g., a messaging service).
type Notifier interface {
	Push(ctx context.Context, recipient, message string) error
}
