package domain

import "time"

type ActivityKind string

const (
	ActivityProductViewed ActivityKind = "product_viewed"
	ActivityHandoffOpened ActivityKind = "handoff_opened"
)

// An ActivityEvent is an anonymous catalog interaction. It never carries
// customer details.
type ActivityEvent struct {
	ID         string
	Kind       ActivityKind
	ProductID  string
	Language   Language
	Quantity   int
	OccurredAt time.Time
}
