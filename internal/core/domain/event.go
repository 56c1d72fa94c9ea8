package domain

import "time"

// EventType is a type that represents the type of a product event
type EventType string

const (
	EventTypeProductCreated EventType = "product.created"
	EventTypeProductDeleted EventType = "product.deleted"
)

// ProductEvent is published after a product lifecycle change
type ProductEvent struct {
	Type       EventType `json:"type"`
	ProductID  string    `json:"productId"`
	CategoryID string    `json:"categoryId"`
	Title      string    `json:"title,omitempty"`
	FileCount  int       `json:"fileCount"`
	OccurredAt time.Time `json:"occurredAt"`
}

// Subject returns the subject the event is published on under prefix
func (e ProductEvent) Subject(prefix string) string {
	if prefix == "" {
		return string(e.Type)
	}
	return prefix + "." + string(e.Type)
}
