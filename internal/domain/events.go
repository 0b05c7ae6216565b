package domain

import "context"

const (
	EventQuestionCreated = "question.created"
	EventQuestionDeleted = "question.deleted"
)

// QuestionEvent is the payload published when the question bank changes.
type QuestionEvent struct {
	QuestionID int64 `json:"question_id"`
	CategoryID int64 `json:"category_id,omitempty"`
}

// EventPublisher announces domain events to other services.
type EventPublisher interface {
	Publish(ctx context.Context, eventType string, payload interface{}) error
	Close() error
}

// NopEventPublisher drops every event. Used when no broker is configured.
type NopEventPublisher struct{}

func (NopEventPublisher) Publish(context.Context, string, interface{}) error { return nil }

func (NopEventPublisher) Close() error { return nil }
