package events

import (
	"time"

	"github.com/google/uuid"
)

// Audit event codes emitted by the corpus services.
const (
	DocumentIngested = "DOCUMENT_INGESTED"
	DocumentUpdated  = "DOCUMENT_UPDATED"
	DocumentDeleted  = "DOCUMENT_DELETED"
	SearchPerformed  = "SEARCH_PERFORMED"
)

// Event is the contract for everything published on the audit bus.
type Event interface {
	// EventType returns the event code, e.g. "DOCUMENT_UPDATED".
	EventType() string

	// Payload returns the data associated with the event.
	Payload() map[string]interface{}

	// Timestamp returns when the event occurred.
	Timestamp() time.Time
}

// AuditEvent is the standard Event implementation.
type AuditEvent struct {
	Type       string
	Data       map[string]interface{}
	OccurredAt time.Time
}

func (e AuditEvent) EventType() string {
	return e.Type
}

func (e AuditEvent) Payload() map[string]interface{} {
	return e.Data
}

func (e AuditEvent) Timestamp() time.Time {
	return e.OccurredAt
}

func NewDocumentIngested(source string, chunks int) AuditEvent {
	return AuditEvent{
		Type: DocumentIngested,
		Data: map[string]interface{}{
			"source": source,
			"chunks": chunks,
		},
		OccurredAt: time.Now(),
	}
}

func NewDocumentUpdated(id uuid.UUID, source string, embeddingRegenerated bool) AuditEvent {
	return AuditEvent{
		Type: DocumentUpdated,
		Data: map[string]interface{}{
			"document_id":           id.String(),
			"source":                source,
			"embedding_regenerated": embeddingRegenerated,
		},
		OccurredAt: time.Now(),
	}
}

func NewDocumentDeleted(id uuid.UUID, source string) AuditEvent {
	return AuditEvent{
		Type: DocumentDeleted,
		Data: map[string]interface{}{
			"document_id": id.String(),
			"source":      source,
		},
		OccurredAt: time.Now(),
	}
}

func NewSearchPerformed(query string, hits int) AuditEvent {
	return AuditEvent{
		Type: SearchPerformed,
		Data: map[string]interface{}{
			"query": query,
			"hits":  hits,
		},
		OccurredAt: time.Now(),
	}
}
