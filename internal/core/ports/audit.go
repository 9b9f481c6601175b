package ports

import (
	"context"
	"time"

	"github.com/pagewise/bookstore-api/internal/core/domain"
)

// AuditEventInput is the DTO handed from producers to the audit pipeline.
type AuditEventInput struct {
	Actor     string
	Action    string
	Outcome   string
	Detail    string
	Timestamp time.Time
}

// AuditRecorder accepts audit events without blocking the request path.
type AuditRecorder interface {
	Record(event AuditEventInput)
}

// AuditService persists a single audit event.
type AuditService interface {
	Process(ctx context.Context, event AuditEventInput) error
}

// AuditRepository appends events to the audit trail.
type AuditRepository interface {
	Insert(ctx context.Context, event *domain.AuditEvent) error
}
