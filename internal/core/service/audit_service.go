package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/pagewise/bookstore-api/internal/core/domain"
	"github.com/pagewise/bookstore-api/internal/core/ports"
)

type auditService struct {
	repo ports.AuditRepository
	log  zerolog.Logger
}

// NewAuditService returns an AuditService that appends events to the audit
// trail. Persistence failures are surfaced to the caller (the dispatcher),
// which logs them; they never reach the request that produced the event.
func NewAuditService(repo ports.AuditRepository, log zerolog.Logger) ports.AuditService {
	return &auditService{repo: repo, log: log}
}

func (s *auditService) Process(ctx context.Context, in ports.AuditEventInput) error {
	event := &domain.AuditEvent{
		Actor:     in.Actor,
		Action:    in.Action,
		Outcome:   in.Outcome,
		Detail:    in.Detail,
		Timestamp: in.Timestamp,
	}

	if err := s.repo.Insert(ctx, event); err != nil {
		return fmt.Errorf("process audit event: %w", err)
	}

	s.log.Debug().
		Str("actor", in.Actor).
		Str("action", in.Action).
		Str("outcome", in.Outcome).
		Msg("audit event recorded")

	return nil
}
