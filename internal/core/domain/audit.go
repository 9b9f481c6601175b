package domain

import "time"

// AuditEvent is an append-only record of an authentication outcome.
type AuditEvent struct {
	Actor     string
	Action    string
	Outcome   string
	Detail    string
	Timestamp time.Time
}

const (
	AuditActionLogin    = "login"
	AuditActionRegister = "register"

	AuditOutcomeSuccess  = "success"
	AuditOutcomeRejected = "rejected"
	AuditOutcomeError    = "error"
)
