package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/pagewise/bookstore-api/internal/core/domain"
	"github.com/pagewise/bookstore-api/internal/core/ports"
)

// PasswordPolicy bounds accepted password lengths. The bounds are policy, not
// correctness, so they arrive from configuration.
type PasswordPolicy struct {
	MinLen int
	MaxLen int
}

// AuthService orchestrates credential verification and token issuance.
type AuthService struct {
	users  ports.UserRepository
	issuer *TokenIssuer
	audit  ports.AuditRecorder
	policy PasswordPolicy
	log    zerolog.Logger
}

func NewAuthService(
	users ports.UserRepository,
	issuer *TokenIssuer,
	audit ports.AuditRecorder,
	policy PasswordPolicy,
	log zerolog.Logger,
) *AuthService {
	if policy.MinLen <= 0 {
		policy.MinLen = 8
	}
	if policy.MaxLen < policy.MinLen {
		policy.MaxLen = 25
	}
	return &AuthService{users: users, issuer: issuer, audit: audit, policy: policy, log: log}
}

// Login runs the per-attempt sequence: presence check, identity lookup,
// password verification, token issuance. Unknown login names and wrong
// passwords both come back as domain.ErrInvalidCredentials so the caller
// cannot enumerate accounts.
func (s *AuthService) Login(ctx context.Context, loginName, password string) (string, error) {
	if strings.TrimSpace(loginName) == "" || password == "" {
		return "", domain.ErrInvalidCredentials
	}

	email := domain.NormalizeEmail(loginName)

	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		s.recordAudit(email, domain.AuditActionLogin, domain.AuditOutcomeError, "credential store lookup failed")
		return "", fmt.Errorf("login: %w", err)
	}
	if user == nil || bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		s.recordAudit(email, domain.AuditActionLogin, domain.AuditOutcomeRejected, "")
		s.log.Warn().Str("login_name", email).Msg("login attempt rejected")
		return "", domain.ErrInvalidCredentials
	}

	token, err := s.issuer.Issue(user)
	if err != nil {
		s.recordAudit(email, domain.AuditActionLogin, domain.AuditOutcomeError, "token issuance failed")
		return "", fmt.Errorf("login: %w", err)
	}

	s.recordAudit(email, domain.AuditActionLogin, domain.AuditOutcomeSuccess, "")
	s.log.Info().Str("login_name", email).Msg("user authenticated")

	return token, nil
}

// Register creates a new Customer identity after policy checks.
func (s *AuthService) Register(ctx context.Context, loginName, password string) error {
	email := domain.NormalizeEmail(loginName)
	if email == "" {
		return fmt.Errorf("%w: login name is required", domain.ErrInvalidInput)
	}
	if len(password) < s.policy.MinLen || len(password) > s.policy.MaxLen {
		return fmt.Errorf("%w: password must be between %d and %d characters",
			domain.ErrInvalidInput, s.policy.MinLen, s.policy.MaxLen)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("register: %w", err)
	}

	now := time.Now().UTC()
	user := &domain.User{
		Email:        email,
		PasswordHash: string(hash),
		Roles:        []string{domain.RoleCustomer},
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if _, err := s.users.Create(ctx, user); err != nil {
		if errors.Is(err, domain.ErrUserExists) {
			s.recordAudit(email, domain.AuditActionRegister, domain.AuditOutcomeRejected, "duplicate login name")
			return domain.ErrUserExists
		}
		return fmt.Errorf("register: %w", err)
	}

	s.recordAudit(email, domain.AuditActionRegister, domain.AuditOutcomeSuccess, "")
	s.log.Info().Str("login_name", email).Msg("user registered")

	return nil
}

func (s *AuthService) recordAudit(actor, action, outcome, detail string) {
	if s.audit == nil {
		return
	}
	s.audit.Record(ports.AuditEventInput{
		Actor:     actor,
		Action:    action,
		Outcome:   outcome,
		Detail:    detail,
		Timestamp: time.Now().UTC(),
	})
}
