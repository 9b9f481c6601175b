package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/pagewise/bookstore-api/internal/core/domain"
	"github.com/pagewise/bookstore-api/internal/core/ports"
)

type stubUserRepo struct {
	users  map[string]*domain.User
	nextID int64
	err    error
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: make(map[string]*domain.User)}
}

func (r *stubUserRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	if r.err != nil {
		return nil, r.err
	}
	u, ok := r.users[email]
	if !ok {
		return nil, nil
	}
	clone := *u
	return &clone, nil
}

func (r *stubUserRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	if r.err != nil {
		return nil, r.err
	}
	if _, exists := r.users[user.Email]; exists {
		return nil, domain.ErrUserExists
	}
	r.nextID++
	clone := *user
	clone.ID = r.nextID
	r.users[clone.Email] = &clone
	out := clone
	return &out, nil
}

type stubRecorder struct {
	events []ports.AuditEventInput
}

func (r *stubRecorder) Record(event ports.AuditEventInput) {
	r.events = append(r.events, event)
}

func seedUser(t *testing.T, repo *stubUserRepo, email, password string, roles ...string) {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}
	repo.users[email] = &domain.User{
		ID:           int64(len(repo.users) + 1),
		Email:        email,
		PasswordHash: string(hash),
		Roles:        roles,
	}
}

func newTestAuthService(repo *stubUserRepo, rec ports.AuditRecorder) *AuthService {
	issuer := NewTokenIssuer("secret", "bookstore-api", time.Minute)
	return NewAuthService(repo, issuer, rec, PasswordPolicy{MinLen: 8, MaxLen: 25}, zerolog.Nop())
}

func TestAuthService_Login_Success(t *testing.T) {
	repo := newStubUserRepo()
	seedUser(t, repo, "a@b.com", "Secret123", domain.RoleAdministrator)
	svc := newTestAuthService(repo, &stubRecorder{})

	token, err := svc.Login(context.Background(), "a@b.com", "Secret123")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if token == "" {
		t.Fatalf("expected token, got empty")
	}

	claims := jwt.MapClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(token *jwt.Token) (interface{}, error) {
		return []byte("secret"), nil
	})
	if err != nil || !parsed.Valid {
		t.Fatalf("token invalid: %v", err)
	}
	if claims["sub"] != "a@b.com" {
		t.Fatalf("unexpected sub claim: %v", claims["sub"])
	}
	roles, _ := claims["roles"].([]interface{})
	if len(roles) != 1 || roles[0] != domain.RoleAdministrator {
		t.Fatalf("unexpected roles claim: %v", claims["roles"])
	}
}

func TestAuthService_Login_NormalizesLoginName(t *testing.T) {
	repo := newStubUserRepo()
	seedUser(t, repo, "a@b.com", "Secret123", domain.RoleCustomer)
	svc := newTestAuthService(repo, &stubRecorder{})

	if _, err := svc.Login(context.Background(), "  A@B.com ", "Secret123"); err != nil {
		t.Fatalf("login with unnormalized name failed: %v", err)
	}
}

func TestAuthService_Login_UnauthorizedIndistinguishable(t *testing.T) {
	repo := newStubUserRepo()
	seedUser(t, repo, "a@b.com", "Secret123", domain.RoleAdministrator)
	svc := newTestAuthService(repo, &stubRecorder{})

	_, wrongPassword := svc.Login(context.Background(), "a@b.com", "wrong")
	_, unknownUser := svc.Login(context.Background(), "nobody@b.com", "Secret123")

	// Wrong password and unknown login name must be the same outcome: no
	// signal may reveal which accounts exist.
	if !errors.Is(wrongPassword, domain.ErrInvalidCredentials) {
		t.Fatalf("wrong password: expected ErrInvalidCredentials, got %v", wrongPassword)
	}
	if !errors.Is(unknownUser, domain.ErrInvalidCredentials) {
		t.Fatalf("unknown user: expected ErrInvalidCredentials, got %v", unknownUser)
	}
	if wrongPassword.Error() != unknownUser.Error() {
		t.Fatalf("outcomes differ: %q vs %q", wrongPassword, unknownUser)
	}
}

func TestAuthService_Login_EmptyInput(t *testing.T) {
	repo := newStubUserRepo()
	svc := newTestAuthService(repo, &stubRecorder{})

	if _, err := svc.Login(context.Background(), "", "Secret123"); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials for empty login name, got %v", err)
	}
	if _, err := svc.Login(context.Background(), "a@b.com", ""); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials for empty password, got %v", err)
	}
}

func TestAuthService_Login_StoreFault(t *testing.T) {
	repo := newStubUserRepo()
	repo.err = errors.New("connection refused")
	svc := newTestAuthService(repo, &stubRecorder{})

	_, err := svc.Login(context.Background(), "a@b.com", "Secret123")
	if err == nil || errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("store fault must be distinct from rejection, got %v", err)
	}
}

func TestAuthService_Register_Success(t *testing.T) {
	repo := newStubUserRepo()
	rec := &stubRecorder{}
	svc := newTestAuthService(repo, rec)

	if err := svc.Register(context.Background(), "New@B.com", "Secret123"); err != nil {
		t.Fatalf("register failed: %v", err)
	}

	stored := repo.users["new@b.com"]
	if stored == nil {
		t.Fatalf("user not stored under normalized email")
	}
	if stored.PasswordHash == "Secret123" {
		t.Fatalf("expected password to be hashed")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("Secret123")); err != nil {
		t.Fatalf("stored hash does not match password: %v", err)
	}
	if len(stored.Roles) != 1 || stored.Roles[0] != domain.RoleCustomer {
		t.Fatalf("unexpected roles: %v", stored.Roles)
	}
}

func TestAuthService_Register_PasswordPolicy(t *testing.T) {
	repo := newStubUserRepo()
	svc := newTestAuthService(repo, &stubRecorder{})

	if err := svc.Register(context.Background(), "a@b.com", "short"); !errors.Is(err, domain.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for short password, got %v", err)
	}
	long := "abcdefghijklmnopqrstuvwxyz" // 26 > max 25
	if err := svc.Register(context.Background(), "a@b.com", long); !errors.Is(err, domain.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for long password, got %v", err)
	}
	if len(repo.users) != 0 {
		t.Fatalf("rejected registration must not store a user")
	}
}

func TestAuthService_Register_Duplicate(t *testing.T) {
	repo := newStubUserRepo()
	svc := newTestAuthService(repo, &stubRecorder{})

	if err := svc.Register(context.Background(), "a@b.com", "Secret123"); err != nil {
		t.Fatalf("first register failed: %v", err)
	}
	if err := svc.Register(context.Background(), "a@b.com", "Other1234"); !errors.Is(err, domain.ErrUserExists) {
		t.Fatalf("expected ErrUserExists, got %v", err)
	}
}

func TestAuthService_AuditOutcomes(t *testing.T) {
	repo := newStubUserRepo()
	seedUser(t, repo, "a@b.com", "Secret123", domain.RoleCustomer)
	rec := &stubRecorder{}
	svc := newTestAuthService(repo, rec)

	_, _ = svc.Login(context.Background(), "a@b.com", "Secret123")
	_, _ = svc.Login(context.Background(), "a@b.com", "wrong")

	if len(rec.events) != 2 {
		t.Fatalf("expected 2 audit events, got %d", len(rec.events))
	}
	if rec.events[0].Outcome != domain.AuditOutcomeSuccess {
		t.Fatalf("unexpected first outcome: %s", rec.events[0].Outcome)
	}
	if rec.events[1].Outcome != domain.AuditOutcomeRejected {
		t.Fatalf("unexpected second outcome: %s", rec.events[1].Outcome)
	}
}
