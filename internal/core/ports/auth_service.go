package ports

import "context"

// AuthService implements the login and registration use cases.
type AuthService interface {
	// Login verifies credentials and returns a signed bearer token. Unknown
	// login names and wrong passwords both yield domain.ErrInvalidCredentials
	// with no further detail.
	Login(ctx context.Context, loginName, password string) (string, error)
	// Register creates a new Customer identity subject to the configured
	// password policy.
	Register(ctx context.Context, loginName, password string) error
}
