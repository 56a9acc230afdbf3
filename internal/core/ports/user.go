package ports

import (
	"context"

	"taskboard/internal/core/domain"
)

type UserRepository interface {
	Create(ctx context.Context, user domain.User) error
	FindByID(ctx context.Context, userID string) (domain.User, error)
	FindByEmail(ctx context.Context, email string) (domain.User, error)
}

// SessionIssuer issues and verifies signed, expiring session tokens bound to a user id.
type SessionIssuer interface {
	Issue(userID string) (string, error)
	Verify(token string) (string, error)
}

type AuthService interface {
	Register(ctx context.Context, in domain.RegisterInput) (domain.AuthResult, error)
	Login(ctx context.Context, in domain.LoginInput) (domain.AuthResult, error)
	Authenticate(ctx context.Context, token string) (domain.User, error)
}
