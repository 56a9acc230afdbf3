package service_test

import (
	"context"
	"testing"
	"time"

	"taskboard/internal/adapter/auth"
	"taskboard/internal/adapter/memory"
	"taskboard/internal/app/service"
	"taskboard/internal/core/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func newAuthService() (*service.AuthService, *memory.UserRepository) {
	users := memory.NewUserRepository()
	svc := service.NewAuthService(users, auth.NewJWTIssuer("test-secret", time.Hour)).WithHashCost(bcrypt.MinCost)
	return svc, users
}

func TestRegister_IssuesTokenAndHashesPassword(t *testing.T) {
	svc, users := newAuthService()
	ctx := context.Background()

	result, err := svc.Register(ctx, domain.RegisterInput{Name: " Ada ", Email: " Ada@Example.com ", Password: "hunter22"})
	require.NoError(t, err)

	assert.NotEmpty(t, result.Token)
	assert.Equal(t, "Ada", result.User.Name)
	assert.Equal(t, "ada@example.com", result.User.Email)
	assert.NotEqual(t, "hunter22", result.User.PasswordHash)

	stored, err := users.FindByID(ctx, result.User.ID)
	require.NoError(t, err)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("hunter22")))

	user, err := svc.Authenticate(ctx, result.Token)
	require.NoError(t, err)
	assert.Equal(t, result.User.ID, user.ID)
}

func TestRegister_Validation(t *testing.T) {
	svc, _ := newAuthService()

	for _, in := range []domain.RegisterInput{
		{Email: "a@example.com", Password: "x"},
		{Name: "Ada", Password: "x"},
		{Name: "Ada", Email: "a@example.com"},
		{Name: "  ", Email: "a@example.com", Password: "x"},
	} {
		_, err := svc.Register(context.Background(), in)
		assert.ErrorIs(t, err, domain.ErrValidation)
	}
}

func TestRegister_DuplicateEmail(t *testing.T) {
	svc, _ := newAuthService()
	ctx := context.Background()

	_, err := svc.Register(ctx, domain.RegisterInput{Name: "Ada", Email: "ada@example.com", Password: "x"})
	require.NoError(t, err)

	_, err = svc.Register(ctx, domain.RegisterInput{Name: "Ada 2", Email: "ADA@example.com", Password: "y"})
	assert.ErrorIs(t, err, domain.ErrUserAlreadyExists)
}

func TestLogin(t *testing.T) {
	svc, _ := newAuthService()
	ctx := context.Background()

	registered, err := svc.Register(ctx, domain.RegisterInput{Name: "Ada", Email: "ada@example.com", Password: "hunter22"})
	require.NoError(t, err)

	result, err := svc.Login(ctx, domain.LoginInput{Email: "ADA@example.com", Password: "hunter22"})
	require.NoError(t, err)
	assert.Equal(t, registered.User.ID, result.User.ID)
	assert.NotEmpty(t, result.Token)

	_, err = svc.Login(ctx, domain.LoginInput{Email: "ada@example.com", Password: "wrong"})
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)

	_, err = svc.Login(ctx, domain.LoginInput{Email: "nobody@example.com", Password: "hunter22"})
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)

	_, err = svc.Login(ctx, domain.LoginInput{Email: "ada@example.com"})
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestAuthenticate_RejectsUnknownUserAndBadToken(t *testing.T) {
	svc, _ := newAuthService()
	ctx := context.Background()

	token, err := auth.NewJWTIssuer("test-secret", time.Hour).Issue("ghost")
	require.NoError(t, err)

	_, err = svc.Authenticate(ctx, token)
	assert.ErrorIs(t, err, domain.ErrUserNotFound)

	_, err = svc.Authenticate(ctx, "garbage")
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}
