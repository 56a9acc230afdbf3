package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"taskboard/internal/core/domain"
	"taskboard/internal/core/ports"
)

type AuthService struct {
	userRepository ports.UserRepository
	sessions       ports.SessionIssuer
	hashCost       int
	now            func() time.Time
}

func NewAuthService(userRepository ports.UserRepository, sessions ports.SessionIssuer) *AuthService {
	return &AuthService{
		userRepository: userRepository,
		sessions:       sessions,
		hashCost:       bcrypt.DefaultCost,
		now:            time.Now,
	}
}

// WithHashCost lowers the bcrypt cost, for tests.
func (s *AuthService) WithHashCost(cost int) *AuthService {
	s.hashCost = cost
	return s
}

func (s *AuthService) Register(ctx context.Context, in domain.RegisterInput) (domain.AuthResult, error) {
	name := strings.TrimSpace(in.Name)
	email := normalizeEmail(in.Email)
	if name == "" || email == "" || in.Password == "" {
		return domain.AuthResult{}, domain.ErrRegisterFieldsEmpty
	}

	_, err := s.userRepository.FindByEmail(ctx, email)
	switch {
	case err == nil:
		return domain.AuthResult{}, domain.ErrUserAlreadyExists
	case !errors.Is(err, domain.ErrUserNotFound):
		return domain.AuthResult{}, domain.WrapStoreError("find user", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), s.hashCost)
	if err != nil {
		return domain.AuthResult{}, err
	}

	user := domain.User{
		ID:           uuid.NewString(),
		Name:         name,
		Email:        email,
		PasswordHash: string(hash),
		CreatedAt:    s.now().UTC().Truncate(time.Microsecond),
	}
	if err := s.userRepository.Create(ctx, user); err != nil {
		return domain.AuthResult{}, domain.WrapStoreError("create user", err)
	}

	return s.session(user)
}

// Login does not reveal whether the email or the password was wrong.
func (s *AuthService) Login(ctx context.Context, in domain.LoginInput) (domain.AuthResult, error) {
	email := normalizeEmail(in.Email)
	if email == "" || in.Password == "" {
		return domain.AuthResult{}, domain.ErrLoginFieldsEmpty
	}

	user, err := s.userRepository.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return domain.AuthResult{}, domain.ErrInvalidCredentials
		}
		return domain.AuthResult{}, domain.WrapStoreError("find user", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return domain.AuthResult{}, domain.ErrInvalidCredentials
	}

	return s.session(user)
}

// Authenticate resolves a session token to a user that still exists.
func (s *AuthService) Authenticate(ctx context.Context, token string) (domain.User, error) {
	userID, err := s.sessions.Verify(token)
	if err != nil {
		return domain.User{}, err
	}

	user, err := s.userRepository.FindByID(ctx, userID)
	if err != nil {
		return domain.User{}, domain.WrapStoreError("find user", err)
	}

	return user, nil
}

func (s *AuthService) session(user domain.User) (domain.AuthResult, error) {
	token, err := s.sessions.Issue(user.ID)
	if err != nil {
		return domain.AuthResult{}, err
	}
	return domain.AuthResult{User: user, Token: token}, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

var _ ports.AuthService = (*AuthService)(nil)
