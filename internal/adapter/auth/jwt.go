package auth

import (
	"fmt"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/lestrrat-go/jwx/v2/jwt"

	"taskboard/internal/core/domain"
	"taskboard/internal/core/ports"
)

const signingAlgorithm = "HS256"

type JWTIssuer struct {
	tokenAuth *jwtauth.JWTAuth
	ttl       time.Duration
}

var _ ports.SessionIssuer = (*JWTIssuer)(nil)

func NewJWTIssuer(secret string, ttl time.Duration) *JWTIssuer {
	return &JWTIssuer{
		tokenAuth: jwtauth.New(signingAlgorithm, []byte(secret), nil, jwt.WithAcceptableSkew(30*time.Second)),
		ttl:       ttl,
	}
}

func (i *JWTIssuer) Issue(userID string) (string, error) {
	claims := map[string]interface{}{
		jwt.SubjectKey: userID,
	}
	jwtauth.SetIssuedNow(claims)
	jwtauth.SetExpiryIn(claims, i.ttl)

	_, token, err := i.tokenAuth.Encode(claims)
	if err != nil {
		return "", fmt.Errorf("sign session token: %w", err)
	}
	return token, nil
}

// Verify checks signature and expiry and returns the subject.
func (i *JWTIssuer) Verify(token string) (string, error) {
	parsed, err := jwtauth.VerifyToken(i.tokenAuth, token)
	if err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrUnauthorized, err)
	}

	userID := parsed.Subject()
	if userID == "" {
		return "", fmt.Errorf("%w: token has no subject", domain.ErrUnauthorized)
	}
	return userID, nil
}
