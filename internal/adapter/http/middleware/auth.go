package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"taskboard/internal/core/domain"
	"taskboard/internal/core/ports"
	"taskboard/pkg/apierrors"
)

const (
	userKey      = "user"
	bearerPrefix = "Bearer "
)

// Authenticate rejects the request with 401 unless it carries a valid session token for an existing user.
func Authenticate(authService ports.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		lang := GetLang(c)

		token, ok := bearerToken(c.GetHeader("Authorization"))
		if !ok {
			abortUnauthorized(c, apierrors.MsgNotAuthorized, lang)
			return
		}

		user, err := authService.Authenticate(c.Request.Context(), token)
		switch {
		case err == nil:
		case errors.Is(err, domain.ErrUserNotFound):
			abortUnauthorized(c, apierrors.MsgUserNotFound, lang)
			return
		case errors.Is(err, domain.ErrUnauthorized):
			abortUnauthorized(c, apierrors.MsgInvalidToken, lang)
			return
		default:
			zap.L().Error("failed to authenticate request", zap.Error(err))
			c.AbortWithStatusJSON(
				http.StatusInternalServerError,
				apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailAuthenticate, lang),
			)
			return
		}

		c.Set(userKey, user)
		c.Next()
	}
}

// GetUser returns the user resolved by Authenticate.
func GetUser(c *gin.Context) (domain.User, bool) {
	value, exists := c.Get(userKey)
	if !exists {
		return domain.User{}, false
	}
	user, ok := value.(domain.User)
	return user, ok && user.ID != ""
}

func GetUserID(c *gin.Context) (string, bool) {
	user, ok := GetUser(c)
	return user.ID, ok
}

func bearerToken(header string) (string, bool) {
	if len(header) < len(bearerPrefix) || !strings.EqualFold(header[:len(bearerPrefix)], bearerPrefix) {
		return "", false
	}
	token := strings.TrimSpace(header[len(bearerPrefix):])
	return token, token != ""
}

func abortUnauthorized(c *gin.Context, msgKey, lang string) {
	c.AbortWithStatusJSON(
		http.StatusUnauthorized,
		apierrors.CreateError(http.StatusUnauthorized, msgKey, lang),
	)
}
