package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"taskboard/internal/core/domain"
	"taskboard/pkg/apierrors"
	"taskboard/pkg/token"
)

const (
	callerIDKey  = "caller_id"
	bearerPrefix = "Bearer "
)

type TokenParser interface {
	Parse(tokenString string) (*token.Claims, error)
}

type UserLookup interface {
	GetUser(ctx context.Context, userID uint64) (domain.User, error)
}

// AuthMiddleware requires a valid bearer token whose subject is an existing user.
func AuthMiddleware(parser TokenParser, users UserLookup) gin.HandlerFunc {
	return func(c *gin.Context) {
		lang := GetLang(c)

		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, bearerPrefix) || strings.TrimSpace(header[len(bearerPrefix):]) == "" {
			c.AbortWithStatusJSON(
				http.StatusUnauthorized,
				apierrors.CreateError(http.StatusUnauthorized, apierrors.MsgMissingToken, lang),
			)
			return
		}

		claims, err := parser.Parse(strings.TrimSpace(header[len(bearerPrefix):]))
		if err != nil {
			c.AbortWithStatusJSON(
				http.StatusUnauthorized,
				apierrors.CreateError(http.StatusUnauthorized, apierrors.MsgInvalidToken, lang),
			)
			return
		}

		user, err := users.GetUser(c.Request.Context(), claims.UserID)
		if err != nil {
			if errors.Is(err, domain.ErrUserNotFound) {
				c.AbortWithStatusJSON(
					http.StatusUnauthorized,
					apierrors.CreateError(http.StatusUnauthorized, apierrors.MsgInvalidToken, lang),
				)
				return
			}

			zap.L().Error("failed to load authenticated user", zap.Uint64("user_id", claims.UserID), zap.Error(err))
			c.AbortWithStatusJSON(
				http.StatusInternalServerError,
				apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailGetUser, lang),
			)
			return
		}

		c.Set(callerIDKey, user.ID)
		c.Next()
	}
}

// GetCallerID returns the authenticated user id, or 0 outside AuthMiddleware.
func GetCallerID(c *gin.Context) uint64 {
	if value, exists := c.Get(callerIDKey); exists {
		if id, ok := value.(uint64); ok {
			return id
		}
	}
	return 0
}
