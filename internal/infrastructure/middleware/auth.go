package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/marcos-nsantos/hbnb-backend/internal/infrastructure/auth"
	"github.com/marcos-nsantos/hbnb-backend/internal/pkg/httputil"
)

const (
	ActorKey     = "actor"
	BearerPrefix = "Bearer "
)

type AuthMiddleware struct {
	jwtSvc *auth.JWTService
}

func NewAuthMiddleware(jwtSvc *auth.JWTService) *AuthMiddleware {
	return &AuthMiddleware{jwtSvc: jwtSvc}
}

func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, msg := bearerToken(c)
		if msg != "" {
			httputil.Error(c, http.StatusUnauthorized, msg)
			c.Abort()
			return
		}

		actor, err := m.jwtSvc.ValidateAccessToken(token)
		if err != nil {
			httputil.Error(c, http.StatusUnauthorized, "invalid or expired token")
			c.Abort()
			return
		}

		c.Set(ActorKey, actor)
		c.Next()
	}
}

func bearerToken(c *gin.Context) (token, errMsg string) {
	header := c.GetHeader("Authorization")
	switch {
	case header == "":
		return "", "authorization header required"
	case !strings.HasPrefix(header, BearerPrefix):
		return "", "invalid authorization format"
	}
	return strings.TrimPrefix(header, BearerPrefix), ""
}
