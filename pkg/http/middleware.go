package http

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"carecompanion.app/companion-service/pkg/auth"
	"carecompanion.app/companion-service/pkg/common"
	"carecompanion.app/companion-service/pkg/models"
)

const (
	contextKeyUser   = "user"
	contextKeyClaims = "claims"
)

func serverLogger() *zap.Logger {
	return common.GetLoggerWith(common.LoggerNameRestfulServer)
}

// RequireUser resolves the bearer token to the signed-in user.
func (rs *RestfulServer) RequireUser() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" || !strings.HasPrefix(header, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing or invalid Authorization header"})
			return
		}

		claims, err := rs.Auth.Verify(c.Request.Context(), strings.TrimPrefix(header, "Bearer "))
		if err != nil {
			abortWithError(c, err)
			return
		}

		user, err := rs.Companion.Identity.GetUser(c.Request.Context(), claims.Subject)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "user no longer exists"})
			return
		}

		c.Set(contextKeyClaims, claims)
		c.Set(contextKeyUser, user)
		c.Next()
	}
}

func (rs *RestfulServer) LimitUser() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !rs.CheckUserLimiter(currentUser(c).ID) {
			c.AbortWithStatus(http.StatusTooManyRequests)
			return
		}
		c.Next()
	}
}

func currentUser(c *gin.Context) *models.User {
	return c.MustGet(contextKeyUser).(*models.User)
}

func currentClaims(c *gin.Context) *auth.Claims {
	return c.MustGet(contextKeyClaims).(*auth.Claims)
}
