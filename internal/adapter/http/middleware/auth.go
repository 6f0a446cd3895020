package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"heroapp/internal/core/domain"
	"heroapp/internal/core/port"
)

const currentUserKey = "current_user"

// RequireAuth verifies the bearer access token and loads the current user into
// the request context. Every protected route goes through here; handlers never
// see an unverified user id.
func RequireAuth(issuer port.TokenIssuer, users port.UserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		bearer := c.GetHeader("Authorization")

		if bearer == "" {
			c.JSON(http.StatusUnauthorized, gin.H{
				"errors": []string{"Unauthorized request"},
			})

			c.Abort()
			return
		}

		if !strings.HasPrefix(bearer, "Bearer ") {
			c.JSON(http.StatusUnauthorized, gin.H{
				"errors": []string{"Invalid authorization format"},
			})

			c.Abort()
			return
		}

		userUUID, err := issuer.VerifyAccessToken(bearer[len("Bearer "):])

		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{
				"errors": []string{"Unauthorized request"},
			})

			c.Abort()
			return
		}

		user, err := users.GetByUUID(c.Request.Context(), userUUID)

		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{
				"errors": []string{"Unauthorized request"},
			})

			c.Abort()
			return
		}

		c.Set(currentUserKey, user)
		c.Next()
	}
}

func CurrentUser(c *gin.Context) (domain.User, bool) {
	value, ok := c.Get(currentUserKey)

	if !ok {
		return domain.User{}, false
	}

	user, ok := value.(domain.User)

	return user, ok
}
