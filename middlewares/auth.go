package middlewares

import (
	"net/http"

	"scholarhub/models"
	"scholarhub/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// EmailKey is where Authenticate stores the verified email claim in the
// gin context for the role gates and handlers behind it.
const EmailKey = "email"

// Authenticate validates the raw token from the Authorization header.
// The header value is the token itself, no scheme prefix.
func Authenticate(secret []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := c.GetHeader("Authorization")
		if tokenString == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized access"})
			c.Abort()
			return
		}

		email, err := utils.VerifyToken(tokenString, secret)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized access"})
			c.Abort()
			return
		}

		c.Set(EmailKey, email)
		c.Next()
	}
}

// RequireAdmin admits only Admin users. Must run after Authenticate.
func RequireAdmin(db *gorm.DB) gin.HandlerFunc {
	return requireRole(db, models.RoleAdmin)
}

// RequireModerator admits Moderator and Admin users. Must run after
// Authenticate.
func RequireModerator(db *gorm.DB) gin.HandlerFunc {
	return requireRole(db, models.RoleModerator, models.RoleAdmin)
}

// requireRole resolves the caller's role from the users table on every
// request and aborts with 403 unless it is in the accepted set. A missing
// user record is treated the same as an insufficient role.
func requireRole(db *gorm.DB, roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		email := c.GetString(EmailKey)

		var user models.User
		if err := db.Where("email = ?", email).First(&user).Error; err != nil {
			c.JSON(http.StatusForbidden, gin.H{"error": "forbidden access"})
			c.Abort()
			return
		}

		for _, role := range roles {
			if user.Role == role {
				c.Next()
				return
			}
		}

		c.JSON(http.StatusForbidden, gin.H{"error": "forbidden access"})
		c.Abort()
	}
}
