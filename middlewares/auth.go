// validates JWT and injects ->
// uid into Gin context and the auditor into the request context.

package middlewares

import (
	"net/http"
	"strings"

	"github.com/Reactman/wakanda/auditing"
	"github.com/Reactman/wakanda/global"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Auth returns a Gin middleware that validates "Authorization: Bearer <token>".
// On success the subject is stored as a uuid.UUID under global.CtxUserIDKey and
// becomes the request's auditor, so writes made downstream are attributed to it.
func Auth(jwtSecret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		raw, ok := strings.CutPrefix(c.GetHeader("Authorization"), "Bearer ")
		if !ok || raw == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing bearer token"})
			return
		}

		t, err := jwt.Parse(raw, func(*jwt.Token) (interface{}, error) {
			return []byte(jwtSecret), nil
		}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
		if err != nil || !t.Valid {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			return
		}

		sub, err := t.Claims.GetSubject()
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid claims"})
			return
		}
		uid, err := uuid.Parse(sub)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid subject"})
			return
		}

		c.Set(global.CtxUserIDKey, uid)
		c.Request = c.Request.WithContext(auditing.WithAuditor(c.Request.Context(), uid.String()))
		c.Next()
	}
}
