// catches panics and returns 500 without crashing the server.

package middlewares

import (
	"fmt"
	"log"
	"net/http"

	"github.com/Reactman/wakanda/utils/redislog"

	"github.com/gin-gonic/gin"
)

// Recovery answers 500 when a handler panics and logs the panic value.
func Recovery(rlog *redislog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				log.Printf("[panic] %v", r)
				rlog.Error(c.Request.Context(), "panic", map[string]string{
					"path":  c.Request.URL.Path,
					"value": fmt.Sprint(r),
				})
				c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
			}
		}()
		c.Next()
	}
}
