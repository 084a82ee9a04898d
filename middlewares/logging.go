// simple request logging

package middlewares

import (
	"log"
	"net/http"
	"time"

	"github.com/Reactman/wakanda/auditing"
	"github.com/Reactman/wakanda/utils/redislog"

	"github.com/gin-gonic/gin"
)

// RequestLogger prints method, path, status, duration and auditor for each
// request. Server errors are also recorded in the redis log when rlog is set.
func RequestLogger(rlog *redislog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path // c.Request may be replaced downstream
		c.Next()

		who, ok := auditing.AuditorFrom(c.Request.Context())
		if !ok {
			who = "-"
		}
		status := c.Writer.Status()
		log.Printf("%s %s %d %s by=%s", c.Request.Method, path, status, time.Since(start), who)
		if status >= http.StatusInternalServerError {
			rlog.Error(c.Request.Context(), "request failed", map[string]string{
				"method": c.Request.Method,
				"path":   path,
				"status": http.StatusText(status),
			})
		}
	}
}
