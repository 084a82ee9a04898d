package handlers

import (
	"net/http"
	"strconv"

	"github.com/Reactman/wakanda/utils/redislog"

	"github.com/gin-gonic/gin"
)

const maxRecentLogs = 200

// LogHandler serves the newest entries of the redis application log.
type LogHandler struct{ log *redislog.Logger }

func NewLogHandler(l *redislog.Logger) *LogHandler { return &LogHandler{log: l} }

// Recent handles GET /logs?n=50.
func (h *LogHandler) Recent(c *gin.Context) {
	n, err := strconv.ParseInt(c.DefaultQuery("n", "50"), 10, 64)
	if err != nil || n <= 0 || n > maxRecentLogs {
		c.JSON(http.StatusBadRequest, gin.H{"error": "n must be between 1 and 200"})
		return
	}
	entries, err := h.log.Recent(c.Request.Context(), n)
	if err != nil {
		fail(c, err)
		return
	}
	if entries == nil {
		entries = []redislog.Entry{}
	}
	c.JSON(http.StatusOK, gin.H{"items": entries})
}
