package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/Reactman/wakanda/models"
	"github.com/Reactman/wakanda/repositories"
	"github.com/Reactman/wakanda/services"
	"github.com/Reactman/wakanda/utils"
	"github.com/Reactman/wakanda/utils/strutil"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// statusFor maps service and repository errors onto HTTP status codes.
func statusFor(err error) int {
	switch {
	case repositories.IsNotFound(err):
		return http.StatusNotFound
	case errors.Is(err, repositories.ErrOptimisticLock), errors.Is(err, gorm.ErrDuplicatedKey):
		return http.StatusConflict
	case errors.Is(err, services.ErrInvalidCredentials):
		return http.StatusUnauthorized
	case errors.Is(err, services.ErrEmailExists), errors.Is(err, utils.ErrBlankPassword):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func fail(c *gin.Context, err error) {
	c.JSON(statusFor(err), gin.H{"error": err.Error()})
}

// parseID reads the :id path param; on failure it has already answered 400.
func parseID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return uuid.Nil, false
	}
	return id, true
}

// parseSort turns "amount,-created_date" into ORDER BY columns; a leading
// "-" sorts descending. Only names present in allowed are accepted.
func parseSort(raw string, allowed map[string]bool) ([]models.Sort, bool) {
	var out []models.Sort
	for _, tok := range strutil.SplitBy(raw, ",") {
		tok = strutil.Trim(tok)
		if strutil.IsEmpty(tok) {
			continue
		}
		s := models.Asc(tok)
		if name, ok := strings.CutPrefix(tok, "-"); ok {
			s = models.Desc(name)
		}
		if !allowed[s.Column] {
			return nil, false
		}
		out = append(out, s)
	}
	return out, true
}
