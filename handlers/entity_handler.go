package handlers

import (
	"net/http"

	"github.com/Reactman/wakanda/models"
	"github.com/Reactman/wakanda/repositories"
	"github.com/Reactman/wakanda/services"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// EntityHandler exposes plain CRUD for any BaseEntity model over a BaseService.
type EntityHandler[M any, PM repositories.EntityPtr[M, uuid.UUID]] struct {
	svc      services.BaseService[M, uuid.UUID]
	sortable map[string]bool
}

// NewEntityHandler accepts sort requests only for the listed columns.
func NewEntityHandler[M any, PM repositories.EntityPtr[M, uuid.UUID]](
	svc services.BaseService[M, uuid.UUID], sortable ...string,
) *EntityHandler[M, PM] {
	allowed := map[string]bool{"id": true, "created_date": true, "updated_date": true}
	for _, col := range sortable {
		allowed[col] = true
	}
	return &EntityHandler[M, PM]{svc: svc, sortable: allowed}
}

// Register mounts the CRUD routes on g.
func (h *EntityHandler[M, PM]) Register(g *gin.RouterGroup) {
	g.POST("", h.Create)
	g.GET("", h.List)
	g.GET("/count", h.Count)
	g.GET("/:id", h.Get)
	g.HEAD("/:id", h.Exists)
	g.PUT("/:id", h.Update)
	g.DELETE("/:id", h.Delete)
}

// Create handles POST; the id is generated server-side.
func (h *EntityHandler[M, PM]) Create(c *gin.Context) {
	m := new(M)
	if err := c.ShouldBindJSON(m); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if !PM(m).IsNew() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "id is assigned by the server"})
		return
	}
	saved, err := h.svc.Save(c.Request.Context(), m)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, saved)
}

func (h *EntityHandler[M, PM]) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	m, err := h.svc.FindOne(c.Request.Context(), id)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, m)
}

func (h *EntityHandler[M, PM]) Exists(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	found, err := h.svc.Exists(c.Request.Context(), id)
	switch {
	case err != nil:
		c.Status(http.StatusInternalServerError)
	case !found:
		c.Status(http.StatusNotFound)
	default:
		c.Status(http.StatusOK)
	}
}

// List handles GET ?page=&limit=&sort=amount,-created_date.
func (h *EntityHandler[M, PM]) List(c *gin.Context) {
	var q models.ListQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	sort, ok := parseSort(q.Sort, h.sortable)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unsupported sort column"})
		return
	}
	page, err := h.svc.FindPage(c.Request.Context(), q.Page, q.Limit, sort...)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, page)
}

func (h *EntityHandler[M, PM]) Count(c *gin.Context) {
	n, err := h.svc.Count(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": n})
}

// Update handles PUT /:id. The body must carry the version it was read at;
// a stale version answers 409.
func (h *EntityHandler[M, PM]) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	m := new(M)
	if err := c.ShouldBindJSON(m); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	PM(m).SetEntityID(id)
	saved, err := h.svc.Save(c.Request.Context(), m)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, saved)
}

func (h *EntityHandler[M, PM]) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.svc.Delete(c.Request.Context(), id); err != nil {
		fail(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
