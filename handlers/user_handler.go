// Controller layer translates HTTP <-> service calls.
package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/Reactman/wakanda/global"
	"github.com/Reactman/wakanda/models"
	"github.com/Reactman/wakanda/services"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// UserHandler bundles dependencies needed by user endpoints.
type UserHandler struct {
	svc        services.UserService
	jwtSecret  string
	jwtExpires time.Duration
}

func NewUserHandler(svc services.UserService, jwtSecret string, jwtExp time.Duration) *UserHandler {
	return &UserHandler{svc: svc, jwtSecret: jwtSecret, jwtExpires: jwtExp}
}

// Register handles POST /auth/register (public).
func (h *UserHandler) Register(c *gin.Context) {
	var req models.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	u, err := h.svc.Register(c.Request.Context(), req)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, u)
}

// Login handles POST /auth/login (public).
func (h *UserHandler) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	tok, err := h.svc.Login(c.Request.Context(), req, h.jwtSecret, h.jwtExpires)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, models.AuthResponse{Token: tok})
}

// Me handles GET /me: the user named by the token's subject.
func (h *UserHandler) Me(c *gin.Context) {
	id, ok := c.Get(global.CtxUserIDKey)
	uid, _ := id.(uuid.UUID)
	if !ok || uid == uuid.Nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthenticated"})
		return
	}
	u, err := h.svc.GetByID(c.Request.Context(), uid)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, u)
}

// GetUser handles GET /users/:id (protected).
func (h *UserHandler) GetUser(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	u, err := h.svc.GetUser(c.Request.Context(), id)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, u)
}

// CreateUser handles POST /users (protected; typically admin-only).
func (h *UserHandler) CreateUser(c *gin.Context) {
	var req models.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	u, err := h.svc.CreateUser(c.Request.Context(), req)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, u)
}

// UpdateUser handles PUT /users/:id (protected).
func (h *UserHandler) UpdateUser(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req models.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	u, err := h.svc.UpdateUser(c.Request.Context(), id, req)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, u)
}

// DeleteUser handles DELETE /users/:id (protected).
func (h *UserHandler) DeleteUser(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.svc.DeleteUser(c.Request.Context(), id); err != nil {
		fail(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// ListUsers handles GET /users?page=1&limit=10 (protected).
func (h *UserHandler) ListUsers(c *gin.Context) {
	// the service clamps these too
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))

	paged, err := h.svc.ListUsers(c.Request.Context(), page, limit)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, paged)
}
