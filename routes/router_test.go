package routes

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Reactman/wakanda/mocks"
	"github.com/Reactman/wakanda/models"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func newRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	Setup(r, new(mocks.UserServiceMock), new(mocks.ServiceMock[models.CustomerOrder, uuid.UUID]), nil, "secret", time.Hour)
	return r
}

func TestSetup_Smoke(t *testing.T) {
	r := newRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code) // route exists; body missing
}

func TestSetup_ProtectedRoutesNeedToken(t *testing.T) {
	r := newRouter()

	for _, p := range []string{"/api/v1/me", "/api/v1/users", "/api/v1/orders", "/api/v1/orders/count", "/api/v1/logs"} {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, p, nil))
		assert.Equal(t, http.StatusUnauthorized, w.Code, p)
	}
}
