// Router setup layer.
package routes

import (
	"time"

	"github.com/Reactman/wakanda/handlers"
	"github.com/Reactman/wakanda/middlewares"
	"github.com/Reactman/wakanda/models"
	"github.com/Reactman/wakanda/services"
	"github.com/Reactman/wakanda/utils/redislog"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// Setup attaches middlewares and registers all endpoints under /api/v1.
func Setup(
	r *gin.Engine,
	userSvc services.UserService,
	orderSvc services.BaseService[models.CustomerOrder, uuid.UUID],
	rlog *redislog.Logger,
	jwtSecret string,
	jwtExp time.Duration,
) {
	r.Use(middlewares.RequestLogger(rlog), middlewares.Recovery(rlog))

	api := r.Group("/api/v1")
	uh := handlers.NewUserHandler(userSvc, jwtSecret, jwtExp)

	// public
	api.POST("/auth/register", uh.Register)
	api.POST("/auth/login", uh.Login)

	protected := api.Group("/")
	protected.Use(middlewares.Auth(jwtSecret))

	protected.GET("/me", uh.Me)
	protected.GET("/logs", handlers.NewLogHandler(rlog).Recent)

	protected.POST("/users", uh.CreateUser)
	protected.GET("/users", uh.ListUsers)
	protected.GET("/users/:id", uh.GetUser)
	protected.PUT("/users/:id", uh.UpdateUser)
	protected.DELETE("/users/:id", uh.DeleteUser)

	handlers.NewEntityHandler[models.CustomerOrder, *models.CustomerOrder](
		orderSvc, "order_no", "customer_name", "amount", "status",
	).Register(protected.Group("/orders"))
}
