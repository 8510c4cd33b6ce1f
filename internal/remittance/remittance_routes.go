package remittance

import (
	"hris-payroll/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, rdb *redis.Client) {
	remittances := r.Group("/employee-remittance")
	remittances.Use(middleware.AuthMiddleware())
	{
		remittances.GET("",
			middleware.RateLimitByUser(2, 5),
			handler.GetAll,
		)

		createHandlers := []gin.HandlerFunc{middleware.RateLimitByUser(0.5, 2)}
		if rdb != nil {
			createHandlers = append(createHandlers, middleware.Idempotency(rdb))
		}
		createHandlers = append(createHandlers, handler.Create)
		remittances.POST("", createHandlers...)

		remittances.PUT("/:id",
			middleware.RateLimitByUser(0.5, 2),
			handler.Update,
		)
		remittances.DELETE("/:id",
			middleware.RateLimitByUser(0.2, 1),
			handler.Delete,
		)
	}
}
