package absence

import (
	"go-hrapp/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

func RegisterRoutes(
	r *gin.RouterGroup,
	handler *Handler,
	resolver middleware.PrincipalResolver,
	rdb ...*redis.Client,
) {
	var redisClient *redis.Client
	if len(rdb) > 0 {
		redisClient = rdb[0]
	}

	requests := r.Group("/absence-requests")
	requests.Use(middleware.AuthMiddleware(resolver), middleware.RateLimitByUser(5, 20))
	{
		if redisClient != nil {
			requests.POST("", middleware.Idempotency(redisClient), handler.Create)
		} else {
			requests.POST("", handler.Create)
		}
		requests.GET("/my", handler.ListMine)
		requests.GET("/all", handler.ListAll)
		requests.GET("/pending", handler.ListPending)
		requests.GET("/decided", handler.ListDecided)
		requests.GET("/:id", handler.GetByID)
		requests.PUT("/:id/approve", handler.Approve)
		requests.PUT("/:id/reject", handler.Reject)
		requests.DELETE("/:id", handler.Delete)
	}
}
