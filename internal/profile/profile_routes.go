package profile

import (
	"go-hrapp/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, resolver middleware.PrincipalResolver) {
	profiles := r.Group("/profiles")
	profiles.Use(middleware.AuthMiddleware(resolver))
	{
		profiles.GET("/basic", handler.ListBasic)
		profiles.GET("/detailed", handler.ListDetailed)
		profiles.GET("/me", handler.GetMine)
		profiles.GET("/employee/:employeeId/basic", handler.GetBasicByEmployeeID)
		profiles.GET("/:id/basic", handler.GetBasic)
		profiles.GET("/:id/detailed", handler.GetDetailed)
		profiles.GET("/:id/reports", handler.ListReports)
		profiles.POST("", handler.Create)
		profiles.PUT("/:id", handler.Update)
	}
}
