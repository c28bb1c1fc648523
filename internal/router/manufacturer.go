package router

import "github.com/gin-gonic/gin"

func (r *Router) manufacturerRoutes(version *gin.RouterGroup) {
	manufacturers := version.Group("/manufacturers")
	{
		manufacturers.GET("", r.manufacturerHandler.GetAll)
		manufacturers.GET("/:id", r.manufacturerHandler.GetByID)
		manufacturers.POST("", r.manufacturerHandler.Create)
		manufacturers.PUT("/:id", r.manufacturerHandler.Update)
		manufacturers.DELETE("/:id", r.manufacturerHandler.Delete)
	}
}
