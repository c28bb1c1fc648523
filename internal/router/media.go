package router

import "github.com/gin-gonic/gin"

// mediaRoutes wires the car-attached media entities: photos and links.
func (r *Router) mediaRoutes(version *gin.RouterGroup) {
	photos := version.Group("/photos")
	{
		photos.GET("", r.photoHandler.GetAll)
		photos.GET("/:id", r.photoHandler.GetByID)
		photos.POST("", r.photoHandler.Create)
		photos.PUT("/:id", r.photoHandler.Update)
		photos.DELETE("/:id", r.photoHandler.Delete)
	}

	links := version.Group("/links")
	{
		links.GET("", r.linkHandler.GetAll)
		links.GET("/:id", r.linkHandler.GetByID)
		links.POST("", r.linkHandler.Create)
		links.PUT("/:id", r.linkHandler.Update)
		links.DELETE("/:id", r.linkHandler.Delete)
	}
}
