package router

import "github.com/gin-gonic/gin"

func (r *Router) carRoutes(version *gin.RouterGroup) {
	cars := version.Group("/cars")
	{
		// Filtered listing; must sit before /:id so "search" never binds
		// as an id.
		cars.GET("/search", r.carHandler.Search)

		cars.GET("", r.carHandler.GetAll)
		cars.GET("/:id", r.carHandler.GetByID)
		cars.POST("", r.carHandler.Create)
		cars.PUT("/:id", r.carHandler.Update)
		cars.DELETE("/:id", r.carHandler.Delete)
	}
}
