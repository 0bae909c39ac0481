package router

import "github.com/gin-gonic/gin"

func (r *Router) logRoutes(api *gin.RouterGroup) {
	// Every log-entry operation is authenticated; ownership checks live in
	// the service layer
	protected := api.Group("")
	protected.Use(r.authMw.RequireAuth())
	{
		protected.POST("/logs", r.logHandler.Create)
		protected.PUT("/logs/:id", r.logHandler.Update)
		protected.DELETE("/logs/:id", r.logHandler.Delete)
		protected.GET("/user-log/:userId", r.logHandler.ListByUser)
		protected.GET("/stats", r.statsHandler.GetStats)
	}
}
