package router

import "github.com/gin-gonic/gin"

func (r *Router) authRoutes(api *gin.RouterGroup) {
	// Public routes (no authentication required)
	api.POST("/auth", r.authHandler.Login)
	api.POST("/logout", r.authHandler.Logout)

	// Protected routes (session token required)
	protected := api.Group("")
	protected.Use(r.authMw.RequireAuth())
	{
		protected.GET("/profile", r.authHandler.Profile)
	}
}
