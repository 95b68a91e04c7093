package routes

import (
	"coffeemap/handlers"
	"coffeemap/middleware"
	"coffeemap/utils"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterShopRoutes registers the shop directory endpoints.
func RegisterShopRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/shops")
	{
		// Reads are public; optional auth lets signed-in callers see
		// their favorite flags and moderators see unapproved reviews.
		public := api.Group("")
		public.Use(middleware.OptionalAuthMiddleware(hb.UserRepo))
		public.GET("", hb.ListShopsHandler)
		public.GET("/:id", hb.GetShopHandler)
		public.GET("/:id/reviews", hb.ListReviewsHandler)
		public.GET("/:id/detailed-reviews", hb.ListDetailedReviewsHandler)

		// Visitors may post reviews without an account; anonymous
		// submissions are limited per client IP instead of per account.
		public.POST("/:id/reviews", hb.CreateReviewHandler)
		public.POST("/:id/detailed-reviews", hb.CreateDetailedReviewHandler)

		// Writes require a valid session.
		protected := api.Group("")
		protected.Use(middleware.JWTAuthMiddleware(hb.UserRepo))
		protected.POST("", hb.CreateShopHandler)
		protected.PUT("/:id", hb.UpdateShopHandler)
		protected.DELETE("/:id", hb.DeleteShopHandler)
		protected.POST("/:id/detailed-reviews/:reviewID/approve", hb.ApproveDetailedReviewHandler)
		protected.POST("/:id/images", hb.UploadShopImageHandler)
		protected.DELETE("/:id/images/:imageId", hb.DeleteShopImageHandler)
	}
}

// RegisterFavoriteRoutes registers favorite management endpoints.
func RegisterFavoriteRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/favorites")
	{
		// Anonymous callers pass their anon ID; signed-in callers are
		// resolved from the session, so auth is optional here.
		api.Use(middleware.OptionalAuthMiddleware(hb.UserRepo))
		api.GET("", hb.ListFavoritesHandler)
		api.PUT("/:shopID", hb.AddFavoriteHandler)
		api.DELETE("/:shopID", hb.RemoveFavoriteHandler)
	}

	migrate := r.Group("/api/favorites/migrate")
	{
		migrate.Use(middleware.JWTAuthMiddleware(hb.UserRepo))
		migrate.POST("", hb.MigrateFavoritesHandler)
	}
}

// RegisterAuthRoutes registers sign-in, session and profile endpoints.
func RegisterAuthRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	auth := r.Group("/api/auth")
	{
		auth.POST("/google", hb.GoogleSignInHandler)
		auth.POST("/anonymous", hb.AnonymousSignInHandler)

		protected := auth.Group("")
		protected.Use(middleware.JWTAuthMiddleware(hb.UserRepo))
		protected.GET("/session", hb.SessionHandler)
		protected.POST("/signout", hb.SignOutHandler)
	}

	// Browser OAuth redirect target, outside the /api prefix.
	r.GET("/auth/callback", hb.OAuthCallbackHandler)

	users := r.Group("/api/users")
	{
		users.Use(middleware.JWTAuthMiddleware(hb.UserRepo))
		users.PATCH("/me", hb.UpdateProfileHandler)
	}
}

// RegisterAdminRoutes sets up endpoints for admin operations.
func RegisterAdminRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	adminGroup := r.Group("/api/admin")
	{
		adminGroup.Use(middleware.JWTAuthMiddleware(hb.UserRepo))
		adminGroup.GET("/users", hb.ListUsersHandler)
		adminGroup.GET("/users/:id", hb.GetUserHandler)
		adminGroup.DELETE("/users/:id", hb.DeleteUserHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "services": utils.GetHealthStatus()})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	// Setup global middleware (e.g., CORS) here.
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterShopRoutes(r, hb)
	RegisterFavoriteRoutes(r, hb)
	RegisterAuthRoutes(r, hb)
	RegisterAdminRoutes(r, hb)
	RegisterHealthRoute(r)
}
