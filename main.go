// File: coffeemap/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"coffeemap/config"
	"coffeemap/database"
	"coffeemap/database/kv"
	favoriteRepoPkg "coffeemap/database/repository/favorite"
	reviewRepoPkg "coffeemap/database/repository/review"
	shopRepoPkg "coffeemap/database/repository/shop"
	userRepoPkg "coffeemap/database/repository/user"
	"coffeemap/handlers"
	"coffeemap/middleware"
	"coffeemap/routes"
	"coffeemap/services/favorite"
	"coffeemap/services/geocode"
	"coffeemap/services/ratelimit"
	"coffeemap/services/review"
	"coffeemap/services/shop"
	"coffeemap/services/user"
	"coffeemap/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitRedis()

	// Image uploads degrade to disabled when Cloudinary is not
	// configured; everything else keeps working.
	storageService, err := utils.Cloudinary()
	if err != nil {
		logger.Sugar().Warnf("main: image storage disabled: %v", err)
		storageService = nil
	}

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	shopRepo := shopRepoPkg.NewMongoShopRepo()
	reviewRepo := reviewRepoPkg.NewMongoReviewRepo()
	userRepo := userRepoPkg.NewMongoUserRepo()
	favoriteRepo := favoriteRepoPkg.NewMongoFavoriteRepo()

	kvStore := kv.NewRedisStore(utils.GetKVClient())
	limiter := ratelimit.NewLimiter(kvStore)

	var geocoder geocode.Geocoder
	if key := config.AppConfig.GoogleAPIKey; key != "" {
		geocoder = geocode.NewGoogleGeocoder(key)
	}

	// services.
	favoriteService := &favorite.DefaultFavoriteService{
		Repo: favoriteRepo,
		KV:   kvStore,
	}
	shopService := &shop.DefaultShopService{
		Repo:     shopRepo,
		Reviews:  reviewRepo,
		Geocoder: geocoder,
	}
	reviewService := &review.DefaultReviewService{
		Repo:  reviewRepo,
		Shops: shopRepo,
	}
	userService := &user.DefaultUserService{
		Repo:           userRepo,
		Favorites:      favoriteService,
		GoogleClientID: config.AppConfig.GoogleClientID,
	}

	shopHandler := handlers.NewShopHandler(shopService, favoriteService, limiter)
	reviewHandler := handlers.NewReviewHandler(reviewService, limiter)
	favoriteHandler := handlers.NewFavoriteHandler(favoriteService)
	authHandler := handlers.NewAuthHandler(userService, limiter)
	userHandler := handlers.NewUserHandler(userService)
	storageHandler := handlers.NewStorageHandler(storageService, shopRepo)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		UserRepo: userRepo,

		// Shop endpoints.
		ListShopsHandler:  shopHandler.ListShopsHandler,
		GetShopHandler:    shopHandler.GetShopHandler,
		CreateShopHandler: shopHandler.CreateShopHandler,
		UpdateShopHandler: shopHandler.UpdateShopHandler,
		DeleteShopHandler: shopHandler.DeleteShopHandler,

		// Review endpoints.
		ListReviewsHandler:           reviewHandler.ListReviewsHandler,
		CreateReviewHandler:          reviewHandler.CreateReviewHandler,
		ListDetailedReviewsHandler:   reviewHandler.ListDetailedReviewsHandler,
		CreateDetailedReviewHandler:  reviewHandler.CreateDetailedReviewHandler,
		ApproveDetailedReviewHandler: reviewHandler.ApproveDetailedReviewHandler,

		// Image endpoints.
		UploadShopImageHandler: storageHandler.UploadShopImageHandler,
		DeleteShopImageHandler: storageHandler.DeleteShopImageHandler,

		// Favorite endpoints.
		ListFavoritesHandler:    favoriteHandler.ListFavoritesHandler,
		AddFavoriteHandler:      favoriteHandler.AddFavoriteHandler,
		RemoveFavoriteHandler:   favoriteHandler.RemoveFavoriteHandler,
		MigrateFavoritesHandler: favoriteHandler.MigrateFavoritesHandler,

		// Auth and profile endpoints.
		GoogleSignInHandler:    authHandler.GoogleSignInHandler,
		AnonymousSignInHandler: authHandler.AnonymousSignInHandler,
		OAuthCallbackHandler:   authHandler.OAuthCallbackHandler,
		SessionHandler:         authHandler.SessionHandler,
		SignOutHandler:         authHandler.SignOutHandler,
		UpdateProfileHandler:   authHandler.UpdateProfileHandler,

		// Admin endpoints.
		GetUserHandler:    userHandler.GetUserHandler,
		ListUsersHandler:  userHandler.ListUsersHandler,
		DeleteUserHandler: userHandler.DeleteUserHandler,
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	utils.StartHealthMonitor([]*redis.Client{
		utils.GetCacheClient(),
		utils.GetAuthCacheClient(),
		utils.GetKVClient(),
	}, database.MongoClient)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
