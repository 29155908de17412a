package http

import (
	"time"

	"github.com/gin-gonic/gin"

	appsvc "gopherfeed/internal/app"
	"gopherfeed/internal/bootstrap"
	"gopherfeed/internal/cache"
	"gopherfeed/internal/platform/rabbitmq"
	"gopherfeed/internal/repository"
	"gopherfeed/internal/transport/http/handler"
	"gopherfeed/internal/transport/http/middleware"
)

func NewRouter(app *bootstrap.App) *gin.Engine {
	gin.SetMode(app.Config.App.GinMode)
	router := gin.New()
	router.Use(gin.Logger(), gin.Recovery())

	healthHandler := handler.NewHealthHandler(app)
	router.GET("/healthz", healthHandler.Check)

	userRepo := repository.NewUserRepository(app.MySQL)
	postRepo := repository.NewPostRepository(app.MySQL)
	feedCache := cache.NewFeedCache(app.Redis, time.Duration(app.Config.Redis.FeedTTLSeconds)*time.Second)
	publisher := rabbitmq.NewActivityPublisher(app.MQConn, app.Config.RabbitMQ.ActivityQueue)

	authService := appsvc.NewAuthService(
		userRepo,
		app.Config.Auth.JWTSecret,
		time.Duration(app.Config.Auth.TokenTTLHour)*time.Hour,
	)
	postService := appsvc.NewPostService(postRepo, feedCache, publisher)

	registerAPIRoutes(router, app.Config.Auth.JWTSecret, handler.NewAuthHandler(authService), handler.NewPostHandler(postService))
	return router
}

// registerAPIRoutes is split out so the API surface can be exercised in
// tests without a full bootstrap behind it. The exact paths are part of
// the wire contract.
func registerAPIRoutes(router *gin.Engine, secret string, authHandler *handler.AuthHandler, postHandler *handler.PostHandler) {
	router.GET("/", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "Social Media API is running"})
	})

	api := router.Group("/api")

	authGroup := api.Group("/auth")
	authGroup.POST("/signup", authHandler.Signup)
	authGroup.POST("/login", authHandler.Login)
	authGroup.GET("/verify", middleware.Auth(secret), authHandler.Verify)

	posts := api.Group("/posts")
	posts.GET("", postHandler.List)
	posts.POST("", middleware.Auth(secret), postHandler.Create)
	posts.DELETE("/:id", middleware.Auth(secret), postHandler.Delete)
}
