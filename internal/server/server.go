package server

import (
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/dresslab/dresslab-api/internal/config"
	"github.com/dresslab/dresslab-api/internal/handler"
	"github.com/dresslab/dresslab-api/internal/middleware"
	"github.com/dresslab/dresslab-api/internal/repository"
	"github.com/dresslab/dresslab-api/internal/service"
	"github.com/dresslab/dresslab-api/pkg/genimage"
	"github.com/dresslab/dresslab-api/pkg/storage"
)

type Server struct {
	engine *gin.Engine
	db     *gorm.DB
	rdb    *redis.Client
}

func NewServer(db *gorm.DB, rdb *redis.Client, cfg *config.Config) *Server {
	accountRepo := repository.NewAccountRepository(db)
	bodyRepo := repository.NewBodyProfileRepository(db)
	designRepo := repository.NewDesignRepository(db)
	conversationRepo := repository.NewConversationRepository(db)

	var imageStorage storage.ImageStorage
	if cfg.CloudinaryCloudName != "" || cfg.CloudinaryAPIKey != "" {
		var err error
		imageStorage, err = storage.NewCloudinaryStorage()
		if err != nil {
			log.Fatalf("failed to initialize cloudinary storage: %v", err)
		}
	}

	var generator genimage.ImageGenerator
	if cfg.GoogleAPIKey != "" {
		generator = genimage.NewGemini(cfg.GoogleAPIKey, cfg.GeminiModel)
	}

	authSvc := service.NewAuthService(accountRepo, cfg.JWTSecret, cfg.JWTTTL)
	authHandler := handler.NewAuthHandler(authSvc)

	accountSvc := service.NewAccountService(accountRepo)
	accountHandler := handler.NewAccountHandler(accountSvc)

	bodySvc := service.NewBodyProfileService(bodyRepo)
	bodyHandler := handler.NewBodyProfileHandler(bodySvc)

	profileSvc := service.NewProfileService(accountRepo, bodyRepo)
	profileHandler := handler.NewProfileHandler(profileSvc, bodySvc, accountSvc)

	designSvc := service.NewDesignService(designRepo)
	designHandler := handler.NewDesignHandler(designSvc)

	conversationSvc := service.NewConversationService(conversationRepo)
	conversationHandler := handler.NewConversationHandler(conversationSvc)

	imageSvc := service.NewImageService(generator, imageStorage, designSvc, rdb, cfg.RateLimitGenerate, cfg.CloudinaryUploadFolder)
	imageHandler := handler.NewImageHandler(imageSvc)

	router := gin.New()

	setupCORS(router, cfg.AllowedOrigins)

	router.Use(gin.Recovery())
	router.Use(gin.Logger())

	authMiddleware := middleware.NewAuthMiddleware(cfg.JWTSecret)

	api := router.Group("/api")

	api.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Public routes (no auth required)
	auth := api.Group("/auth")
	{
		auth.POST("/signup", authHandler.Signup)
		auth.POST("/signin", authHandler.Signin)
	}

	// Protected routes
	protected := api.Group("")
	protected.Use(authMiddleware.RequireAuth())
	{
		protected.GET("/auth/verify", authHandler.Verify)

		// Account routes
		protected.GET("/accounts/profile", accountHandler.GetProfile)
		protected.PUT("/accounts/profile", accountHandler.UpdateProfile)
		protected.DELETE("/accounts/delete", accountHandler.DeleteAccount)

		// Body profile routes
		protected.GET("/body-profiles", bodyHandler.Get)
		protected.POST("/body-profiles", bodyHandler.Save)

		// Combined profile routes
		profiles := protected.Group("/profiles")
		{
			profiles.GET("/me", profileHandler.GetProfile)
			profiles.PUT("/me", profileHandler.UpdateProfile)
			profiles.PATCH("/me", profileHandler.UpdateProfile)
			profiles.DELETE("/me", profileHandler.DeleteProfile)

			profiles.GET("/me/body", profileHandler.GetBody)
			profiles.PUT("/me/body", profileHandler.UpdateBody)
			profiles.PATCH("/me/body", profileHandler.UpdateBody)
			profiles.DELETE("/me/body", profileHandler.ResetBody)

			profiles.GET("/:account_id", profileHandler.GetProfile)
			profiles.PUT("/:account_id", profileHandler.UpdateProfile)
			profiles.PATCH("/:account_id", profileHandler.UpdateProfile)
			profiles.DELETE("/:account_id", profileHandler.DeleteProfile)
		}

		// Design routes; /gown-designs is a legacy alias over the same handlers
		for _, prefix := range []string{"/designs", "/gown-designs"} {
			designs := protected.Group(prefix)
			{
				designs.GET("", designHandler.List)
				designs.POST("", designHandler.Create)
				designs.POST("/generate-image", imageHandler.GenerateImage)
				designs.GET("/:design_id", designHandler.Get)
				designs.PUT("/:design_id", designHandler.Update)
				designs.DELETE("/:design_id", designHandler.Delete)
			}
		}

		// AI routes
		ai := protected.Group("/ai")
		{
			ai.POST("/generate-image", imageHandler.GenerateImage)
			ai.POST("/generate-image-text", imageHandler.GenerateImageText)
		}

		// Conversation routes
		conversations := protected.Group("/conversations")
		{
			conversations.GET("", conversationHandler.List)
			conversations.POST("", conversationHandler.Create)
			conversations.GET("/:conversation_id", conversationHandler.Get)
			conversations.DELETE("/:conversation_id", conversationHandler.Delete)
			conversations.POST("/:conversation_id/messages", conversationHandler.AddMessage)
		}
	}

	return &Server{
		engine: router,
		db:     db,
		rdb:    rdb,
	}
}

func (s *Server) Run(addr string) error {
	return s.engine.Run(addr)
}

func setupCORS(router *gin.Engine, allowedOrigins string) {
	var origins []string
	if allowedOrigins != "" {
		origins = strings.Split(allowedOrigins, ",")
	} else {
		origins = []string{"http://localhost:3000"}
	}

	router.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "HEAD", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
}
