package app

import (
	"database/sql"
	"fmt"
	"log"
	"time"

	"dealpipeline/internal/config"
	"dealpipeline/internal/handlers"
	"dealpipeline/internal/middleware"
	"dealpipeline/internal/pdf"
	"dealpipeline/internal/repositories"
	"dealpipeline/internal/routes"
	"dealpipeline/internal/services"

	"github.com/gin-gonic/gin"
	_ "github.com/lib/pq"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "dealpipeline/docs"
)

func Run() {
	cfg := config.LoadConfig()

	if cfg.JWT.Secret != "" {
		middleware.JWTKey = []byte(cfg.JWT.Secret)
	}

	// === DB ===
	db, err := sql.Open("postgres", cfg.Database.DSN)
	if err != nil {
		log.Fatal("Failed to connect to database: ", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Printf("Failed to close database: %v", err)
		}
	}()
	if err := db.Ping(); err != nil {
		log.Fatal("Database unreachable: ", err)
	}

	// === Repos ===
	userRepo := repositories.NewUserRepository(db)
	dealRepo := repositories.NewDealRepository(db)
	voteRepo := repositories.NewVoteRepository(db)
	memoRepo := repositories.NewMemoRepository(db)
	activityRepo := repositories.NewActivityRepository(db)

	// === Services ===
	authService := services.NewAuthService(time.Duration(cfg.JWT.ExpireMinutes) * time.Minute)

	var emailService services.EmailService
	if cfg.Email.Enabled {
		emailService = services.NewEmailService(
			cfg.Email.SMTPHost,
			cfg.Email.SMTPPort,
			cfg.Email.SMTPUser,
			cfg.Email.SMTPPassword,
			cfg.Email.FromEmail,
		)
	}
	telegramService := services.NewTelegramService(cfg.Telegram.BotToken, cfg.Telegram.ChatID)

	userService := services.NewUserService(userRepo, authService, emailService)
	dealService := services.NewDealService(dealRepo)
	activityService := services.NewActivityService(activityRepo, dealRepo)
	voteService := services.NewVoteService(voteRepo, dealRepo, userRepo, emailService, telegramService)

	memoGen := pdf.NewMemoGenerator(cfg.Firm.Name)
	memoService := services.NewMemoService(memoRepo, dealRepo, memoGen)

	// === Handlers ===
	authHandler := handlers.NewAuthHandler(userService, authService)
	userHandler := handlers.NewUserHandler(userService)
	dealHandler := handlers.NewDealHandler(dealService)
	activityHandler := handlers.NewActivityHandler(activityService, voteService)
	memoHandler := handlers.NewMemoHandler(memoService)

	// === Gin ===
	router := gin.Default()
	router.Use(corsMiddleware())

	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "healthy"})
	})
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	routes.SetupRoutes(
		router,
		authHandler,
		userHandler,
		dealHandler,
		activityHandler,
		memoHandler,
	)

	// === Run ===
	listenAddr := fmt.Sprintf(":%d", cfg.Server.Port)
	log.Printf("Server listening on %s", listenAddr)
	if err := router.Run(listenAddr); err != nil {
		log.Fatal("Server failed: ", err)
	}
}

func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Origin, Content-Type, Authorization")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}
		c.Next()
	}
}
