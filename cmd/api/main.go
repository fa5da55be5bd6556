package main

import (
	"log"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	_ "github.com/joho/godotenv/autoload"

	"restroomfinder/internal/database"
	"restroomfinder/internal/middleware"
	"restroomfinder/internal/modules/auth"
	"restroomfinder/internal/modules/chat"
	"restroomfinder/internal/modules/notification"
	"restroomfinder/internal/modules/payment"
	"restroomfinder/internal/modules/restroom"
	"restroomfinder/internal/modules/review"
	"restroomfinder/internal/modules/usage"
	jwtsvc "restroomfinder/internal/pkg/jwt"
	"restroomfinder/internal/repository"
)

func main() {
	dsn := envOrDefault("DATABASE_URL", "restroomfinder.db")
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		log.Fatal("JWT_SECRET is empty")
	}
	port := envOrDefault("PORT", "5002")

	db, err := database.Connect(dsn)
	if err != nil {
		log.Fatal(err)
	}
	if err := database.Migrate(db); err != nil {
		log.Fatal(err)
	}

	userRepo := repository.NewUserRepository(db)
	ownerRepo := repository.NewOwnerRepository(db)
	restroomRepo := repository.NewRestroomRepository(db)
	paymentRepo := repository.NewPaymentRepository(db)
	usageRepo := repository.NewUsageRepository(db)
	chatRepo := repository.NewChatRepository(db)
	notificationRepo := repository.NewNotificationRepository(db)
	reviewRepo := repository.NewReviewRepository(db)

	j := jwtsvc.New(secret, 24*time.Hour)

	authService := auth.NewService(userRepo, ownerRepo, j)
	authHandler := auth.NewHandler(authService)

	restroomService := restroom.NewService(restroomRepo, ownerRepo, reviewRepo)
	restroomHandler := restroom.NewHandler(restroomService)

	usageService := usage.NewService(userRepo, restroomRepo, usageRepo, paymentRepo, reviewRepo)
	usageHandler := usage.NewHandler(usageService)

	paymentService := payment.NewService(paymentRepo, restroomRepo, ownerRepo, notificationRepo)
	paymentHandler := payment.NewHandler(paymentService)

	chatHub := chat.NewHub()
	defer chatHub.Close()
	chatService := chat.NewService(chatRepo, chatHub)
	chatHandler := chat.NewHandler(chatService, chatHub)

	notificationService := notification.NewService(notificationRepo, restroomRepo, userRepo, ownerRepo)
	notificationHandler := notification.NewHandler(notificationService)

	reviewService := review.NewService(reviewRepo, restroomRepo, userRepo, notificationRepo)
	reviewHandler := review.NewHandler(reviewService)

	r := gin.Default()
	r.Use(middleware.CORS())
	r.Use(middleware.ErrorLogger())

	api := r.Group("/api")
	{
		authHandler.RegisterRoutes(api)
		restroomHandler.RegisterPublicRoutes(api)
		usageHandler.RegisterRoutes(api)
		paymentHandler.RegisterPublicRoutes(api)
		chatHandler.RegisterRoutes(api)
		notificationHandler.RegisterPublicRoutes(api)
		reviewHandler.RegisterRoutes(api)

		ownerGroup := api.Group("/owner")
		ownerGroup.Use(middleware.OwnerAuth(j))
		{
			restroomHandler.RegisterOwnerRoutes(ownerGroup)
			paymentHandler.RegisterOwnerRoutes(ownerGroup)
			notificationHandler.RegisterOwnerRoutes(ownerGroup)
		}
	}

	log.Printf("listening addr=:%s", port)
	if err := r.Run(":" + port); err != nil {
		log.Fatal(err)
	}
}

func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
