package main

import (
	"log"

	"github.com/gin-gonic/gin"

	"github.com/quickbank/quickbank/internal/config"
	"github.com/quickbank/quickbank/internal/events"
	"github.com/quickbank/quickbank/internal/handler"
	"github.com/quickbank/quickbank/internal/middleware"
	"github.com/quickbank/quickbank/internal/models"
	"github.com/quickbank/quickbank/internal/server"
	"github.com/quickbank/quickbank/internal/service"
	"github.com/quickbank/quickbank/internal/storage"
)

func main() {
	cfg := config.Load()
	if cfg.JWTSecret == "" {
		log.Fatal("JWT_SECRET environment variable is not set")
	}
	secret := []byte(cfg.JWTSecret)

	// Events are optional: without Redis the server runs, it just doesn't
	// publish.
	var publisher *events.Publisher
	if cfg.RedisAddr != "" {
		rdb, err := storage.NewRedisClient(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
		if err != nil {
			log.Fatalf("Failed to connect to redis: %v", err)
		}
		defer rdb.Close()
		publisher = events.NewPublisher(rdb)
	}

	users := server.NewUserStore()
	if err := users.Seed(models.User{
		ID:        "1",
		FirstName: "John",
		LastName:  "Doe",
		Email:     "john.doe@example.com",
	}, "Quickbank1"); err != nil {
		log.Fatalf("Failed to seed user store: %v", err)
	}

	authSvc := server.NewAuthServer(users, secret, publisher)
	transferSvc := server.NewTransferServer(service.MockTransferService{}, publisher)

	authHandler := handler.NewAuthHandler(authSvc)
	moneyHandler := handler.NewMoneyHandler(
		service.MockTransactionService{},
		service.MockRecipientService{},
		service.MockWalletService{},
		transferSvc,
	)

	router := gin.Default()
	router.Use(middleware.LoggingMiddleware())

	v1 := router.Group("/v1")
	{
		auth := v1.Group("/auth")
		auth.POST("/login", authHandler.Login)
		auth.POST("/signup", authHandler.Signup)
		auth.POST("/logout", middleware.AuthMiddleware(secret), authHandler.Logout)

		authed := v1.Group("", middleware.AuthMiddleware(secret))
		authed.GET("/transactions", moneyHandler.GetTransactions)
		authed.GET("/recipients", moneyHandler.GetRecipients)
		authed.GET("/wallet/balance", moneyHandler.GetBalance)
		authed.POST("/send-money", moneyHandler.SendMoney)
	}

	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	log.Printf("QuickBank server starting on port %s", cfg.Port)
	if err := router.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
