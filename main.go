package main

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/vpnkmr17/Order-Microservice/configs"
	"github.com/vpnkmr17/Order-Microservice/internal/db"
	"github.com/vpnkmr17/Order-Microservice/internal/handlers"
)

func main() {

	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	logger, _ := zap.NewProduction()
	defer logger.Sync()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	conn, err := db.Connect(cfg)
	if err != nil {
		logger.Fatal("Failed to connect to DB", zap.Error(err))
	}

	orderHandler := handlers.NewOrderHandler(conn, logger)

	r := gin.New()
	r.Use(gin.Recovery())

	r.GET("/", func(c *gin.Context) { c.String(http.StatusOK, "Order Management API") })

	api := r.Group("/api/v1")
	{
		api.GET("/orders", orderHandler.ListOrders)
		api.GET("/orders/:order_number", orderHandler.GetOrderByNumber)
		api.POST("/orders", orderHandler.CreateOrder)
	}

	logger.Info("Starting server", zap.String("port", cfg.Port))

	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Fatal("Server stopped", zap.Error(err))
	}
}
