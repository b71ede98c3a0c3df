package main

import (
	"microshop/internal/config"
	"microshop/internal/database"
	"microshop/internal/handlers"
	"microshop/internal/models"
	"microshop/internal/repositories"
	"microshop/internal/server"
	"microshop/internal/services"
	"microshop/pkg/logger"
	"microshop/pkg/rabbitmq"
)

func main() {
	cfg := config.Load(":8083")
	log := logger.New("orders", cfg.Env)

	db, err := database.Open(cfg)
	if err != nil {
		log.WithError(err).Fatal("failed to connect to database")
	}
	if err := db.AutoMigrate(&models.Order{}, &models.OrderItem{}); err != nil {
		log.WithError(err).Fatal("failed to migrate database")
	}

	var mq *rabbitmq.Client
	if cfg.RabbitMQURL != "" {
		mq, err = rabbitmq.NewClient(rabbitmq.Config{URL: cfg.RabbitMQURL})
		if err != nil {
			log.WithError(err).Fatal("failed to connect to rabbitmq")
		}
		defer mq.Close()
	} else {
		log.Info("rabbitmq not configured, order events disabled")
	}

	repo := repositories.NewOrderRepository(db)
	service := services.NewOrderService(repo, mq, log)
	handler := handlers.NewOrderHandler(service, log)

	app := server.NewApp("orders")
	handler.RegisterRoutes(app.Group("/api/v1"))

	server.Run(app, cfg.Port, log)
}
