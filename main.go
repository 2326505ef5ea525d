package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"toko/internal/app"
	"toko/internal/config"
	"toko/internal/logger"

	"github.com/spf13/viper"
	"github.com/streadway/amqp"
	"go.uber.org/zap"
)

func main() {
	// --- Configuration ---
	cfg, err := config.Load(viper.GetViper())
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// --- Logging ---
	flush, err := logger.Init(logger.Options{Mode: cfg.LogMode, Filename: cfg.LogFile})
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer flush()

	application, err := app.New(cfg)
	if err != nil {
		zap.L().Fatal("failed to initialize application", zap.Error(err))
	}

	if cfg.SeedProducts {
		application.SeedProducts()
	}

	// --- Product event consumer ---
	if application.MQ != nil {
		handler := func(msg amqp.Delivery) error {
			zap.L().Info("received product event",
				zap.String("routing_key", msg.RoutingKey),
				zap.Uint64("tag", msg.DeliveryTag),
				zap.ByteString("body", msg.Body))
			return nil
		}
		if err := application.MQ.ConsumeProductEvents(handler); err != nil {
			zap.L().Error("failed to start RabbitMQ consumer", zap.Error(err))
		}
	}

	// --- Start HTTP Server ---
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		zap.L().Info("starting server", zap.String("port", cfg.AppPort))
		if err := application.Fiber.Listen(cfg.AppPort); err != nil {
			zap.L().Fatal("server failed to start", zap.Error(err))
		}
	}()

	<-quit
	zap.L().Info("shutting down server")

	if err := application.Close(); err != nil {
		zap.L().Error("error during shutdown", zap.Error(err))
	}
	zap.L().Info("server gracefully stopped")
}
