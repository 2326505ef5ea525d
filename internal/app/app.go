package app

import (
	"errors"
	"fmt"
	"time"

	"toko/internal/catalog"
	"toko/internal/config"
	"toko/internal/database"
	"toko/internal/handlers"
	"toko/internal/models"
	"toko/internal/repositories"
	"toko/internal/services"
	"toko/pkg/rabbitmq"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Application bundles the HTTP server with the services and resources it
// depends on.
type Application struct {
	Fiber    *fiber.App
	Products *services.ProductService
	Users    *services.UserService
	MQ       *rabbitmq.Client // nil when messaging is disabled

	db *gorm.DB
}

// New wires repositories, services and handlers according to cfg.
func New(cfg *config.Config) (*Application, error) {
	a := &Application{}

	var productRepo repositories.ProductRepository
	var userRepo repositories.UserRepository
	if cfg.DatabaseDriver == config.DriverMemory {
		productRepo = repositories.NewInMemoryProductRepository()
		userRepo = repositories.NewInMemoryUserRepository()
	} else {
		db, err := database.Open(cfg.DatabaseDriver, cfg.DatabaseDSN)
		if err != nil {
			return nil, err
		}
		a.db = db
		productRepo = repositories.NewGORMProductRepository(db)
		userRepo = repositories.NewGORMUserRepository(db)
	}

	var publisher services.EventPublisher = services.NopPublisher{}
	if cfg.RabbitMQEnabled {
		mqClient, err := rabbitmq.NewClient(rabbitmq.Config{
			URL:      cfg.RabbitMQURL,
			Exchange: cfg.RabbitMQExchange,
			Queue:    cfg.RabbitMQQueue,
		})
		if err != nil {
			a.Close()
			return nil, fmt.Errorf("failed to initialize RabbitMQ client: %w", err)
		}
		a.MQ = mqClient
		publisher = mqClient
	}

	pipeline := catalog.NewPipeline(catalog.DefaultRules())
	a.Products = services.NewProductService(productRepo, pipeline, catalog.NewSkuGenerator(nil), publisher)
	a.Users = services.NewUserService(userRepo)

	a.Fiber = newFiberApp(a.Products, a.Users, services.NewFizzBuzzService(), a.MQ != nil)
	return a, nil
}

func newFiberApp(products *services.ProductService, users *services.UserService, fizzbuzz *services.FizzBuzzService, mqConnected bool) *fiber.App {
	app := fiber.New()

	app.Use(recover.New())
	app.Use(logger.New())

	apiV1 := app.Group("/api/v1")
	handlers.NewProductHandler(products).RegisterRoutes(apiV1)
	handlers.NewUserHandler(users).RegisterRoutes(apiV1)
	handlers.NewFizzBuzzHandler(fizzbuzz).RegisterRoutes(apiV1)

	app.Get("/health", func(c *fiber.Ctx) error {
		mqStatus := "disabled"
		if mqConnected {
			mqStatus = "connected"
		}
		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"status":   "healthy",
			"time":     time.Now().Format(time.RFC3339),
			"rabbitMQ": mqStatus,
		})
	})

	return app
}

// SeedProducts admits a few demo products through the product service, so
// seeded rows carry SKUs and stock discounts like any other.
func (a *Application) SeedProducts() {
	stock := func(n int) *int { return &n }
	inputs := []models.CreateProductInput{
		{Name: "Laptop", Description: "High performance laptop", Price: 1200.00, Stock: stock(10), Category: "electronics"},
		{Name: "Mechanical Keyboard", Description: "Mechanical keyboard", Price: 75.00, Stock: stock(150), Category: "electronics"},
		{Name: "Paperback Novel", Description: "Bestselling novel", Price: 12.50, Stock: stock(600), Category: "books"},
	}
	for _, in := range inputs {
		p, err := a.Products.CreateProduct(in)
		if err != nil {
			zap.L().Warn("error seeding product", zap.String("name", in.Name), zap.Error(err))
			continue
		}
		zap.L().Info("seeded product", zap.String("name", p.Name), zap.String("id", p.ID), zap.String("sku", p.SKU))
	}
}

// Close shuts down the HTTP server and releases the broker and database
// connections.
func (a *Application) Close() error {
	var errs []error
	if a.Fiber != nil {
		if err := a.Fiber.Shutdown(); err != nil {
			errs = append(errs, fmt.Errorf("fiber shutdown: %w", err))
		}
	}
	if a.MQ != nil {
		if err := a.MQ.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	if a.db != nil {
		if err := database.Close(a.db); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
