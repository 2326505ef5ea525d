package handlers

import (
	"strconv"

	"toko/internal/services"

	"github.com/gofiber/fiber/v2"
)

// FizzBuzzHandler serves the fizzbuzz classification endpoint.
type FizzBuzzHandler struct {
	service *services.FizzBuzzService
}

// NewFizzBuzzHandler creates a new FizzBuzzHandler.
func NewFizzBuzzHandler(service *services.FizzBuzzService) *FizzBuzzHandler {
	return &FizzBuzzHandler{service: service}
}

// RegisterRoutes registers the fizzbuzz route.
func (h *FizzBuzzHandler) RegisterRoutes(router fiber.Router) {
	router.Get("/fizzbuzz/:number", h.HandleFizzBuzz)
}

// HandleFizzBuzz returns the fizzbuzz word for the number in the path.
func (h *FizzBuzzHandler) HandleFizzBuzz(c *fiber.Ctx) error {
	n, err := strconv.Atoi(c.Params("number"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "number must be an integer",
			"error":   err.Error(),
		})
	}
	return c.SendString(h.service.FizzBuzz(n))
}
