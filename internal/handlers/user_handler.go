package handlers

import (
	"errors"
	"fmt"

	"toko/internal/models"
	"toko/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// UserHandler handles HTTP requests for user records.
type UserHandler struct {
	service  *services.UserService
	validate *validator.Validate
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(service *services.UserService) *UserHandler {
	return &UserHandler{
		service:  service,
		validate: validator.New(),
	}
}

// RegisterRoutes registers the user routes.
func (h *UserHandler) RegisterRoutes(router fiber.Router) {
	userRoutes := router.Group("/users")
	userRoutes.Get("/", h.HandleGetUsers)
	userRoutes.Get("/:id", h.HandleGetUserByID)
	userRoutes.Post("/", h.HandleCreateUser)
	userRoutes.Patch("/:id", h.HandleUpdateUser)
	userRoutes.Delete("/:id", h.HandleDeleteUser)
}

// HandleGetUsers retrieves all users.
func (h *UserHandler) HandleGetUsers(c *fiber.Ctx) error {
	users, err := h.service.GetAllUsers()
	if err != nil {
		return internalError(c, "Could not retrieve users", err)
	}
	return c.JSON(users)
}

// HandleGetUserByID retrieves a single user.
func (h *UserHandler) HandleGetUserByID(c *fiber.Ctx) error {
	user, err := h.service.GetUserByID(c.Params("id"))
	if err != nil {
		return h.writeError(c, "Could not retrieve user", err)
	}
	return c.JSON(user)
}

// HandleCreateUser creates a user record.
func (h *UserHandler) HandleCreateUser(c *fiber.Ctx) error {
	var input models.CreateUserInput
	if ok, err := parseAndValidate(c, h.validate, &input); !ok {
		return err
	}

	user, err := h.service.CreateUser(input)
	if err != nil {
		return h.writeError(c, "Could not create user", err)
	}
	return c.Status(fiber.StatusCreated).JSON(user)
}

// HandleUpdateUser applies a partial update to a user.
func (h *UserHandler) HandleUpdateUser(c *fiber.Ctx) error {
	var input models.UpdateUserInput
	if ok, err := parseAndValidate(c, h.validate, &input); !ok {
		return err
	}

	user, err := h.service.UpdateUser(c.Params("id"), input)
	if err != nil {
		return h.writeError(c, "Could not update user", err)
	}
	return c.JSON(user)
}

// HandleDeleteUser removes a user.
func (h *UserHandler) HandleDeleteUser(c *fiber.Ctx) error {
	userID := c.Params("id")
	if err := h.service.DeleteUser(userID); err != nil {
		return h.writeError(c, "Could not delete user", err)
	}
	return c.JSON(fiber.Map{
		"message": fmt.Sprintf("User %s deleted successfully", userID),
	})
}

func (h *UserHandler) writeError(c *fiber.Ctx, message string, err error) error {
	switch {
	case errors.Is(err, services.ErrUserNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"message": err.Error(),
		})
	case errors.Is(err, services.ErrEmailTaken):
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"message": message,
			"error":   err.Error(),
		})
	default:
		return internalError(c, message, err)
	}
}
