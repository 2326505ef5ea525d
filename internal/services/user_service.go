package services

import (
	"errors"
	"fmt"
	"strings"

	"toko/internal/models"
	"toko/internal/repositories"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

var (
	// ErrUserNotFound is returned when no user exists for an ID.
	ErrUserNotFound = errors.New("user not found")
	// ErrEmailTaken is returned when another user already owns the email.
	ErrEmailTaken = errors.New("email already registered")
)

// UserService handles user account records.
type UserService struct {
	repo repositories.UserRepository
}

// NewUserService creates a new UserService.
func NewUserService(repo repositories.UserRepository) *UserService {
	return &UserService{
		repo: repo,
	}
}

// GetAllUsers retrieves all users, newest first.
func (s *UserService) GetAllUsers() ([]models.User, error) {
	return s.repo.GetAll()
}

// GetUserByID retrieves a single user.
func (s *UserService) GetUserByID(id string) (*models.User, error) {
	user, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, fmt.Errorf("%w: user with ID %s not found", ErrUserNotFound, id)
		}
		return nil, err
	}
	return user, nil
}

// CreateUser stores a new user. The password, when given, is stored as a
// bcrypt hash.
func (s *UserService) CreateUser(input models.CreateUserInput) (*models.User, error) {
	email := strings.ToLower(strings.TrimSpace(input.Email))
	if err := s.ensureEmailFree(email, ""); err != nil {
		return nil, err
	}

	user := &models.User{
		Name:     input.Name,
		Email:    email,
		Phone:    input.Phone,
		IsActive: true,
	}
	if input.Password != "" {
		hash, err := hashPassword(input.Password)
		if err != nil {
			return nil, err
		}
		user.Password = hash
	}

	if err := s.repo.Create(user); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}
	zap.L().Info("user created", zap.String("id", user.ID))
	return user, nil
}

// UpdateUser applies a partial update to an existing user.
func (s *UserService) UpdateUser(id string, input models.UpdateUserInput) (*models.User, error) {
	user, err := s.GetUserByID(id)
	if err != nil {
		return nil, err
	}

	if input.Email != nil {
		email := strings.ToLower(strings.TrimSpace(*input.Email))
		if err := s.ensureEmailFree(email, id); err != nil {
			return nil, err
		}
		user.Email = email
	}
	if input.Name != nil {
		user.Name = *input.Name
	}
	if input.Phone != nil {
		user.Phone = *input.Phone
	}
	if input.IsActive != nil {
		user.IsActive = *input.IsActive
	}
	if input.Password != nil {
		hash, err := hashPassword(*input.Password)
		if err != nil {
			return nil, err
		}
		user.Password = hash
	}

	if err := s.repo.Update(user); err != nil {
		return nil, fmt.Errorf("failed to update user %s: %w", id, err)
	}
	return user, nil
}

// DeleteUser removes a user after confirming it exists.
func (s *UserService) DeleteUser(id string) error {
	if _, err := s.GetUserByID(id); err != nil {
		return err
	}
	if err := s.repo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete user %s: %w", id, err)
	}
	return nil
}

// CheckPassword reports whether password matches the stored hash.
func (s *UserService) CheckPassword(user *models.User, password string) bool {
	if user.Password == "" {
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)) == nil
}

func (s *UserService) ensureEmailFree(email, ownerID string) error {
	existing, err := s.repo.GetByEmail(email)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil
		}
		return fmt.Errorf("failed to check email %s: %w", email, err)
	}
	if existing.ID != ownerID {
		return fmt.Errorf("%w: '%s'", ErrEmailTaken, email)
	}
	return nil
}

func hashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hash), nil
}
