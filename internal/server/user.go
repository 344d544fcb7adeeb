package server

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/SaveJKP/mini-project-backend/internal/database/dto"
	"github.com/SaveJKP/mini-project-backend/internal/database/models"
	"github.com/SaveJKP/mini-project-backend/internal/database/repositories"
	"github.com/SaveJKP/mini-project-backend/internal/utils"
)

func (s *FiberServer) register(c *fiber.Ctx) error {
	req := dto.RegisterRequest{}
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := s.validate.Struct(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "A valid email and a password are required")
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		return err
	}
	user := models.User{
		FullName: req.FullName,
		Email:    req.Email,
		Password: hash,
	}
	if err := s.users.Create(c.Context(), &user); err != nil {
		if errors.Is(err, repositories.ErrDuplicateEmail) {
			return fiber.NewError(fiber.StatusConflict, "Email already registered")
		}
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"error":   false,
		"user":    user,
		"message": "User registered successfully",
	})
}

func (s *FiberServer) login(c *fiber.Ctx) error {
	credentials := dto.LoginCredentials{}
	if err := c.BodyParser(&credentials); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := s.validate.Struct(&credentials); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Email and password are required")
	}

	user, err := s.users.GetByEmail(c.Context(), credentials.Email)
	if err != nil && !errors.Is(err, repositories.ErrNotFound) {
		return err
	}
	// One undifferentiated failure for unknown email and wrong password.
	if err != nil || !utils.CheckPasswordHash(credentials.Password, user.Password) {
		return fiber.NewError(fiber.StatusUnauthorized, "Invalid credentials")
	}

	if err := s.issueSession(c, user.ID); err != nil {
		return err
	}
	return c.JSON(fiber.Map{
		"error":   false,
		"user":    user,
		"message": "Login successful",
	})
}

func (s *FiberServer) logout(c *fiber.Ctx) error {
	clearSession(c)
	return c.JSON(fiber.Map{
		"error":   false,
		"message": "Logged out successfully",
	})
}

func (s *FiberServer) profile(c *fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}
	user, err := s.users.GetByID(c.Context(), userID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "User not found")
		}
		return err
	}
	return c.JSON(fiber.Map{
		"error":   false,
		"user":    user,
		"message": "Profile retrieved successfully",
	})
}

func (s *FiberServer) publicProfile(c *fiber.Ctx) error {
	userID, err := uuid.Parse(c.Params("userId"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid user ID")
	}
	user, err := s.users.GetByID(c.Context(), userID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "User not found")
		}
		return err
	}
	return c.JSON(fiber.Map{
		"error": false,
		"user": dto.PublicProfile{
			ID:       user.ID,
			FullName: user.FullName,
		},
	})
}
