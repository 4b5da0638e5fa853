package handlers

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"

	"github.com/Sehar1999/applicant-tracking-system/internal/models"
	"github.com/Sehar1999/applicant-tracking-system/internal/repositories"
	"github.com/Sehar1999/applicant-tracking-system/internal/services"
)

type AuthHandler struct {
	userRepo     repositories.UserRepository
	tokenService services.TokenService
}

func NewAuthHandler(
	userRepo repositories.UserRepository,
	tokenService services.TokenService,
) *AuthHandler {
	return &AuthHandler{
		userRepo:     userRepo,
		tokenService: tokenService,
	}
}

// HandleSignup handles POST /api/auth/signup
func (h *AuthHandler) HandleSignup(c *fiber.Ctx) error {
	var req models.SignupRequest
	if err := c.BodyParser(&req); err != nil {
		return fail(c, fiber.StatusBadRequest, "Invalid request payload")
	}

	if req.Email == "" || req.Password == "" || req.Role == "" {
		return fail(c, fiber.StatusBadRequest, "Email, password, and role are required")
	}

	if !validateEmail(req.Email) {
		return fail(c, fiber.StatusBadRequest, "Invalid email")
	}

	if err := validatePassword(req.Password); err != nil {
		return fail(c, fiber.StatusBadRequest, err.Error())
	}

	if req.Role != models.RoleRecruiter && req.Role != models.RoleApplicant {
		return fail(c, fiber.StatusBadRequest, "Invalid role. Must be Recruiter or Applicant")
	}

	if _, err := h.userRepo.FindByEmail(req.Email); err == nil {
		return fail(c, fiber.StatusConflict, "User with this email already exists")
	}

	role, err := h.userRepo.FindRoleByName(req.Role)
	if err != nil {
		return fail(c, fiber.StatusBadRequest, "Invalid role")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return fail(c, fiber.StatusInternalServerError, "Internal server error")
	}

	var name *string
	if trimmed := strings.TrimSpace(req.Name); trimmed != "" {
		name = &trimmed
	}

	user := &models.User{
		Name:         name,
		Email:        req.Email,
		PasswordHash: string(hash),
		RoleID:       role.ID,
	}
	if err := h.userRepo.Create(user); err != nil {
		return fail(c, fiber.StatusInternalServerError, "Internal server error")
	}

	token, err := h.tokenService.Sign(user)
	if err != nil {
		return fail(c, fiber.StatusInternalServerError, "Internal server error")
	}

	return c.Status(fiber.StatusCreated).JSON(models.APIResponse{
		Success: true,
		Message: "User created successfully",
		Data: models.AuthData{
			User: models.AuthUser{
				ID:    user.ID,
				Name:  user.Name,
				Email: user.Email,
				Role:  role.Name,
			},
			AccessToken: token,
		},
	})
}

// HandleLogin handles POST /api/auth/login
func (h *AuthHandler) HandleLogin(c *fiber.Ctx) error {
	var req models.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return fail(c, fiber.StatusBadRequest, "Invalid request payload")
	}

	if req.Email == "" || req.Password == "" {
		return fail(c, fiber.StatusBadRequest, "Email and password are required")
	}

	if !validateEmail(req.Email) {
		return fail(c, fiber.StatusBadRequest, "Invalid email format")
	}

	user, err := h.userRepo.FindByEmail(req.Email)
	if err != nil {
		return fail(c, fiber.StatusUnauthorized, "Invalid credentials")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return fail(c, fiber.StatusUnauthorized, "Invalid credentials")
	}

	token, err := h.tokenService.Sign(user)
	if err != nil {
		return fail(c, fiber.StatusInternalServerError, "Internal server error")
	}

	return c.JSON(models.APIResponse{
		Success: true,
		Message: "Login successful",
		Data: models.AuthData{
			User: models.AuthUser{
				ID:    user.ID,
				Name:  user.Name,
				Email: user.Email,
				Role:  user.Role.Name,
			},
			AccessToken: token,
		},
	})
}

func fail(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(models.APIResponse{
		Success: false,
		Message: message,
	})
}
