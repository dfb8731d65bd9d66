package handlers

import (
	"errors"
	"reflect"
	"strings"

	"inventory/internal/models"
	"inventory/internal/services"
	"inventory/pkg/logger"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// AuthHandler handles HTTP requests for authentication.
type AuthHandler struct {
	authService *services.AuthService
	validate    *validator.Validate
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(authService *services.AuthService) *AuthHandler {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		return strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
	})
	return &AuthHandler{
		authService: authService,
		validate:    v,
	}
}

// RegisterRoutes registers the authentication routes with the Fiber app.
func (h *AuthHandler) RegisterRoutes(router fiber.Router) {
	authRoutes := router.Group("/auth")
	authRoutes.Post("/register", h.HandleRegister)
	authRoutes.Post("/login", h.HandleLogin)
}

// HandleRegister handles new user registration.
func (h *AuthHandler) HandleRegister(c *fiber.Ctx) error {
	var user models.User
	if err := c.BodyParser(&user); err != nil {
		return invalidBody()
	}
	user.ID = ""
	if errs := h.fieldErrors(user); errs != nil {
		return invalid(errs)
	}

	ctx := c.UserContext()
	if err := h.authService.RegisterUser(ctx, &user); err != nil {
		var be *services.BusinessError
		if errors.As(err, &be) {
			logger.Info(ctx).Str("username", user.Username).Msg(be.Message)
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": be.Message})
		}
		return failed("registering user", err)
	}

	// For security, do not return the password hash
	user.Password = ""
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "User registered successfully",
		"user":    user,
	})
}

// LoginRequest represents the request body for login.
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// HandleLogin handles user login and issues a JWT token.
func (h *AuthHandler) HandleLogin(c *fiber.Ctx) error {
	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return invalidBody()
	}
	if errs := h.fieldErrors(req); errs != nil {
		return invalid(errs)
	}

	ctx := c.UserContext()
	token, err := h.authService.LoginUser(ctx, req.Username, req.Password)
	if errors.Is(err, services.ErrInvalidCredentials) {
		logger.Info(ctx).Str("username", req.Username).Msg("login rejected")
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Authentication failed"})
	}
	if err != nil {
		return failed("logging in", err)
	}

	return c.JSON(fiber.Map{
		"message": "Login successful",
		"token":   token,
	})
}

func (h *AuthHandler) fieldErrors(s interface{}) map[string]string {
	err := h.validate.Struct(s)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return map[string]string{"body": err.Error()}
	}
	errs := make(map[string]string, len(verrs))
	for _, e := range verrs {
		errs[e.Field()] = "Field '" + e.Field() + "' failed on the '" + e.Tag() + "' tag"
	}
	return errs
}
