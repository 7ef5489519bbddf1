package handlers

import (
	"errors"

	"github.com/ahmetcoskunkizilkaya/uikit-market/internal/dto"
	"github.com/ahmetcoskunkizilkaya/uikit-market/internal/middleware"
	"github.com/ahmetcoskunkizilkaya/uikit-market/internal/services"
	"github.com/gofiber/fiber/v2"
)

type AuthHandler struct {
	authService *services.AuthService
}

func NewAuthHandler(authService *services.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var req dto.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if err := dto.Validate(&req); err != nil {
		return badRequest(c, err.Error())
	}

	resp, err := h.authService.Register(c.UserContext(), &req)
	if err != nil {
		if errors.Is(err, services.ErrEmailTaken) {
			return respond(c, fiber.StatusConflict, err.Error())
		}
		return badRequest(c, err.Error())
	}
	return c.Status(fiber.StatusCreated).JSON(resp)
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if err := dto.Validate(&req); err != nil {
		return badRequest(c, err.Error())
	}

	resp, err := h.authService.Login(c.UserContext(), &req)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidCredentials):
			return respond(c, fiber.StatusUnauthorized, err.Error())
		case errors.Is(err, services.ErrAccountSuspended):
			return respond(c, fiber.StatusForbidden, err.Error())
		}
		return respond(c, fiber.StatusInternalServerError, "Internal server error")
	}
	return c.JSON(resp)
}

func (h *AuthHandler) GoogleSignIn(c *fiber.Ctx) error {
	var req dto.GoogleSignInRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if err := dto.Validate(&req); err != nil {
		return badRequest(c, err.Error())
	}

	resp, err := h.authService.GoogleSignIn(c.UserContext(), req.GoogleID, req.Email, req.FullName)
	if err != nil {
		if errors.Is(err, services.ErrAccountSuspended) {
			return respond(c, fiber.StatusForbidden, err.Error())
		}
		return respond(c, fiber.StatusInternalServerError, "Internal server error")
	}
	return c.JSON(resp)
}

func (h *AuthHandler) RequestOtp(c *fiber.Ctx) error {
	var req dto.OtpRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if err := dto.Validate(&req); err != nil {
		return badRequest(c, err.Error())
	}

	if err := h.authService.RequestOtp(c.UserContext(), req.Email); err != nil {
		return respond(c, fiber.StatusInternalServerError, "Failed to send verification code")
	}
	return c.JSON(fiber.Map{"sent": true})
}

func (h *AuthHandler) VerifyOtp(c *fiber.Ctx) error {
	var req dto.OtpVerifyRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if err := dto.Validate(&req); err != nil {
		return badRequest(c, err.Error())
	}

	resp, err := h.authService.VerifyOtp(c.UserContext(), req.Email, req.Code)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrOtpMismatch), errors.Is(err, services.ErrOtpExpired):
			return respond(c, fiber.StatusUnauthorized, err.Error())
		}
		return respond(c, fiber.StatusInternalServerError, "Internal server error")
	}
	if resp == nil {
		// Verified but no account yet; the client proceeds to register.
		return c.JSON(fiber.Map{"verified": true})
	}
	return c.JSON(resp)
}

func (h *AuthHandler) Refresh(c *fiber.Ctx) error {
	var req dto.RefreshRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if err := dto.Validate(&req); err != nil {
		return badRequest(c, err.Error())
	}

	resp, err := h.authService.Refresh(c.UserContext(), req.RefreshToken)
	if err != nil {
		if errors.Is(err, services.ErrInvalidToken) {
			return respond(c, fiber.StatusUnauthorized, err.Error())
		}
		return respond(c, fiber.StatusInternalServerError, "Internal server error")
	}
	return c.JSON(resp)
}

func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	var req dto.LogoutRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if err := h.authService.Logout(c.UserContext(), req.RefreshToken); err != nil {
		return respond(c, fiber.StatusInternalServerError, "Internal server error")
	}
	return c.JSON(fiber.Map{"logged_out": true})
}

func (h *AuthHandler) DeleteAccount(c *fiber.Ctx) error {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		return respond(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	var req dto.DeleteAccountRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	if err := h.authService.DeleteAccount(c.UserContext(), userID, req.Password); err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidCredentials):
			return respond(c, fiber.StatusUnauthorized, err.Error())
		case errors.Is(err, services.ErrUserNotFound):
			return respond(c, fiber.StatusNotFound, err.Error())
		}
		return respond(c, fiber.StatusInternalServerError, "Internal server error")
	}
	return c.JSON(fiber.Map{"deleted": true})
}
