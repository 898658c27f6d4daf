package middleware

import (
	"errors"
	"strings"
	"time"

	"fleetcheck/internal/apperrors"
	"fleetcheck/internal/auth"
	"fleetcheck/internal/logger"
	. "fleetcheck/internal/models"
	"fleetcheck/internal/repositories"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

const identityLocal = "identity"

type Middleware struct {
	authService *auth.Service
	driverRepo  repositories.DriverRepository
	adminRepo   repositories.AdminRepository
	log         logger.Logger
}

func New(
	authService *auth.Service,
	driverRepo repositories.DriverRepository,
	adminRepo repositories.AdminRepository,
) Middleware {
	return Middleware{
		authService: authService,
		driverRepo:  driverRepo,
		adminRepo:   adminRepo,
		log:         logger.New("middleware"),
	}
}

// Protect validates the bearer token, re-resolves the identity from the
// store (a token for a deleted account is rejected) and attaches the
// minimal identity for downstream handlers.
func (m Middleware) Protect() fiber.Handler {
	return func(c *fiber.Ctx) error {
		header := c.Get(fiber.HeaderAuthorization)
		if !strings.HasPrefix(header, "Bearer ") {
			return apperrors.Auth("You are not logged in! Please log in to get access.")
		}

		claims, err := m.authService.ValidateToken(strings.TrimPrefix(header, "Bearer "))
		if err != nil {
			return apperrors.Auth("Invalid token. Please log in again.")
		}

		if err := m.resolveIdentity(c, claims); err != nil {
			return err
		}

		c.Locals(identityLocal, Identity{ID: claims.ID, Role: claims.Role})

		return c.Next()
	}
}

func (m Middleware) resolveIdentity(c *fiber.Ctx, claims *auth.Claims) error {
	var err error
	switch claims.Role {
	case auth.RoleDriver:
		_, err = m.driverRepo.GetByID(c.Context(), claims.ID)
	case auth.RoleAdmin:
		_, err = m.adminRepo.GetByID(c.Context(), claims.ID)
	default:
		return apperrors.Auth("Invalid token. Please log in again.")
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apperrors.Auth("The user belonging to this token no longer exists.")
	}
	if err != nil {
		return apperrors.Internal("failed to resolve identity", err)
	}

	return nil
}

// GetIdentity returns the identity the protect middleware attached.
func GetIdentity(c *fiber.Ctx) (Identity, bool) {
	identity, ok := c.Locals(identityLocal).(Identity)
	return identity, ok
}

// RequestLogger tags every request with an id and logs its outcome.
func (m Middleware) RequestLogger() fiber.Handler {
	log := m.log.Function("RequestLogger")

	return func(c *fiber.Ctx) error {
		requestID := uuid.NewString()
		c.Set("X-Request-Id", requestID)

		start := time.Now()
		err := c.Next()

		log.Info("request",
			"id", requestID,
			"method", c.Method(),
			"path", c.Path(),
			"status", c.Response().StatusCode(),
			"duration", time.Since(start),
		)

		return err
	}
}
