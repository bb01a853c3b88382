package handlers

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	apierrors "github.com/horeca-prospection/backend/pkg/api/errors"
	"github.com/horeca-prospection/backend/pkg/audit"
	"github.com/horeca-prospection/backend/pkg/metrics"
	"github.com/horeca-prospection/backend/pkg/models"
	"github.com/horeca-prospection/backend/pkg/users"
)

// AuthHandler handles authentication endpoints
type AuthHandler struct {
	authService *users.AuthService
	auditLogger *audit.Service
	metrics     *metrics.Metrics
	validator   *validator.Validate
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authService *users.AuthService, auditLogger *audit.Service, m *metrics.Metrics) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		auditLogger: auditLogger,
		metrics:     m,
		validator:   validator.New(),
	}
}

// Register creates a company and its first admin account
func (h *AuthHandler) Register(c echo.Context) error {
	var req models.RegisterRequest
	if err := c.Bind(&req); err != nil {
		return apierrors.BadRequestError(c, "Invalid request body")
	}

	if err := h.validator.Struct(req); err != nil {
		return apierrors.ValidationError(c, err)
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	resp, err := h.authService.Register(ctx, req)
	if err != nil {
		if errors.Is(err, users.ErrEmailTaken) {
			return apierrors.ConflictError(c, err.Error())
		}
		return apierrors.InternalError(c, err)
	}

	h.auditLogger.Record(ctx, resp.User.ID, "auth.register", "user", resp.User.ID, nil, c.RealIP())

	return c.JSON(http.StatusCreated, models.Success(resp))
}

// Login authenticates a user and issues a token pair
func (h *AuthHandler) Login(c echo.Context) error {
	var req models.LoginRequest
	if err := c.Bind(&req); err != nil {
		return apierrors.BadRequestError(c, "Invalid request body")
	}

	if err := h.validator.Struct(req); err != nil {
		return apierrors.ValidationError(c, err)
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	resp, err := h.authService.Login(ctx, req)
	if err != nil {
		h.metrics.RecordLoginAttempt(false)
		if errors.Is(err, users.ErrInvalidCredentials) {
			return apierrors.UnauthorizedError(c, err.Error())
		}
		if errors.Is(err, users.ErrAccountInactive) {
			return apierrors.ForbiddenError(c)
		}
		return apierrors.InternalError(c, err)
	}

	h.metrics.RecordLoginAttempt(true)
	h.auditLogger.Record(ctx, resp.User.ID, "auth.login", "user", resp.User.ID, nil, c.RealIP())

	return c.JSON(http.StatusOK, models.Success(resp))
}

// Refresh rotates a refresh token for a new token pair
func (h *AuthHandler) Refresh(c echo.Context) error {
	var req models.RefreshRequest
	if err := c.Bind(&req); err != nil {
		return apierrors.BadRequestError(c, "Invalid request body")
	}

	if err := h.validator.Struct(req); err != nil {
		return apierrors.ValidationError(c, err)
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	resp, err := h.authService.Refresh(ctx, req)
	if err != nil {
		if errors.Is(err, users.ErrInvalidRefresh) {
			return apierrors.UnauthorizedError(c, err.Error())
		}
		if errors.Is(err, users.ErrAccountInactive) {
			return apierrors.ForbiddenError(c)
		}
		return apierrors.InternalError(c, err)
	}

	return c.JSON(http.StatusOK, models.Success(resp))
}

// Logout revokes the presented refresh token
func (h *AuthHandler) Logout(c echo.Context) error {
	var req models.RefreshRequest
	if err := c.Bind(&req); err != nil {
		return apierrors.BadRequestError(c, "Invalid request body")
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	if req.RefreshToken != "" {
		if err := h.authService.Logout(ctx, req.RefreshToken); err != nil {
			return apierrors.InternalError(c, err)
		}
	}

	return c.JSON(http.StatusOK, models.SuccessMessage("Logged out"))
}

// Me returns the authenticated user's profile
func (h *AuthHandler) Me(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	info, err := h.authService.Me(ctx, currentUserID(c))
	if err != nil {
		if errors.Is(err, users.ErrNotFound) {
			return apierrors.NotFoundError(c, "User")
		}
		return apierrors.InternalError(c, err)
	}

	return c.JSON(http.StatusOK, models.Success(info))
}

// UpdateMe lets the authenticated user edit their own profile
func (h *AuthHandler) UpdateMe(c echo.Context) error {
	var req models.UpdateProfileRequest
	if err := c.Bind(&req); err != nil {
		return apierrors.BadRequestError(c, "Invalid request body")
	}

	if err := h.validator.Struct(req); err != nil {
		return apierrors.ValidationError(c, err)
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	info, err := h.authService.UpdateProfile(ctx, currentUserID(c), req)
	if err != nil {
		if errors.Is(err, users.ErrNotFound) {
			return apierrors.NotFoundError(c, "User")
		}
		return apierrors.DatabaseError(c, err)
	}

	h.auditLogger.Record(ctx, currentUserID(c), "user.update_profile", "user", currentUserID(c), nil, c.RealIP())

	return c.JSON(http.StatusOK, models.Success(info))
}
