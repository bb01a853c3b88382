package handlers

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	apierrors "github.com/horeca-prospection/backend/pkg/api/errors"
	"github.com/horeca-prospection/backend/pkg/audit"
	"github.com/horeca-prospection/backend/pkg/models"
	"github.com/horeca-prospection/backend/pkg/users"
)

// UserHandler handles team management endpoints
type UserHandler struct {
	service     *users.Service
	auditLogger *audit.Service
	validator   *validator.Validate
}

// NewUserHandler creates a new user handler
func NewUserHandler(service *users.Service, auditLogger *audit.Service) *UserHandler {
	return &UserHandler{
		service:     service,
		auditLogger: auditLogger,
		validator:   validator.New(),
	}
}

// List returns the company's users
func (h *UserHandler) List(c echo.Context) error {
	var req models.UserListRequest
	if err := c.Bind(&req); err != nil {
		return apierrors.BadRequestError(c, "Invalid query parameters")
	}

	if err := h.validator.Struct(req); err != nil {
		return apierrors.ValidationError(c, err)
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	resp, err := h.service.List(ctx, currentCompanyID(c), req)
	if err != nil {
		return apierrors.DatabaseError(c, err)
	}

	return c.JSON(http.StatusOK, models.Success(resp))
}

// Get returns one user
func (h *UserHandler) Get(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return apierrors.BadRequestError(c, "Invalid user id")
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	resp, err := h.service.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, users.ErrNotFound) {
			return apierrors.NotFoundError(c, "User")
		}
		return apierrors.DatabaseError(c, err)
	}

	return c.JSON(http.StatusOK, models.Success(resp))
}

// Create adds a team member to the admin's company
func (h *UserHandler) Create(c echo.Context) error {
	var req models.CreateUserRequest
	if err := c.Bind(&req); err != nil {
		return apierrors.BadRequestError(c, "Invalid request body")
	}

	if err := h.validator.Struct(req); err != nil {
		return apierrors.ValidationError(c, err)
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	resp, err := h.service.Create(ctx, currentCompanyID(c), req)
	if err != nil {
		if errors.Is(err, users.ErrEmailTaken) {
			return apierrors.ConflictError(c, err.Error())
		}
		return apierrors.DatabaseError(c, err)
	}

	h.auditLogger.Record(ctx, currentUserID(c), "user.create", "user", resp.ID, nil, c.RealIP())

	return c.JSON(http.StatusCreated, models.Success(resp))
}

// Update applies a partial update to a user
func (h *UserHandler) Update(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return apierrors.BadRequestError(c, "Invalid user id")
	}

	var req models.UpdateUserRequest
	if err := c.Bind(&req); err != nil {
		return apierrors.BadRequestError(c, "Invalid request body")
	}

	if err := h.validator.Struct(req); err != nil {
		return apierrors.ValidationError(c, err)
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	resp, err := h.service.Update(ctx, id, req)
	if err != nil {
		if errors.Is(err, users.ErrNotFound) {
			return apierrors.NotFoundError(c, "User")
		}
		return apierrors.DatabaseError(c, err)
	}

	h.auditLogger.Record(ctx, currentUserID(c), "user.update", "user", id, nil, c.RealIP())

	return c.JSON(http.StatusOK, models.Success(resp))
}

// Delete removes a user. Self-deletion is rejected.
func (h *UserHandler) Delete(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return apierrors.BadRequestError(c, "Invalid user id")
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	if err := h.service.Delete(ctx, currentUserID(c), id); err != nil {
		if errors.Is(err, users.ErrSelfDelete) {
			return apierrors.BadRequestError(c, err.Error())
		}
		if errors.Is(err, users.ErrNotFound) {
			return apierrors.NotFoundError(c, "User")
		}
		return apierrors.DatabaseError(c, err)
	}

	h.auditLogger.Record(ctx, currentUserID(c), "user.delete", "user", id, nil, c.RealIP())

	return c.JSON(http.StatusOK, models.SuccessMessage("User deleted"))
}

// ChangePassword lets the authenticated user rotate their password
func (h *UserHandler) ChangePassword(c echo.Context) error {
	var req models.ChangePasswordRequest
	if err := c.Bind(&req); err != nil {
		return apierrors.BadRequestError(c, "Invalid request body")
	}

	if err := h.validator.Struct(req); err != nil {
		return apierrors.ValidationError(c, err)
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	if err := h.service.ChangePassword(ctx, currentUserID(c), req); err != nil {
		if errors.Is(err, users.ErrWrongPassword) {
			return apierrors.BadRequestError(c, err.Error())
		}
		if errors.Is(err, users.ErrNotFound) {
			return apierrors.NotFoundError(c, "User")
		}
		return apierrors.DatabaseError(c, err)
	}

	h.auditLogger.Record(ctx, currentUserID(c), "user.change_password", "user", currentUserID(c), nil, c.RealIP())

	return c.JSON(http.StatusOK, models.SuccessMessage("Password changed"))
}
