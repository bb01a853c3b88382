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
	"github.com/horeca-prospection/backend/pkg/auth"
	"github.com/horeca-prospection/backend/pkg/metrics"
	"github.com/horeca-prospection/backend/pkg/models"
	"github.com/horeca-prospection/backend/pkg/visits"
)

// VisitHandler handles visit endpoints
type VisitHandler struct {
	service     *visits.Service
	auditLogger *audit.Service
	metrics     *metrics.Metrics
	validator   *validator.Validate
}

// NewVisitHandler creates a new visit handler
func NewVisitHandler(service *visits.Service, auditLogger *audit.Service, m *metrics.Metrics) *VisitHandler {
	return &VisitHandler{
		service:     service,
		auditLogger: auditLogger,
		metrics:     m,
		validator:   validator.New(),
	}
}

// List returns visits matching the filters. Reps are always scoped
// to their own visits, whatever userId they asked for.
func (h *VisitHandler) List(c echo.Context) error {
	var req models.VisitListRequest
	if err := c.Bind(&req); err != nil {
		return apierrors.BadRequestError(c, "Invalid query parameters")
	}

	if err := h.validator.Struct(req); err != nil {
		return apierrors.ValidationError(c, err)
	}

	req.UserID = scopeUserFilter(c, req.UserID)
	req.CompanyID = currentCompanyID(c)

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	resp, err := h.service.List(ctx, req)
	if err != nil {
		return apierrors.DatabaseError(c, err)
	}

	return c.JSON(http.StatusOK, models.Success(resp))
}

// Stats returns aggregate visit statistics. Reps always get their
// own numbers, whatever userId they asked for.
func (h *VisitHandler) Stats(c echo.Context) error {
	var req models.VisitStatsRequest
	if err := c.Bind(&req); err != nil {
		return apierrors.BadRequestError(c, "Invalid query parameters")
	}

	if err := h.validator.Struct(req); err != nil {
		return apierrors.ValidationError(c, err)
	}

	req.UserID = scopeUserFilter(c, req.UserID)
	req.CompanyID = currentCompanyID(c)

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	resp, err := h.service.Stats(ctx, req)
	if err != nil {
		return apierrors.DatabaseError(c, err)
	}

	return c.JSON(http.StatusOK, models.Success(resp))
}

// Get returns one visit. Reps can only read their own.
func (h *VisitHandler) Get(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return apierrors.BadRequestError(c, "Invalid visit id")
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	if err := h.checkOwnership(ctx, c, id); err != nil {
		return err
	}

	resp, err := h.service.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, visits.ErrNotFound) {
			return apierrors.NotFoundError(c, "Visit")
		}
		return apierrors.DatabaseError(c, err)
	}

	return c.JSON(http.StatusOK, models.Success(resp))
}

// Create records a visit for the authenticated user
func (h *VisitHandler) Create(c echo.Context) error {
	var req models.CreateVisitRequest
	if err := c.Bind(&req); err != nil {
		return apierrors.BadRequestError(c, "Invalid request body")
	}

	if err := h.validator.Struct(req); err != nil {
		return apierrors.ValidationError(c, err)
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	resp, err := h.service.Create(ctx, currentUserID(c), req)
	if err != nil {
		if errors.Is(err, visits.ErrProspectNotFound) {
			return apierrors.NotFoundError(c, "Prospect")
		}
		return apierrors.DatabaseError(c, err)
	}

	h.metrics.VisitsRecorded.Inc()
	h.auditLogger.Record(ctx, currentUserID(c), "visit.create", "visit", resp.ID, nil, c.RealIP())

	return c.JSON(http.StatusCreated, models.Success(resp))
}

// Update applies a partial update. Reps can only touch their own visits.
func (h *VisitHandler) Update(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return apierrors.BadRequestError(c, "Invalid visit id")
	}

	var req models.UpdateVisitRequest
	if err := c.Bind(&req); err != nil {
		return apierrors.BadRequestError(c, "Invalid request body")
	}

	if err := h.validator.Struct(req); err != nil {
		return apierrors.ValidationError(c, err)
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	if err := h.checkOwnership(ctx, c, id); err != nil {
		return err
	}

	resp, err := h.service.Update(ctx, id, req)
	if err != nil {
		if errors.Is(err, visits.ErrNotFound) {
			return apierrors.NotFoundError(c, "Visit")
		}
		return apierrors.DatabaseError(c, err)
	}

	h.auditLogger.Record(ctx, currentUserID(c), "visit.update", "visit", id, nil, c.RealIP())

	return c.JSON(http.StatusOK, models.Success(resp))
}

// Delete removes a visit. Reps can only delete their own.
func (h *VisitHandler) Delete(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return apierrors.BadRequestError(c, "Invalid visit id")
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	if err := h.checkOwnership(ctx, c, id); err != nil {
		return err
	}

	if err := h.service.Delete(ctx, id); err != nil {
		if errors.Is(err, visits.ErrNotFound) {
			return apierrors.NotFoundError(c, "Visit")
		}
		return apierrors.DatabaseError(c, err)
	}

	h.auditLogger.Record(ctx, currentUserID(c), "visit.delete", "visit", id, nil, c.RealIP())

	return c.JSON(http.StatusOK, models.SuccessMessage("Visit deleted"))
}

// checkOwnership returns a 403 response error when a rep touches a
// visit that is not theirs.
func (h *VisitHandler) checkOwnership(ctx context.Context, c echo.Context, id uuid.UUID) error {
	ownerID, err := h.service.OwnerID(ctx, id)
	if err != nil {
		if errors.Is(err, visits.ErrNotFound) {
			return apierrors.NotFoundError(c, "Visit")
		}
		return apierrors.DatabaseError(c, err)
	}

	if !auth.CanAccessOwned(currentUserRole(c), currentUserID(c), ownerID) {
		return apierrors.ForbiddenError(c)
	}
	return nil
}

// scopeUserFilter forces rep queries onto their own user id
func scopeUserFilter(c echo.Context, requested string) string {
	if currentUserRole(c) == "rep" {
		return currentUserID(c).String()
	}
	return requested
}
