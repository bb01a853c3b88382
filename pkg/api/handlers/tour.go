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
	"github.com/horeca-prospection/backend/pkg/tours"
)

// TourHandler handles tour endpoints
type TourHandler struct {
	service     *tours.Service
	auditLogger *audit.Service
	metrics     *metrics.Metrics
	validator   *validator.Validate
}

// NewTourHandler creates a new tour handler
func NewTourHandler(service *tours.Service, auditLogger *audit.Service, m *metrics.Metrics) *TourHandler {
	return &TourHandler{
		service:     service,
		auditLogger: auditLogger,
		metrics:     m,
		validator:   validator.New(),
	}
}

// List returns tours matching the filters. Reps only see their own.
func (h *TourHandler) List(c echo.Context) error {
	var req models.TourListRequest
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

// Get returns one tour with its ordered steps
func (h *TourHandler) Get(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return apierrors.BadRequestError(c, "Invalid tour id")
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	if err := h.checkOwnership(ctx, c, id); err != nil {
		return err
	}

	resp, err := h.service.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, tours.ErrNotFound) {
			return apierrors.NotFoundError(c, "Tour")
		}
		return apierrors.DatabaseError(c, err)
	}

	return c.JSON(http.StatusOK, models.Success(resp))
}

// Create creates a tour for the authenticated user
func (h *TourHandler) Create(c echo.Context) error {
	var req models.CreateTourRequest
	if err := c.Bind(&req); err != nil {
		return apierrors.BadRequestError(c, "Invalid request body")
	}

	if err := h.validator.Struct(req); err != nil {
		return apierrors.ValidationError(c, err)
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 10*time.Second)
	defer cancel()

	resp, err := h.service.Create(ctx, currentCompanyID(c), currentUserID(c), req)
	if err != nil {
		return apierrors.DatabaseError(c, err)
	}

	h.auditLogger.Record(ctx, currentUserID(c), "tour.create", "tour", resp.ID, nil, c.RealIP())

	return c.JSON(http.StatusCreated, models.Success(resp))
}

// Update applies a partial update to a tour
func (h *TourHandler) Update(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return apierrors.BadRequestError(c, "Invalid tour id")
	}

	var req models.UpdateTourRequest
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
		if errors.Is(err, tours.ErrNotFound) {
			return apierrors.NotFoundError(c, "Tour")
		}
		return apierrors.DatabaseError(c, err)
	}

	h.auditLogger.Record(ctx, currentUserID(c), "tour.update", "tour", id, nil, c.RealIP())

	return c.JSON(http.StatusOK, models.Success(resp))
}

// Delete removes a tour and its steps
func (h *TourHandler) Delete(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return apierrors.BadRequestError(c, "Invalid tour id")
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	if err := h.checkOwnership(ctx, c, id); err != nil {
		return err
	}

	if err := h.service.Delete(ctx, id); err != nil {
		if errors.Is(err, tours.ErrNotFound) {
			return apierrors.NotFoundError(c, "Tour")
		}
		return apierrors.DatabaseError(c, err)
	}

	h.auditLogger.Record(ctx, currentUserID(c), "tour.delete", "tour", id, nil, c.RealIP())

	return c.JSON(http.StatusOK, models.SuccessMessage("Tour deleted"))
}

// Start moves a planned tour to in_progress
func (h *TourHandler) Start(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return apierrors.BadRequestError(c, "Invalid tour id")
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	if err := h.checkOwnership(ctx, c, id); err != nil {
		return err
	}

	resp, err := h.service.Start(ctx, id)
	if err != nil {
		if errors.Is(err, tours.ErrNotFound) {
			return apierrors.NotFoundError(c, "Tour")
		}
		if errors.Is(err, tours.ErrNotPlanned) {
			return apierrors.BadRequestError(c, err.Error())
		}
		return apierrors.DatabaseError(c, err)
	}

	h.metrics.ToursStarted.Inc()
	h.auditLogger.Record(ctx, currentUserID(c), "tour.start", "tour", id, nil, c.RealIP())

	return c.JSON(http.StatusOK, models.Success(resp))
}

// Complete marks a tour completed
func (h *TourHandler) Complete(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return apierrors.BadRequestError(c, "Invalid tour id")
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	if err := h.checkOwnership(ctx, c, id); err != nil {
		return err
	}

	resp, err := h.service.Complete(ctx, id)
	if err != nil {
		if errors.Is(err, tours.ErrNotFound) {
			return apierrors.NotFoundError(c, "Tour")
		}
		return apierrors.DatabaseError(c, err)
	}

	h.metrics.ToursCompleted.Inc()
	h.auditLogger.Record(ctx, currentUserID(c), "tour.complete", "tour", id, nil, c.RealIP())

	return c.JSON(http.StatusOK, models.Success(resp))
}

// Cancel marks a tour cancelled
func (h *TourHandler) Cancel(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return apierrors.BadRequestError(c, "Invalid tour id")
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	if err := h.checkOwnership(ctx, c, id); err != nil {
		return err
	}

	resp, err := h.service.Cancel(ctx, id)
	if err != nil {
		if errors.Is(err, tours.ErrNotFound) {
			return apierrors.NotFoundError(c, "Tour")
		}
		return apierrors.DatabaseError(c, err)
	}

	h.auditLogger.Record(ctx, currentUserID(c), "tour.cancel", "tour", id, nil, c.RealIP())

	return c.JSON(http.StatusOK, models.Success(resp))
}

// AddSteps appends prospects to the end of a tour
func (h *TourHandler) AddSteps(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return apierrors.BadRequestError(c, "Invalid tour id")
	}

	var req models.AddStepsRequest
	if err := c.Bind(&req); err != nil {
		return apierrors.BadRequestError(c, "Invalid request body")
	}

	if err := h.validator.Struct(req); err != nil {
		return apierrors.ValidationError(c, err)
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 10*time.Second)
	defer cancel()

	if err := h.checkOwnership(ctx, c, id); err != nil {
		return err
	}

	resp, err := h.service.AddSteps(ctx, id, req)
	if err != nil {
		if errors.Is(err, tours.ErrNotFound) {
			return apierrors.NotFoundError(c, "Tour")
		}
		return apierrors.DatabaseError(c, err)
	}

	h.auditLogger.Record(ctx, currentUserID(c), "tour.add_steps", "tour", id, nil, c.RealIP())

	return c.JSON(http.StatusOK, models.Success(resp))
}

// UpdateStep updates one step of a tour
func (h *TourHandler) UpdateStep(c echo.Context) error {
	tourID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return apierrors.BadRequestError(c, "Invalid tour id")
	}
	stepID, err := uuid.Parse(c.Param("stepId"))
	if err != nil {
		return apierrors.BadRequestError(c, "Invalid step id")
	}

	var req models.UpdateStepRequest
	if err := c.Bind(&req); err != nil {
		return apierrors.BadRequestError(c, "Invalid request body")
	}

	if err := h.validator.Struct(req); err != nil {
		return apierrors.ValidationError(c, err)
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 10*time.Second)
	defer cancel()

	if err := h.checkOwnership(ctx, c, tourID); err != nil {
		return err
	}

	resp, err := h.service.UpdateStep(ctx, tourID, stepID, req)
	if err != nil {
		if errors.Is(err, tours.ErrStepNotFound) {
			return apierrors.NotFoundError(c, "Tour step")
		}
		return apierrors.DatabaseError(c, err)
	}

	h.auditLogger.Record(ctx, currentUserID(c), "tour.update_step", "tour", tourID, nil, c.RealIP())

	return c.JSON(http.StatusOK, models.Success(resp))
}

// DeleteStep removes one step and closes the order gap
func (h *TourHandler) DeleteStep(c echo.Context) error {
	tourID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return apierrors.BadRequestError(c, "Invalid tour id")
	}
	stepID, err := uuid.Parse(c.Param("stepId"))
	if err != nil {
		return apierrors.BadRequestError(c, "Invalid step id")
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 10*time.Second)
	defer cancel()

	if err := h.checkOwnership(ctx, c, tourID); err != nil {
		return err
	}

	resp, err := h.service.DeleteStep(ctx, tourID, stepID)
	if err != nil {
		if errors.Is(err, tours.ErrStepNotFound) {
			return apierrors.NotFoundError(c, "Tour step")
		}
		return apierrors.DatabaseError(c, err)
	}

	h.auditLogger.Record(ctx, currentUserID(c), "tour.delete_step", "tour", tourID, nil, c.RealIP())

	return c.JSON(http.StatusOK, models.Success(resp))
}

func (h *TourHandler) checkOwnership(ctx context.Context, c echo.Context, id uuid.UUID) error {
	ownerID, err := h.service.OwnerID(ctx, id)
	if err != nil {
		if errors.Is(err, tours.ErrNotFound) {
			return apierrors.NotFoundError(c, "Tour")
		}
		return apierrors.DatabaseError(c, err)
	}

	if !auth.CanAccessOwned(currentUserRole(c), currentUserID(c), ownerID) {
		return apierrors.ForbiddenError(c)
	}
	return nil
}
