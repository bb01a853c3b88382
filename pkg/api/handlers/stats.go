package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	apierrors "github.com/horeca-prospection/backend/pkg/api/errors"
	"github.com/horeca-prospection/backend/pkg/models"
	"github.com/horeca-prospection/backend/pkg/stats"
)

// StatsHandler handles statistics endpoints
type StatsHandler struct {
	service   *stats.Service
	validator *validator.Validate
}

// NewStatsHandler creates a new stats handler
func NewStatsHandler(service *stats.Service) *StatsHandler {
	return &StatsHandler{
		service:   service,
		validator: validator.New(),
	}
}

// Overview returns the aggregate dashboard numbers. Reps get their
// own activity; managers and admins can scope to any user.
func (h *StatsHandler) Overview(c echo.Context) error {
	userID, err := h.scope(c)
	if err != nil {
		return apierrors.BadRequestError(c, "Invalid user id")
	}

	from, to := h.period(c)

	ctx, cancel := context.WithTimeout(c.Request().Context(), 10*time.Second)
	defer cancel()

	resp, err := h.service.Overview(ctx, currentCompanyID(c), userID, from, to)
	if err != nil {
		return apierrors.DatabaseError(c, err)
	}

	return c.JSON(http.StatusOK, models.Success(resp))
}

// Conversions returns the prospect pipeline broken down by status
func (h *StatsHandler) Conversions(c echo.Context) error {
	from, to := h.period(c)

	ctx, cancel := context.WithTimeout(c.Request().Context(), 10*time.Second)
	defer cancel()

	resp, err := h.service.Conversions(ctx, currentCompanyID(c), from, to)
	if err != nil {
		return apierrors.DatabaseError(c, err)
	}

	return c.JSON(http.StatusOK, models.Success(resp))
}

// Heatmap returns the company's geo-located prospects with their
// visit activity
func (h *StatsHandler) Heatmap(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 10*time.Second)
	defer cancel()

	resp, err := h.service.Heatmap(ctx, currentCompanyID(c))
	if err != nil {
		return apierrors.DatabaseError(c, err)
	}

	return c.JSON(http.StatusOK, models.Success(resp))
}

// ByUser returns the per-rep breakdown. Manager and admin only
// (enforced in routing).
func (h *StatsHandler) ByUser(c echo.Context) error {
	from, to := h.period(c)

	ctx, cancel := context.WithTimeout(c.Request().Context(), 10*time.Second)
	defer cancel()

	resp, err := h.service.ByUser(ctx, currentCompanyID(c), from, to)
	if err != nil {
		return apierrors.DatabaseError(c, err)
	}

	return c.JSON(http.StatusOK, models.Success(resp))
}

// scope resolves which user the stats are computed for. Reps are
// forced onto themselves; others may pass ?userId= or omit it for
// team-wide numbers.
func (h *StatsHandler) scope(c echo.Context) (*uuid.UUID, error) {
	if currentUserRole(c) == "rep" {
		id := currentUserID(c)
		return &id, nil
	}

	raw := c.QueryParam("userId")
	if raw == "" {
		return nil, nil
	}

	id, err := uuid.Parse(raw)
	if err != nil {
		return nil, err
	}
	return &id, nil
}

// period parses the from/to query params, defaulting to the last
// twelve months.
func (h *StatsHandler) period(c echo.Context) (time.Time, time.Time) {
	now := time.Now()
	from := now.AddDate(-1, 0, 0)
	to := now.AddDate(0, 0, 1)

	if raw := c.QueryParam("from"); raw != "" {
		if t, err := time.Parse("2006-01-02", raw); err == nil {
			from = t
		}
	}
	if raw := c.QueryParam("to"); raw != "" {
		if t, err := time.Parse("2006-01-02", raw); err == nil {
			to = t.AddDate(0, 0, 1)
		}
	}

	return from, to
}
