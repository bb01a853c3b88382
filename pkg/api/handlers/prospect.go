package handlers

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	apierrors "github.com/horeca-prospection/backend/pkg/api/errors"
	"github.com/horeca-prospection/backend/pkg/audit"
	"github.com/horeca-prospection/backend/pkg/enrichment"
	"github.com/horeca-prospection/backend/pkg/export"
	"github.com/horeca-prospection/backend/pkg/maps"
	"github.com/horeca-prospection/backend/pkg/metrics"
	"github.com/horeca-prospection/backend/pkg/models"
	"github.com/horeca-prospection/backend/pkg/prospects"
)

// ProspectHandler handles prospect endpoints
type ProspectHandler struct {
	service       *prospects.Service
	exportService *export.Service
	mapsService   *maps.Service
	enqueuer      *enrichment.Enqueuer
	auditLogger   *audit.Service
	metrics       *metrics.Metrics
	validator     *validator.Validate
}

// NewProspectHandler creates a new prospect handler
func NewProspectHandler(service *prospects.Service, exportService *export.Service, mapsService *maps.Service, enqueuer *enrichment.Enqueuer, auditLogger *audit.Service, m *metrics.Metrics) *ProspectHandler {
	return &ProspectHandler{
		service:       service,
		exportService: exportService,
		mapsService:   mapsService,
		enqueuer:      enqueuer,
		auditLogger:   auditLogger,
		metrics:       m,
		validator:     validator.New(),
	}
}

// List returns prospects matching the filters
func (h *ProspectHandler) List(c echo.Context) error {
	var req models.ProspectListRequest
	if err := c.Bind(&req); err != nil {
		return apierrors.BadRequestError(c, "Invalid query parameters")
	}

	if err := h.validator.Struct(req); err != nil {
		return apierrors.ValidationError(c, err)
	}

	req.CompanyID = currentCompanyID(c)

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	resp, err := h.service.List(ctx, req)
	if err != nil {
		return apierrors.DatabaseError(c, err)
	}

	return c.JSON(http.StatusOK, models.Success(resp))
}

// Get returns one prospect
func (h *ProspectHandler) Get(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return apierrors.BadRequestError(c, "Invalid prospect id")
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	resp, err := h.service.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, prospects.ErrNotFound) {
			return apierrors.NotFoundError(c, "Prospect")
		}
		return apierrors.DatabaseError(c, err)
	}

	return c.JSON(http.StatusOK, models.Success(resp))
}

// Create creates a prospect. Missing coordinates are geocoded from
// the address when a maps key is configured.
func (h *ProspectHandler) Create(c echo.Context) error {
	var req models.CreateProspectRequest
	if err := c.Bind(&req); err != nil {
		return apierrors.BadRequestError(c, "Invalid request body")
	}

	if err := h.validator.Struct(req); err != nil {
		return apierrors.ValidationError(c, err)
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 10*time.Second)
	defer cancel()

	if h.mapsService != nil && req.Latitude == nil && req.Address != "" {
		address := strings.TrimSpace(fmt.Sprintf("%s %s %s", req.Address, req.PostalCode, req.City))
		if geo, err := h.mapsService.Geocode(ctx, address); err == nil {
			req.Latitude = &geo.Latitude
			req.Longitude = &geo.Longitude
			if req.GooglePlaceID == "" {
				req.GooglePlaceID = geo.PlaceID
			}
		}
	}

	resp, err := h.service.Create(ctx, currentCompanyID(c), currentUserID(c), req)
	if err != nil {
		return apierrors.DatabaseError(c, err)
	}

	h.metrics.ProspectsCreated.Inc()
	h.auditLogger.Record(ctx, currentUserID(c), "prospect.create", "prospect", resp.ID, nil, c.RealIP())

	return c.JSON(http.StatusCreated, models.Success(resp))
}

// Update applies a partial update
func (h *ProspectHandler) Update(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return apierrors.BadRequestError(c, "Invalid prospect id")
	}

	var req models.UpdateProspectRequest
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
		if errors.Is(err, prospects.ErrNotFound) {
			return apierrors.NotFoundError(c, "Prospect")
		}
		return apierrors.DatabaseError(c, err)
	}

	h.auditLogger.Record(ctx, currentUserID(c), "prospect.update", "prospect", id, nil, c.RealIP())

	return c.JSON(http.StatusOK, models.Success(resp))
}

// Delete removes a prospect. Admin and manager only (enforced in routing).
func (h *ProspectHandler) Delete(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return apierrors.BadRequestError(c, "Invalid prospect id")
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	if err := h.service.Delete(ctx, id); err != nil {
		if errors.Is(err, prospects.ErrNotFound) {
			return apierrors.NotFoundError(c, "Prospect")
		}
		return apierrors.DatabaseError(c, err)
	}

	h.auditLogger.Record(ctx, currentUserID(c), "prospect.delete", "prospect", id, nil, c.RealIP())

	return c.JSON(http.StatusOK, models.SuccessMessage("Prospect deleted"))
}

// Nearby returns prospects within a radius of a point, closest first
func (h *ProspectHandler) Nearby(c echo.Context) error {
	var req models.NearbyRequest
	if err := c.Bind(&req); err != nil {
		return apierrors.BadRequestError(c, "Invalid query parameters")
	}

	if err := h.validator.Struct(req); err != nil {
		return apierrors.ValidationError(c, err)
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	resp, err := h.service.Nearby(ctx, req)
	if err != nil {
		return apierrors.DatabaseError(c, err)
	}

	return c.JSON(http.StatusOK, models.Success(resp))
}

// Enrich queues an AI enrichment job for a prospect
func (h *ProspectHandler) Enrich(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return apierrors.BadRequestError(c, "Invalid prospect id")
	}

	if h.enqueuer == nil {
		return apierrors.BadRequestError(c, "AI enrichment is not configured")
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	p, err := h.service.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, prospects.ErrNotFound) {
			return apierrors.NotFoundError(c, "Prospect")
		}
		return apierrors.DatabaseError(c, err)
	}

	payload := enrichment.EnrichPayload{
		ProspectID: p.ID,
		Name:       p.Name,
		Address:    strings.TrimSpace(fmt.Sprintf("%s %s %s", p.Address, p.PostalCode, p.City)),
		Website:    p.Website,
	}
	if err := h.enqueuer.Enqueue(payload); err != nil {
		return apierrors.InternalError(c, err)
	}

	h.auditLogger.Record(ctx, currentUserID(c), "prospect.enrich", "prospect", id, nil, c.RealIP())

	return c.JSON(http.StatusAccepted, models.SuccessMessage("Enrichment queued"))
}

// Export streams the filtered prospect list as CSV or XLSX
func (h *ProspectHandler) Export(c echo.Context) error {
	var req models.ProspectListRequest
	if err := c.Bind(&req); err != nil {
		return apierrors.BadRequestError(c, "Invalid query parameters")
	}

	format := c.QueryParam("format")
	if format == "" {
		format = "csv"
	}
	if format != "csv" && format != "xlsx" {
		return apierrors.BadRequestError(c, "Format must be csv or xlsx")
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 60*time.Second)
	defer cancel()

	contentType := "text/csv"
	if format == "xlsx" {
		contentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	}

	fileName := fmt.Sprintf("prospects-%s.%s", time.Now().Format("20060102-150405"), format)
	c.Response().Header().Set(echo.HeaderContentType, contentType)
	c.Response().Header().Set(echo.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", fileName))
	c.Response().WriteHeader(http.StatusOK)

	if _, err := h.exportService.Export(ctx, format, req, c.Response()); err != nil {
		return err
	}

	h.metrics.ExportsGenerated.WithLabelValues(format).Inc()
	return nil
}
