package models

import "github.com/google/uuid"

// TourListRequest represents tour listing filters. CompanyID is
// filled in from the authenticated user, never from the query.
type TourListRequest struct {
	UserID    string    `query:"userId" validate:"omitempty,uuid"`
	Status    string    `query:"status" validate:"omitempty,oneof=planned in_progress completed cancelled"`
	From      string    `query:"from" validate:"omitempty,datetime=2006-01-02"`
	To        string    `query:"to" validate:"omitempty,datetime=2006-01-02"`
	Page      int       `query:"page"`
	Limit     int       `query:"limit"`
	CompanyID uuid.UUID `query:"-"`
}

// CreateTourRequest represents a tour creation request. A tour
// always needs a date and at least one prospect to route.
type CreateTourRequest struct {
	Name        string   `json:"name"`
	Date        string   `json:"date" validate:"required"`
	ProspectIDs []string `json:"prospectIds" validate:"required,min=1,dive,uuid"`
}

// UpdateTourRequest represents a partial tour update
type UpdateTourRequest struct {
	Name                 *string                `json:"name"`
	Date                 *string                `json:"date"`
	TotalDistanceKm      *float64               `json:"totalDistanceKm" validate:"omitempty,min=0"`
	TotalDurationMinutes *int                   `json:"totalDurationMinutes" validate:"omitempty,min=0"`
	RouteData            map[string]interface{} `json:"routeData"`
}

// AddStepsRequest appends prospects as ordered steps to a tour
type AddStepsRequest struct {
	ProspectIDs []string `json:"prospectIds" validate:"required,min=1,dive,uuid"`
}

// UpdateStepRequest represents a partial tour step update
type UpdateStepRequest struct {
	Status      *string `json:"status" validate:"omitempty,oneof=pending done skipped"`
	CompletedAt *string `json:"completedAt"`
	StepOrder   *int    `json:"stepOrder" validate:"omitempty,min=1"`
}

// TourStepResponse represents a single tour step in API responses
type TourStepResponse struct {
	ID                          uuid.UUID `json:"id"`
	ProspectID                  uuid.UUID `json:"prospectId"`
	ProspectName                string    `json:"prospectName,omitempty"`
	StepOrder                   int       `json:"stepOrder"`
	Status                      string    `json:"status"`
	Eta                         string    `json:"eta,omitempty"`
	DistanceFromPreviousKm      *float64  `json:"distanceFromPreviousKm,omitempty"`
	DurationFromPreviousMinutes *int      `json:"durationFromPreviousMinutes,omitempty"`
	CompletedAt                 string    `json:"completedAt,omitempty"`
}

// TourResponse represents a single tour in API responses
type TourResponse struct {
	ID                   uuid.UUID              `json:"id"`
	Name                 string                 `json:"name,omitempty"`
	UserID               uuid.UUID              `json:"userId"`
	UserName             string                 `json:"userName,omitempty"`
	Date                 string                 `json:"date"`
	Status               string                 `json:"status"`
	TotalDistanceKm      *float64               `json:"totalDistanceKm,omitempty"`
	TotalDurationMinutes *int                   `json:"totalDurationMinutes,omitempty"`
	RouteData            map[string]interface{} `json:"routeData,omitempty"`
	Steps                []TourStepResponse     `json:"steps,omitempty"`
	CreatedAt            string                 `json:"createdAt"`
	UpdatedAt            string                 `json:"updatedAt"`
}

// TourListResponse represents a paginated list of tours
type TourListResponse struct {
	Tours      []TourResponse `json:"tours"`
	Pagination PaginationInfo `json:"pagination"`
}
