package models

import "github.com/google/uuid"

// VisitListRequest represents visit listing filters. CompanyID is
// filled in from the authenticated user, never from the query.
type VisitListRequest struct {
	ProspectID string    `query:"prospectId" validate:"omitempty,uuid"`
	UserID     string    `query:"userId" validate:"omitempty,uuid"`
	TourID     string    `query:"tourId" validate:"omitempty,uuid"`
	MinScore   *int      `query:"minScore" validate:"omitempty,min=1,max=5"`
	From       string    `query:"from" validate:"omitempty,datetime=2006-01-02"`
	To         string    `query:"to" validate:"omitempty,datetime=2006-01-02"`
	Page       int       `query:"page"`
	Limit      int       `query:"limit"`
	CompanyID  uuid.UUID `query:"-"`
}

// CreateVisitRequest represents a visit creation request
type CreateVisitRequest struct {
	ProspectID      string `json:"prospectId" validate:"required,uuid"`
	TourID          string `json:"tourId" validate:"omitempty,uuid"`
	VisitedAt       string `json:"visitedAt" validate:"omitempty"`
	DurationMinutes *int   `json:"durationMinutes" validate:"omitempty,min=0"`
	Objective       string `json:"objective"`
	Summary         string `json:"summary"`
	Score           *int   `json:"score" validate:"omitempty,min=1,max=5"`
	SignedBy        string `json:"signedBy"`
	SignatureData   string `json:"signatureData"`
}

// UpdateVisitRequest represents a partial visit update
type UpdateVisitRequest struct {
	VisitedAt       *string `json:"visitedAt"`
	DurationMinutes *int    `json:"durationMinutes" validate:"omitempty,min=0"`
	Objective       *string `json:"objective"`
	Summary         *string `json:"summary"`
	Score           *int    `json:"score" validate:"omitempty,min=1,max=5"`
	SignedBy        *string `json:"signedBy"`
	SignatureData   *string `json:"signatureData"`
}

// VisitResponse represents a single visit in API responses
type VisitResponse struct {
	ID              uuid.UUID  `json:"id"`
	ProspectID      uuid.UUID  `json:"prospectId"`
	ProspectName    string     `json:"prospectName,omitempty"`
	UserID          uuid.UUID  `json:"userId"`
	UserName        string     `json:"userName,omitempty"`
	TourID          *uuid.UUID `json:"tourId,omitempty"`
	VisitedAt       string     `json:"visitedAt"`
	DurationMinutes *int       `json:"durationMinutes,omitempty"`
	Objective       string     `json:"objective,omitempty"`
	Summary         string     `json:"summary,omitempty"`
	Score           *int       `json:"score,omitempty"`
	SignedBy        string     `json:"signedBy,omitempty"`
	SignatureData   string     `json:"signatureData,omitempty"`
	CreatedAt       string     `json:"createdAt"`
	UpdatedAt       string     `json:"updatedAt"`
}

// VisitListResponse represents a paginated list of visits
type VisitListResponse struct {
	Visits     []VisitResponse `json:"visits"`
	Pagination PaginationInfo  `json:"pagination"`
}

// VisitStatsRequest filters the visit statistics aggregate
type VisitStatsRequest struct {
	UserID    string    `query:"userId" validate:"omitempty,uuid"`
	From      string    `query:"from" validate:"omitempty,datetime=2006-01-02"`
	To        string    `query:"to" validate:"omitempty,datetime=2006-01-02"`
	CompanyID uuid.UUID `query:"-"`
}

// ScoreBucket counts visits carrying a given score
type ScoreBucket struct {
	Score int `json:"score"`
	Count int `json:"count"`
}

// VisitStatsResponse aggregates visit activity over a period
type VisitStatsResponse struct {
	Total              int           `json:"total"`
	AvgScore           float64       `json:"avgScore"`
	AvgDurationMinutes float64       `json:"avgDurationMinutes"`
	ByScore            []ScoreBucket `json:"byScore"`
}
