package models

import "github.com/google/uuid"

// ProspectListRequest represents prospect listing filters. CompanyID
// is filled in from the authenticated user, never from the query.
// Latitude, longitude and radiusKm together narrow the list to a
// geographic circle.
type ProspectListRequest struct {
	Status    string    `query:"status" validate:"omitempty,oneof=to_visit in_progress converted lost"`
	Type      string    `query:"type" validate:"omitempty,oneof=hotel restaurant traiteur ecole hopital autre"`
	City      string    `query:"city"`
	Search    string    `query:"search"`
	MinScore  *float64  `query:"minScore" validate:"omitempty,min=0,max=5"`
	Latitude  *float64  `query:"latitude" validate:"omitempty,min=-90,max=90"`
	Longitude *float64  `query:"longitude" validate:"omitempty,min=-180,max=180"`
	RadiusKm  *float64  `query:"radiusKm" validate:"omitempty,min=0.1,max=100"`
	Sort      string    `query:"sort" validate:"omitempty,oneof=name city status note_avg visits_count created_at"`
	Order     string    `query:"order" validate:"omitempty,oneof=asc desc"`
	Page      int       `query:"page"`
	Limit     int       `query:"limit"`
	CompanyID uuid.UUID `query:"-"`
}

// NearbyRequest represents a geographic radius search
type NearbyRequest struct {
	Latitude  float64 `query:"lat" validate:"required,min=-90,max=90"`
	Longitude float64 `query:"lng" validate:"required,min=-180,max=180"`
	RadiusKm  float64 `query:"radius" validate:"omitempty,min=0.1,max=100"`
	Limit     int     `query:"limit"`
}

// CreateProspectRequest represents a prospect creation request
type CreateProspectRequest struct {
	Name          string                 `json:"name" validate:"required,min=2"`
	Type          string                 `json:"type" validate:"omitempty,oneof=hotel restaurant traiteur ecole hopital autre"`
	Address       string                 `json:"address"`
	PostalCode    string                 `json:"postalCode"`
	City          string                 `json:"city"`
	Country       string                 `json:"country"`
	Phone         string                 `json:"phone"`
	Email         string                 `json:"email" validate:"omitempty,email"`
	Website       string                 `json:"website" validate:"omitempty,url"`
	ManagerName   string                 `json:"managerName"`
	OpeningHours  map[string]interface{} `json:"openingHours"`
	Status        string                 `json:"status" validate:"omitempty,oneof=to_visit in_progress converted lost"`
	Latitude      *float64               `json:"latitude" validate:"omitempty,min=-90,max=90"`
	Longitude     *float64               `json:"longitude" validate:"omitempty,min=-180,max=180"`
	GooglePlaceID string                 `json:"googlePlaceId"`
}

// UpdateProspectRequest represents a partial prospect update.
// Pointer fields distinguish "absent" from "set to zero value".
type UpdateProspectRequest struct {
	Name          *string                `json:"name" validate:"omitempty,min=2"`
	Type          *string                `json:"type" validate:"omitempty,oneof=hotel restaurant traiteur ecole hopital autre"`
	Address       *string                `json:"address"`
	PostalCode    *string                `json:"postalCode"`
	City          *string                `json:"city"`
	Country       *string                `json:"country"`
	Phone         *string                `json:"phone"`
	Email         *string                `json:"email" validate:"omitempty,email"`
	Website       *string                `json:"website" validate:"omitempty,url"`
	ManagerName   *string                `json:"managerName"`
	OpeningHours  map[string]interface{} `json:"openingHours"`
	Status        *string                `json:"status" validate:"omitempty,oneof=to_visit in_progress converted lost"`
	Latitude      *float64               `json:"latitude" validate:"omitempty,min=-90,max=90"`
	Longitude     *float64               `json:"longitude" validate:"omitempty,min=-180,max=180"`
	GooglePlaceID *string                `json:"googlePlaceId"`
}

// ProspectResponse represents a single prospect in API responses
type ProspectResponse struct {
	ID            uuid.UUID              `json:"id"`
	Name          string                 `json:"name"`
	Type          string                 `json:"type,omitempty"`
	Address       string                 `json:"address,omitempty"`
	PostalCode    string                 `json:"postalCode,omitempty"`
	City          string                 `json:"city,omitempty"`
	Country       string                 `json:"country"`
	Phone         string                 `json:"phone,omitempty"`
	Email         string                 `json:"email,omitempty"`
	Website       string                 `json:"website,omitempty"`
	ManagerName   string                 `json:"managerName,omitempty"`
	OpeningHours  map[string]interface{} `json:"openingHours,omitempty"`
	Status        string                 `json:"status"`
	NoteAvg       float64                `json:"noteAvg"`
	VisitsCount   int                    `json:"visitsCount"`
	Latitude      *float64               `json:"latitude,omitempty"`
	Longitude     *float64               `json:"longitude,omitempty"`
	GooglePlaceID string                 `json:"googlePlaceId,omitempty"`
	AIData        map[string]interface{} `json:"aiData,omitempty"`
	AIEnrichedAt  string                 `json:"aiEnrichedAt,omitempty"`
	AIScore       *float64               `json:"aiScore,omitempty"`
	DistanceKm    *float64               `json:"distanceKm,omitempty"`
	Visits        []ProspectVisit        `json:"visits,omitempty"`
	CreatedAt     string                 `json:"createdAt"`
	UpdatedAt     string                 `json:"updatedAt"`
}

// ProspectVisit is the visit history embedded in a prospect detail
type ProspectVisit struct {
	ID        uuid.UUID `json:"id"`
	VisitedAt string    `json:"visitedAt"`
	Objective string    `json:"objective,omitempty"`
	Summary   string    `json:"summary,omitempty"`
	Score     *int      `json:"score,omitempty"`
	UserID    uuid.UUID `json:"userId,omitempty"`
	UserName  string    `json:"userName,omitempty"`
}

// ProspectListResponse represents a paginated list of prospects
type ProspectListResponse struct {
	Prospects  []ProspectResponse `json:"prospects"`
	Pagination PaginationInfo     `json:"pagination"`
}

// PresignRequest asks for a pre-signed upload URL for an attachment
type PresignRequest struct {
	FileName    string `json:"fileName" validate:"required"`
	ContentType string `json:"contentType" validate:"required"`
	OwnerType   string `json:"ownerType" validate:"required,oneof=prospect visit"`
	OwnerID     string `json:"ownerId" validate:"required,uuid"`
}

// PresignResponse carries the pre-signed S3 upload URL
type PresignResponse struct {
	UploadURL string `json:"uploadUrl"`
	Key       string `json:"key"`
	ExpiresIn int    `json:"expiresIn"`
}
