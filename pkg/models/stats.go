package models

import "github.com/google/uuid"

// WeekCount is one week's visit total, keyed by the Monday of
// that week.
type WeekCount struct {
	Week  string `json:"week"`
	Count int    `json:"count"`
}

// TopProspect is one entry in the best-rated prospects ranking
type TopProspect struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	NoteAvg     float64   `json:"noteAvg"`
	VisitsCount int       `json:"visitsCount"`
}

// OverviewStats summarizes prospecting activity
type OverviewStats struct {
	TotalVisits    int           `json:"totalVisits"`
	AvgScore       float64       `json:"avgScore"`
	WeeklyVisits   []WeekCount   `json:"weeklyVisits"`
	ConversionRate float64       `json:"conversionRate"`
	TopProspects   []TopProspect `json:"topProspects"`
}

// StatusCount is the number of prospects in one lifecycle status
type StatusCount struct {
	Status string `json:"status"`
	Count  int    `json:"count"`
}

// ConversionStats is the prospect pipeline broken down by status
type ConversionStats struct {
	Conversions []StatusCount `json:"conversions"`
}

// ProspectLocation is one geo-located prospect on the activity map
type ProspectLocation struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Latitude    float64   `json:"latitude"`
	Longitude   float64   `json:"longitude"`
	VisitsCount int       `json:"visitsCount"`
	NoteAvg     float64   `json:"noteAvg"`
}

// HeatmapStats is the geographic spread of prospect activity
type HeatmapStats struct {
	Locations []ProspectLocation `json:"locations"`
}

// UserStats summarizes one rep's activity
type UserStats struct {
	UserID      uuid.UUID `json:"userId"`
	UserName    string    `json:"userName"`
	TotalVisits int       `json:"totalVisits"`
	AvgScore    float64   `json:"avgScore"`
}

// TeamStats is the per-user breakdown
type TeamStats struct {
	UserStats []UserStats `json:"userStats"`
}
