package stats

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/horeca-prospection/backend/ent"
	"github.com/horeca-prospection/backend/ent/company"
	"github.com/horeca-prospection/backend/ent/prospect"
	"github.com/horeca-prospection/backend/ent/user"
	"github.com/horeca-prospection/backend/ent/visit"
	"github.com/horeca-prospection/backend/pkg/models"
)

const (
	weeklyHistoryWeeks = 12
	topProspectsLimit  = 10
)

// Service computes prospecting statistics. Every query is scoped to
// the caller's company.
type Service struct {
	db *ent.Client
}

// NewService creates a new stats service
func NewService(db *ent.Client) *Service {
	return &Service{db: db}
}

// Overview returns the dashboard numbers: visit totals and score
// average, a per-week visit series for the last twelve weeks, the
// prospect conversion rate and the ten best-rated prospects.
func (s *Service) Overview(ctx context.Context, companyID uuid.UUID, userID *uuid.UUID, from, to time.Time) (*models.OverviewStats, error) {
	visitQuery := s.db.Visit.Query().
		Where(visit.VisitedAtGTE(from), visit.VisitedAtLT(to))
	if companyID != uuid.Nil {
		visitQuery = visitQuery.Where(visit.HasProspectWith(prospect.HasCompanyWith(company.IDEQ(companyID))))
	}
	if userID != nil {
		visitQuery = visitQuery.Where(visit.HasUserWith(user.IDEQ(*userID)))
	}

	visits, err := visitQuery.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to query visits: %w", err)
	}

	var scoreSum, scored int
	weekCounts := make(map[string]int)
	for _, v := range visits {
		if v.Score != nil {
			scoreSum += *v.Score
			scored++
		}
		weekCounts[weekStart(v.VisitedAt)]++
	}

	avgScore := 0.0
	if scored > 0 {
		avgScore = float64(scoreSum) / float64(scored)
	}

	weeks := make([]string, 0, len(weekCounts))
	for w := range weekCounts {
		weeks = append(weeks, w)
	}
	sort.Sort(sort.Reverse(sort.StringSlice(weeks)))
	if len(weeks) > weeklyHistoryWeeks {
		weeks = weeks[:weeklyHistoryWeeks]
	}
	weekly := make([]models.WeekCount, len(weeks))
	for i, w := range weeks {
		weekly[i] = models.WeekCount{Week: w, Count: weekCounts[w]}
	}

	prospectQuery := s.db.Prospect.Query()
	if companyID != uuid.Nil {
		prospectQuery = prospectQuery.Where(prospect.HasCompanyWith(company.IDEQ(companyID)))
	}
	totalProspects, err := prospectQuery.Clone().Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count prospects: %w", err)
	}
	converted, err := prospectQuery.Clone().
		Where(prospect.StatusEQ(prospect.StatusConverted)).
		Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count converted prospects: %w", err)
	}

	conversionRate := 0.0
	if totalProspects > 0 {
		conversionRate = float64(converted) / float64(totalProspects) * 100
	}

	topRows, err := prospectQuery.Clone().
		Where(prospect.NoteAvgGT(0)).
		Order(ent.Desc(prospect.FieldNoteAvg), ent.Desc(prospect.FieldVisitsCount)).
		Limit(topProspectsLimit).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to query top prospects: %w", err)
	}

	top := make([]models.TopProspect, len(topRows))
	for i, p := range topRows {
		top[i] = models.TopProspect{
			ID:          p.ID,
			Name:        p.Name,
			NoteAvg:     p.NoteAvg,
			VisitsCount: p.VisitsCount,
		}
	}

	return &models.OverviewStats{
		TotalVisits:    len(visits),
		AvgScore:       avgScore,
		WeeklyVisits:   weekly,
		ConversionRate: conversionRate,
		TopProspects:   top,
	}, nil
}

// Conversions breaks the company's prospect pipeline down by
// lifecycle status, optionally limited to a creation period.
func (s *Service) Conversions(ctx context.Context, companyID uuid.UUID, from, to time.Time) (*models.ConversionStats, error) {
	query := s.db.Prospect.Query().
		Where(prospect.CreatedAtGTE(from), prospect.CreatedAtLT(to))
	if companyID != uuid.Nil {
		query = query.Where(prospect.HasCompanyWith(company.IDEQ(companyID)))
	}

	rows, err := query.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to query prospects: %w", err)
	}

	counts := make(map[string]int)
	for _, p := range rows {
		counts[string(p.Status)]++
	}

	conversions := make([]models.StatusCount, 0, len(counts))
	for _, status := range []string{"to_visit", "in_progress", "converted", "lost"} {
		if n, ok := counts[status]; ok {
			conversions = append(conversions, models.StatusCount{Status: status, Count: n})
		}
	}

	return &models.ConversionStats{Conversions: conversions}, nil
}

// Heatmap returns the company's geo-located prospects with their
// visit counts, busiest first, for the activity map.
func (s *Service) Heatmap(ctx context.Context, companyID uuid.UUID) (*models.HeatmapStats, error) {
	query := s.db.Prospect.Query().
		Where(prospect.LatitudeNotNil(), prospect.LongitudeNotNil())
	if companyID != uuid.Nil {
		query = query.Where(prospect.HasCompanyWith(company.IDEQ(companyID)))
	}

	rows, err := query.
		Order(ent.Desc(prospect.FieldVisitsCount)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to query prospects: %w", err)
	}

	locations := make([]models.ProspectLocation, len(rows))
	for i, p := range rows {
		locations[i] = models.ProspectLocation{
			ID:          p.ID,
			Name:        p.Name,
			Latitude:    p.Latitude,
			Longitude:   p.Longitude,
			VisitsCount: p.VisitsCount,
			NoteAvg:     p.NoteAvg,
		}
	}

	return &models.HeatmapStats{Locations: locations}, nil
}

// ByUser breaks visit activity down per rep for the whole company,
// most active first.
func (s *Service) ByUser(ctx context.Context, companyID uuid.UUID, from, to time.Time) (*models.TeamStats, error) {
	userQuery := s.db.User.Query().Where(user.IsActiveEQ(true))
	if companyID != uuid.Nil {
		userQuery = userQuery.Where(user.HasCompanyWith(company.IDEQ(companyID)))
	}
	users, err := userQuery.Order(ent.Asc(user.FieldEmail)).All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to query users: %w", err)
	}

	team := make([]models.UserStats, 0, len(users))
	for _, u := range users {
		visits, err := s.db.Visit.Query().
			Where(
				visit.HasUserWith(user.IDEQ(u.ID)),
				visit.VisitedAtGTE(from),
				visit.VisitedAtLT(to),
			).
			All(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to query visits: %w", err)
		}

		var scoreSum, scored int
		for _, v := range visits {
			if v.Score != nil {
				scoreSum += *v.Score
				scored++
			}
		}
		avgScore := 0.0
		if scored > 0 {
			avgScore = float64(scoreSum) / float64(scored)
		}

		team = append(team, models.UserStats{
			UserID:      u.ID,
			UserName:    u.FirstName + " " + u.LastName,
			TotalVisits: len(visits),
			AvgScore:    avgScore,
		})
	}

	sort.SliceStable(team, func(i, j int) bool {
		return team[i].TotalVisits > team[j].TotalVisits
	})

	return &models.TeamStats{UserStats: team}, nil
}

// weekStart formats the Monday of a timestamp's week, mirroring a
// week-truncated date in SQL.
func weekStart(t time.Time) string {
	offset := (int(t.Weekday()) + 6) % 7
	return t.AddDate(0, 0, -offset).Format("2006-01-02")
}
