package visits

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/horeca-prospection/backend/ent"
	"github.com/horeca-prospection/backend/ent/company"
	"github.com/horeca-prospection/backend/ent/prospect"
	"github.com/horeca-prospection/backend/ent/tour"
	"github.com/horeca-prospection/backend/ent/user"
	"github.com/horeca-prospection/backend/ent/visit"
	"github.com/horeca-prospection/backend/pkg/cache"
	"github.com/horeca-prospection/backend/pkg/models"
)

// ErrNotFound is returned when a visit does not exist
var ErrNotFound = errors.New("visit not found")

// ErrProspectNotFound is returned when the target prospect does not exist
var ErrProspectNotFound = errors.New("prospect not found")

// Service handles visit business logic
type Service struct {
	db    *ent.Client
	cache *cache.Client
}

// NewService creates a new visit service
func NewService(db *ent.Client, cache *cache.Client) *Service {
	return &Service{
		db:    db,
		cache: cache,
	}
}

// List searches for visits with filters and pagination, newest first.
// userID must already be scoped by the caller (reps only see their
// own); CompanyID restricts results to the caller's tenant.
func (s *Service) List(ctx context.Context, req models.VisitListRequest) (*models.VisitListResponse, error) {
	req.Page, req.Limit = models.PageDefaults(req.Page, req.Limit)

	query := s.db.Visit.Query()

	if req.CompanyID != uuid.Nil {
		query = query.Where(visit.HasProspectWith(prospect.HasCompanyWith(company.IDEQ(req.CompanyID))))
	}
	if req.ProspectID != "" {
		pid, err := uuid.Parse(req.ProspectID)
		if err != nil {
			return nil, fmt.Errorf("invalid prospect id: %w", err)
		}
		query = query.Where(visit.HasProspectWith(prospect.IDEQ(pid)))
	}
	if req.UserID != "" {
		uid, err := uuid.Parse(req.UserID)
		if err != nil {
			return nil, fmt.Errorf("invalid user id: %w", err)
		}
		query = query.Where(visit.HasUserWith(user.IDEQ(uid)))
	}
	if req.TourID != "" {
		tid, err := uuid.Parse(req.TourID)
		if err != nil {
			return nil, fmt.Errorf("invalid tour id: %w", err)
		}
		query = query.Where(visit.HasTourWith(tour.IDEQ(tid)))
	}
	if req.MinScore != nil {
		query = query.Where(visit.ScoreGTE(*req.MinScore))
	}
	if req.From != "" {
		from, err := time.Parse("2006-01-02", req.From)
		if err == nil {
			query = query.Where(visit.VisitedAtGTE(from))
		}
	}
	if req.To != "" {
		to, err := time.Parse("2006-01-02", req.To)
		if err == nil {
			query = query.Where(visit.VisitedAtLT(to.AddDate(0, 0, 1)))
		}
	}

	total, err := query.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count visits: %w", err)
	}

	offset := (req.Page - 1) * req.Limit

	rows, err := query.
		WithProspect().
		WithUser().
		WithTour().
		Limit(req.Limit).
		Offset(offset).
		Order(ent.Desc(visit.FieldVisitedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to query visits: %w", err)
	}

	responses := make([]models.VisitResponse, len(rows))
	for i, v := range rows {
		responses[i] = toVisitResponse(v)
	}

	return &models.VisitListResponse{
		Visits:     responses,
		Pagination: models.NewPagination(total, req.Page, req.Limit),
	}, nil
}

// Stats aggregates visit activity over a period: total count, score
// and duration averages, and a per-score histogram.
func (s *Service) Stats(ctx context.Context, req models.VisitStatsRequest) (*models.VisitStatsResponse, error) {
	query := s.db.Visit.Query()

	if req.CompanyID != uuid.Nil {
		query = query.Where(visit.HasProspectWith(prospect.HasCompanyWith(company.IDEQ(req.CompanyID))))
	}
	if req.UserID != "" {
		uid, err := uuid.Parse(req.UserID)
		if err != nil {
			return nil, fmt.Errorf("invalid user id: %w", err)
		}
		query = query.Where(visit.HasUserWith(user.IDEQ(uid)))
	}
	if req.From != "" {
		if from, err := time.Parse("2006-01-02", req.From); err == nil {
			query = query.Where(visit.VisitedAtGTE(from))
		}
	}
	if req.To != "" {
		if to, err := time.Parse("2006-01-02", req.To); err == nil {
			query = query.Where(visit.VisitedAtLT(to.AddDate(0, 0, 1)))
		}
	}

	rows, err := query.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to query visits: %w", err)
	}

	resp := &models.VisitStatsResponse{Total: len(rows)}

	scoreCounts := make(map[int]int)
	var scoreSum, scored int
	var durationSum, timed int
	for _, v := range rows {
		if v.Score != nil {
			scoreSum += *v.Score
			scored++
			scoreCounts[*v.Score]++
		}
		if v.DurationMinutes != nil {
			durationSum += *v.DurationMinutes
			timed++
		}
	}
	if scored > 0 {
		resp.AvgScore = float64(scoreSum) / float64(scored)
	}
	if timed > 0 {
		resp.AvgDurationMinutes = float64(durationSum) / float64(timed)
	}
	for score := 1; score <= 5; score++ {
		if count, ok := scoreCounts[score]; ok {
			resp.ByScore = append(resp.ByScore, models.ScoreBucket{Score: score, Count: count})
		}
	}

	return resp, nil
}

// GetByID retrieves a single visit by ID
func (s *Service) GetByID(ctx context.Context, id uuid.UUID) (*models.VisitResponse, error) {
	v, err := s.db.Visit.Query().
		Where(visit.IDEQ(id)).
		WithProspect().
		WithUser().
		WithTour().
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get visit: %w", err)
	}

	response := toVisitResponse(v)
	return &response, nil
}

// OwnerID returns the user id that recorded a visit
func (s *Service) OwnerID(ctx context.Context, id uuid.UUID) (uuid.UUID, error) {
	v, err := s.db.Visit.Query().
		Where(visit.IDEQ(id)).
		WithUser().
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return uuid.UUID{}, ErrNotFound
		}
		return uuid.UUID{}, fmt.Errorf("failed to get visit: %w", err)
	}
	if v.Edges.User == nil {
		return uuid.UUID{}, fmt.Errorf("visit has no owner")
	}
	return v.Edges.User.ID, nil
}

// Create records a visit and synchronously recomputes the prospect's
// aggregate score and visit count.
func (s *Service) Create(ctx context.Context, userID uuid.UUID, req models.CreateVisitRequest) (*models.VisitResponse, error) {
	prospectID, err := uuid.Parse(req.ProspectID)
	if err != nil {
		return nil, fmt.Errorf("invalid prospect id: %w", err)
	}

	exists, err := s.db.Prospect.Query().Where(prospect.IDEQ(prospectID)).Exist(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to check prospect: %w", err)
	}
	if !exists {
		return nil, ErrProspectNotFound
	}

	create := s.db.Visit.Create().
		SetProspectID(prospectID).
		SetUserID(userID)

	if req.TourID != "" {
		tourID, err := uuid.Parse(req.TourID)
		if err != nil {
			return nil, fmt.Errorf("invalid tour id: %w", err)
		}
		create = create.SetTourID(tourID)
	}
	if req.VisitedAt != "" {
		if d, err := time.Parse(time.RFC3339, req.VisitedAt); err == nil {
			create = create.SetVisitedAt(d)
		}
	}
	if req.DurationMinutes != nil {
		create = create.SetDurationMinutes(*req.DurationMinutes)
	}
	if req.Objective != "" {
		create = create.SetObjective(req.Objective)
	}
	if req.Summary != "" {
		create = create.SetSummary(req.Summary)
	}
	if req.Score != nil {
		create = create.SetScore(*req.Score)
	}
	if req.SignedBy != "" {
		create = create.SetSignedBy(req.SignedBy)
	}
	if req.SignatureData != "" {
		create = create.SetSignatureData(req.SignatureData)
	}

	v, err := create.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create visit: %w", err)
	}

	if err := s.RecomputeProspectStats(ctx, prospectID); err != nil {
		return nil, err
	}

	s.invalidateProspectCache(ctx)

	return s.GetByID(ctx, v.ID)
}

// Update applies a partial update and recomputes the prospect stats
func (s *Service) Update(ctx context.Context, id uuid.UUID, req models.UpdateVisitRequest) (*models.VisitResponse, error) {
	v, err := s.db.Visit.Query().
		Where(visit.IDEQ(id)).
		WithProspect().
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get visit: %w", err)
	}

	update := s.db.Visit.UpdateOneID(id)
	touched := false

	if req.VisitedAt != nil {
		if d, err := time.Parse(time.RFC3339, *req.VisitedAt); err == nil {
			update = update.SetVisitedAt(d)
			touched = true
		}
	}
	if req.DurationMinutes != nil {
		update = update.SetDurationMinutes(*req.DurationMinutes)
		touched = true
	}
	if req.Objective != nil {
		update = update.SetObjective(*req.Objective)
		touched = true
	}
	if req.Summary != nil {
		update = update.SetSummary(*req.Summary)
		touched = true
	}
	if req.Score != nil {
		update = update.SetScore(*req.Score)
		touched = true
	}
	if req.SignedBy != nil {
		update = update.SetSignedBy(*req.SignedBy)
		touched = true
	}
	if req.SignatureData != nil {
		update = update.SetSignatureData(*req.SignatureData)
		touched = true
	}

	if !touched {
		return s.GetByID(ctx, id)
	}

	if _, err := update.Save(ctx); err != nil {
		return nil, fmt.Errorf("failed to update visit: %w", err)
	}

	if v.Edges.Prospect != nil {
		if err := s.RecomputeProspectStats(ctx, v.Edges.Prospect.ID); err != nil {
			return nil, err
		}
	}

	s.invalidateProspectCache(ctx)

	return s.GetByID(ctx, id)
}

// Delete removes a visit and recomputes the prospect stats
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	v, err := s.db.Visit.Query().
		Where(visit.IDEQ(id)).
		WithProspect().
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to get visit: %w", err)
	}

	if err := s.db.Visit.DeleteOneID(id).Exec(ctx); err != nil {
		return fmt.Errorf("failed to delete visit: %w", err)
	}

	if v.Edges.Prospect != nil {
		if err := s.RecomputeProspectStats(ctx, v.Edges.Prospect.ID); err != nil {
			return err
		}
	}

	s.invalidateProspectCache(ctx)
	return nil
}

// RecomputeProspectStats rewrites a prospect's visits_count and
// note_avg from its visits' scores. Shared by the write path and
// the nightly reconciliation job.
func (s *Service) RecomputeProspectStats(ctx context.Context, prospectID uuid.UUID) error {
	rows, err := s.db.Visit.Query().
		Where(visit.HasProspectWith(prospect.IDEQ(prospectID))).
		All(ctx)
	if err != nil {
		return fmt.Errorf("failed to load visits for stats: %w", err)
	}

	var sum, scored int
	for _, v := range rows {
		if v.Score != nil {
			sum += *v.Score
			scored++
		}
	}

	avg := 0.0
	if scored > 0 {
		avg = float64(sum) / float64(scored)
	}

	err = s.db.Prospect.UpdateOneID(prospectID).
		SetVisitsCount(len(rows)).
		SetNoteAvg(avg).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to update prospect stats: %w", err)
	}

	return nil
}

func (s *Service) invalidateProspectCache(ctx context.Context) {
	if s.cache == nil {
		return
	}
	_ = s.cache.DeletePattern(ctx, "prospects:list:*")
}

func toVisitResponse(v *ent.Visit) models.VisitResponse {
	resp := models.VisitResponse{
		ID:            v.ID,
		VisitedAt:     v.VisitedAt.Format(time.RFC3339),
		Objective:     v.Objective,
		Summary:       v.Summary,
		Score:         v.Score,
		SignedBy:      v.SignedBy,
		SignatureData: v.SignatureData,
		CreatedAt:     v.CreatedAt.Format(time.RFC3339),
		UpdatedAt:     v.UpdatedAt.Format(time.RFC3339),
	}
	if v.DurationMinutes != nil {
		resp.DurationMinutes = v.DurationMinutes
	}
	if v.Edges.Prospect != nil {
		resp.ProspectID = v.Edges.Prospect.ID
		resp.ProspectName = v.Edges.Prospect.Name
	}
	if v.Edges.User != nil {
		resp.UserID = v.Edges.User.ID
		resp.UserName = v.Edges.User.FirstName + " " + v.Edges.User.LastName
	}
	if v.Edges.Tour != nil {
		id := v.Edges.Tour.ID
		resp.TourID = &id
	}
	return resp
}
