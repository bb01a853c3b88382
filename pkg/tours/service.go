package tours

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/horeca-prospection/backend/ent"
	"github.com/horeca-prospection/backend/ent/company"
	"github.com/horeca-prospection/backend/ent/tour"
	"github.com/horeca-prospection/backend/ent/tourstep"
	"github.com/horeca-prospection/backend/ent/user"
	"github.com/horeca-prospection/backend/pkg/models"
)

// Service errors mapped to HTTP statuses by the handlers
var (
	ErrNotFound     = errors.New("tour not found")
	ErrStepNotFound = errors.New("tour step not found")
	ErrNotPlanned   = errors.New("tour can only be started from the planned status")
)

// Service handles tour business logic
type Service struct {
	db *ent.Client
}

// NewService creates a new tour service
func NewService(db *ent.Client) *Service {
	return &Service{db: db}
}

// List searches for tours with filters and pagination.
// userID must already be scoped by the caller (reps only see their
// own); CompanyID restricts results to the caller's tenant.
func (s *Service) List(ctx context.Context, req models.TourListRequest) (*models.TourListResponse, error) {
	req.Page, req.Limit = models.PageDefaults(req.Page, req.Limit)

	query := s.db.Tour.Query()

	if req.CompanyID != uuid.Nil {
		query = query.Where(tour.HasCompanyWith(company.IDEQ(req.CompanyID)))
	}
	if req.UserID != "" {
		uid, err := uuid.Parse(req.UserID)
		if err != nil {
			return nil, fmt.Errorf("invalid user id: %w", err)
		}
		query = query.Where(tour.HasUserWith(user.IDEQ(uid)))
	}
	if req.Status != "" {
		query = query.Where(tour.StatusEQ(tour.Status(req.Status)))
	}
	if req.From != "" {
		if from, err := time.Parse("2006-01-02", req.From); err == nil {
			query = query.Where(tour.DateGTE(from))
		}
	}
	if req.To != "" {
		if to, err := time.Parse("2006-01-02", req.To); err == nil {
			query = query.Where(tour.DateLT(to.AddDate(0, 0, 1)))
		}
	}

	total, err := query.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count tours: %w", err)
	}

	offset := (req.Page - 1) * req.Limit

	rows, err := query.
		WithUser().
		WithSteps(func(q *ent.TourStepQuery) {
			q.WithProspect().Order(ent.Asc(tourstep.FieldStepOrder))
		}).
		Limit(req.Limit).
		Offset(offset).
		Order(ent.Desc(tour.FieldDate)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to query tours: %w", err)
	}

	responses := make([]models.TourResponse, len(rows))
	for i, t := range rows {
		responses[i] = toTourResponse(t)
	}

	return &models.TourListResponse{
		Tours:      responses,
		Pagination: models.NewPagination(total, req.Page, req.Limit),
	}, nil
}

// GetByID retrieves a single tour with its ordered steps
func (s *Service) GetByID(ctx context.Context, id uuid.UUID) (*models.TourResponse, error) {
	t, err := s.db.Tour.Query().
		Where(tour.IDEQ(id)).
		WithUser().
		WithSteps(func(q *ent.TourStepQuery) {
			q.WithProspect().Order(ent.Asc(tourstep.FieldStepOrder))
		}).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get tour: %w", err)
	}

	response := toTourResponse(t)
	return &response, nil
}

// OwnerID returns the user id a tour belongs to
func (s *Service) OwnerID(ctx context.Context, id uuid.UUID) (uuid.UUID, error) {
	t, err := s.db.Tour.Query().
		Where(tour.IDEQ(id)).
		WithUser().
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return uuid.UUID{}, ErrNotFound
		}
		return uuid.UUID{}, fmt.Errorf("failed to get tour: %w", err)
	}
	if t.Edges.User == nil {
		return uuid.UUID{}, fmt.Errorf("tour has no owner")
	}
	return t.Edges.User.ID, nil
}

// Create creates a tour and, when prospect ids are given, its initial
// steps with a dense 1..N order, all in one transaction.
func (s *Service) Create(ctx context.Context, companyID, userID uuid.UUID, req models.CreateTourRequest) (*models.TourResponse, error) {
	prospectIDs, err := parseUUIDs(req.ProspectIDs)
	if err != nil {
		return nil, err
	}

	tx, err := s.db.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}

	create := tx.Tour.Create().
		SetUserID(userID)

	if req.Name != "" {
		create = create.SetName(req.Name)
	}
	if companyID != (uuid.UUID{}) {
		create = create.SetCompanyID(companyID)
	}
	if d, err := time.Parse("2006-01-02", req.Date); err == nil {
		create = create.SetDate(d)
	} else if d, err := time.Parse(time.RFC3339, req.Date); err == nil {
		create = create.SetDate(d)
	}

	t, err := create.Save(ctx)
	if err != nil {
		return nil, rollback(tx, fmt.Errorf("failed to create tour: %w", err))
	}

	for i, pid := range prospectIDs {
		_, err := tx.TourStep.Create().
			SetTourID(t.ID).
			SetProspectID(pid).
			SetStepOrder(i + 1).
			Save(ctx)
		if err != nil {
			return nil, rollback(tx, fmt.Errorf("failed to create tour step: %w", err))
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit tour: %w", err)
	}

	return s.GetByID(ctx, t.ID)
}

// Update applies a partial update to a tour's own fields
func (s *Service) Update(ctx context.Context, id uuid.UUID, req models.UpdateTourRequest) (*models.TourResponse, error) {
	update := s.db.Tour.UpdateOneID(id)
	touched := false

	if req.Name != nil {
		update = update.SetName(*req.Name)
		touched = true
	}
	if req.Date != nil {
		if d, err := time.Parse("2006-01-02", *req.Date); err == nil {
			update = update.SetDate(d)
			touched = true
		} else if d, err := time.Parse(time.RFC3339, *req.Date); err == nil {
			update = update.SetDate(d)
			touched = true
		}
	}
	if req.TotalDistanceKm != nil {
		update = update.SetTotalDistanceKm(*req.TotalDistanceKm)
		touched = true
	}
	if req.TotalDurationMinutes != nil {
		update = update.SetTotalDurationMinutes(*req.TotalDurationMinutes)
		touched = true
	}
	if req.RouteData != nil {
		update = update.SetRouteData(req.RouteData)
		touched = true
	}

	if !touched {
		return s.GetByID(ctx, id)
	}

	if _, err := update.Save(ctx); err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to update tour: %w", err)
	}

	return s.GetByID(ctx, id)
}

// Delete removes a tour and its steps
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	tx, err := s.db.Tx(ctx)
	if err != nil {
		return fmt.Errorf("failed to start transaction: %w", err)
	}

	if _, err := tx.TourStep.Delete().Where(tourstep.HasTourWith(tour.IDEQ(id))).Exec(ctx); err != nil {
		return rollback(tx, fmt.Errorf("failed to delete tour steps: %w", err))
	}

	if err := tx.Tour.DeleteOneID(id).Exec(ctx); err != nil {
		if ent.IsNotFound(err) {
			return rollback(tx, ErrNotFound)
		}
		return rollback(tx, fmt.Errorf("failed to delete tour: %w", err))
	}

	return tx.Commit()
}

// Start moves a planned tour to in_progress. Any other starting
// status is rejected.
func (s *Service) Start(ctx context.Context, id uuid.UUID) (*models.TourResponse, error) {
	t, err := s.db.Tour.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get tour: %w", err)
	}

	if t.Status != tour.StatusPlanned {
		return nil, ErrNotPlanned
	}

	err = s.db.Tour.UpdateOneID(id).
		SetStatus(tour.StatusInProgress).
		Exec(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start tour: %w", err)
	}

	return s.GetByID(ctx, id)
}

// Complete marks a tour completed from any status
func (s *Service) Complete(ctx context.Context, id uuid.UUID) (*models.TourResponse, error) {
	err := s.db.Tour.UpdateOneID(id).
		SetStatus(tour.StatusCompleted).
		Exec(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to complete tour: %w", err)
	}

	return s.GetByID(ctx, id)
}

// Cancel marks a tour cancelled
func (s *Service) Cancel(ctx context.Context, id uuid.UUID) (*models.TourResponse, error) {
	err := s.db.Tour.UpdateOneID(id).
		SetStatus(tour.StatusCancelled).
		Exec(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to cancel tour: %w", err)
	}

	return s.GetByID(ctx, id)
}

// AddSteps appends prospects to the end of a tour, keeping the
// 1..N order dense, in one transaction.
func (s *Service) AddSteps(ctx context.Context, id uuid.UUID, req models.AddStepsRequest) (*models.TourResponse, error) {
	prospectIDs, err := parseUUIDs(req.ProspectIDs)
	if err != nil {
		return nil, err
	}

	exists, err := s.db.Tour.Query().Where(tour.IDEQ(id)).Exist(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to check tour: %w", err)
	}
	if !exists {
		return nil, ErrNotFound
	}

	tx, err := s.db.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}

	maxOrder, err := tx.TourStep.Query().
		Where(tourstep.HasTourWith(tour.IDEQ(id))).
		Count(ctx)
	if err != nil {
		return nil, rollback(tx, fmt.Errorf("failed to count tour steps: %w", err))
	}

	for i, pid := range prospectIDs {
		_, err := tx.TourStep.Create().
			SetTourID(id).
			SetProspectID(pid).
			SetStepOrder(maxOrder + i + 1).
			Save(ctx)
		if err != nil {
			return nil, rollback(tx, fmt.Errorf("failed to create tour step: %w", err))
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit tour steps: %w", err)
	}

	return s.GetByID(ctx, id)
}

// UpdateStep updates one step. A step_order change reorders the
// whole tour and keeps the sequence dense.
func (s *Service) UpdateStep(ctx context.Context, tourID, stepID uuid.UUID, req models.UpdateStepRequest) (*models.TourResponse, error) {
	step, err := s.db.TourStep.Query().
		Where(tourstep.IDEQ(stepID), tourstep.HasTourWith(tour.IDEQ(tourID))).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrStepNotFound
		}
		return nil, fmt.Errorf("failed to get tour step: %w", err)
	}

	update := s.db.TourStep.UpdateOneID(stepID)
	touched := false

	if req.Status != nil {
		update = update.SetStatus(tourstep.Status(*req.Status))
		touched = true
		// Marking a step done stamps it unless the caller sent
		// an explicit timestamp.
		if *req.Status == "done" && req.CompletedAt == nil {
			update = update.SetCompletedAt(time.Now())
		}
	}
	if req.CompletedAt != nil {
		if d, err := time.Parse(time.RFC3339, *req.CompletedAt); err == nil {
			update = update.SetCompletedAt(d)
			touched = true
		}
	}

	if touched {
		if _, err := update.Save(ctx); err != nil {
			return nil, fmt.Errorf("failed to update tour step: %w", err)
		}
	}

	if req.StepOrder != nil && *req.StepOrder != step.StepOrder {
		if err := s.moveStep(ctx, tourID, stepID, *req.StepOrder); err != nil {
			return nil, err
		}
	}

	return s.GetByID(ctx, tourID)
}

// DeleteStep removes a step and closes the gap in the order
func (s *Service) DeleteStep(ctx context.Context, tourID, stepID uuid.UUID) (*models.TourResponse, error) {
	step, err := s.db.TourStep.Query().
		Where(tourstep.IDEQ(stepID), tourstep.HasTourWith(tour.IDEQ(tourID))).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrStepNotFound
		}
		return nil, fmt.Errorf("failed to get tour step: %w", err)
	}

	tx, err := s.db.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}

	if err := tx.TourStep.DeleteOneID(stepID).Exec(ctx); err != nil {
		return nil, rollback(tx, fmt.Errorf("failed to delete tour step: %w", err))
	}

	// Shift the steps above the removed slot down by one, lowest
	// first so each update lands in a freshly vacated slot.
	followers, err := tx.TourStep.Query().
		Where(
			tourstep.HasTourWith(tour.IDEQ(tourID)),
			tourstep.StepOrderGT(step.StepOrder),
		).
		Order(ent.Asc(tourstep.FieldStepOrder)).
		All(ctx)
	if err != nil {
		return nil, rollback(tx, fmt.Errorf("failed to load tour steps: %w", err))
	}

	for _, f := range followers {
		err := tx.TourStep.UpdateOneID(f.ID).
			SetStepOrder(f.StepOrder - 1).
			Exec(ctx)
		if err != nil {
			return nil, rollback(tx, fmt.Errorf("failed to reorder tour steps: %w", err))
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit step deletion: %w", err)
	}

	return s.GetByID(ctx, tourID)
}

// moveStep moves one step to a new position and renumbers the rest.
// Orders go through a shifted range first so the unique
// (tour, step_order) index never sees a duplicate mid-transaction.
func (s *Service) moveStep(ctx context.Context, tourID, stepID uuid.UUID, newOrder int) error {
	tx, err := s.db.Tx(ctx)
	if err != nil {
		return fmt.Errorf("failed to start transaction: %w", err)
	}

	steps, err := tx.TourStep.Query().
		Where(tourstep.HasTourWith(tour.IDEQ(tourID))).
		Order(ent.Asc(tourstep.FieldStepOrder)).
		All(ctx)
	if err != nil {
		return rollback(tx, fmt.Errorf("failed to load tour steps: %w", err))
	}

	if newOrder < 1 {
		newOrder = 1
	}
	if newOrder > len(steps) {
		newOrder = len(steps)
	}

	ordered := make([]uuid.UUID, 0, len(steps))
	for _, st := range steps {
		if st.ID != stepID {
			ordered = append(ordered, st.ID)
		}
	}
	ordered = append(ordered[:newOrder-1], append([]uuid.UUID{stepID}, ordered[newOrder-1:]...)...)

	offset := len(steps) + 1
	for i, id := range ordered {
		err := tx.TourStep.UpdateOneID(id).
			SetStepOrder(offset + i).
			Exec(ctx)
		if err != nil {
			return rollback(tx, fmt.Errorf("failed to stage step order: %w", err))
		}
	}
	for i, id := range ordered {
		err := tx.TourStep.UpdateOneID(id).
			SetStepOrder(i + 1).
			Exec(ctx)
		if err != nil {
			return rollback(tx, fmt.Errorf("failed to apply step order: %w", err))
		}
	}

	return tx.Commit()
}

func parseUUIDs(raw []string) ([]uuid.UUID, error) {
	out := make([]uuid.UUID, 0, len(raw))
	for _, r := range raw {
		id, err := uuid.Parse(r)
		if err != nil {
			return nil, fmt.Errorf("invalid prospect id %q: %w", r, err)
		}
		out = append(out, id)
	}
	return out, nil
}

func rollback(tx *ent.Tx, err error) error {
	if rerr := tx.Rollback(); rerr != nil {
		return fmt.Errorf("%w: rollback failed: %v", err, rerr)
	}
	return err
}

func toTourResponse(t *ent.Tour) models.TourResponse {
	resp := models.TourResponse{
		ID:        t.ID,
		Name:      t.Name,
		Date:      t.Date.Format(time.RFC3339),
		Status:    string(t.Status),
		RouteData: t.RouteData,
		CreatedAt: t.CreatedAt.Format(time.RFC3339),
		UpdatedAt: t.UpdatedAt.Format(time.RFC3339),
	}
	if t.TotalDistanceKm != nil {
		resp.TotalDistanceKm = t.TotalDistanceKm
	}
	if t.TotalDurationMinutes != nil {
		resp.TotalDurationMinutes = t.TotalDurationMinutes
	}
	if t.Edges.User != nil {
		resp.UserID = t.Edges.User.ID
		resp.UserName = t.Edges.User.FirstName + " " + t.Edges.User.LastName
	}
	for _, st := range t.Edges.Steps {
		stepResp := models.TourStepResponse{
			ID:        st.ID,
			StepOrder: st.StepOrder,
			Status:    string(st.Status),
		}
		if st.Eta != nil {
			stepResp.Eta = st.Eta.Format(time.RFC3339)
		}
		if st.DistanceFromPreviousKm != nil {
			stepResp.DistanceFromPreviousKm = st.DistanceFromPreviousKm
		}
		if st.DurationFromPreviousMinutes != nil {
			stepResp.DurationFromPreviousMinutes = st.DurationFromPreviousMinutes
		}
		if st.CompletedAt != nil {
			stepResp.CompletedAt = st.CompletedAt.Format(time.RFC3339)
		}
		if st.Edges.Prospect != nil {
			stepResp.ProspectID = st.Edges.Prospect.ID
			stepResp.ProspectName = st.Edges.Prospect.Name
		}
		resp.Steps = append(resp.Steps, stepResp)
	}
	return resp
}
