package prospects

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"

	"github.com/horeca-prospection/backend/ent"
	"github.com/horeca-prospection/backend/ent/company"
	"github.com/horeca-prospection/backend/ent/prospect"
	"github.com/horeca-prospection/backend/ent/visit"
	"github.com/horeca-prospection/backend/pkg/cache"
	"github.com/horeca-prospection/backend/pkg/models"
	"github.com/horeca-prospection/backend/pkg/phone"
	"github.com/horeca-prospection/backend/pkg/search"
)

const defaultNearbyRadiusKm = 5.0

// Service handles prospect business logic
type Service struct {
	db    *ent.Client
	cache *cache.Client
}

// NewService creates a new prospect service
func NewService(db *ent.Client, cache *cache.Client) *Service {
	return &Service{
		db:    db,
		cache: cache,
	}
}

// List searches for prospects with filters and pagination
func (s *Service) List(ctx context.Context, req models.ProspectListRequest) (*models.ProspectListResponse, error) {
	req.Page, req.Limit = models.PageDefaults(req.Page, req.Limit)

	cacheKey := s.listCacheKey(req)

	if s.cache != nil {
		if cached, err := s.cache.Get(ctx, cacheKey); err == nil && cached != "" {
			var response models.ProspectListResponse
			if err := json.Unmarshal([]byte(cached), &response); err == nil {
				return &response, nil
			}
		}
	}

	query := s.db.Prospect.Query()

	if req.CompanyID != uuid.Nil {
		query = query.Where(prospect.HasCompanyWith(company.IDEQ(req.CompanyID)))
	}
	if req.Status != "" {
		query = query.Where(prospect.StatusEQ(prospect.Status(req.Status)))
	}
	if req.Type != "" {
		query = query.Where(prospect.TypeEQ(prospect.Type(req.Type)))
	}
	if req.City != "" {
		query = query.Where(prospect.CityEqualFold(req.City))
	}
	if req.MinScore != nil {
		query = query.Where(prospect.NoteAvgGTE(*req.MinScore))
	}
	if req.Search != "" {
		// Both sides folded: the stored name_folded column against
		// the folded query, so "creperie" finds "Crêperie" and
		// "crêperie" finds "Creperie".
		term := search.Fold(req.Search)
		query = query.Where(prospect.Or(
			prospect.NameFoldedContainsFold(term),
			prospect.NameContainsFold(req.Search),
			prospect.CityContainsFold(req.Search),
			prospect.AddressContainsFold(req.Search),
		))
	}
	if req.Latitude != nil && req.Longitude != nil && req.RadiusKm != nil {
		query = query.Where(prospect.LatitudeNotNil(), prospect.LongitudeNotNil()).
			Where(withinRadius(*req.Latitude, *req.Longitude, *req.RadiusKm*1000))
	}

	total, err := query.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count prospects: %w", err)
	}

	offset := (req.Page - 1) * req.Limit

	order := s.orderOption(req.Sort, req.Order)

	rows, err := query.
		Limit(req.Limit).
		Offset(offset).
		Order(order).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to query prospects: %w", err)
	}

	responses := make([]models.ProspectResponse, len(rows))
	for i, p := range rows {
		responses[i] = toProspectResponse(p)
	}

	response := &models.ProspectListResponse{
		Prospects:  responses,
		Pagination: models.NewPagination(total, req.Page, req.Limit),
	}

	if s.cache != nil {
		if responseJSON, err := json.Marshal(response); err == nil {
			_ = s.cache.Set(ctx, cacheKey, responseJSON, 5*time.Minute)
		}
	}

	return response, nil
}

// GetByID retrieves a single prospect with its visit history,
// newest visit first.
func (s *Service) GetByID(ctx context.Context, id uuid.UUID) (*models.ProspectResponse, error) {
	p, err := s.db.Prospect.Query().
		Where(prospect.IDEQ(id)).
		WithVisits(func(q *ent.VisitQuery) {
			q.WithUser().Order(ent.Desc(visit.FieldVisitedAt))
		}).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get prospect: %w", err)
	}

	response := toProspectResponse(p)
	response.Visits = toProspectVisits(p.Edges.Visits)
	return &response, nil
}

func toProspectVisits(rows []*ent.Visit) []models.ProspectVisit {
	if len(rows) == 0 {
		return nil
	}
	visits := make([]models.ProspectVisit, len(rows))
	for i, v := range rows {
		pv := models.ProspectVisit{
			ID:        v.ID,
			VisitedAt: v.VisitedAt.Format(time.RFC3339),
			Objective: v.Objective,
			Summary:   v.Summary,
			Score:     v.Score,
		}
		if u := v.Edges.User; u != nil {
			pv.UserID = u.ID
			pv.UserName = u.FirstName + " " + u.LastName
		}
		visits[i] = pv
	}
	return visits
}

// Create creates a new prospect
func (s *Service) Create(ctx context.Context, companyID, creatorID uuid.UUID, req models.CreateProspectRequest) (*models.ProspectResponse, error) {
	country := req.Country
	if country == "" {
		country = "France"
	}

	create := s.db.Prospect.Create().
		SetName(req.Name).
		SetNameFolded(search.Fold(req.Name)).
		SetCountry(country).
		SetCreatorID(creatorID)

	if companyID != (uuid.UUID{}) {
		create = create.SetCompanyID(companyID)
	}
	if req.Type != "" {
		create = create.SetType(prospect.Type(req.Type))
	}
	if req.Status != "" {
		create = create.SetStatus(prospect.Status(req.Status))
	}
	if req.Address != "" {
		create = create.SetAddress(req.Address)
	}
	if req.PostalCode != "" {
		create = create.SetPostalCode(req.PostalCode)
	}
	if req.City != "" {
		create = create.SetCity(req.City)
	}
	if req.Phone != "" {
		create = create.SetPhone(phone.NormalizeOrKeep(req.Phone, "FR"))
	}
	if req.Email != "" {
		create = create.SetEmail(req.Email)
	}
	if req.Website != "" {
		create = create.SetWebsite(req.Website)
	}
	if req.ManagerName != "" {
		create = create.SetManagerName(req.ManagerName)
	}
	if req.OpeningHours != nil {
		create = create.SetOpeningHours(req.OpeningHours)
	}
	if req.Latitude != nil {
		create = create.SetLatitude(*req.Latitude)
	}
	if req.Longitude != nil {
		create = create.SetLongitude(*req.Longitude)
	}
	if req.GooglePlaceID != "" {
		create = create.SetGooglePlaceID(req.GooglePlaceID)
	}

	p, err := create.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create prospect: %w", err)
	}

	s.invalidateListCache(ctx)

	response := toProspectResponse(p)
	return &response, nil
}

// Update applies a partial update. When no recognized field is set
// the stored prospect is returned unchanged.
func (s *Service) Update(ctx context.Context, id uuid.UUID, req models.UpdateProspectRequest) (*models.ProspectResponse, error) {
	update := s.db.Prospect.UpdateOneID(id)
	touched := false

	if req.Name != nil {
		update = update.SetName(*req.Name).SetNameFolded(search.Fold(*req.Name))
		touched = true
	}
	if req.Type != nil {
		update = update.SetType(prospect.Type(*req.Type))
		touched = true
	}
	if req.Status != nil {
		update = update.SetStatus(prospect.Status(*req.Status))
		touched = true
	}
	if req.Address != nil {
		update = update.SetAddress(*req.Address)
		touched = true
	}
	if req.PostalCode != nil {
		update = update.SetPostalCode(*req.PostalCode)
		touched = true
	}
	if req.City != nil {
		update = update.SetCity(*req.City)
		touched = true
	}
	if req.Country != nil {
		update = update.SetCountry(*req.Country)
		touched = true
	}
	if req.Phone != nil {
		update = update.SetPhone(phone.NormalizeOrKeep(*req.Phone, "FR"))
		touched = true
	}
	if req.Email != nil {
		update = update.SetEmail(*req.Email)
		touched = true
	}
	if req.Website != nil {
		update = update.SetWebsite(*req.Website)
		touched = true
	}
	if req.ManagerName != nil {
		update = update.SetManagerName(*req.ManagerName)
		touched = true
	}
	if req.OpeningHours != nil {
		update = update.SetOpeningHours(req.OpeningHours)
		touched = true
	}
	if req.Latitude != nil {
		update = update.SetLatitude(*req.Latitude)
		touched = true
	}
	if req.Longitude != nil {
		update = update.SetLongitude(*req.Longitude)
		touched = true
	}
	if req.GooglePlaceID != nil {
		update = update.SetGooglePlaceID(*req.GooglePlaceID)
		touched = true
	}

	if !touched {
		return s.GetByID(ctx, id)
	}

	p, err := update.Save(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to update prospect: %w", err)
	}

	s.invalidateListCache(ctx)

	response := toProspectResponse(p)
	return &response, nil
}

// Delete removes a prospect
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	err := s.db.Prospect.DeleteOneID(id).Exec(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to delete prospect: %w", err)
	}

	s.invalidateListCache(ctx)
	return nil
}

// Nearby returns prospects within a radius of a point, closest first.
// Uses PostGIS geography so distances are meters on the sphere.
func (s *Service) Nearby(ctx context.Context, req models.NearbyRequest) ([]models.ProspectResponse, error) {
	radiusKm := req.RadiusKm
	if radiusKm <= 0 {
		radiusKm = defaultNearbyRadiusKm
	}
	limit := req.Limit
	if limit <= 0 {
		limit = 50
	}
	radiusMeters := radiusKm * 1000

	query := s.db.Prospect.Query().
		Where(prospect.LatitudeNotNil(), prospect.LongitudeNotNil()).
		Where(withinRadius(req.Latitude, req.Longitude, radiusMeters)).
		Order(func(sel *sql.Selector) {
			sel.OrderExpr(sql.Expr(fmt.Sprintf(
				"ST_Distance(ST_MakePoint(longitude, latitude)::geography, ST_MakePoint(%f, %f)::geography)",
				req.Longitude, req.Latitude)))
		}).
		Limit(limit)

	rows, err := query.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to query nearby prospects: %w", err)
	}

	responses := make([]models.ProspectResponse, len(rows))
	for i, p := range rows {
		resp := toProspectResponse(p)
		if p.Latitude != 0 || p.Longitude != 0 {
			d := haversineKm(req.Latitude, req.Longitude, p.Latitude, p.Longitude)
			resp.DistanceKm = &d
		}
		responses[i] = resp
	}

	return responses, nil
}

// withinRadius builds a PostGIS geography predicate matching rows
// within radiusMeters of the given point.
func withinRadius(lat, lng, radiusMeters float64) func(*sql.Selector) {
	return func(sel *sql.Selector) {
		sel.Where(sql.P(func(b *sql.Builder) {
			b.WriteString("ST_DWithin(")
			b.WriteString("ST_MakePoint(longitude, latitude)::geography, ")
			b.WriteString("ST_MakePoint(")
			b.Arg(lng).Comma().Arg(lat)
			b.WriteString(")::geography, ")
			b.Arg(radiusMeters)
			b.WriteString(")")
		}))
	}
}

// MarkEnriched stores the AI enrichment result on a prospect
func (s *Service) MarkEnriched(ctx context.Context, id uuid.UUID, data map[string]interface{}, score float64) error {
	err := s.db.Prospect.UpdateOneID(id).
		SetAiData(data).
		SetAiScore(score).
		SetAiEnrichedAt(time.Now()).
		Exec(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to mark prospect enriched: %w", err)
	}

	s.invalidateListCache(ctx)
	return nil
}

func (s *Service) orderOption(sort, dir string) prospect.OrderOption {
	field := prospect.FieldCreatedAt
	switch sort {
	case "name":
		field = prospect.FieldName
	case "city":
		field = prospect.FieldCity
	case "status":
		field = prospect.FieldStatus
	case "note_avg":
		field = prospect.FieldNoteAvg
	case "visits_count":
		field = prospect.FieldVisitsCount
	}

	if dir == "asc" {
		return ent.Asc(field)
	}
	return ent.Desc(field)
}

func (s *Service) listCacheKey(req models.ProspectListRequest) string {
	minScore := ""
	if req.MinScore != nil {
		minScore = fmt.Sprintf("%g", *req.MinScore)
	}
	geo := ""
	if req.Latitude != nil && req.Longitude != nil && req.RadiusKm != nil {
		geo = fmt.Sprintf("%g,%g,%g", *req.Latitude, *req.Longitude, *req.RadiusKm)
	}
	return fmt.Sprintf("prospects:list:%s:%s:%s:%s:%s:%s:%s:%s:%s:%d:%d",
		req.CompanyID, req.Status, req.Type, req.City, req.Search, minScore, geo, req.Sort, req.Order, req.Page, req.Limit)
}

func (s *Service) invalidateListCache(ctx context.Context) {
	if s.cache == nil {
		return
	}
	_ = s.cache.DeletePattern(ctx, "prospects:list:*")
}

func toProspectResponse(p *ent.Prospect) models.ProspectResponse {
	resp := models.ProspectResponse{
		ID:            p.ID,
		Name:          p.Name,
		Type:          string(p.Type),
		Address:       p.Address,
		PostalCode:    p.PostalCode,
		City:          p.City,
		Country:       p.Country,
		Phone:         p.Phone,
		Email:         p.Email,
		Website:       p.Website,
		ManagerName:   p.ManagerName,
		OpeningHours:  p.OpeningHours,
		Status:        string(p.Status),
		NoteAvg:       p.NoteAvg,
		VisitsCount:   p.VisitsCount,
		GooglePlaceID: p.GooglePlaceID,
		AIData:        p.AiData,
		CreatedAt:     p.CreatedAt.Format(time.RFC3339),
		UpdatedAt:     p.UpdatedAt.Format(time.RFC3339),
	}
	if p.Latitude != 0 || p.Longitude != 0 {
		lat, lng := p.Latitude, p.Longitude
		resp.Latitude = &lat
		resp.Longitude = &lng
	}
	if p.AiEnrichedAt != nil {
		resp.AIEnrichedAt = p.AiEnrichedAt.Format(time.RFC3339)
		score := p.AiScore
		resp.AIScore = &score
	}
	return resp
}
