package visits

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/horeca-prospection/backend/ent"
	"github.com/horeca-prospection/backend/ent/enttest"
	"github.com/horeca-prospection/backend/ent/prospect"
	"github.com/horeca-prospection/backend/pkg/cache"
	"github.com/horeca-prospection/backend/pkg/models"

	_ "github.com/mattn/go-sqlite3"
)

func setupTestService(t *testing.T) (*Service, *ent.Client) {
	client := enttest.Open(t, "sqlite3", "file:ent?mode=memory&cache=shared&_fk=1")
	t.Cleanup(func() { client.Close() })

	mr := miniredis.RunT(t)
	cacheClient, err := cache.NewClient("redis://" + mr.Addr())
	require.NoError(t, err)
	t.Cleanup(func() { cacheClient.Close() })

	return NewService(client, cacheClient), client
}

func createTestUser(t *testing.T, client *ent.Client) *ent.User {
	u, err := client.User.Create().
		SetEmail(uuid.NewString() + "@test.fr").
		SetPasswordHash("x").
		Save(context.Background())
	require.NoError(t, err)
	return u
}

func createTestProspect(t *testing.T, client *ent.Client, creatorID uuid.UUID, status prospect.Status) *ent.Prospect {
	p, err := client.Prospect.Create().
		SetName("Le Bistrot " + uuid.NewString()[:8]).
		SetStatus(status).
		SetCreatorID(creatorID).
		Save(context.Background())
	require.NoError(t, err)
	return p
}

func intPtr(n int) *int { return &n }

func TestCreate_RecomputesProspectStats(t *testing.T) {
	service, client := setupTestService(t)
	ctx := context.Background()
	user := createTestUser(t, client)
	p := createTestProspect(t, client, user.ID, prospect.StatusToVisit)

	resp, err := service.Create(ctx, user.ID, models.CreateVisitRequest{
		ProspectID: p.ID.String(),
		Objective:  "Présentation de la gamme",
		Summary:    "Bon premier contact",
		Score:      intPtr(4),
	})
	require.NoError(t, err)

	assert.Equal(t, p.ID, resp.ProspectID)
	assert.Equal(t, user.ID, resp.UserID)
	assert.Equal(t, "Présentation de la gamme", resp.Objective)
	require.NotNil(t, resp.Score)
	assert.Equal(t, 4, *resp.Score)

	updated := client.Prospect.GetX(ctx, p.ID)
	assert.Equal(t, 1, updated.VisitsCount)
	assert.Equal(t, 4.0, updated.NoteAvg)
}

func TestCreate_LeavesProspectStatusAlone(t *testing.T) {
	service, client := setupTestService(t)
	ctx := context.Background()
	user := createTestUser(t, client)
	p := createTestProspect(t, client, user.ID, prospect.StatusToVisit)

	// Lifecycle changes only happen through prospect updates, never
	// as a side effect of recording a visit.
	_, err := service.Create(ctx, user.ID, models.CreateVisitRequest{
		ProspectID: p.ID.String(),
		Score:      intPtr(5),
	})
	require.NoError(t, err)

	updated := client.Prospect.GetX(ctx, p.ID)
	assert.Equal(t, prospect.StatusToVisit, updated.Status)
}

func TestCreate_UnknownProspect(t *testing.T) {
	service, client := setupTestService(t)
	user := createTestUser(t, client)

	_, err := service.Create(context.Background(), user.ID, models.CreateVisitRequest{
		ProspectID: uuid.NewString(),
	})
	assert.ErrorIs(t, err, ErrProspectNotFound)
}

func TestCreate_AveragesOnlyScoredVisits(t *testing.T) {
	service, client := setupTestService(t)
	ctx := context.Background()
	user := createTestUser(t, client)
	p := createTestProspect(t, client, user.ID, prospect.StatusInProgress)

	_, err := service.Create(ctx, user.ID, models.CreateVisitRequest{
		ProspectID: p.ID.String(),
		Score:      intPtr(3),
	})
	require.NoError(t, err)

	_, err = service.Create(ctx, user.ID, models.CreateVisitRequest{
		ProspectID: p.ID.String(),
		Score:      intPtr(5),
	})
	require.NoError(t, err)

	// Visit without a score counts toward visits_count but not the average
	_, err = service.Create(ctx, user.ID, models.CreateVisitRequest{
		ProspectID: p.ID.String(),
		Summary:    "Responsable absent",
	})
	require.NoError(t, err)

	updated := client.Prospect.GetX(ctx, p.ID)
	assert.Equal(t, 3, updated.VisitsCount)
	assert.Equal(t, 4.0, updated.NoteAvg)
}

func TestUpdate_RecomputesStats(t *testing.T) {
	service, client := setupTestService(t)
	ctx := context.Background()
	user := createTestUser(t, client)
	p := createTestProspect(t, client, user.ID, prospect.StatusInProgress)

	created, err := service.Create(ctx, user.ID, models.CreateVisitRequest{
		ProspectID: p.ID.String(),
		Score:      intPtr(2),
	})
	require.NoError(t, err)

	_, err = service.Update(ctx, created.ID, models.UpdateVisitRequest{
		Score: intPtr(5),
	})
	require.NoError(t, err)

	updated := client.Prospect.GetX(ctx, p.ID)
	assert.Equal(t, 5.0, updated.NoteAvg)
}

func TestDelete_RecomputesStats(t *testing.T) {
	service, client := setupTestService(t)
	ctx := context.Background()
	user := createTestUser(t, client)
	p := createTestProspect(t, client, user.ID, prospect.StatusInProgress)

	created, err := service.Create(ctx, user.ID, models.CreateVisitRequest{
		ProspectID: p.ID.String(),
		Score:      intPtr(4),
	})
	require.NoError(t, err)

	require.NoError(t, service.Delete(ctx, created.ID))

	updated := client.Prospect.GetX(ctx, p.ID)
	assert.Equal(t, 0, updated.VisitsCount)
	assert.Equal(t, 0.0, updated.NoteAvg)

	assert.ErrorIs(t, service.Delete(ctx, created.ID), ErrNotFound)
}

func TestList_Filters(t *testing.T) {
	service, client := setupTestService(t)
	ctx := context.Background()
	alice := createTestUser(t, client)
	bob := createTestUser(t, client)
	p := createTestProspect(t, client, alice.ID, prospect.StatusInProgress)

	_, err := service.Create(ctx, alice.ID, models.CreateVisitRequest{
		ProspectID: p.ID.String(),
		Score:      intPtr(5),
		VisitedAt:  time.Now().AddDate(0, 0, -3).Format(time.RFC3339),
	})
	require.NoError(t, err)

	_, err = service.Create(ctx, bob.ID, models.CreateVisitRequest{
		ProspectID: p.ID.String(),
		Score:      intPtr(2),
	})
	require.NoError(t, err)

	resp, err := service.List(ctx, models.VisitListRequest{UserID: alice.ID.String()})
	require.NoError(t, err)
	require.Len(t, resp.Visits, 1)
	assert.Equal(t, alice.ID, resp.Visits[0].UserID)

	// Date range covering only the older visit
	from := time.Now().AddDate(0, 0, -5).Format("2006-01-02")
	to := time.Now().AddDate(0, 0, -2).Format("2006-01-02")
	resp, err = service.List(ctx, models.VisitListRequest{From: from, To: to})
	require.NoError(t, err)
	require.Len(t, resp.Visits, 1)
	assert.Equal(t, alice.ID, resp.Visits[0].UserID)
}

func TestList_MinScoreFilter(t *testing.T) {
	service, client := setupTestService(t)
	ctx := context.Background()
	user := createTestUser(t, client)
	p := createTestProspect(t, client, user.ID, prospect.StatusInProgress)

	for _, score := range []int{1, 3, 5} {
		_, err := service.Create(ctx, user.ID, models.CreateVisitRequest{
			ProspectID: p.ID.String(),
			Score:      intPtr(score),
		})
		require.NoError(t, err)
	}
	// An unscored visit never matches a score floor
	_, err := service.Create(ctx, user.ID, models.CreateVisitRequest{
		ProspectID: p.ID.String(),
	})
	require.NoError(t, err)

	resp, err := service.List(ctx, models.VisitListRequest{MinScore: intPtr(3)})
	require.NoError(t, err)
	assert.Equal(t, 2, resp.Pagination.Total)
	for _, v := range resp.Visits {
		require.NotNil(t, v.Score)
		assert.GreaterOrEqual(t, *v.Score, 3)
	}
}

func TestList_NewestFirst(t *testing.T) {
	service, client := setupTestService(t)
	ctx := context.Background()
	user := createTestUser(t, client)
	p := createTestProspect(t, client, user.ID, prospect.StatusInProgress)

	old, err := service.Create(ctx, user.ID, models.CreateVisitRequest{
		ProspectID: p.ID.String(),
		VisitedAt:  time.Now().AddDate(0, 0, -10).Format(time.RFC3339),
	})
	require.NoError(t, err)
	recent, err := service.Create(ctx, user.ID, models.CreateVisitRequest{
		ProspectID: p.ID.String(),
		VisitedAt:  time.Now().AddDate(0, 0, -1).Format(time.RFC3339),
	})
	require.NoError(t, err)

	resp, err := service.List(ctx, models.VisitListRequest{})
	require.NoError(t, err)
	require.Len(t, resp.Visits, 2)
	assert.Equal(t, recent.ID, resp.Visits[0].ID)
	assert.Equal(t, old.ID, resp.Visits[1].ID)
}

func TestOwnerID(t *testing.T) {
	service, client := setupTestService(t)
	ctx := context.Background()
	user := createTestUser(t, client)
	p := createTestProspect(t, client, user.ID, prospect.StatusInProgress)

	created, err := service.Create(ctx, user.ID, models.CreateVisitRequest{
		ProspectID: p.ID.String(),
	})
	require.NoError(t, err)

	owner, err := service.OwnerID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, user.ID, owner)

	_, err = service.OwnerID(ctx, uuid.New())
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCreate_LinkedToTour(t *testing.T) {
	service, client := setupTestService(t)
	ctx := context.Background()
	user := createTestUser(t, client)
	p := createTestProspect(t, client, user.ID, prospect.StatusInProgress)

	tour := client.Tour.Create().
		SetName("Tournée Paris Centre").
		SetUserID(user.ID).
		SaveX(ctx)

	created, err := service.Create(ctx, user.ID, models.CreateVisitRequest{
		ProspectID: p.ID.String(),
		TourID:     tour.ID.String(),
		Objective:  "Dégustation",
	})
	require.NoError(t, err)
	require.NotNil(t, created.TourID)
	assert.Equal(t, tour.ID, *created.TourID)

	// An unrelated visit stays out of the tour filter
	_, err = service.Create(ctx, user.ID, models.CreateVisitRequest{
		ProspectID: p.ID.String(),
	})
	require.NoError(t, err)

	resp, err := service.List(ctx, models.VisitListRequest{TourID: tour.ID.String()})
	require.NoError(t, err)
	require.Len(t, resp.Visits, 1)
	assert.Equal(t, created.ID, resp.Visits[0].ID)
}

func TestCreate_RecordsSignature(t *testing.T) {
	service, client := setupTestService(t)
	ctx := context.Background()
	user := createTestUser(t, client)
	p := createTestProspect(t, client, user.ID, prospect.StatusInProgress)

	created, err := service.Create(ctx, user.ID, models.CreateVisitRequest{
		ProspectID:    p.ID.String(),
		SignedBy:      "M. Martin",
		SignatureData: "data:image/png;base64,iVBOR",
	})
	require.NoError(t, err)
	assert.Equal(t, "M. Martin", created.SignedBy)
	assert.Equal(t, "data:image/png;base64,iVBOR", created.SignatureData)
}

func TestStats(t *testing.T) {
	service, client := setupTestService(t)
	ctx := context.Background()
	user := createTestUser(t, client)
	other := createTestUser(t, client)
	p := createTestProspect(t, client, user.ID, prospect.StatusInProgress)

	visits := []models.CreateVisitRequest{
		{ProspectID: p.ID.String(), Score: intPtr(4), DurationMinutes: intPtr(30)},
		{ProspectID: p.ID.String(), Score: intPtr(4), DurationMinutes: intPtr(50)},
		{ProspectID: p.ID.String(), Score: intPtr(2)},
		{ProspectID: p.ID.String()},
	}
	for _, req := range visits {
		_, err := service.Create(ctx, user.ID, req)
		require.NoError(t, err)
	}

	// Another rep's visit must not leak into the scoped stats
	_, err := service.Create(ctx, other.ID, models.CreateVisitRequest{
		ProspectID: p.ID.String(),
		Score:      intPtr(1),
	})
	require.NoError(t, err)

	stats, err := service.Stats(ctx, models.VisitStatsRequest{UserID: user.ID.String()})
	require.NoError(t, err)

	assert.Equal(t, 4, stats.Total)
	assert.InDelta(t, 10.0/3.0, stats.AvgScore, 0.001)
	assert.InDelta(t, 40.0, stats.AvgDurationMinutes, 0.001)
	assert.Equal(t, []models.ScoreBucket{{Score: 2, Count: 1}, {Score: 4, Count: 2}}, stats.ByScore)

	// Unscoped stats see every visit
	all, err := service.Stats(ctx, models.VisitStatsRequest{})
	require.NoError(t, err)
	assert.Equal(t, 5, all.Total)
}
