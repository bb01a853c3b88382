package prospects

import (
	"context"
	"testing"

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

func createTestProspect(t *testing.T, client *ent.Client, creatorID uuid.UUID, name, city string, status prospect.Status) *ent.Prospect {
	p, err := client.Prospect.Create().
		SetName(name).
		SetCity(city).
		SetStatus(status).
		SetCreatorID(creatorID).
		Save(context.Background())
	require.NoError(t, err)
	return p
}

func TestCreate_Defaults(t *testing.T) {
	service, client := setupTestService(t)
	user := createTestUser(t, client)

	resp, err := service.Create(context.Background(), uuid.Nil, user.ID, models.CreateProspectRequest{
		Name: "Le Bistrot du Marais",
		Type: "restaurant",
		City: "Paris",
	})
	require.NoError(t, err)

	assert.Equal(t, "Le Bistrot du Marais", resp.Name)
	assert.Equal(t, "France", resp.Country)
	assert.Equal(t, "to_visit", resp.Status)
	assert.Equal(t, 0, resp.VisitsCount)
	assert.Nil(t, resp.Latitude)
}

func TestCreate_NormalizesPhone(t *testing.T) {
	service, client := setupTestService(t)
	user := createTestUser(t, client)

	resp, err := service.Create(context.Background(), uuid.Nil, user.ID, models.CreateProspectRequest{
		Name:  "Hôtel des Grands Boulevards",
		Phone: "01 42 68 53 00",
	})
	require.NoError(t, err)

	assert.Equal(t, "+33142685300", resp.Phone)
}

func TestGetByID_NotFound(t *testing.T) {
	service, _ := setupTestService(t)

	_, err := service.GetByID(context.Background(), uuid.New())
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestList_Filters(t *testing.T) {
	service, client := setupTestService(t)
	user := createTestUser(t, client)

	createTestProspect(t, client, user.ID, "Le Bistrot Gourmand", "Paris", prospect.StatusToVisit)
	createTestProspect(t, client, user.ID, "Hôtel du Parc", "Lyon", prospect.StatusInProgress)
	createTestProspect(t, client, user.ID, "La Table Lyonnaise", "Lyon", prospect.StatusConverted)

	resp, err := service.List(context.Background(), models.ProspectListRequest{City: "Lyon"})
	require.NoError(t, err)
	assert.Equal(t, 2, resp.Pagination.Total)

	resp, err = service.List(context.Background(), models.ProspectListRequest{Status: "converted"})
	require.NoError(t, err)
	require.Len(t, resp.Prospects, 1)
	assert.Equal(t, "La Table Lyonnaise", resp.Prospects[0].Name)
}

func TestList_SearchIgnoresAccents(t *testing.T) {
	service, client := setupTestService(t)
	user := createTestUser(t, client)
	ctx := context.Background()

	for _, name := range []string{"Crêperie de la Gare", "Pizzeria Napoli"} {
		_, err := service.Create(ctx, uuid.Nil, user.ID, models.CreateProspectRequest{
			Name: name,
			City: "Rennes",
		})
		require.NoError(t, err)
	}

	// Unaccented query matches the accented stored name
	resp, err := service.List(ctx, models.ProspectListRequest{Search: "creperie"})
	require.NoError(t, err)
	require.Len(t, resp.Prospects, 1)
	assert.Equal(t, "Crêperie de la Gare", resp.Prospects[0].Name)

	// Accented query matches too
	resp, err = service.List(ctx, models.ProspectListRequest{Search: "crêperie"})
	require.NoError(t, err)
	require.Len(t, resp.Prospects, 1)
	assert.Equal(t, "Crêperie de la Gare", resp.Prospects[0].Name)
}

func TestUpdate_KeepsFoldedNameInSync(t *testing.T) {
	service, client := setupTestService(t)
	user := createTestUser(t, client)
	ctx := context.Background()

	created, err := service.Create(ctx, uuid.Nil, user.ID, models.CreateProspectRequest{
		Name: "Pizzeria Napoli",
	})
	require.NoError(t, err)

	renamed := "Pâtisserie Lemoine"
	_, err = service.Update(ctx, created.ID, models.UpdateProspectRequest{Name: &renamed})
	require.NoError(t, err)

	resp, err := service.List(ctx, models.ProspectListRequest{Search: "patisserie"})
	require.NoError(t, err)
	require.Len(t, resp.Prospects, 1)
	assert.Equal(t, renamed, resp.Prospects[0].Name)
}

func TestList_ScopedToCompany(t *testing.T) {
	service, client := setupTestService(t)
	user := createTestUser(t, client)
	ctx := context.Background()

	ours, err := client.Company.Create().SetName("Maison Dupont").Save(ctx)
	require.NoError(t, err)
	theirs, err := client.Company.Create().SetName("Maison Rival").Save(ctx)
	require.NoError(t, err)

	mine, err := service.Create(ctx, ours.ID, user.ID, models.CreateProspectRequest{Name: "Le Bistrot d'Ici"})
	require.NoError(t, err)
	_, err = service.Create(ctx, theirs.ID, user.ID, models.CreateProspectRequest{Name: "Le Bistrot d'Ailleurs"})
	require.NoError(t, err)

	resp, err := service.List(ctx, models.ProspectListRequest{CompanyID: ours.ID})
	require.NoError(t, err)
	assert.Equal(t, 1, resp.Pagination.Total)
	require.Len(t, resp.Prospects, 1)
	assert.Equal(t, mine.ID, resp.Prospects[0].ID)
}

func TestList_Pagination(t *testing.T) {
	service, client := setupTestService(t)
	user := createTestUser(t, client)

	for i := 0; i < 5; i++ {
		createTestProspect(t, client, user.ID, "Prospect "+uuid.NewString(), "Paris", prospect.StatusToVisit)
	}

	resp, err := service.List(context.Background(), models.ProspectListRequest{Page: 2, Limit: 2})
	require.NoError(t, err)

	assert.Equal(t, 5, resp.Pagination.Total)
	assert.Equal(t, 2, resp.Pagination.Page)
	assert.Equal(t, 3, resp.Pagination.Pages)
	assert.Len(t, resp.Prospects, 2)
}

func TestList_SortByName(t *testing.T) {
	service, client := setupTestService(t)
	user := createTestUser(t, client)

	createTestProspect(t, client, user.ID, "Zinc du Coin", "Paris", prospect.StatusToVisit)
	createTestProspect(t, client, user.ID, "Auberge Rouge", "Paris", prospect.StatusToVisit)

	resp, err := service.List(context.Background(), models.ProspectListRequest{Sort: "name", Order: "asc"})
	require.NoError(t, err)
	require.Len(t, resp.Prospects, 2)
	assert.Equal(t, "Auberge Rouge", resp.Prospects[0].Name)
}

func TestUpdate(t *testing.T) {
	service, client := setupTestService(t)
	user := createTestUser(t, client)
	p := createTestProspect(t, client, user.ID, "Le Petit Four", "Paris", prospect.StatusToVisit)

	newStatus := "in_progress"
	newCity := "Versailles"
	resp, err := service.Update(context.Background(), p.ID, models.UpdateProspectRequest{
		Status: &newStatus,
		City:   &newCity,
	})
	require.NoError(t, err)

	assert.Equal(t, "in_progress", resp.Status)
	assert.Equal(t, "Versailles", resp.City)
	assert.Equal(t, "Le Petit Four", resp.Name)
}

func TestUpdate_NoFields(t *testing.T) {
	service, client := setupTestService(t)
	user := createTestUser(t, client)
	p := createTestProspect(t, client, user.ID, "Le Petit Four", "Paris", prospect.StatusToVisit)

	// An update carrying no recognized field returns the stored row
	resp, err := service.Update(context.Background(), p.ID, models.UpdateProspectRequest{})
	require.NoError(t, err)
	assert.Equal(t, "Le Petit Four", resp.Name)
	assert.Equal(t, "to_visit", resp.Status)
}

func TestDelete(t *testing.T) {
	service, client := setupTestService(t)
	user := createTestUser(t, client)
	p := createTestProspect(t, client, user.ID, "Le Petit Four", "Paris", prospect.StatusToVisit)

	require.NoError(t, service.Delete(context.Background(), p.ID))

	_, err := service.GetByID(context.Background(), p.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	assert.ErrorIs(t, service.Delete(context.Background(), p.ID), ErrNotFound)
}

func TestMarkEnriched(t *testing.T) {
	service, client := setupTestService(t)
	user := createTestUser(t, client)
	p := createTestProspect(t, client, user.ID, "Le Petit Four", "Paris", prospect.StatusToVisit)

	data := map[string]interface{}{
		"cuisine":  "française",
		"provider": "openai",
	}
	require.NoError(t, service.MarkEnriched(context.Background(), p.ID, data, 8.5))

	resp, err := service.GetByID(context.Background(), p.ID)
	require.NoError(t, err)

	assert.Equal(t, "française", resp.AIData["cuisine"])
	require.NotNil(t, resp.AIScore)
	assert.Equal(t, 8.5, *resp.AIScore)
	assert.NotEmpty(t, resp.AIEnrichedAt)
}

func TestList_CacheInvalidatedOnCreate(t *testing.T) {
	service, client := setupTestService(t)
	user := createTestUser(t, client)

	createTestProspect(t, client, user.ID, "Première Auberge", "Paris", prospect.StatusToVisit)

	resp, err := service.List(context.Background(), models.ProspectListRequest{})
	require.NoError(t, err)
	assert.Equal(t, 1, resp.Pagination.Total)

	_, err = service.Create(context.Background(), uuid.Nil, user.ID, models.CreateProspectRequest{
		Name: "Deuxième Auberge",
	})
	require.NoError(t, err)

	resp, err = service.List(context.Background(), models.ProspectListRequest{})
	require.NoError(t, err)
	assert.Equal(t, 2, resp.Pagination.Total)
}

func TestList_MinScoreFilter(t *testing.T) {
	service, client := setupTestService(t)
	user := createTestUser(t, client)
	ctx := context.Background()

	for _, tc := range []struct {
		name string
		avg  float64
	}{
		{"Auberge Basse", 1.5},
		{"Auberge Moyenne", 3.0},
		{"Auberge Haute", 4.5},
	} {
		p := createTestProspect(t, client, user.ID, tc.name, "Paris", prospect.StatusToVisit)
		client.Prospect.UpdateOneID(p.ID).SetNoteAvg(tc.avg).SaveX(ctx)
	}

	minScore := 3.0
	resp, err := service.List(ctx, models.ProspectListRequest{MinScore: &minScore})
	require.NoError(t, err)

	assert.Equal(t, 2, resp.Pagination.Total)
	require.Len(t, resp.Prospects, 2)
	for _, p := range resp.Prospects {
		assert.GreaterOrEqual(t, p.NoteAvg, minScore)
	}
}

func TestGetByID_IncludesVisitHistory(t *testing.T) {
	service, client := setupTestService(t)
	user := createTestUser(t, client)
	p := createTestProspect(t, client, user.ID, "Hôtel des Arts", "Paris", prospect.StatusInProgress)
	ctx := context.Background()

	client.Visit.Create().
		SetProspectID(p.ID).
		SetUserID(user.ID).
		SetObjective("Présentation de la gamme").
		SetSummary("Revoir le chef en septembre").
		SetScore(4).
		SaveX(ctx)

	resp, err := service.GetByID(ctx, p.ID)
	require.NoError(t, err)

	require.Len(t, resp.Visits, 1)
	assert.Equal(t, "Présentation de la gamme", resp.Visits[0].Objective)
	assert.Equal(t, "Revoir le chef en septembre", resp.Visits[0].Summary)
	require.NotNil(t, resp.Visits[0].Score)
	assert.Equal(t, 4, *resp.Visits[0].Score)
	assert.Equal(t, user.ID, resp.Visits[0].UserID)
}

func TestHaversineKm(t *testing.T) {
	// Paris to Lyon is roughly 390km as the crow flies
	d := haversineKm(48.8566, 2.3522, 45.7640, 4.8357)
	assert.InDelta(t, 392, d, 10)

	assert.Zero(t, haversineKm(48.85, 2.35, 48.85, 2.35))
}
