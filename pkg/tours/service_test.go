package tours

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/horeca-prospection/backend/ent"
	"github.com/horeca-prospection/backend/ent/enttest"
	"github.com/horeca-prospection/backend/pkg/models"

	_ "github.com/mattn/go-sqlite3"
)

func setupTestService(t *testing.T) (*Service, *ent.Client) {
	client := enttest.Open(t, "sqlite3", "file:ent?mode=memory&cache=shared&_fk=1")
	t.Cleanup(func() { client.Close() })
	return NewService(client), client
}

func createTestUser(t *testing.T, client *ent.Client) *ent.User {
	u, err := client.User.Create().
		SetEmail(uuid.NewString() + "@test.fr").
		SetPasswordHash("x").
		Save(context.Background())
	require.NoError(t, err)
	return u
}

func createTestProspects(t *testing.T, client *ent.Client, creatorID uuid.UUID, count int) []string {
	ids := make([]string, count)
	for i := 0; i < count; i++ {
		p, err := client.Prospect.Create().
			SetName("Prospect " + uuid.NewString()[:8]).
			SetCreatorID(creatorID).
			Save(context.Background())
		require.NoError(t, err)
		ids[i] = p.ID.String()
	}
	return ids
}

func stepOrders(t *testing.T, resp *models.TourResponse) map[string]int {
	orders := make(map[string]int, len(resp.Steps))
	for _, s := range resp.Steps {
		orders[s.ProspectID.String()] = s.StepOrder
	}
	return orders
}

func TestCreate_WithSteps(t *testing.T) {
	service, client := setupTestService(t)
	user := createTestUser(t, client)
	prospects := createTestProspects(t, client, user.ID, 3)

	resp, err := service.Create(context.Background(), uuid.Nil, user.ID, models.CreateTourRequest{
		Name:        "Tournée Paris Est",
		Date:        "2026-09-15",
		ProspectIDs: prospects,
	})
	require.NoError(t, err)

	assert.Equal(t, "Tournée Paris Est", resp.Name)
	assert.Equal(t, "planned", resp.Status)
	require.Len(t, resp.Steps, 3)
	for i, step := range resp.Steps {
		assert.Equal(t, i+1, step.StepOrder)
		assert.Equal(t, "pending", step.Status)
	}
}

func TestCreate_InvalidProspectID(t *testing.T) {
	service, client := setupTestService(t)
	user := createTestUser(t, client)

	_, err := service.Create(context.Background(), uuid.Nil, user.ID, models.CreateTourRequest{
		Name:        "Tournée",
		ProspectIDs: []string{"not-a-uuid"},
	})
	assert.Error(t, err)
}

func TestStart_OnlyFromPlanned(t *testing.T) {
	service, client := setupTestService(t)
	ctx := context.Background()
	user := createTestUser(t, client)

	created, err := service.Create(ctx, uuid.Nil, user.ID, models.CreateTourRequest{Name: "Tournée"})
	require.NoError(t, err)

	started, err := service.Start(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "in_progress", started.Status)

	// A second start is rejected
	_, err = service.Start(ctx, created.ID)
	assert.ErrorIs(t, err, ErrNotPlanned)

	_, err = service.Start(ctx, uuid.New())
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestComplete_FromAnyStatus(t *testing.T) {
	service, client := setupTestService(t)
	ctx := context.Background()
	user := createTestUser(t, client)

	created, err := service.Create(ctx, uuid.Nil, user.ID, models.CreateTourRequest{Name: "Tournée"})
	require.NoError(t, err)

	// Completing without starting is allowed
	completed, err := service.Complete(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "completed", completed.Status)
}

func TestCancel(t *testing.T) {
	service, client := setupTestService(t)
	ctx := context.Background()
	user := createTestUser(t, client)

	created, err := service.Create(ctx, uuid.Nil, user.ID, models.CreateTourRequest{Name: "Tournée"})
	require.NoError(t, err)

	cancelled, err := service.Cancel(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "cancelled", cancelled.Status)
}

func TestAddSteps_AppendsAtEnd(t *testing.T) {
	service, client := setupTestService(t)
	ctx := context.Background()
	user := createTestUser(t, client)
	prospects := createTestProspects(t, client, user.ID, 4)

	created, err := service.Create(ctx, uuid.Nil, user.ID, models.CreateTourRequest{
		Name:        "Tournée",
		ProspectIDs: prospects[:2],
	})
	require.NoError(t, err)

	resp, err := service.AddSteps(ctx, created.ID, models.AddStepsRequest{
		ProspectIDs: prospects[2:],
	})
	require.NoError(t, err)

	require.Len(t, resp.Steps, 4)
	orders := stepOrders(t, resp)
	assert.Equal(t, 3, orders[prospects[2]])
	assert.Equal(t, 4, orders[prospects[3]])
}

func TestAddSteps_UnknownTour(t *testing.T) {
	service, client := setupTestService(t)
	user := createTestUser(t, client)
	prospects := createTestProspects(t, client, user.ID, 1)

	_, err := service.AddSteps(context.Background(), uuid.New(), models.AddStepsRequest{
		ProspectIDs: prospects,
	})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUpdateStep_Reorder(t *testing.T) {
	service, client := setupTestService(t)
	ctx := context.Background()
	user := createTestUser(t, client)
	prospects := createTestProspects(t, client, user.ID, 4)

	created, err := service.Create(ctx, uuid.Nil, user.ID, models.CreateTourRequest{
		Name:        "Tournée",
		ProspectIDs: prospects,
	})
	require.NoError(t, err)

	// Move the last step to the front
	lastStep := created.Steps[3]
	newOrder := 1
	resp, err := service.UpdateStep(ctx, created.ID, lastStep.ID, models.UpdateStepRequest{
		StepOrder: &newOrder,
	})
	require.NoError(t, err)

	orders := stepOrders(t, resp)
	assert.Equal(t, 1, orders[prospects[3]])
	assert.Equal(t, 2, orders[prospects[0]])
	assert.Equal(t, 3, orders[prospects[1]])
	assert.Equal(t, 4, orders[prospects[2]])
}

func TestUpdateStep_OrderClamped(t *testing.T) {
	service, client := setupTestService(t)
	ctx := context.Background()
	user := createTestUser(t, client)
	prospects := createTestProspects(t, client, user.ID, 3)

	created, err := service.Create(ctx, uuid.Nil, user.ID, models.CreateTourRequest{
		Name:        "Tournée",
		ProspectIDs: prospects,
	})
	require.NoError(t, err)

	// An out-of-range order lands at the end
	tooBig := 99
	resp, err := service.UpdateStep(ctx, created.ID, created.Steps[0].ID, models.UpdateStepRequest{
		StepOrder: &tooBig,
	})
	require.NoError(t, err)

	orders := stepOrders(t, resp)
	assert.Equal(t, 3, orders[prospects[0]])
	assert.Equal(t, 1, orders[prospects[1]])
}

func TestUpdateStep_MarkDoneStampsCompletion(t *testing.T) {
	service, client := setupTestService(t)
	ctx := context.Background()
	user := createTestUser(t, client)
	prospects := createTestProspects(t, client, user.ID, 1)

	created, err := service.Create(ctx, uuid.Nil, user.ID, models.CreateTourRequest{
		Name:        "Tournée",
		ProspectIDs: prospects,
	})
	require.NoError(t, err)

	done := "done"
	resp, err := service.UpdateStep(ctx, created.ID, created.Steps[0].ID, models.UpdateStepRequest{
		Status: &done,
	})
	require.NoError(t, err)

	assert.Equal(t, "done", resp.Steps[0].Status)
	assert.NotEmpty(t, resp.Steps[0].CompletedAt)
}

func TestUpdateStep_WrongTour(t *testing.T) {
	service, client := setupTestService(t)
	ctx := context.Background()
	user := createTestUser(t, client)
	prospects := createTestProspects(t, client, user.ID, 1)

	created, err := service.Create(ctx, uuid.Nil, user.ID, models.CreateTourRequest{
		Name:        "Tournée",
		ProspectIDs: prospects,
	})
	require.NoError(t, err)

	done := "done"
	_, err = service.UpdateStep(ctx, uuid.New(), created.Steps[0].ID, models.UpdateStepRequest{
		Status: &done,
	})
	assert.ErrorIs(t, err, ErrStepNotFound)
}

func TestDeleteStep_ClosesGap(t *testing.T) {
	service, client := setupTestService(t)
	ctx := context.Background()
	user := createTestUser(t, client)
	prospects := createTestProspects(t, client, user.ID, 3)

	created, err := service.Create(ctx, uuid.Nil, user.ID, models.CreateTourRequest{
		Name:        "Tournée",
		ProspectIDs: prospects,
	})
	require.NoError(t, err)

	// Remove the middle step
	resp, err := service.DeleteStep(ctx, created.ID, created.Steps[1].ID)
	require.NoError(t, err)

	require.Len(t, resp.Steps, 2)
	orders := stepOrders(t, resp)
	assert.Equal(t, 1, orders[prospects[0]])
	assert.Equal(t, 2, orders[prospects[2]])
}

func TestDelete_RemovesSteps(t *testing.T) {
	service, client := setupTestService(t)
	ctx := context.Background()
	user := createTestUser(t, client)
	prospects := createTestProspects(t, client, user.ID, 2)

	created, err := service.Create(ctx, uuid.Nil, user.ID, models.CreateTourRequest{
		Name:        "Tournée",
		ProspectIDs: prospects,
	})
	require.NoError(t, err)

	require.NoError(t, service.Delete(ctx, created.ID))

	_, err = service.GetByID(ctx, created.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	count, err := client.TourStep.Query().Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestList_FilterByStatusAndUser(t *testing.T) {
	service, client := setupTestService(t)
	ctx := context.Background()
	alice := createTestUser(t, client)
	bob := createTestUser(t, client)

	created, err := service.Create(ctx, uuid.Nil, alice.ID, models.CreateTourRequest{Name: "Tournée Alice"})
	require.NoError(t, err)
	_, err = service.Create(ctx, uuid.Nil, bob.ID, models.CreateTourRequest{Name: "Tournée Bob"})
	require.NoError(t, err)

	_, err = service.Start(ctx, created.ID)
	require.NoError(t, err)

	resp, err := service.List(ctx, models.TourListRequest{UserID: alice.ID.String()})
	require.NoError(t, err)
	require.Len(t, resp.Tours, 1)
	assert.Equal(t, "Tournée Alice", resp.Tours[0].Name)

	resp, err = service.List(ctx, models.TourListRequest{Status: "in_progress"})
	require.NoError(t, err)
	assert.Equal(t, 1, resp.Pagination.Total)
}

func TestList_ScopedToCompany(t *testing.T) {
	service, client := setupTestService(t)
	ctx := context.Background()
	user := createTestUser(t, client)

	ours, err := client.Company.Create().SetName("Maison Dupont").Save(ctx)
	require.NoError(t, err)
	theirs, err := client.Company.Create().SetName("Maison Rival").Save(ctx)
	require.NoError(t, err)

	mine, err := service.Create(ctx, ours.ID, user.ID, models.CreateTourRequest{Name: "Tournée maison"})
	require.NoError(t, err)
	_, err = service.Create(ctx, theirs.ID, user.ID, models.CreateTourRequest{Name: "Tournée rivale"})
	require.NoError(t, err)

	resp, err := service.List(ctx, models.TourListRequest{CompanyID: ours.ID})
	require.NoError(t, err)
	require.Len(t, resp.Tours, 1)
	assert.Equal(t, mine.ID, resp.Tours[0].ID)
	assert.Equal(t, 1, resp.Pagination.Total)
}

func TestUpdate_RouteMetrics(t *testing.T) {
	service, client := setupTestService(t)
	ctx := context.Background()
	user := createTestUser(t, client)

	created, err := service.Create(ctx, uuid.Nil, user.ID, models.CreateTourRequest{Name: "Tournée"})
	require.NoError(t, err)

	distance := 42.7
	duration := 95
	resp, err := service.Update(ctx, created.ID, models.UpdateTourRequest{
		TotalDistanceKm:      &distance,
		TotalDurationMinutes: &duration,
		RouteData:            map[string]interface{}{"polyline": "gfo}EtohhU"},
	})
	require.NoError(t, err)

	require.NotNil(t, resp.TotalDistanceKm)
	assert.Equal(t, 42.7, *resp.TotalDistanceKm)
	require.NotNil(t, resp.TotalDurationMinutes)
	assert.Equal(t, 95, *resp.TotalDurationMinutes)
	assert.Equal(t, "gfo}EtohhU", resp.RouteData["polyline"])
}
