package stats

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/horeca-prospection/backend/ent"
	"github.com/horeca-prospection/backend/ent/enttest"
	"github.com/horeca-prospection/backend/ent/prospect"

	_ "github.com/mattn/go-sqlite3"
)

func setupTestService(t *testing.T) (*Service, *ent.Client) {
	client := enttest.Open(t, "sqlite3", "file:ent?mode=memory&cache=shared&_fk=1")
	t.Cleanup(func() { client.Close() })
	return NewService(client), client
}

func createTestCompany(t *testing.T, client *ent.Client) *ent.Company {
	c, err := client.Company.Create().
		SetName("Distribution " + uuid.NewString()[:8]).
		Save(context.Background())
	require.NoError(t, err)
	return c
}

func createTestUser(t *testing.T, client *ent.Client, companyID uuid.UUID) *ent.User {
	u, err := client.User.Create().
		SetEmail(uuid.NewString() + "@test.fr").
		SetPasswordHash("x").
		SetFirstName("Sophie").
		SetLastName("Lambert").
		SetCompanyID(companyID).
		Save(context.Background())
	require.NoError(t, err)
	return u
}

func createTestProspect(t *testing.T, client *ent.Client, companyID, creatorID uuid.UUID, status prospect.Status) *ent.Prospect {
	p, err := client.Prospect.Create().
		SetName("Prospect " + uuid.NewString()[:8]).
		SetStatus(status).
		SetCreatorID(creatorID).
		SetCompanyID(companyID).
		Save(context.Background())
	require.NoError(t, err)
	return p
}

func createTestVisit(t *testing.T, client *ent.Client, prospectID, userID uuid.UUID, visitedAt time.Time, score *int) {
	create := client.Visit.Create().
		SetProspectID(prospectID).
		SetUserID(userID).
		SetVisitedAt(visitedAt)
	if score != nil {
		create = create.SetScore(*score)
	}
	_, err := create.Save(context.Background())
	require.NoError(t, err)
}

func intPtr(n int) *int { return &n }

func TestOverview(t *testing.T) {
	service, client := setupTestService(t)
	ctx := context.Background()
	comp := createTestCompany(t, client)
	user := createTestUser(t, client, comp.ID)

	p1 := createTestProspect(t, client, comp.ID, user.ID, prospect.StatusConverted)
	createTestProspect(t, client, comp.ID, user.ID, prospect.StatusToVisit)
	createTestProspect(t, client, comp.ID, user.ID, prospect.StatusInProgress)
	createTestProspect(t, client, comp.ID, user.ID, prospect.StatusLost)

	require.NoError(t, client.Prospect.UpdateOneID(p1.ID).
		SetNoteAvg(4.5).SetVisitsCount(2).Exec(ctx))

	now := time.Now()
	createTestVisit(t, client, p1.ID, user.ID, now.AddDate(0, 0, -2), intPtr(4))
	createTestVisit(t, client, p1.ID, user.ID, now.AddDate(0, 0, -20), intPtr(2))

	stats, err := service.Overview(ctx, comp.ID, nil, now.AddDate(-1, 0, 0), now.AddDate(0, 0, 1))
	require.NoError(t, err)

	assert.Equal(t, 2, stats.TotalVisits)
	assert.Equal(t, 3.0, stats.AvgScore)
	assert.Equal(t, 25.0, stats.ConversionRate)

	// The two visits fall in distinct weeks, newest week first
	require.Len(t, stats.WeeklyVisits, 2)
	assert.Greater(t, stats.WeeklyVisits[0].Week, stats.WeeklyVisits[1].Week)
	assert.Equal(t, 1, stats.WeeklyVisits[0].Count)

	require.Len(t, stats.TopProspects, 1)
	assert.Equal(t, p1.ID, stats.TopProspects[0].ID)
	assert.Equal(t, 4.5, stats.TopProspects[0].NoteAvg)
}

func TestOverview_RanksTopProspects(t *testing.T) {
	service, client := setupTestService(t)
	ctx := context.Background()
	comp := createTestCompany(t, client)
	user := createTestUser(t, client, comp.ID)

	best := createTestProspect(t, client, comp.ID, user.ID, prospect.StatusInProgress)
	busy := createTestProspect(t, client, comp.ID, user.ID, prospect.StatusInProgress)
	tied := createTestProspect(t, client, comp.ID, user.ID, prospect.StatusInProgress)
	createTestProspect(t, client, comp.ID, user.ID, prospect.StatusToVisit) // never rated

	require.NoError(t, client.Prospect.UpdateOneID(best.ID).SetNoteAvg(5).SetVisitsCount(1).Exec(ctx))
	require.NoError(t, client.Prospect.UpdateOneID(busy.ID).SetNoteAvg(3).SetVisitsCount(9).Exec(ctx))
	require.NoError(t, client.Prospect.UpdateOneID(tied.ID).SetNoteAvg(3).SetVisitsCount(2).Exec(ctx))

	now := time.Now()
	stats, err := service.Overview(ctx, comp.ID, nil, now.AddDate(-1, 0, 0), now.AddDate(0, 0, 1))
	require.NoError(t, err)

	require.Len(t, stats.TopProspects, 3)
	assert.Equal(t, best.ID, stats.TopProspects[0].ID)
	// Equal averages rank by visit count
	assert.Equal(t, busy.ID, stats.TopProspects[1].ID)
	assert.Equal(t, tied.ID, stats.TopProspects[2].ID)
}

func TestOverview_ScopedToUser(t *testing.T) {
	service, client := setupTestService(t)
	ctx := context.Background()
	comp := createTestCompany(t, client)
	alice := createTestUser(t, client, comp.ID)
	bob := createTestUser(t, client, comp.ID)

	p := createTestProspect(t, client, comp.ID, alice.ID, prospect.StatusInProgress)
	now := time.Now()
	createTestVisit(t, client, p.ID, alice.ID, now, nil)
	createTestVisit(t, client, p.ID, bob.ID, now, nil)

	stats, err := service.Overview(ctx, comp.ID, &alice.ID, now.AddDate(-1, 0, 0), now.AddDate(0, 0, 1))
	require.NoError(t, err)
	assert.Equal(t, 1, stats.TotalVisits)
}

func TestOverview_ScopedToCompany(t *testing.T) {
	service, client := setupTestService(t)
	ctx := context.Background()
	ours := createTestCompany(t, client)
	theirs := createTestCompany(t, client)
	user := createTestUser(t, client, ours.ID)

	mine := createTestProspect(t, client, ours.ID, user.ID, prospect.StatusConverted)
	foreign := createTestProspect(t, client, theirs.ID, user.ID, prospect.StatusToVisit)

	now := time.Now()
	createTestVisit(t, client, mine.ID, user.ID, now, intPtr(5))
	createTestVisit(t, client, foreign.ID, user.ID, now, intPtr(1))

	stats, err := service.Overview(ctx, ours.ID, nil, now.AddDate(-1, 0, 0), now.AddDate(0, 0, 1))
	require.NoError(t, err)

	// Only our company's visit and prospect count
	assert.Equal(t, 1, stats.TotalVisits)
	assert.Equal(t, 5.0, stats.AvgScore)
	assert.Equal(t, 100.0, stats.ConversionRate)
}

func TestConversions(t *testing.T) {
	service, client := setupTestService(t)
	ctx := context.Background()
	ours := createTestCompany(t, client)
	theirs := createTestCompany(t, client)
	user := createTestUser(t, client, ours.ID)

	createTestProspect(t, client, ours.ID, user.ID, prospect.StatusToVisit)
	createTestProspect(t, client, ours.ID, user.ID, prospect.StatusInProgress)
	createTestProspect(t, client, ours.ID, user.ID, prospect.StatusInProgress)
	createTestProspect(t, client, ours.ID, user.ID, prospect.StatusConverted)
	createTestProspect(t, client, theirs.ID, user.ID, prospect.StatusLost)

	now := time.Now()
	stats, err := service.Conversions(ctx, ours.ID, now.AddDate(-1, 0, 0), now.AddDate(0, 0, 1))
	require.NoError(t, err)

	// The rival company's lost prospect never shows up
	require.Len(t, stats.Conversions, 3)
	assert.Equal(t, "to_visit", stats.Conversions[0].Status)
	assert.Equal(t, 1, stats.Conversions[0].Count)
	assert.Equal(t, "in_progress", stats.Conversions[1].Status)
	assert.Equal(t, 2, stats.Conversions[1].Count)
	assert.Equal(t, "converted", stats.Conversions[2].Status)
	assert.Equal(t, 1, stats.Conversions[2].Count)
}

func TestHeatmap(t *testing.T) {
	service, client := setupTestService(t)
	ctx := context.Background()
	ours := createTestCompany(t, client)
	theirs := createTestCompany(t, client)
	user := createTestUser(t, client, ours.ID)

	located := createTestProspect(t, client, ours.ID, user.ID, prospect.StatusInProgress)
	require.NoError(t, client.Prospect.UpdateOneID(located.ID).
		SetLatitude(48.8566).SetLongitude(2.3522).
		SetVisitsCount(3).SetNoteAvg(4).Exec(ctx))

	quiet := createTestProspect(t, client, ours.ID, user.ID, prospect.StatusToVisit)
	require.NoError(t, client.Prospect.UpdateOneID(quiet.ID).
		SetLatitude(45.7640).SetLongitude(4.8357).Exec(ctx))

	// No coordinates, never mapped
	createTestProspect(t, client, ours.ID, user.ID, prospect.StatusInProgress)

	foreign := createTestProspect(t, client, theirs.ID, user.ID, prospect.StatusInProgress)
	require.NoError(t, client.Prospect.UpdateOneID(foreign.ID).
		SetLatitude(43.2965).SetLongitude(5.3698).Exec(ctx))

	stats, err := service.Heatmap(ctx, ours.ID)
	require.NoError(t, err)

	require.Len(t, stats.Locations, 2)
	assert.Equal(t, located.ID, stats.Locations[0].ID)
	assert.Equal(t, 3, stats.Locations[0].VisitsCount)
	assert.Equal(t, 48.8566, stats.Locations[0].Latitude)
	assert.Equal(t, quiet.ID, stats.Locations[1].ID)
}

func TestByUser(t *testing.T) {
	service, client := setupTestService(t)
	ctx := context.Background()
	comp := createTestCompany(t, client)
	alice := createTestUser(t, client, comp.ID)
	bob := createTestUser(t, client, comp.ID)

	p := createTestProspect(t, client, comp.ID, alice.ID, prospect.StatusInProgress)

	now := time.Now()
	createTestVisit(t, client, p.ID, alice.ID, now.AddDate(0, 0, -1), intPtr(5))
	createTestVisit(t, client, p.ID, alice.ID, now.AddDate(0, 0, -2), intPtr(3))
	createTestVisit(t, client, p.ID, bob.ID, now.AddDate(0, 0, -1), nil)

	stats, err := service.ByUser(ctx, comp.ID, now.AddDate(0, 0, -30), now.AddDate(0, 0, 1))
	require.NoError(t, err)

	require.Len(t, stats.UserStats, 2)
	// Most active rep first
	assert.Equal(t, alice.ID, stats.UserStats[0].UserID)
	assert.Equal(t, 2, stats.UserStats[0].TotalVisits)
	assert.Equal(t, 4.0, stats.UserStats[0].AvgScore)
	assert.Equal(t, bob.ID, stats.UserStats[1].UserID)
	assert.Equal(t, 1, stats.UserStats[1].TotalVisits)
	assert.Equal(t, 0.0, stats.UserStats[1].AvgScore)
}
