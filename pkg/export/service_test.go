package export

import (
	"bytes"
	"context"
	"encoding/csv"
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
	"github.com/horeca-prospection/backend/pkg/prospects"

	_ "github.com/mattn/go-sqlite3"
)

func setupTestService(t *testing.T) (*Service, *ent.Client) {
	client := enttest.Open(t, "sqlite3", "file:ent?mode=memory&cache=shared&_fk=1")
	t.Cleanup(func() { client.Close() })

	mr := miniredis.RunT(t)
	cacheClient, err := cache.NewClient("redis://" + mr.Addr())
	require.NoError(t, err)
	t.Cleanup(func() { cacheClient.Close() })

	return NewService(prospects.NewService(client, cacheClient)), client
}

func createTestProspect(t *testing.T, client *ent.Client, name, city string, status prospect.Status) {
	u, err := client.User.Create().
		SetEmail(uuid.NewString() + "@test.fr").
		SetPasswordHash("x").
		Save(context.Background())
	require.NoError(t, err)

	_, err = client.Prospect.Create().
		SetName(name).
		SetCity(city).
		SetStatus(status).
		SetCreatorID(u.ID).
		Save(context.Background())
	require.NoError(t, err)
}

func TestExport_CSV(t *testing.T) {
	service, client := setupTestService(t)
	ctx := context.Background()

	createTestProspect(t, client, "Le Bistrot Gourmand", "Paris", prospect.StatusToVisit)
	createTestProspect(t, client, "Hôtel du Parc", "Lyon", prospect.StatusConverted)

	var buf bytes.Buffer
	fileName, err := service.Export(ctx, "csv", models.ProspectListRequest{}, &buf)
	require.NoError(t, err)

	assert.Contains(t, fileName, "prospects-")
	assert.Contains(t, fileName, ".csv")

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)

	require.Len(t, records, 3)
	assert.Equal(t, exportHeaders, records[0])

	names := []string{records[1][1], records[2][1]}
	assert.Contains(t, names, "Le Bistrot Gourmand")
	assert.Contains(t, names, "Hôtel du Parc")
}

func TestExport_CSVFiltered(t *testing.T) {
	service, client := setupTestService(t)
	ctx := context.Background()

	createTestProspect(t, client, "Le Bistrot Gourmand", "Paris", prospect.StatusToVisit)
	createTestProspect(t, client, "Hôtel du Parc", "Lyon", prospect.StatusConverted)

	var buf bytes.Buffer
	_, err := service.Export(ctx, "csv", models.ProspectListRequest{Status: "converted"}, &buf)
	require.NoError(t, err)

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)

	require.Len(t, records, 2)
	assert.Equal(t, "Hôtel du Parc", records[1][1])
}

func TestExport_XLSX(t *testing.T) {
	service, client := setupTestService(t)
	ctx := context.Background()

	createTestProspect(t, client, "Le Bistrot Gourmand", "Paris", prospect.StatusToVisit)

	var buf bytes.Buffer
	fileName, err := service.Export(ctx, "xlsx", models.ProspectListRequest{}, &buf)
	require.NoError(t, err)

	assert.Contains(t, fileName, ".xlsx")
	// XLSX files are zip archives
	assert.Equal(t, []byte{'P', 'K'}, buf.Bytes()[:2])
}

func TestExport_InvalidFormat(t *testing.T) {
	service, _ := setupTestService(t)

	var buf bytes.Buffer
	_, err := service.Export(context.Background(), "pdf", models.ProspectListRequest{}, &buf)
	assert.Error(t, err)
	assert.Zero(t, buf.Len())
}
