package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/horeca-prospection/backend/ent"
	"github.com/horeca-prospection/backend/ent/enttest"
	"github.com/horeca-prospection/backend/ent/user"
	"github.com/horeca-prospection/backend/pkg/audit"
	"github.com/horeca-prospection/backend/pkg/cache"
	"github.com/horeca-prospection/backend/pkg/logger"
	"github.com/horeca-prospection/backend/pkg/metrics"
	"github.com/horeca-prospection/backend/pkg/models"
	"github.com/horeca-prospection/backend/pkg/prospects"
	"github.com/horeca-prospection/backend/pkg/tours"
	"github.com/horeca-prospection/backend/pkg/users"
	"github.com/horeca-prospection/backend/pkg/visits"

	_ "github.com/mattn/go-sqlite3"
)

// Prometheus collectors register against the default registry, so a
// single instance is shared by every test in the package.
var testMetrics = metrics.New()

type testEnv struct {
	client   *ent.Client
	visits   *visits.Service
	tours    *tours.Service
	users    *users.Service
	prospect *prospects.Service
	audit    *audit.Service
}

func setupEnv(t *testing.T) *testEnv {
	client := enttest.Open(t, "sqlite3", "file:ent?mode=memory&cache=shared&_fk=1")
	t.Cleanup(func() { client.Close() })

	mr := miniredis.RunT(t)
	cacheClient, err := cache.NewClient("redis://" + mr.Addr())
	require.NoError(t, err)
	t.Cleanup(func() { cacheClient.Close() })

	return &testEnv{
		client:   client,
		visits:   visits.NewService(client, cacheClient),
		tours:    tours.NewService(client),
		users:    users.NewService(client),
		prospect: prospects.NewService(client, cacheClient),
		audit:    audit.NewService(client, logger.Default()),
	}
}

func createUser(t *testing.T, client *ent.Client, role string) *ent.User {
	u, err := client.User.Create().
		SetEmail(uuid.NewString() + "@test.fr").
		SetPasswordHash("x").
		SetRole(user.Role(role)).
		Save(context.Background())
	require.NoError(t, err)
	return u
}

func createProspect(t *testing.T, client *ent.Client, creatorID uuid.UUID) *ent.Prospect {
	p, err := client.Prospect.Create().
		SetName("Le Bistrot " + uuid.NewString()[:8]).
		SetCreatorID(creatorID).
		Save(context.Background())
	require.NoError(t, err)
	return p
}

func createVisit(t *testing.T, env *testEnv, userID, prospectID uuid.UUID) *models.VisitResponse {
	resp, err := env.visits.Create(context.Background(), userID, models.CreateVisitRequest{
		ProspectID: prospectID.String(),
		Objective:  "Présentation de la gamme",
	})
	require.NoError(t, err)
	return resp
}

// newContext builds an echo context carrying the identity the auth
// middleware would have set from a valid token.
func newContext(t *testing.T, method, target, body string, u *ent.User) (echo.Context, *httptest.ResponseRecorder) {
	var reader *strings.Reader
	if body != "" {
		reader = strings.NewReader(body)
	} else {
		reader = strings.NewReader("")
	}

	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()

	c := echo.New().NewContext(req, rec)
	c.Set("user_id", u.ID)
	c.Set("user_email", u.Email)
	c.Set("user_role", string(u.Role))
	c.Set("company_id", uuid.UUID{})
	return c, rec
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) models.Envelope {
	var env models.Envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	return env
}

func TestVisitGet_RepCannotReadOthersVisit(t *testing.T) {
	env := setupEnv(t)
	owner := createUser(t, env.client, "rep")
	other := createUser(t, env.client, "rep")
	p := createProspect(t, env.client, owner.ID)
	visit := createVisit(t, env, owner.ID, p.ID)

	h := NewVisitHandler(env.visits, env.audit, testMetrics)

	c, rec := newContext(t, http.MethodGet, "/", "", other)
	c.SetParamNames("id")
	c.SetParamValues(visit.ID.String())

	require.NoError(t, h.Get(c))
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, "error", decodeEnvelope(t, rec).Status)

	// The owner still reads it fine
	c, rec = newContext(t, http.MethodGet, "/", "", owner)
	c.SetParamNames("id")
	c.SetParamValues(visit.ID.String())

	require.NoError(t, h.Get(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "success", decodeEnvelope(t, rec).Status)
}

func TestVisitGet_ManagerCanReadOthersVisit(t *testing.T) {
	env := setupEnv(t)
	owner := createUser(t, env.client, "rep")
	manager := createUser(t, env.client, "manager")
	p := createProspect(t, env.client, owner.ID)
	visit := createVisit(t, env, owner.ID, p.ID)

	h := NewVisitHandler(env.visits, env.audit, testMetrics)

	c, rec := newContext(t, http.MethodGet, "/", "", manager)
	c.SetParamNames("id")
	c.SetParamValues(visit.ID.String())

	require.NoError(t, h.Get(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestVisitList_RepAlwaysScopedToOwnVisits(t *testing.T) {
	env := setupEnv(t)
	alice := createUser(t, env.client, "rep")
	bob := createUser(t, env.client, "rep")
	p := createProspect(t, env.client, alice.ID)
	createVisit(t, env, alice.ID, p.ID)
	createVisit(t, env, bob.ID, p.ID)

	h := NewVisitHandler(env.visits, env.audit, testMetrics)

	// Bob asks for Alice's visits, gets only his own
	c, rec := newContext(t, http.MethodGet, "/?userId="+alice.ID.String(), "", bob)

	require.NoError(t, h.List(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Data models.VisitListResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Data.Visits, 1)
	assert.Equal(t, bob.ID, resp.Data.Visits[0].UserID)
}

func TestVisitDelete_RepBlockedAdminAllowed(t *testing.T) {
	env := setupEnv(t)
	owner := createUser(t, env.client, "rep")
	other := createUser(t, env.client, "rep")
	admin := createUser(t, env.client, "admin")
	p := createProspect(t, env.client, owner.ID)
	visit := createVisit(t, env, owner.ID, p.ID)

	h := NewVisitHandler(env.visits, env.audit, testMetrics)

	c, rec := newContext(t, http.MethodDelete, "/", "", other)
	c.SetParamNames("id")
	c.SetParamValues(visit.ID.String())
	require.NoError(t, h.Delete(c))
	assert.Equal(t, http.StatusForbidden, rec.Code)

	c, rec = newContext(t, http.MethodDelete, "/", "", admin)
	c.SetParamNames("id")
	c.SetParamValues(visit.ID.String())
	require.NoError(t, h.Delete(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	_, err := env.visits.GetByID(context.Background(), visit.ID)
	assert.ErrorIs(t, err, visits.ErrNotFound)
}

func TestVisitCreate_UnknownProspectIs404(t *testing.T) {
	env := setupEnv(t)
	rep := createUser(t, env.client, "rep")

	h := NewVisitHandler(env.visits, env.audit, testMetrics)

	body := `{"prospectId":"` + uuid.NewString() + `","score":4}`
	c, rec := newContext(t, http.MethodPost, "/", body, rep)

	require.NoError(t, h.Create(c))
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Prospect not found", decodeEnvelope(t, rec).Message)
}

func TestTourStart_SecondStartIs400(t *testing.T) {
	env := setupEnv(t)
	rep := createUser(t, env.client, "rep")
	tour, err := env.tours.Create(context.Background(), uuid.UUID{}, rep.ID, models.CreateTourRequest{
		Name: "Tournée Paris Centre",
	})
	require.NoError(t, err)

	h := NewTourHandler(env.tours, env.audit, testMetrics)

	c, rec := newContext(t, http.MethodPost, "/", "", rep)
	c.SetParamNames("id")
	c.SetParamValues(tour.ID.String())
	require.NoError(t, h.Start(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	c, rec = newContext(t, http.MethodPost, "/", "", rep)
	c.SetParamNames("id")
	c.SetParamValues(tour.ID.String())
	require.NoError(t, h.Start(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, tours.ErrNotPlanned.Error(), decodeEnvelope(t, rec).Message)
}

func TestTourCreate_MissingDateIs400(t *testing.T) {
	env := setupEnv(t)
	rep := createUser(t, env.client, "rep")

	h := NewTourHandler(env.tours, env.audit, testMetrics)

	body := `{"name":"Tournée Paris Centre","prospectIds":["` + uuid.NewString() + `"]}`
	c, rec := newContext(t, http.MethodPost, "/", body, rep)

	require.NoError(t, h.Create(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "error", decodeEnvelope(t, rec).Status)
}

func TestTourCreate_NoProspectsIs400(t *testing.T) {
	env := setupEnv(t)
	rep := createUser(t, env.client, "rep")

	h := NewTourHandler(env.tours, env.audit, testMetrics)

	for _, body := range []string{
		`{"name":"Tournée vide","date":"2026-03-02"}`,
		`{"name":"Tournée vide","date":"2026-03-02","prospectIds":[]}`,
	} {
		c, rec := newContext(t, http.MethodPost, "/", body, rep)
		require.NoError(t, h.Create(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	}
}

func TestVisitList_ScopedToCompany(t *testing.T) {
	env := setupEnv(t)
	ours, err := env.client.Company.Create().SetName("Maison Dupont").Save(context.Background())
	require.NoError(t, err)
	theirs, err := env.client.Company.Create().SetName("Maison Rival").Save(context.Background())
	require.NoError(t, err)

	manager := createUser(t, env.client, "manager")

	rep := createUser(t, env.client, "rep")
	mine, err := env.client.Prospect.Create().
		SetName("Le Bistrot d'Ici").
		SetCreatorID(rep.ID).
		SetCompanyID(ours.ID).
		Save(context.Background())
	require.NoError(t, err)
	foreign, err := env.client.Prospect.Create().
		SetName("Le Bistrot d'Ailleurs").
		SetCreatorID(rep.ID).
		SetCompanyID(theirs.ID).
		Save(context.Background())
	require.NoError(t, err)
	createVisit(t, env, rep.ID, mine.ID)
	createVisit(t, env, rep.ID, foreign.ID)

	h := NewVisitHandler(env.visits, env.audit, testMetrics)

	c, rec := newContext(t, http.MethodGet, "/", "", manager)
	c.Set("company_id", ours.ID)

	require.NoError(t, h.List(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Data models.VisitListResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Data.Visits, 1)
	assert.Equal(t, mine.ID, resp.Data.Visits[0].ProspectID)
	assert.Equal(t, 1, resp.Data.Pagination.Total)
}

func TestUserDelete_SelfIs400(t *testing.T) {
	env := setupEnv(t)
	admin := createUser(t, env.client, "admin")

	h := NewUserHandler(env.users, env.audit)

	c, rec := newContext(t, http.MethodDelete, "/", "", admin)
	c.SetParamNames("id")
	c.SetParamValues(admin.ID.String())

	require.NoError(t, h.Delete(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, users.ErrSelfDelete.Error(), decodeEnvelope(t, rec).Message)
}

func TestUserCreate_DuplicateEmailIs409(t *testing.T) {
	env := setupEnv(t)
	admin := createUser(t, env.client, "admin")

	h := NewUserHandler(env.users, env.audit)

	body := `{"email":"sophie@demo.fr","password":"s3cret-pass","role":"rep","firstName":"Sophie","lastName":"Lambert"}`
	c, rec := newContext(t, http.MethodPost, "/", body, admin)
	require.NoError(t, h.Create(c))
	assert.Equal(t, http.StatusCreated, rec.Code)

	c, rec = newContext(t, http.MethodPost, "/", body, admin)
	require.NoError(t, h.Create(c))
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, users.ErrEmailTaken.Error(), decodeEnvelope(t, rec).Message)
}

func TestProspectEnrich_NotConfiguredIs400(t *testing.T) {
	env := setupEnv(t)
	rep := createUser(t, env.client, "rep")
	p := createProspect(t, env.client, rep.ID)

	h := NewProspectHandler(env.prospect, nil, nil, nil, env.audit, testMetrics)

	c, rec := newContext(t, http.MethodPost, "/", "", rep)
	c.SetParamNames("id")
	c.SetParamValues(p.ID.String())

	require.NoError(t, h.Enrich(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "AI enrichment is not configured", decodeEnvelope(t, rec).Message)
}

func TestProspectGet_UnknownIs404(t *testing.T) {
	env := setupEnv(t)
	rep := createUser(t, env.client, "rep")

	h := NewProspectHandler(env.prospect, nil, nil, nil, env.audit, testMetrics)

	c, rec := newContext(t, http.MethodGet, "/", "", rep)
	c.SetParamNames("id")
	c.SetParamValues(uuid.NewString())

	require.NoError(t, h.Get(c))
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "error", decodeEnvelope(t, rec).Status)
}
