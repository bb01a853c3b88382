package users

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/horeca-prospection/backend/ent"
	"github.com/horeca-prospection/backend/ent/enttest"
	"github.com/horeca-prospection/backend/pkg/models"

	_ "github.com/mattn/go-sqlite3"
)

func timeDaysAgo(days int) time.Time {
	return time.Now().AddDate(0, 0, -days)
}

func setupTestService(t *testing.T) (*Service, *ent.Client, *ent.Company) {
	client := enttest.Open(t, "sqlite3", "file:ent?mode=memory&cache=shared&_fk=1")
	t.Cleanup(func() { client.Close() })

	comp, err := client.Company.Create().
		SetName("Distribution Gourmande").
		Save(context.Background())
	require.NoError(t, err)

	return NewService(client), client, comp
}

func TestCreateAndGet(t *testing.T) {
	service, _, comp := setupTestService(t)
	ctx := context.Background()

	created, err := service.Create(ctx, comp.ID, models.CreateUserRequest{
		Email:     "sophie@demo.fr",
		Password:  "s3cret-pass",
		Role:      "rep",
		FirstName: "Sophie",
		LastName:  "Lambert",
	})
	require.NoError(t, err)

	assert.Equal(t, "sophie@demo.fr", created.Email)
	assert.Equal(t, "rep", created.Role)
	assert.True(t, created.IsActive)

	got, err := service.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)
}

func TestCreate_EmailTaken(t *testing.T) {
	service, _, comp := setupTestService(t)
	ctx := context.Background()

	_, err := service.Create(ctx, comp.ID, models.CreateUserRequest{
		Email:     "sophie@demo.fr",
		Password:  "s3cret-pass",
		Role:      "rep",
		FirstName: "Sophie",
		LastName:  "Lambert",
	})
	require.NoError(t, err)

	_, err = service.Create(ctx, comp.ID, models.CreateUserRequest{
		Email:     "sophie@demo.fr",
		Password:  "other-pass",
		Role:      "manager",
		FirstName: "Autre",
		LastName:  "Sophie",
	})
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestList_ScopedToCompany(t *testing.T) {
	service, client, comp := setupTestService(t)
	ctx := context.Background()

	other, err := client.Company.Create().SetName("Concurrent SARL").Save(ctx)
	require.NoError(t, err)

	_, err = service.Create(ctx, comp.ID, models.CreateUserRequest{
		Email: "sophie@demo.fr", Password: "s3cret-pass", Role: "rep",
		FirstName: "Sophie", LastName: "Lambert",
	})
	require.NoError(t, err)

	_, err = service.Create(ctx, other.ID, models.CreateUserRequest{
		Email: "intrus@autre.fr", Password: "s3cret-pass", Role: "rep",
		FirstName: "Un", LastName: "Intrus",
	})
	require.NoError(t, err)

	resp, err := service.List(ctx, comp.ID, models.UserListRequest{})
	require.NoError(t, err)
	require.Len(t, resp.Users, 1)
	assert.Equal(t, "sophie@demo.fr", resp.Users[0].Email)
}

func TestList_RoleAndActiveFilters(t *testing.T) {
	service, _, comp := setupTestService(t)
	ctx := context.Background()

	rep, err := service.Create(ctx, comp.ID, models.CreateUserRequest{
		Email: "rep@demo.fr", Password: "s3cret-pass", Role: "rep",
		FirstName: "Sophie", LastName: "Lambert",
	})
	require.NoError(t, err)

	_, err = service.Create(ctx, comp.ID, models.CreateUserRequest{
		Email: "manager@demo.fr", Password: "s3cret-pass", Role: "manager",
		FirstName: "Julien", LastName: "Moreau",
	})
	require.NoError(t, err)

	inactive := false
	_, err = service.Update(ctx, rep.ID, models.UpdateUserRequest{IsActive: &inactive})
	require.NoError(t, err)

	resp, err := service.List(ctx, comp.ID, models.UserListRequest{Role: "manager"})
	require.NoError(t, err)
	assert.Equal(t, 1, resp.Pagination.Total)

	active := true
	resp, err = service.List(ctx, comp.ID, models.UserListRequest{IsActive: &active})
	require.NoError(t, err)
	require.Len(t, resp.Users, 1)
	assert.Equal(t, "manager@demo.fr", resp.Users[0].Email)
}

func TestUpdate(t *testing.T) {
	service, _, comp := setupTestService(t)
	ctx := context.Background()

	created, err := service.Create(ctx, comp.ID, models.CreateUserRequest{
		Email: "sophie@demo.fr", Password: "s3cret-pass", Role: "rep",
		FirstName: "Sophie", LastName: "Lambert",
	})
	require.NoError(t, err)

	newRole := "manager"
	newPhone := "+33612345678"
	updated, err := service.Update(ctx, created.ID, models.UpdateUserRequest{
		Role:  &newRole,
		Phone: &newPhone,
	})
	require.NoError(t, err)

	assert.Equal(t, "manager", updated.Role)
	assert.Equal(t, "+33612345678", updated.Phone)
	assert.Equal(t, "Sophie", updated.FirstName)
}

func TestDelete_SelfDeleteBlocked(t *testing.T) {
	service, _, comp := setupTestService(t)
	ctx := context.Background()

	admin, err := service.Create(ctx, comp.ID, models.CreateUserRequest{
		Email: "admin@demo.fr", Password: "s3cret-pass", Role: "admin",
		FirstName: "Claire", LastName: "Fontaine",
	})
	require.NoError(t, err)

	rep, err := service.Create(ctx, comp.ID, models.CreateUserRequest{
		Email: "rep@demo.fr", Password: "s3cret-pass", Role: "rep",
		FirstName: "Sophie", LastName: "Lambert",
	})
	require.NoError(t, err)

	assert.ErrorIs(t, service.Delete(ctx, admin.ID, admin.ID), ErrSelfDelete)

	require.NoError(t, service.Delete(ctx, admin.ID, rep.ID))
	_, err = service.GetByID(ctx, rep.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	assert.ErrorIs(t, service.Delete(ctx, admin.ID, uuid.New()), ErrNotFound)
}

func TestChangePassword(t *testing.T) {
	service, _, comp := setupTestService(t)
	ctx := context.Background()

	created, err := service.Create(ctx, comp.ID, models.CreateUserRequest{
		Email: "sophie@demo.fr", Password: "s3cret-pass", Role: "rep",
		FirstName: "Sophie", LastName: "Lambert",
	})
	require.NoError(t, err)

	err = service.ChangePassword(ctx, created.ID, models.ChangePasswordRequest{
		CurrentPassword: "wrong",
		NewPassword:     "new-password",
	})
	assert.ErrorIs(t, err, ErrWrongPassword)

	err = service.ChangePassword(ctx, created.ID, models.ChangePasswordRequest{
		CurrentPassword: "s3cret-pass",
		NewPassword:     "new-password",
	})
	require.NoError(t, err)
}
