package users

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/horeca-prospection/backend/config"
	"github.com/horeca-prospection/backend/ent"
	"github.com/horeca-prospection/backend/ent/enttest"
	"github.com/horeca-prospection/backend/pkg/auth"
	"github.com/horeca-prospection/backend/pkg/models"

	_ "github.com/mattn/go-sqlite3"
)

func setupAuthService(t *testing.T) (*AuthService, *ent.Client) {
	client := enttest.Open(t, "sqlite3", "file:ent?mode=memory&cache=shared&_fk=1")
	t.Cleanup(func() { client.Close() })

	cfg := &config.Config{
		JWTSecret:            "test-secret",
		JWTExpirationMinutes: 15,
		JWTRefreshExpiryDays: 7,
	}
	return NewAuthService(client, cfg), client
}

func registerTestAccount(t *testing.T, service *AuthService) *models.AuthResponse {
	resp, err := service.Register(context.Background(), models.RegisterRequest{
		Email:       "claire@demo.fr",
		Password:    "s3cret-pass",
		FirstName:   "Claire",
		LastName:    "Fontaine",
		CompanyName: "Distribution Gourmande",
	})
	require.NoError(t, err)
	return resp
}

func TestRegister(t *testing.T) {
	service, client := setupAuthService(t)
	resp := registerTestAccount(t, service)

	assert.NotEmpty(t, resp.AccessToken)
	assert.NotEmpty(t, resp.RefreshToken)
	require.NotNil(t, resp.User)
	assert.Equal(t, "claire@demo.fr", resp.User.Email)
	assert.Equal(t, "admin", resp.User.Role)

	// The first user carries the new company in its claims
	claims, err := auth.ValidateAccessToken(resp.AccessToken, "test-secret")
	require.NoError(t, err)
	assert.Equal(t, resp.User.ID, claims.UserID)
	assert.NotZero(t, claims.CompanyID)

	count, err := client.Company.Query().Count(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestRegister_DuplicateEmail(t *testing.T) {
	service, _ := setupAuthService(t)
	registerTestAccount(t, service)

	_, err := service.Register(context.Background(), models.RegisterRequest{
		Email:       "claire@demo.fr",
		Password:    "another-pass",
		FirstName:   "Autre",
		LastName:    "Claire",
		CompanyName: "Autre Société",
	})
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestLogin(t *testing.T) {
	service, client := setupAuthService(t)
	registerTestAccount(t, service)

	resp, err := service.Login(context.Background(), models.LoginRequest{
		Email:    "claire@demo.fr",
		Password: "s3cret-pass",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.AccessToken)

	stored := client.User.GetX(context.Background(), resp.User.ID)
	assert.NotNil(t, stored.LastLoginAt)
}

func TestLogin_WrongPassword(t *testing.T) {
	service, _ := setupAuthService(t)
	registerTestAccount(t, service)

	_, err := service.Login(context.Background(), models.LoginRequest{
		Email:    "claire@demo.fr",
		Password: "wrong",
	})
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = service.Login(context.Background(), models.LoginRequest{
		Email:    "nobody@demo.fr",
		Password: "whatever",
	})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLogin_InactiveAccount(t *testing.T) {
	service, client := setupAuthService(t)
	registered := registerTestAccount(t, service)

	err := client.User.UpdateOneID(registered.User.ID).SetIsActive(false).Exec(context.Background())
	require.NoError(t, err)

	_, err = service.Login(context.Background(), models.LoginRequest{
		Email:    "claire@demo.fr",
		Password: "s3cret-pass",
	})
	assert.ErrorIs(t, err, ErrAccountInactive)
}

func TestRefresh_RotatesToken(t *testing.T) {
	service, _ := setupAuthService(t)
	ctx := context.Background()
	registered := registerTestAccount(t, service)

	refreshed, err := service.Refresh(ctx, models.RefreshRequest{
		RefreshToken: registered.RefreshToken,
	})
	require.NoError(t, err)
	assert.NotEqual(t, registered.RefreshToken, refreshed.RefreshToken)

	// The presented token was revoked in the rotation
	_, err = service.Refresh(ctx, models.RefreshRequest{
		RefreshToken: registered.RefreshToken,
	})
	assert.ErrorIs(t, err, ErrInvalidRefresh)

	// The fresh one still works
	_, err = service.Refresh(ctx, models.RefreshRequest{
		RefreshToken: refreshed.RefreshToken,
	})
	assert.NoError(t, err)
}

func TestRefresh_UnknownToken(t *testing.T) {
	service, _ := setupAuthService(t)

	_, err := service.Refresh(context.Background(), models.RefreshRequest{
		RefreshToken: "never-issued",
	})
	assert.ErrorIs(t, err, ErrInvalidRefresh)
}

func TestLogout(t *testing.T) {
	service, _ := setupAuthService(t)
	ctx := context.Background()
	registered := registerTestAccount(t, service)

	require.NoError(t, service.Logout(ctx, registered.RefreshToken))

	_, err := service.Refresh(ctx, models.RefreshRequest{
		RefreshToken: registered.RefreshToken,
	})
	assert.ErrorIs(t, err, ErrInvalidRefresh)

	// Logging out twice is a no-op
	assert.NoError(t, service.Logout(ctx, registered.RefreshToken))
	assert.NoError(t, service.Logout(ctx, "never-issued"))
}

func TestMe(t *testing.T) {
	service, _ := setupAuthService(t)
	registered := registerTestAccount(t, service)

	info, err := service.Me(context.Background(), registered.User.ID)
	require.NoError(t, err)
	assert.Equal(t, "claire@demo.fr", info.Email)
	assert.NotZero(t, info.CompanyID)
}

func TestPurgeExpiredTokens(t *testing.T) {
	service, client := setupAuthService(t)
	ctx := context.Background()
	registered := registerTestAccount(t, service)

	// Force the stored token past its expiry
	_, err := client.RefreshToken.Update().
		SetExpiresAt(timeDaysAgo(1)).
		Save(ctx)
	require.NoError(t, err)

	purged, err := service.PurgeExpiredTokens(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, purged)

	_, err = service.Refresh(ctx, models.RefreshRequest{
		RefreshToken: registered.RefreshToken,
	})
	assert.ErrorIs(t, err, ErrInvalidRefresh)
}

func TestUpdateProfile(t *testing.T) {
	service, _ := setupAuthService(t)
	registered := registerTestAccount(t, service)
	ctx := context.Background()

	firstName := "Claire-Marie"
	phone := "+33612345678"
	locale := "en"
	info, err := service.UpdateProfile(ctx, registered.User.ID, models.UpdateProfileRequest{
		FirstName: &firstName,
		Phone:     &phone,
		Locale:    &locale,
	})
	require.NoError(t, err)

	assert.Equal(t, "Claire-Marie", info.FirstName)
	assert.Equal(t, "Fontaine", info.LastName)
	assert.Equal(t, "+33612345678", info.Phone)
	assert.Equal(t, "en", info.Locale)
}

func TestUpdateProfile_NoFieldsIsRead(t *testing.T) {
	service, _ := setupAuthService(t)
	registered := registerTestAccount(t, service)

	info, err := service.UpdateProfile(context.Background(), registered.User.ID, models.UpdateProfileRequest{})
	require.NoError(t, err)
	assert.Equal(t, "Claire", info.FirstName)
}
