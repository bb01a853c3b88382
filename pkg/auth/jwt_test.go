package auth

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret-key"

func TestGenerateAndValidateAccessToken(t *testing.T) {
	userID := uuid.New()
	companyID := uuid.New()

	token, err := GenerateAccessToken(userID, "rep@example.fr", "rep", companyID, testSecret, 15)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := ValidateAccessToken(token, testSecret)
	require.NoError(t, err)

	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, "rep@example.fr", claims.Email)
	assert.Equal(t, "rep", claims.Role)
	assert.Equal(t, companyID, claims.CompanyID)
}

func TestValidateAccessToken_Expired(t *testing.T) {
	token, err := GenerateAccessToken(uuid.New(), "rep@example.fr", "rep", uuid.New(), testSecret, -1)
	require.NoError(t, err)

	_, err = ValidateAccessToken(token, testSecret)
	assert.ErrorIs(t, err, ErrTokenExpired)
}

func TestValidateAccessToken_WrongSecret(t *testing.T) {
	token, err := GenerateAccessToken(uuid.New(), "rep@example.fr", "rep", uuid.New(), testSecret, 15)
	require.NoError(t, err)

	_, err = ValidateAccessToken(token, "another-secret")
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestValidateAccessToken_Garbage(t *testing.T) {
	_, err := ValidateAccessToken("not.a.token", testSecret)
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestGenerateRefreshToken(t *testing.T) {
	first, err := GenerateRefreshToken()
	require.NoError(t, err)
	second, err := GenerateRefreshToken()
	require.NoError(t, err)

	assert.Len(t, first, 64)
	assert.NotEqual(t, first, second)
}

func TestCanAccessOwned(t *testing.T) {
	owner := uuid.New()
	other := uuid.New()

	assert.True(t, CanAccessOwned("admin", other, owner))
	assert.True(t, CanAccessOwned("manager", other, owner))
	assert.True(t, CanAccessOwned("rep", owner, owner))
	assert.False(t, CanAccessOwned("rep", other, owner))
}

func TestEffectiveUserFilter(t *testing.T) {
	caller := uuid.New()
	requested := uuid.New()

	// Reps are pinned to their own id
	got := EffectiveUserFilter("rep", caller, &requested)
	require.NotNil(t, got)
	assert.Equal(t, caller, *got)

	got = EffectiveUserFilter("rep", caller, nil)
	require.NotNil(t, got)
	assert.Equal(t, caller, *got)

	// Managers keep the requested filter
	got = EffectiveUserFilter("manager", caller, &requested)
	require.NotNil(t, got)
	assert.Equal(t, requested, *got)

	assert.Nil(t, EffectiveUserFilter("admin", caller, nil))
}
