package maps

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewService_NoKeyDisablesGeocoding(t *testing.T) {
	service, err := NewService("")
	require.NoError(t, err)
	assert.Nil(t, service)
}

func TestGetOptimizedRoute_RequiresTwoLocations(t *testing.T) {
	service := &Service{}

	_, err := service.GetOptimizedRoute(context.Background(), []string{"48.85,2.35"})
	assert.Error(t, err)

	_, err = service.GetOptimizedRoute(context.Background(), nil)
	assert.Error(t, err)
}
