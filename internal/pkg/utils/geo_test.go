package utils_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/collisions-monitor/internal/domain"
	"github.com/collisions-monitor/internal/pkg/utils"
)

func TestBounds(t *testing.T) {
	box, ok := utils.Bounds([]domain.Point{
		{Lat: 34.05, Lon: -118.24},
		{Lat: 32.71, Lon: -117.16},
		{Lat: 37.77, Lon: -122.42},
		{Lat: 200, Lon: 0}, // invalid, ignored
	})
	require.True(t, ok)

	assert.InDelta(t, 32.71, box.MinLat, 1e-9)
	assert.InDelta(t, 37.77, box.MaxLat, 1e-9)
	assert.InDelta(t, -122.42, box.MinLon, 1e-9)
	assert.InDelta(t, -117.16, box.MaxLon, 1e-9)

	center := box.Center()
	assert.InDelta(t, 35.24, center.Lat, 1e-9)
}

func TestBounds_Empty(t *testing.T) {
	_, ok := utils.Bounds(nil)
	assert.False(t, ok)

	_, ok = utils.Bounds([]domain.Point{{Lat: -91, Lon: 0}})
	assert.False(t, ok)
}

func TestValidateCoordinates(t *testing.T) {
	assert.True(t, utils.ValidateCoordinates(0, 0))
	assert.True(t, utils.ValidateCoordinates(-90, 180))
	assert.False(t, utils.ValidateCoordinates(90.1, 0))
	assert.False(t, utils.ValidateCoordinates(0, -180.5))
}
