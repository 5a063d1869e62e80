package kernel_test

import (
	"testing"

	"github.com/joModes-1/b2b-backend-sub001/internal/core/domain/model/kernel"
	"github.com/joModes-1/b2b-backend-sub001/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAddress(t *testing.T) {
	t.Run("should create address without geopoint", func(t *testing.T) {
		addr, err := kernel.NewAddress("14 Broad Street", "Lagos", nil)

		require.NoError(t, err)
		require.NoError(t, addr.Validate())
		assert.Equal(t, "14 Broad Street", addr.Street())
		assert.Equal(t, "Lagos", addr.City())
		assert.Nil(t, addr.Geopoint())
		assert.Equal(t, "14 Broad Street, Lagos", addr.String())
	})

	t.Run("should create address with geopoint", func(t *testing.T) {
		geo := &kernel.Geopoint{Latitude: 6.52, Longitude: 3.38}

		addr, err := kernel.NewAddress("14 Broad Street", "Lagos", geo)

		require.NoError(t, err)
		require.NotNil(t, addr.Geopoint())
		assert.InDelta(t, 6.52, addr.Geopoint().Latitude, 1e-9)
		assert.InDelta(t, 3.38, addr.Geopoint().Longitude, 1e-9)
	})

	t.Run("should copy geopoint on construction and access", func(t *testing.T) {
		geo := &kernel.Geopoint{Latitude: 6.52, Longitude: 3.38}
		addr, _ := kernel.NewAddress("14 Broad Street", "Lagos", geo)

		geo.Latitude = 0
		returned := addr.Geopoint()
		returned.Longitude = 0

		assert.InDelta(t, 6.52, addr.Geopoint().Latitude, 1e-9)
		assert.InDelta(t, 3.38, addr.Geopoint().Longitude, 1e-9)
	})

	t.Run("should fail with empty street", func(t *testing.T) {
		_, err := kernel.NewAddress("", "Lagos", nil)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should fail with empty city", func(t *testing.T) {
		_, err := kernel.NewAddress("14 Broad Street", "", nil)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should fail with out-of-range coordinates", func(t *testing.T) {
		testCases := []kernel.Geopoint{
			{Latitude: 91, Longitude: 0},
			{Latitude: -91, Longitude: 0},
			{Latitude: 0, Longitude: 181},
			{Latitude: 0, Longitude: -181},
		}

		for _, geo := range testCases {
			_, err := kernel.NewAddress("14 Broad Street", "Lagos", &geo)

			require.Error(t, err)
			assert.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
		}
	})
}

func TestAddress_Validate(t *testing.T) {
	t.Run("zero value fails validation", func(t *testing.T) {
		var addr kernel.Address

		err := addr.Validate()

		require.Error(t, err)
		assert.Equal(t, kernel.ErrAddressIsNotConstructed, err)
	})
}

func TestAddress_IsEqual(t *testing.T) {
	geo := &kernel.Geopoint{Latitude: 6.52, Longitude: 3.38}
	a1, _ := kernel.NewAddress("14 Broad Street", "Lagos", geo)
	a2, _ := kernel.NewAddress("14 Broad Street", "Lagos", &kernel.Geopoint{Latitude: 6.52, Longitude: 3.38})
	a3, _ := kernel.NewAddress("14 Broad Street", "Lagos", nil)
	a4, _ := kernel.NewAddress("15 Broad Street", "Lagos", geo)

	assert.True(t, a1.IsEqual(a2))
	assert.False(t, a1.IsEqual(a3))
	assert.False(t, a1.IsEqual(a4))
}
