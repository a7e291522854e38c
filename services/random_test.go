package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPickRandomHighRatedEmptyStore(t *testing.T) {
	db := openTestDB(t)
	sqlDB, err := db.DB()
	require.NoError(t, err)

	picker := NewRandomPicker(sqlDB, 4.0)
	_, err = picker.PickRandomHighRated()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestPickRandomHighRatedNoQualifyingMovies(t *testing.T) {
	db := openTestDB(t)
	seedMovie(t, db, "Mediocre", floatPtr(2.5))
	seedMovie(t, db, "Unrated", nil)

	sqlDB, err := db.DB()
	require.NoError(t, err)

	picker := NewRandomPicker(sqlDB, 4.0)
	_, err = picker.PickRandomHighRated()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestPickRandomHighRatedSingleQualifyingIsDeterministic(t *testing.T) {
	db := openTestDB(t)
	seedMovie(t, db, "Filler One", floatPtr(1.0))
	winner := seedMovie(t, db, "The Godfather", floatPtr(4.9))
	seedMovie(t, db, "Filler Two", floatPtr(3.9))

	sqlDB, err := db.DB()
	require.NoError(t, err)

	picker := NewRandomPicker(sqlDB, 4.0)
	for i := 0; i < 5; i++ {
		preview, err := picker.PickRandomHighRated()
		require.NoError(t, err)
		assert.Equal(t, winner.ID, preview.ID)
		assert.Equal(t, "The Godfather", preview.Name)
	}
}

func TestPickRandomHighRatedNeverBelowThreshold(t *testing.T) {
	db := openTestDB(t)
	for _, tc := range []struct {
		name   string
		rating float64
	}{
		{"Low One", 1.5},
		{"High One", 4.2},
		{"Low Two", 3.99},
		{"High Two", 4.0},
		{"High Three", 5.0},
	} {
		seedMovie(t, db, tc.name, floatPtr(tc.rating))
	}

	sqlDB, err := db.DB()
	require.NoError(t, err)

	picker := NewRandomPicker(sqlDB, 4.0)
	for i := 0; i < 20; i++ {
		preview, err := picker.PickRandomHighRated()
		require.NoError(t, err)
		require.NotNil(t, preview.Rating)
		assert.GreaterOrEqual(t, *preview.Rating, 4.0)
	}
}
