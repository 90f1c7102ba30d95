package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCostMatrixValidation(t *testing.T) {
	_, err := NewCostMatrix([][]float64{{0, 1}, {1}})
	assert.ErrorIs(t, err, ErrMatrixNotSquare)

	_, err = NewCostMatrix([][]float64{{0, -1}, {1, 0}})
	assert.ErrorIs(t, err, ErrNegativeCost)

	m, err := NewCostMatrix([][]float64{{0, 2, Unreachable}, {2, 0, 3}, {Unreachable, 3, 0}})
	require.NoError(t, err)
	assert.Equal(t, 3, m.Len())
	assert.Equal(t, Unreachable, m.At(0, 2))

	empty, err := NewCostMatrix(nil)
	require.NoError(t, err)
	assert.Equal(t, 0, empty.Len())
}

func TestTourLengthOpenPath(t *testing.T) {
	m, err := NewCostMatrix([][]float64{
		{0, 10, 15, 20},
		{10, 0, 35, 25},
		{15, 35, 0, 30},
		{20, 25, 30, 0},
	})
	require.NoError(t, err)

	// Open path: no closing edge from the last stop back to the start.
	assert.Equal(t, 10.0+25+30, m.TourLength(Tour{0, 1, 3, 2}))
	assert.Equal(t, 0.0, m.TourLength(Tour{0}))
	assert.Equal(t, 0.0, m.TourLength(Tour{}))
}

func TestTourIsPermutation(t *testing.T) {
	assert.True(t, Tour{0, 2, 1, 3}.IsPermutation(4))
	assert.True(t, Tour{}.IsPermutation(0))
	assert.False(t, Tour{0, 2, 2, 3}.IsPermutation(4))
	assert.False(t, Tour{0, 1}.IsPermutation(3))
	assert.False(t, Tour{0, 4, 1}.IsPermutation(3))
}

func TestParseOpeningWindow(t *testing.T) {
	w, err := ParseOpeningWindow("10:00", "18:30")
	require.NoError(t, err)
	assert.Equal(t, 600, w.OpenMinute)
	assert.Equal(t, 1110, w.CloseMinute)

	for _, bad := range [][2]string{
		{"", "18:00"},
		{"10:00", "today"},
		{"25:00", "18:00"},
		{"10:61", "18:00"},
		{"10", "18:00"},
	} {
		_, err := ParseOpeningWindow(bad[0], bad[1])
		assert.ErrorIs(t, err, ErrInvalidWindowSpec, "open=%q close=%q", bad[0], bad[1])
	}
}

func TestOpeningWindowStatus(t *testing.T) {
	w, err := ParseOpeningWindow("10:00", "18:00")
	require.NoError(t, err)

	day := time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, StatusTooEarly, w.Status(day.Add(9*time.Hour)))
	assert.Equal(t, StatusOnTime, w.Status(day.Add(12*time.Hour)))
	assert.Equal(t, StatusTooLate, w.Status(day.Add(19*time.Hour)))

	// Boundary arrivals are within the window.
	assert.Equal(t, StatusOnTime, w.Status(day.Add(10*time.Hour)))
	assert.Equal(t, StatusOnTime, w.Status(day.Add(18*time.Hour)))

	// A nil window never constrains the arrival.
	var none *OpeningWindow
	assert.Equal(t, StatusOnTime, none.Status(day))
}
