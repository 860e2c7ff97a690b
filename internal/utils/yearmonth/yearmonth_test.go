package yearmonth

import (
	"testing"
	"time"

	"github.com/planwise/budget_planner_app/internal/apperrors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_Valid(t *testing.T) {
	ym, err := Parse("2024-03")
	require.NoError(t, err)
	assert.Equal(t, 2024, ym.Year)
	assert.Equal(t, time.March, ym.Month)
	assert.Equal(t, "2024-03", ym.String())
}

func TestParse_Invalid(t *testing.T) {
	for _, key := range []string{"", "2024", "2024-3", "2024-13", "2024-00", "03-2024", "2024/03", "2024-03-01"} {
		_, err := Parse(key)
		require.Error(t, err, "key %q should be rejected", key)
		assert.ErrorIs(t, err, apperrors.ErrValidation, "key %q", key)
	}
}

func TestBounds(t *testing.T) {
	ym, err := Parse("2024-02")
	require.NoError(t, err)

	start, end := ym.Bounds()
	assert.Equal(t, time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC), start)
	// 2024 is a leap year; the exclusive end is March 1st.
	assert.Equal(t, time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), end)

	// The last instant of the month is inside the window, the first instant of
	// the next month is not.
	lastInstant := end.Add(-time.Nanosecond)
	assert.True(t, !lastInstant.Before(start) && lastInstant.Before(end))
	assert.False(t, end.Before(end))
}

func TestBounds_DecemberRollsOver(t *testing.T) {
	ym, err := Parse("2023-12")
	require.NoError(t, err)

	start, end := ym.Bounds()
	assert.Equal(t, time.Date(2023, 12, 1, 0, 0, 0, 0, time.UTC), start)
	assert.Equal(t, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), end)
}

func TestNext(t *testing.T) {
	ym, err := Parse("2023-12")
	require.NoError(t, err)
	assert.Equal(t, "2024-01", ym.Next().String())
}
