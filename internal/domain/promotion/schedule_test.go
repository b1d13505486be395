//go:build unit

package promotion_test

import (
	"testing"
	"time"

	"storecredit-engine/internal/domain/promotion"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustWindow(t *testing.T, start, end string) *promotion.DailyWindow {
	t.Helper()
	s, err := promotion.ParseTimeOfDay(start)
	require.NoError(t, err)
	e, err := promotion.ParseTimeOfDay(end)
	require.NoError(t, err)
	w := promotion.NewDailyWindow(s, e)
	return &w
}

func TestSchedule_DateRangeBoundaries(t *testing.T) {
	startsAt := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	endsAt := time.Date(2026, 3, 31, 17, 0, 0, 0, time.UTC)

	s, err := promotion.NewSchedule(startsAt, endsAt, nil, nil)
	require.NoError(t, err)

	testCases := []struct {
		name    string
		instant time.Time
		active  bool
	}{
		{name: "exactly startsAt is active", instant: startsAt, active: true},
		{name: "1ns before startsAt is inactive", instant: startsAt.Add(-time.Nanosecond), active: false},
		{name: "exactly endsAt is active", instant: endsAt, active: true},
		{name: "1ns after endsAt is inactive", instant: endsAt.Add(time.Nanosecond), active: false},
		{name: "middle of range is active", instant: startsAt.AddDate(0, 0, 10), active: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.active, s.IsActiveAt(tc.instant, time.UTC))
		})
	}
}

func TestSchedule_RejectsInvertedRange(t *testing.T) {
	endsAt := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	_, err := promotion.NewSchedule(endsAt.Add(time.Hour), endsAt, nil, nil)
	assert.ErrorIs(t, err, promotion.ErrInvalidDateRange)
}

func TestSchedule_DailyWindowWrapsMidnight(t *testing.T) {
	startsAt := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	endsAt := time.Date(2026, 12, 31, 23, 59, 59, 0, time.UTC)

	s, err := promotion.NewSchedule(startsAt, endsAt, nil, mustWindow(t, "22:00", "02:00"))
	require.NoError(t, err)

	day := time.Date(2026, 6, 15, 0, 0, 0, 0, time.UTC)

	testCases := []struct {
		name    string
		instant time.Time
		active  bool
	}{
		{name: "23:30 is inside the wrapped window", instant: day.Add(23*time.Hour + 30*time.Minute), active: true},
		{name: "01:00 is inside the wrapped window", instant: day.Add(1 * time.Hour), active: true},
		{name: "12:00 is outside the wrapped window", instant: day.Add(12 * time.Hour), active: false},
		{name: "22:00 boundary is inside", instant: day.Add(22 * time.Hour), active: true},
		{name: "02:00 boundary is inside", instant: day.Add(2 * time.Hour), active: true},
		{name: "02:01 is outside", instant: day.Add(2*time.Hour + time.Minute), active: false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.active, s.IsActiveAt(tc.instant, time.UTC))
		})
	}
}

func TestSchedule_SingleInstantWindow(t *testing.T) {
	startsAt := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	endsAt := time.Date(2026, 1, 31, 23, 59, 59, 0, time.UTC)

	s, err := promotion.NewSchedule(startsAt, endsAt, nil, mustWindow(t, "12:00", "12:00"))
	require.NoError(t, err)

	day := time.Date(2026, 1, 10, 0, 0, 0, 0, time.UTC)
	assert.True(t, s.IsActiveAt(day.Add(12*time.Hour), time.UTC))
	assert.False(t, s.IsActiveAt(day.Add(12*time.Hour+time.Minute), time.UTC))
	assert.False(t, s.IsActiveAt(day.Add(11*time.Hour+59*time.Minute), time.UTC))
}

func TestSchedule_ActiveDaysNeverIntersectingRange(t *testing.T) {
	// 2026-03-03 is a Tuesday; the range never touches a Saturday, so the
	// rule simply never fires. Not an error.
	startsAt := time.Date(2026, 3, 3, 0, 0, 0, 0, time.UTC)
	endsAt := time.Date(2026, 3, 3, 23, 59, 59, 0, time.UTC)

	s, err := promotion.NewSchedule(startsAt, endsAt, []promotion.Weekday{promotion.Saturday}, nil)
	require.NoError(t, err)

	for instant := startsAt; !instant.After(endsAt); instant = instant.Add(time.Hour) {
		assert.False(t, s.IsActiveAt(instant, time.UTC), "unexpectedly active at %s", instant)
	}
}

func TestSchedule_WeekdayEvaluatedInMerchantTimezone(t *testing.T) {
	tokyo, err := time.LoadLocation("Asia/Tokyo")
	require.NoError(t, err)

	startsAt := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	endsAt := time.Date(2026, 3, 31, 23, 59, 59, 0, time.UTC)

	// Friday-only rule. 2026-03-06 23:00 UTC is already Saturday in Tokyo.
	s, err := promotion.NewSchedule(startsAt, endsAt, []promotion.Weekday{promotion.Friday}, nil)
	require.NoError(t, err)

	fridayEveningUTC := time.Date(2026, 3, 6, 23, 0, 0, 0, time.UTC)
	assert.True(t, s.IsActiveAt(fridayEveningUTC, time.UTC))
	assert.False(t, s.IsActiveAt(fridayEveningUTC, tokyo))
}

func TestWeekday_Validation(t *testing.T) {
	_, err := promotion.NewWeekday(7)
	assert.ErrorIs(t, err, promotion.ErrInvalidWeekday)

	_, err = promotion.NewWeekday(-1)
	assert.ErrorIs(t, err, promotion.ErrInvalidWeekday)

	d, err := promotion.NewWeekday(6)
	require.NoError(t, err)
	assert.Equal(t, promotion.Sunday, d)
}

func TestParseTimeOfDay(t *testing.T) {
	tod, err := promotion.ParseTimeOfDay("09:30")
	require.NoError(t, err)
	assert.Equal(t, "09:30", tod.String())

	_, err = promotion.ParseTimeOfDay("24:00")
	assert.ErrorIs(t, err, promotion.ErrInvalidTimeOfDay)

	_, err = promotion.ParseTimeOfDay("bogus")
	assert.ErrorIs(t, err, promotion.ErrInvalidTimeOfDay)
}
