package promotion

import (
	"errors"
	"fmt"
	"time"
)

var (
	ErrInvalidDateRange = errors.New("end of date range is before its start")
	ErrInvalidWeekday   = errors.New("weekday index must be between 0 (Mon) and 6 (Sun)")
	ErrInvalidTimeOfDay = errors.New("invalid time of day")
)

// Weekday uses the dashboard's convention: Mon=0 .. Sun=6.
type Weekday int

const (
	Monday Weekday = iota
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
	Sunday
)

func NewWeekday(i int) (Weekday, error) {
	if i < 0 || i > 6 {
		return 0, ErrInvalidWeekday
	}
	return Weekday(i), nil
}

// weekdayOf converts Go's Sunday-first weekday to the Monday-first index.
func weekdayOf(t time.Time) Weekday {
	return Weekday((int(t.Weekday()) + 6) % 7)
}

// TimeOfDay is a wall-clock minute within a day.
type TimeOfDay struct {
	minutes int
}

func NewTimeOfDay(hour, minute int) (TimeOfDay, error) {
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return TimeOfDay{}, ErrInvalidTimeOfDay
	}
	return TimeOfDay{minutes: hour*60 + minute}, nil
}

func ParseTimeOfDay(s string) (TimeOfDay, error) {
	var hour, minute int
	if _, err := fmt.Sscanf(s, "%d:%d", &hour, &minute); err != nil {
		return TimeOfDay{}, ErrInvalidTimeOfDay
	}
	return NewTimeOfDay(hour, minute)
}

func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", t.minutes/60, t.minutes%60)
}

func timeOfDayAt(t time.Time, loc *time.Location) TimeOfDay {
	local := t.In(loc)
	return TimeOfDay{minutes: local.Hour()*60 + local.Minute()}
}

// DailyWindow gates a rule to a wall-clock interval each active day, inclusive
// on both ends. A window whose end precedes its start wraps past midnight.
type DailyWindow struct {
	start TimeOfDay
	end   TimeOfDay
}

func NewDailyWindow(start, end TimeOfDay) DailyWindow {
	return DailyWindow{start: start, end: end}
}

func (w DailyWindow) Start() TimeOfDay { return w.start }
func (w DailyWindow) End() TimeOfDay   { return w.end }

func (w DailyWindow) Contains(tod TimeOfDay) bool {
	if w.end.minutes < w.start.minutes {
		// wraps midnight: [start, 24:00) ∪ [00:00, end]
		return tod.minutes >= w.start.minutes || tod.minutes <= w.end.minutes
	}
	return tod.minutes >= w.start.minutes && tod.minutes <= w.end.minutes
}

// Schedule is the temporal half of a promotion rule: an inclusive absolute
// date range, optionally narrowed to a weekday set and a daily window. It is a
// pure value; IsActiveAt never consults anything but its arguments.
type Schedule struct {
	startsAt   time.Time
	endsAt     time.Time
	activeDays map[Weekday]struct{}
	window     *DailyWindow
}

func NewSchedule(startsAt, endsAt time.Time, activeDays []Weekday, window *DailyWindow) (Schedule, error) {
	if endsAt.Before(startsAt) {
		return Schedule{}, ErrInvalidDateRange
	}

	var days map[Weekday]struct{}
	if len(activeDays) > 0 {
		days = make(map[Weekday]struct{}, len(activeDays))
		for _, d := range activeDays {
			if d < Monday || d > Sunday {
				return Schedule{}, ErrInvalidWeekday
			}
			days[d] = struct{}{}
		}
	}

	return Schedule{
		startsAt:   startsAt,
		endsAt:     endsAt,
		activeDays: days,
		window:     window,
	}, nil
}

func (s Schedule) StartsAt() time.Time  { return s.startsAt }
func (s Schedule) EndsAt() time.Time    { return s.endsAt }
func (s Schedule) Window() *DailyWindow { return s.window }

func (s Schedule) ActiveDays() []Weekday {
	if len(s.activeDays) == 0 {
		return nil
	}
	days := make([]Weekday, 0, len(s.activeDays))
	for d := Monday; d <= Sunday; d++ {
		if _, ok := s.activeDays[d]; ok {
			days = append(days, d)
		}
	}
	return days
}

// IsActiveAt reports whether the schedule admits the given instant, evaluated
// in the merchant's timezone. Both range endpoints are inclusive.
func (s Schedule) IsActiveAt(t time.Time, loc *time.Location) bool {
	if t.Before(s.startsAt) || t.After(s.endsAt) {
		return false
	}
	if len(s.activeDays) > 0 {
		if _, ok := s.activeDays[weekdayOf(t.In(loc))]; !ok {
			return false
		}
	}
	if s.window != nil && !s.window.Contains(timeOfDayAt(t, loc)) {
		return false
	}
	return true
}
