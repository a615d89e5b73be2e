// Package scheduling generates the booking widget's availability window and
// time slots. The classification rule is a deliberate placeholder for a real
// scheduling-provider integration: weekdays open, weekends only on even days
// of the month, with a first-five fallback so the widget is never fully
// blocked. Do not make it smarter.
package scheduling

import "time"

// DateFormat is the ISO calendar-day form used on the wire.
const DateFormat = "2006-01-02"

// CalendarDate is one cell of the two-week calendar grid.
type CalendarDate struct {
	Date      string `json:"date"`
	Day       string `json:"day"`
	DayShort  string `json:"day_short"`
	DayNumber int    `json:"day_number"`
	DayName   string `json:"day_name"`
}

// Window is a 14-day date range with per-date availability. It is computed
// fresh from the wall clock on every request and never stored.
type Window struct {
	Dates          []CalendarDate `json:"dates"`
	AvailableDates []string       `json:"available_dates"`
}

// windowDays is the fixed size of the widget's calendar grid (two weeks).
const windowDays = 14

// isoWeekday returns Monday=1 .. Sunday=7.
func isoWeekday(t time.Time) int {
	wd := int(t.Weekday())
	if wd == 0 {
		wd = 7
	}
	return wd
}

// BuildWindow returns the 14-day window anchored on the Monday of now's week.
// With now on a Sunday the anchor is still the current week's Monday, six
// days back.
func BuildWindow(now time.Time) Window {
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	monday := today.AddDate(0, 0, -(isoWeekday(today) - 1))

	w := Window{
		Dates:          make([]CalendarDate, 0, windowDays),
		AvailableDates: make([]string, 0, windowDays),
	}

	for i := 0; i < windowDays; i++ {
		d := monday.AddDate(0, 0, i)
		cd := CalendarDate{
			Date:      d.Format(DateFormat),
			Day:       d.Format("Mon"),
			DayShort:  d.Format("Mon"),
			DayNumber: d.Day(),
			DayName:   d.Weekday().String(),
		}
		w.Dates = append(w.Dates, cd)

		if d.Before(today) {
			continue
		}
		switch wd := isoWeekday(d); {
		case wd <= 5:
			w.AvailableDates = append(w.AvailableDates, cd.Date)
		case cd.DayNumber%2 == 0:
			w.AvailableDates = append(w.AvailableDates, cd.Date)
		}
	}

	// Guarantee the widget always has something selectable.
	if len(w.AvailableDates) == 0 {
		count := 0
		for i := 0; i < windowDays && count < 5; i++ {
			d := monday.AddDate(0, 0, i)
			if d.Before(today) {
				continue
			}
			w.AvailableDates = append(w.AvailableDates, d.Format(DateFormat))
			count++
		}
	}

	return w
}

// IsAvailable reports whether date is in the window's available set.
func (w Window) IsAvailable(date string) bool {
	for _, d := range w.AvailableDates {
		if d == date {
			return true
		}
	}
	return false
}

// TimeSlots returns the fixed time-of-day list offered on any date. Prior
// bookings are not consulted; this is the same placeholder policy as the
// availability rule.
func TimeSlots(date string) []string {
	return []string{"09:00", "10:30", "14:00", "15:30", "17:00"}
}
