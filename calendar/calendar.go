package calendar

import (
	"fmt"
	"time"

	"hotel-admin-backend/models"
)

// Labels the console renders around the grid.
var (
	WeekDays = []string{"Dom", "Lun", "Mar", "Mié", "Jue", "Vie", "Sáb"}

	monthNames = []string{
		"Enero", "Febrero", "Marzo", "Abril", "Mayo", "Junio",
		"Julio", "Agosto", "Septiembre", "Octubre", "Noviembre", "Diciembre",
	}
)

// MonthName returns the Spanish name for a month.
func MonthName(month time.Month) string {
	return monthNames[int(month)-1]
}

// MonthCells builds the cell sequence for one month: as many nil
// placeholders as the weekday index of day 1 (0=Sunday..6=Saturday),
// then one midnight-UTC date per day of the month, ascending. Pure
// function of year/month.
func MonthCells(year int, month time.Month) []*time.Time {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	leading := int(first.Weekday())
	// day 0 of the next month is the last day of this one
	totalDays := time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()

	cells := make([]*time.Time, 0, leading+totalDays)
	for i := 0; i < leading; i++ {
		cells = append(cells, nil)
	}
	for d := 1; d <= totalDays; d++ {
		day := time.Date(year, month, d, 0, 0, 0, 0, time.UTC)
		cells = append(cells, &day)
	}
	return cells
}

// ReservationsOn returns the reservations whose stay touches the given day.
// A stay [entrada, salida] is expanded to the closed interval
// [entrada 00:00:00.000, salida 23:59:59.999], so the checkout date itself
// still counts as occupied. Cancelled reservations still project; filtering
// by estado is the caller's choice. A nil date (placeholder cell) yields an
// empty result without touching the list.
func ReservationsOn(date *time.Time, reservations []models.Reservation) []models.Reservation {
	if date == nil {
		return []models.Reservation{}
	}
	day := atMidnight(*date)

	out := []models.Reservation{}
	for _, r := range reservations {
		start := atMidnight(r.FechaEntrada)
		end := endOfDay(r.FechaSalida)
		if !day.Before(start) && !day.After(end) {
			out = append(out, r)
		}
	}
	return out
}

// IsToday reports whether the cell date matches the wall-clock day. Always
// false for placeholder cells.
func IsToday(date *time.Time) bool {
	if date == nil {
		return false
	}
	now := time.Now()
	return date.Day() == now.Day() &&
		date.Month() == now.Month() &&
		date.Year() == now.Year()
}

// Projector holds the visible month and derives its cell sequence. The
// reference is anchored to day 1 so month arithmetic never skips a short
// month on day-of-month overflow.
type Projector struct {
	reference time.Time
}

// NewProjector starts a projector at the given month.
func NewProjector(year int, month time.Month) *Projector {
	return &Projector{reference: time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)}
}

// NewProjectorAt starts a projector at the month containing t.
func NewProjectorAt(t time.Time) *Projector {
	return NewProjector(t.Year(), t.Month())
}

func (p *Projector) Year() int         { return p.reference.Year() }
func (p *Projector) Month() time.Month { return p.reference.Month() }

// Label is the heading the console shows, e.g. "Enero 2024".
func (p *Projector) Label() string {
	return fmt.Sprintf("%s %d", MonthName(p.Month()), p.Year())
}

// Cells rebuilds the cell sequence for the visible month.
func (p *Projector) Cells() []*time.Time {
	return MonthCells(p.Year(), p.Month())
}

// ChangeMonth moves the visible month by offset whole months, rolling the
// year as needed (month 13 of year Y becomes month 1 of year Y+1).
func (p *Projector) ChangeMonth(offset int) {
	p.reference = p.reference.AddDate(0, offset, 0)
}

func atMidnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func endOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, 999*int(time.Millisecond), time.UTC)
}
