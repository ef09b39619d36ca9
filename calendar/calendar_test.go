package calendar

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hotel-admin-backend/models"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestMonthCellsFebruary2024(t *testing.T) {
	cells := MonthCells(2024, time.February)

	// 2024-02-01 is a Thursday: four placeholders, then 29 days
	require.Len(t, cells, 4+29)
	for i := 0; i < 4; i++ {
		assert.Nil(t, cells[i])
	}
	require.NotNil(t, cells[4])
	assert.Equal(t, day(2024, time.February, 1), *cells[4])
	require.NotNil(t, cells[len(cells)-1])
	assert.Equal(t, day(2024, time.February, 29), *cells[len(cells)-1])
}

func TestMonthCellsStartsSundayWithoutPlaceholders(t *testing.T) {
	// 2025-06-01 is a Sunday
	cells := MonthCells(2025, time.June)
	require.Len(t, cells, 30)
	require.NotNil(t, cells[0])
	assert.Equal(t, day(2025, time.June, 1), *cells[0])
}

func TestReservationsOnIncludesCheckoutDay(t *testing.T) {
	res := []models.Reservation{{
		ID:           1,
		FechaEntrada: day(2024, time.March, 10),
		FechaSalida:  day(2024, time.March, 12),
	}}

	occupied := []int{10, 11, 12}
	for _, d := range occupied {
		date := day(2024, time.March, d)
		assert.Len(t, ReservationsOn(&date, res), 1, "day %d should be occupied", d)
	}
	for _, d := range []int{9, 13} {
		date := day(2024, time.March, d)
		assert.Empty(t, ReservationsOn(&date, res), "day %d should be free", d)
	}
}

func TestReservationsOnIgnoresTimeOfDay(t *testing.T) {
	res := []models.Reservation{{
		ID:           1,
		FechaEntrada: time.Date(2024, time.March, 10, 15, 30, 0, 0, time.UTC),
		FechaSalida:  time.Date(2024, time.March, 12, 9, 0, 0, 0, time.UTC),
	}}
	date := day(2024, time.March, 12)
	assert.Len(t, ReservationsOn(&date, res), 1)
}

func TestReservationsOnNilCell(t *testing.T) {
	res := []models.Reservation{{ID: 1}}
	assert.Empty(t, ReservationsOn(nil, res))
}

func TestIsToday(t *testing.T) {
	now := time.Now()
	today := day(now.Year(), now.Month(), now.Day())
	assert.True(t, IsToday(&today))

	other := today.AddDate(0, 0, 1)
	assert.False(t, IsToday(&other))
	assert.False(t, IsToday(nil))
}

func TestProjectorYearRollover(t *testing.T) {
	p := NewProjector(2023, time.December)
	p.ChangeMonth(1)
	assert.Equal(t, 2024, p.Year())
	assert.Equal(t, time.January, p.Month())

	p.ChangeMonth(-1)
	assert.Equal(t, 2023, p.Year())
	assert.Equal(t, time.December, p.Month())
}

func TestProjectorAnchoredToFirstOfMonth(t *testing.T) {
	// starting on Jan 31 must not skip February
	p := NewProjectorAt(time.Date(2024, time.January, 31, 12, 0, 0, 0, time.UTC))
	p.ChangeMonth(1)
	assert.Equal(t, time.February, p.Month())
	assert.Equal(t, 2024, p.Year())
}

func TestProjectorLabelAndCells(t *testing.T) {
	p := NewProjector(2024, time.January)
	assert.Equal(t, "Enero 2024", p.Label())

	cells := p.Cells()
	// 2024-01-01 is a Monday: one placeholder plus 31 days
	assert.Len(t, cells, 1+31)
}
