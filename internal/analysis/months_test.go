package analysis

import (
	"testing"
	"time"

	"presupuesto/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFlexibleDate(t *testing.T) {
	tests := []struct {
		input string
		want  time.Time
	}{
		{"15/03/2024", time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)},
		{"2024-03-15", time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)},
		{"2024-03-15T18:30:00Z", time.Date(2024, 3, 15, 18, 30, 0, 0, time.UTC)},
		{"01/12/2023", time.Date(2023, 12, 1, 0, 0, 0, 0, time.UTC)},
	}
	for _, tt := range tests {
		got, err := ParseFlexibleDate(tt.input)
		require.NoError(t, err, "input: %q", tt.input)
		assert.True(t, got.Equal(tt.want), "input: %q, got %v", tt.input, got)
	}
}

func TestParseFlexibleDateErrors(t *testing.T) {
	for _, input := range []string{"", "  ", "15-03-2024x", "03/15/2024", "notadate"} {
		_, err := ParseFlexibleDate(input)
		assert.Error(t, err, "input: %q", input)
	}
}

func TestParseFlexibleDateSlashSelectsLocaleForm(t *testing.T) {
	// 05/04 is the 5th of April, never May 4th.
	got, err := ParseFlexibleDate("05/04/2024")
	require.NoError(t, err)
	assert.Equal(t, time.April, got.Month())
	assert.Equal(t, 5, got.Day())
}

func TestMonthKeyUsesUTC(t *testing.T) {
	// 23:30 on Jan 31 in UTC-5 is already February in UTC.
	loc := time.FixedZone("UTC-5", -5*3600)
	d := time.Date(2024, 1, 31, 23, 30, 0, 0, loc)
	assert.Equal(t, "2024-02", MonthKey(d))
}

func TestFilterByMonth(t *testing.T) {
	mustParse := func(s string) time.Time {
		d, err := ParseFlexibleDate(s)
		require.NoError(t, err)
		return d
	}

	transactions := []models.Transaction{
		{Description: "a", Date: mustParse("15/03/2024")},
		{Description: "b", Date: mustParse("2024-02-28")},
		{Description: "c", Date: mustParse("2024-03-01")},
		{Description: "d", Date: mustParse("31/03/2024")},
	}

	march := FilterByMonth(transactions, "2024-03")
	require.Len(t, march, 3)
	// Stable: input order is preserved.
	assert.Equal(t, "a", march[0].Description)
	assert.Equal(t, "c", march[1].Description)
	assert.Equal(t, "d", march[2].Description)

	february := FilterByMonth(transactions, "2024-02")
	require.Len(t, february, 1)
	assert.Equal(t, "b", february[0].Description)

	assert.Empty(t, FilterByMonth(transactions, "2024-01"))
}

func TestFilterByMonthIdempotent(t *testing.T) {
	d, err := ParseFlexibleDate("2024-03-15")
	require.NoError(t, err)
	transactions := []models.Transaction{{Description: "a", Date: d}}

	once := FilterByMonth(transactions, "2024-03")
	twice := FilterByMonth(once, "2024-03")
	assert.Equal(t, once, twice)
}

func TestMonthlyTotals(t *testing.T) {
	mustParse := func(s string) time.Time {
		d, err := ParseFlexibleDate(s)
		require.NoError(t, err)
		return d
	}

	transactions := []models.Transaction{
		{Amount: 10000, Date: mustParse("2024-03-10")},
		{Amount: 5000, Date: mustParse("2024-01-05")},
		{Amount: 20000, Date: mustParse("15/03/2024")},
		{Amount: 7000, Date: mustParse("2024-02-20")},
	}

	got := MonthlyTotals(transactions)
	require.Len(t, got, 3)
	assert.Equal(t, []MonthlyTotal{
		{Month: "2024-01", Total: 5000},
		{Month: "2024-02", Total: 7000},
		{Month: "2024-03", Total: 30000},
	}, got)
}

func TestCompareMonths(t *testing.T) {
	assert.Equal(t, Rollover{}, CompareMonths("2024-03", "2024-03"))

	r := CompareMonths("2024-01", "2024-03")
	assert.True(t, r.RolledOver)
	assert.Equal(t, 2, r.MonthsPassed)

	r = CompareMonths("2023-11", "2024-02")
	assert.True(t, r.RolledOver)
	assert.Equal(t, 3, r.MonthsPassed)
}

func TestCompareMonthsUnparseableStored(t *testing.T) {
	r := CompareMonths("garbage", "2024-03")
	assert.True(t, r.RolledOver)
	assert.Equal(t, 0, r.MonthsPassed)
}

func TestCompareMonthsFutureStored(t *testing.T) {
	r := CompareMonths("2024-06", "2024-03")
	assert.True(t, r.RolledOver)
	assert.Equal(t, 0, r.MonthsPassed)
}
