package analysis

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"presupuesto/internal/models"
)

// monthKeyLayout is the canonical "YYYY-MM" period key.
const monthKeyLayout = "2006-01"

// MonthKey derives the "YYYY-MM" period key from a date using its UTC
// year and month.
func MonthKey(t time.Time) string {
	return t.UTC().Format(monthKeyLayout)
}

// CurrentMonth returns the present calendar month's period key.
func CurrentMonth() string {
	return MonthKey(time.Now())
}

// ParseFlexibleDate accepts the two date shapes that coexist in stored user
// data: ISO "YYYY-MM-DD" (optionally a full RFC3339 timestamp) and the
// locale form "DD/MM/YYYY". The presence of a slash selects the locale
// branch. Results are anchored in UTC so month keys never shift across
// timezones.
func ParseFlexibleDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, fmt.Errorf("empty date")
	}

	if strings.Contains(s, "/") {
		t, err := time.ParseInLocation("02/01/2006", s, time.UTC)
		if err != nil {
			return time.Time{}, fmt.Errorf("parse date %q: %w", s, err)
		}
		return t, nil
	}

	for _, layout := range []string{"2006-01-02", time.RFC3339} {
		if t, err := time.ParseInLocation(layout, s, time.UTC); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("parse date %q: unrecognized format", s)
}

// FilterByMonth keeps the transactions whose UTC month key equals the
// selected "YYYY-MM" month. The filter is stable: relative input order is
// preserved, nothing is re-sorted.
func FilterByMonth(transactions []models.Transaction, selectedMonth string) []models.Transaction {
	var filtered []models.Transaction
	for _, tx := range transactions {
		if MonthKey(tx.Date) == selectedMonth {
			filtered = append(filtered, tx)
		}
	}
	return filtered
}

// MonthlyTotal is one point of the spending trend series.
type MonthlyTotal struct {
	Month string  `json:"month"` // "YYYY-MM"
	Total float64 `json:"total"`
}

// MonthlyTotals groups transactions by month and sums their amounts,
// returning the series in chronological order.
func MonthlyTotals(transactions []models.Transaction) []MonthlyTotal {
	totals := make(map[string]float64)
	for _, tx := range transactions {
		totals[MonthKey(tx.Date)] += tx.Amount
	}

	months := make([]string, 0, len(totals))
	for month := range totals {
		months = append(months, month)
	}
	sort.Strings(months)

	series := make([]MonthlyTotal, 0, len(months))
	for _, month := range months {
		series = append(series, MonthlyTotal{Month: month, Total: totals[month]})
	}
	return series
}

// Rollover describes the relation between the stored budget month and the
// present one.
type Rollover struct {
	RolledOver   bool
	MonthsPassed int
}

// CompareMonths compares a stored "YYYY-MM" period marker against the
// current one. A stored marker that does not parse, or that lies in the
// past, counts as rolled over: the stored month counter is stale and must be
// treated as zero. Rollover is a normal periodic transition, never an error.
func CompareMonths(stored, current string) Rollover {
	if stored == current {
		return Rollover{}
	}

	storedTime, errStored := time.ParseInLocation(monthKeyLayout, stored, time.UTC)
	currentTime, errCurrent := time.ParseInLocation(monthKeyLayout, current, time.UTC)
	if errStored != nil || errCurrent != nil {
		return Rollover{RolledOver: true}
	}

	months := (currentTime.Year()-storedTime.Year())*12 + int(currentTime.Month()-storedTime.Month())
	if months < 0 {
		// Stored marker is in the future; treat as a fresh period.
		months = 0
	}
	return Rollover{RolledOver: true, MonthsPassed: months}
}
