package taxyear

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// UK tax years run from 6 April to 5 April of the following calendar year.
const (
	startMonth = time.April
	startDay   = 6
)

// Label formats the tax year beginning in startYear, e.g. 2024 -> "2024/25".
func Label(startYear int) string {
	return fmt.Sprintf("%d/%02d", startYear, (startYear+1)%100)
}

// Labels returns count+1 consecutive labels starting at base (base year
// through base+count inclusive).
func Labels(base, count int) []string {
	if count < 0 {
		return nil
	}
	out := make([]string, 0, count+1)
	for t := 0; t <= count; t++ {
		out = append(out, Label(base+t))
	}
	return out
}

// Parse accepts "2024/25", "2024-25" or "2024" and returns the starting
// calendar year. The two-digit suffix must follow the start year.
func Parse(s string) (int, error) {
	s = strings.TrimSpace(s)
	sep := strings.IndexAny(s, "/-")
	head := s
	if sep >= 0 {
		head = s[:sep]
	}
	year, err := strconv.Atoi(head)
	if err != nil || len(head) != 4 {
		return 0, fmt.Errorf("invalid tax year %q: expected YYYY or YYYY/YY", s)
	}
	if sep >= 0 {
		tail := s[sep+1:]
		next, err := strconv.Atoi(tail)
		if err != nil || len(tail) != 2 {
			return 0, fmt.Errorf("invalid tax year %q: expected two-digit end year", s)
		}
		if next != (year+1)%100 {
			return 0, fmt.Errorf("invalid tax year %q: end year must follow %d", s, year)
		}
	}
	return year, nil
}

// Start returns 6 April of startYear.
func Start(startYear int) time.Time {
	return time.Date(startYear, startMonth, startDay, 0, 0, 0, 0, time.UTC)
}

// End returns the last instant of 5 April following startYear.
func End(startYear int) time.Time {
	return Start(startYear+1).Add(-time.Nanosecond)
}

// ForDate returns the starting year of the tax year containing t.
func ForDate(t time.Time) int {
	if t.Before(time.Date(t.Year(), startMonth, startDay, 0, 0, 0, 0, t.Location())) {
		return t.Year() - 1
	}
	return t.Year()
}
