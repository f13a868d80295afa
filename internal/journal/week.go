package journal

import (
	"fmt"
	"time"
)

const (
	dateLayout = "2006-01-02"
	timeLayout = "15:04"
	dayLayout  = "Mon"
)

// ThisFriday returns the Friday on or after d, at midnight in d's location.
// Weeks run Saturday through Friday.
func ThisFriday(d time.Time) time.Time {
	iso := int(d.Weekday())
	if iso == 0 {
		iso = 7
	}
	days := (5 + 7 - iso) % 7
	y, m, day := d.Date()
	return time.Date(y, m, day+days, 0, 0, 0, 0, d.Location())
}

// FormatDate renders d as YYYY-MM-DD.
func FormatDate(d time.Time) string {
	return d.Format(dateLayout)
}

// FileName is the note file name for the week ending on friday.
func FileName(friday time.Time) string {
	return FormatDate(friday) + " journal.md"
}

// DayHeader is the search key marking the section for d's calendar date.
func DayHeader(d time.Time) string {
	return "## " + FormatDate(d)
}

func weekTitle(friday time.Time) string {
	return fmt.Sprintf("# Journal for week ending at %s", FormatDate(friday))
}
