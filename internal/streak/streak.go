// Package streak tracks consecutive days on which a user submitted a test.
package streak

import "time"

// DateLayout is how the last test day is stored.
const DateLayout = "2006-01-02"

// Update returns the streak after a test submitted at now, given the
// current streak and the stored last test day. A second test on the same
// day keeps the streak, a test the day after extends it and anything else
// (including no previous test) starts over at 1.
func Update(current int, lastTestDate string, now time.Time) (streak int, today string) {
	today = now.Format(DateLayout)
	if lastTestDate == "" {
		return 1, today
	}

	last, err := time.ParseInLocation(DateLayout, lastTestDate, now.Location())
	if err != nil {
		return 1, today
	}

	switch daysBetween(last, now) {
	case 0:
		if current < 1 {
			return 1, today
		}
		return current, today
	case 1:
		return current + 1, today
	default:
		return 1, today
	}
}

// daysBetween counts calendar days from a to b in b's location.
func daysBetween(a, b time.Time) int {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	da := time.Date(ay, am, ad, 0, 0, 0, 0, time.UTC)
	db := time.Date(by, bm, bd, 0, 0, 0, 0, time.UTC)
	return int(db.Sub(da).Hours() / 24)
}

// Milestones are the streak lengths the dashboard counts down to.
var Milestones = []int{3, 7, 14, 30}

// NextMilestone returns the next streak milestone above the current streak length.
func NextMilestone(current int) int {
	for _, m := range Milestones {
		if m > current {
			return m
		}
	}
	// Beyond a month, every 30 days.
	return ((current / 30) + 1) * 30
}
