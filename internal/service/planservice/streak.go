package planservice

import "time"

// nextStreak computes the consecutive-day streak after a completion on
// today (a UTC midnight). Same-day repeats leave the streak unchanged, a
// completion the day after the previous one extends it, anything else resets
// to 1.
func nextStreak(current int, last *time.Time, today time.Time) int {
	if last == nil {
		return 1
	}
	switch {
	case sameDay(last, today):
		return current
	case sameDay(last, today.AddDate(0, 0, -1)):
		return current + 1
	default:
		return 1
	}
}

func sameDay(t *time.Time, day time.Time) bool {
	if t == nil {
		return false
	}
	y1, m1, d1 := t.UTC().Date()
	y2, m2, d2 := day.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}
