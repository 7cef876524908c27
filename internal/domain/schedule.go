package domain

// DefaultMaxSchedulableHours is the default per-day scheduling ceiling.
const DefaultMaxSchedulableHours = 10.0

// AvailableHours computes how much schedulable time is left in the day under
// the given ceiling. Never negative, even when a day is overbooked.
func AvailableHours(d *DayPlan, maxHoursPerDay float64) float64 {
	remaining := maxHoursPerDay - d.HoursScheduled()
	if remaining < 0 {
		return 0
	}
	return remaining
}

// LastActivity returns the most recently appended activity of the day, used
// to chain geographically convenient suggestions. ok is false for an empty
// day.
func LastActivity(d *DayPlan) (Activity, bool) {
	if len(d.Activities) == 0 {
		return Activity{}, false
	}
	return d.Activities[len(d.Activities)-1], true
}

// IsFinalDay reports whether dayNumber is the trip's last day. Final-day
// suggestions are biased toward departure-convenient locations.
func IsFinalDay(dayNumber, totalDays int) bool {
	return dayNumber == totalDays
}
