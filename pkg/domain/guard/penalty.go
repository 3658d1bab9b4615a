package guard

import "time"

const (
	// MaxPenaltyMultiplier caps progressive lockouts at 24x the base duration.
	MaxPenaltyMultiplier = 24

	DefaultDenylistThreshold = 5
	DefaultDenylistMaxDays   = 7
)

var penaltyMultipliers = map[int]int{
	1: 1,
	2: 2,
	3: 4,
	4: 8,
	5: MaxPenaltyMultiplier,
}

// PenaltyMultiplier maps a breach count to a lockout multiplier: 1, 2, 4, 8,
// then 24 for every count from five upward. Counts below one are treated as
// a first breach.
func PenaltyMultiplier(violationCount int) int {
	if violationCount < 1 {
		violationCount = 1
	}
	if violationCount > 5 {
		violationCount = 5
	}
	return penaltyMultipliers[violationCount]
}

// DenylistDuration is one day per violation, capped at maxDays.
func DenylistDuration(violationCount, maxDays int) time.Duration {
	if maxDays <= 0 {
		maxDays = DefaultDenylistMaxDays
	}
	days := violationCount
	if days < 1 {
		days = 1
	}
	if days > maxDays {
		days = maxDays
	}
	return time.Duration(days) * 24 * time.Hour
}
