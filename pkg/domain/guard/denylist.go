package guard

import "time"

// DenylistEntry is a cross-category ban on a network address.
type DenylistEntry struct {
	Address        string    `json:"address"`
	BlacklistedAt  time.Time `json:"blacklisted_at"`
	ExpiresAt      time.Time `json:"expires_at"`
	Reason         string    `json:"reason"`
	ViolationCount int       `json:"violation_count"`
}

func (e DenylistEntry) ActiveAt(now time.Time) bool {
	return e.ExpiresAt.After(now)
}
