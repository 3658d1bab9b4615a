package guard

import "errors"

var (
	ErrStoreUnavailable = errors.New("guard store unavailable")
	ErrUnknownCategory  = errors.New("unknown operation category")
	ErrInvalidPolicy    = errors.New("invalid guard policy")
	ErrEntryNotFound    = errors.New("entry not found")
)
