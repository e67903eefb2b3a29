package ledger

import "errors"

var (
	ErrNotOwner        = errors.New("caller is not the task owner")
	ErrNotAdmin        = errors.New("caller is not the administrator")
	ErrPaused          = errors.New("task store is paused")
	ErrLimitExceeded   = errors.New("task limit reached for owner")
	ErrInvalidPriority = errors.New("priority out of range")
)
