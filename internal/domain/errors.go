package domain

import "errors"

var (
	ErrColonyNotFound    = errors.New("colony not found")
	ErrColonyInactive    = errors.New("colony is inactive")
	ErrInvalidResource   = errors.New("invalid resource type")
	ErrNonPositiveAmount = errors.New("amount must be greater than zero")
	ErrNonPositiveTicks  = errors.New("ticks must be greater than zero")
)
