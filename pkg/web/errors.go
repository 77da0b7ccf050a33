package web

import "errors"

// View errors.
var (
	ErrViewNotFound  = errors.New("view not found")
	ErrDuplicateView = errors.New("duplicate view name")
	ErrMultipleSlots = errors.New("view declares more than one slot")
	ErrMissingSlot   = errors.New("view has no slot for child view")
	ErrEmptyMatch    = errors.New("match has no routes")
)
