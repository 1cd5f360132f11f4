package service

import "errors"

// Validation errors rejected at the boundary, before any core computation.
var (
	ErrNotFound         = errors.New("not found")
	ErrEmptyDescription = errors.New("description is required")
	ErrInvalidAmount    = errors.New("amount must be positive")
	ErrInvalidBudget    = errors.New("monthly budget must not be negative")
	ErrInvalidCategory  = errors.New("invalid category")
	ErrInvalidDate      = errors.New("invalid date")
	ErrInvalidMonth     = errors.New("month must look like YYYY-MM")
)
