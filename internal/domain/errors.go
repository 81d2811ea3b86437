package domain

import "errors"

var (
	// ErrSourceUnavailable is returned when the record store cannot be opened or queried.
	ErrSourceUnavailable = errors.New("record source unavailable")

	// ErrInvalidSelector is returned when a county selector matches no known county.
	ErrInvalidSelector = errors.New("invalid county selector")

	// ErrInvalidDateRange is returned when the start date is after the end date.
	ErrInvalidDateRange = errors.New("invalid date range")
)
