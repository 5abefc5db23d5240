package usecase

import "errors"

var (
	// ErrBatchNotFound is returned when a symbol batch token is unknown or has expired.
	ErrBatchNotFound = errors.New("symbol batch not found")
	// ErrNoCompanies is returned when a confirm request carries neither a token nor companies.
	ErrNoCompanies = errors.New("no companies to confirm")
)
