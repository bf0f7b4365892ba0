package repository

import "errors"

var (
	// ErrNotFound is returned when a referenced document does not exist.
	ErrNotFound = errors.New("record not found")
	// ErrAlreadyPaid is returned when a payroll record is not in Pending state.
	ErrAlreadyPaid = errors.New("payroll record already paid")
	// ErrDuplicatePeriod is returned when another record for the same
	// employee and period is already Paid.
	ErrDuplicatePeriod = errors.New("employee already paid for this period")
)
