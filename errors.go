package planner

import (
	"errors"
	"fmt"
)

// ErrorKind is the stable, machine-readable identity of a validation failure.
// Callers switch on the kind; the message is for display only.
type ErrorKind string

const (
	AllocationSumInvalid     ErrorKind = "allocation-sum-invalid"
	RequiredFieldMissing     ErrorKind = "required-field-missing"
	IntervalInvalid          ErrorKind = "interval-invalid"
	WeeklyDaysEmpty          ErrorKind = "weekly-days-empty"
	DayOfMonthOutOfRange     ErrorKind = "day-of-month-out-of-range"
	YearlyMonthRequired      ErrorKind = "yearly-month-required"
	EndConditionFieldMissing ErrorKind = "end-condition-field-missing"
)

// ValidationError is the single failure a finalize call reports. It is
// returned as a value, never panicked, and is always recoverable by
// further editing of the draft.
type ValidationError struct {
	Kind    ErrorKind
	Field   string // the offending field, when the kind is field-specific
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// AsValidation unwraps err into a *ValidationError when it is one.
func AsValidation(err error) (*ValidationError, bool) {
	var v *ValidationError
	ok := errors.As(err, &v)
	return v, ok
}

func errAllocationSum(sum string) *ValidationError {
	return &ValidationError{
		Kind:    AllocationSumInvalid,
		Message: fmt.Sprintf("allocation percentages must sum to 100.00, got %s", sum),
	}
}

func errRequired(field string) *ValidationError {
	return &ValidationError{
		Kind:    RequiredFieldMissing,
		Field:   field,
		Message: fmt.Sprintf("required field %q is missing or invalid", field),
	}
}

func errInterval(raw string) *ValidationError {
	return &ValidationError{
		Kind:    IntervalInvalid,
		Field:   "interval",
		Message: fmt.Sprintf("interval must be a positive integer, got %q", raw),
	}
}

func errWeeklyDays() *ValidationError {
	return &ValidationError{
		Kind:    WeeklyDaysEmpty,
		Field:   "daysOfWeek",
		Message: "a weekly recurrence needs at least one day of the week",
	}
}

func errDayOfMonth(raw string) *ValidationError {
	return &ValidationError{
		Kind:    DayOfMonthOutOfRange,
		Field:   "dayOfMonth",
		Message: fmt.Sprintf("day of month must be between 1 and 31, got %q", raw),
	}
}

func errYearlyMonth(raw string) *ValidationError {
	return &ValidationError{
		Kind:    YearlyMonthRequired,
		Field:   "monthOfYear",
		Message: fmt.Sprintf("a yearly recurrence needs a month between 1 and 12, got %q", raw),
	}
}

func errEndCondition(field string) *ValidationError {
	return &ValidationError{
		Kind:    EndConditionFieldMissing,
		Field:   field,
		Message: fmt.Sprintf("end condition field %q is missing or invalid", field),
	}
}
