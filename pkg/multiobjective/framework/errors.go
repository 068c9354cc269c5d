package framework

import "errors"

var (
	// ErrInvalidInput is returned when a population is malformed, e.g. its
	// objective vectors have different lengths.
	ErrInvalidInput = errors.New("invalid input")

	// ErrInvalidArgument is returned when a scalar argument is out of range.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrPreconditionViolation is returned when an operation runs on state it
	// does not accept yet, e.g. selection on an unranked population.
	ErrPreconditionViolation = errors.New("precondition violation")
)
