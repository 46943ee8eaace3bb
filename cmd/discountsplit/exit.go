package main

import (
	"errors"

	"github.com/fkhayef/discountsplit/internal/allocation"
)

const (
	exitFailure      = 1
	exitInvalidInput = 2
)

func exitCode(err error) int {
	var usageErr *usageError
	if errors.Is(err, allocation.ErrInvalidInput) || errors.As(err, &usageErr) {
		return exitInvalidInput
	}
	return exitFailure
}

// usageError marks bad command-line arguments
type usageError struct {
	msg string
}

func (e *usageError) Error() string {
	return e.msg
}
