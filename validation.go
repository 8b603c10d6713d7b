package finguide

import (
	"fmt"
	"math"
	"strings"
)

// Bounds on user-entered amounts. Anything above is assumed to be a typo.
const (
	maxIncomeAmount  = 100_000_000
	maxExpenseAmount = 10_000_000
	maxCategoryName  = 50
)

// ValidationError reports a user-facing rejection of a mutation. The profile
// is left untouched; callers display the message and move on.
type ValidationError struct {
	msg string
}

func (e *ValidationError) Error() string { return e.msg }

func errValidation(format string, args ...any) error {
	return &ValidationError{msg: fmt.Sprintf(format, args...)}
}

func validateIncomeAmount(amount float64) error {
	if math.IsNaN(amount) || amount < 0 {
		return errValidation("income amount must be a positive number")
	}
	if amount > maxIncomeAmount {
		return errValidation("income amount is too large")
	}
	return nil
}

func validateExpenseAmount(amount float64) error {
	if math.IsNaN(amount) || amount < 0 {
		return errValidation("expense amount must be a positive number")
	}
	if amount > maxExpenseAmount {
		return errValidation("expense amount is too large")
	}
	return nil
}

func validateCategoryName(name string) error {
	if strings.TrimSpace(name) == "" {
		return errValidation("category name cannot be empty")
	}
	if len(name) > maxCategoryName {
		return errValidation("category name is too long")
	}
	return nil
}
