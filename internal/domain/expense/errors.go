package expense

import "errors"

var (
	ErrExpenseNotFound = errors.New("Expense not found")
	ErrNoLineItems     = errors.New("Expense must have at least one line item")
	ErrNegativeAmount  = errors.New("Line item amount must not be negative")
)
