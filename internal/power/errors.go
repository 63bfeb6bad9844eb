package power

import (
	"errors"
	"fmt"
)

// ErrDivisionByZero indicates an input that would divide by zero.
var ErrDivisionByZero = errors.New("power: division by zero")

// DomainError names the input field that put the model outside its domain.
type DomainError struct {
	Field   string
	Wrapped error
}

func (e *DomainError) Error() string {
	return fmt.Sprintf("%s (%s)", e.Wrapped.Error(), e.Field)
}

func (e *DomainError) Unwrap() error {
	return e.Wrapped
}

func divisionByZero(field string) error {
	return &DomainError{Field: field, Wrapped: ErrDivisionByZero}
}
