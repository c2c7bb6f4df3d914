// Package calc holds the error taxonomy and the precondition checks shared
// by the formula packages under internal/calc.
package calc

import (
	"errors"
	"fmt"
	"math"
)

// ErrDomain is matched by every error raised when an input violates a
// physical precondition of a formula.
var ErrDomain = errors.New("domain error")

// DomainError names the parameter that failed and the precondition it broke.
type DomainError struct {
	Param  string
	Reason string
}

func (e *DomainError) Error() string {
	return e.Reason
}

func (e *DomainError) Is(target error) bool {
	return target == ErrDomain
}

// Domainf builds a DomainError for param with a formatted reason.
func Domainf(param, format string, args ...any) error {
	return &DomainError{Param: param, Reason: fmt.Sprintf(format, args...)}
}

// Positive fails unless v > 0.
func Positive(param, what string, v float64) error {
	if v <= 0 {
		return Domainf(param, "%s must be positive", what)
	}
	return nil
}

// NonNegative fails when v < 0.
func NonNegative(param, what string, v float64) error {
	if v < 0 {
		return Domainf(param, "%s must be non-negative", what)
	}
	return nil
}

// Fraction fails unless 0 <= v <= 1.
func Fraction(param, what string, v float64) error {
	if !(v >= 0 && v <= 1) {
		return Domainf(param, "%s must be between 0 and 1", what)
	}
	return nil
}

// Finite fails for NaN and infinities.
func Finite(param, what string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return Domainf(param, "%s must be a finite number", what)
	}
	return nil
}

// First returns the first non-nil error.
func First(errs ...error) error {
	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}
