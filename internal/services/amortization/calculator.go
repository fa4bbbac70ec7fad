// Package amortization computes fixed-rate loan installments.
package amortization

import (
	"errors"
	"math"
)

var (
	ErrInvalidPrincipal = errors.New("principal must be greater than zero")
	ErrInvalidRate      = errors.New("annual rate must not be negative")
	ErrInvalidTerm      = errors.New("term must be a positive number of months")
)

// MonthlyPayment returns the fixed monthly installment for a loan of
// principal at annualRate (percent) over months. A rate of exactly
// zero takes the linear branch; the comparison is safe because the
// rate comes from a catalog field, not user-typed floating noise.
func MonthlyPayment(principal, annualRate float64, months int) (float64, error) {
	if principal <= 0 {
		return 0, ErrInvalidPrincipal
	}
	if annualRate < 0 {
		return 0, ErrInvalidRate
	}
	if months <= 0 {
		return 0, ErrInvalidTerm
	}

	monthlyRate := annualRate / 100 / 12
	if monthlyRate == 0 {
		return principal / float64(months), nil
	}

	factor := math.Pow(1+monthlyRate, float64(months))
	return principal * monthlyRate * factor / (factor - 1), nil
}

// Round2 rounds a currency amount to two decimal places. The
// submission path rounds the payment before persisting it; display
// layers round on their own.
func Round2(amount float64) float64 {
	return math.Round(amount*100) / 100
}
