// Package validation implements the form-level checks that gate every
// write. Errors are collected per field so the caller can surface them
// inline next to the offending input.
package validation

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var (
	emailRegex      = regexp.MustCompile(`^\S+@\S+\.\S+$`)
	phoneRegex      = regexp.MustCompile(`^\d{10}$`)
	nationalIDRegex = regexp.MustCompile(`^\d{6,12}$`)
)

// Validator defines validation methods
type Validator struct {
	Errors map[string]string
}

// New creates a new validator
func New() *Validator {
	return &Validator{Errors: make(map[string]string)}
}

// Valid checks if there are any validation errors
func (v *Validator) Valid() bool {
	return len(v.Errors) == 0
}

// AddError adds an error to the validator
func (v *Validator) AddError(field, message string) {
	if _, exists := v.Errors[field]; !exists {
		v.Errors[field] = message
	}
}

// Check adds an error if the condition is false
func (v *Validator) Check(ok bool, field, message string) {
	if !ok {
		v.AddError(field, message)
	}
}

// Email validates email format
func (v *Validator) Email(field, email string) {
	v.Check(emailRegex.MatchString(email), field, "must be a valid email address")
}

// Phone validates that a phone number is exactly 10 digits
func (v *Validator) Phone(field, phone string) {
	v.Check(phoneRegex.MatchString(phone), field, "must be exactly 10 digits")
}

// NationalID validates that an identifier is 6 to 12 digits
func (v *Validator) NationalID(field, id string) {
	v.Check(nationalIDRegex.MatchString(id), field, "must be 6 to 12 digits")
}

// Required checks that a string is not empty after trimming
func (v *Validator) Required(field, value string) {
	v.Check(strings.TrimSpace(value) != "", field, "must not be empty")
}

// Positive checks that a number is greater than zero
func (v *Validator) Positive(field string, value float64) {
	v.Check(value > 0, field, "must be greater than 0")
}

// Range checks if a number is between min and max
func (v *Validator) Range(field string, value float64, min, max float64) {
	v.Check(value >= min && value <= max, field,
		fmt.Sprintf("must be between %s and %s",
			strconv.FormatFloat(min, 'f', -1, 64),
			strconv.FormatFloat(max, 'f', -1, 64)))
}

// OneOf checks that an int is a member of the allowed set
func (v *Validator) OneOf(field string, value int, allowed []int) {
	for _, a := range allowed {
		if value == a {
			return
		}
	}
	v.AddError(field, fmt.Sprintf("must be one of %v", allowed))
}
