package errors

var (
	ErrProductNotFound = &DomainError{
		Code:    "PRODUCT_NOT_FOUND",
		Message: "credit product not found",
	}
	ErrUnknownCreditType = &DomainError{
		Code:    "UNKNOWN_CREDIT_TYPE",
		Message: "credit type does not match any product",
	}
	ErrInvalidAmount = &DomainError{
		Code:    "INVALID_AMOUNT",
		Message: "invalid amount",
	}
	ErrInvalidTerm = &DomainError{
		Code:    "INVALID_TERM",
		Message: "term must be a positive number of months",
	}
	ErrApplicationNotFound = &DomainError{
		Code:    "APPLICATION_NOT_FOUND",
		Message: "application not found",
	}
)
