package models

import (
	"errors"
	"fmt"
)

type ErrorCode string

const (
	CodeLoadFailed       ErrorCode = "LOAD_FAILED"
	CodeNotFound         ErrorCode = "NOT_FOUND"
	CodeValidationFailed ErrorCode = "VALIDATION_FAILED"
	CodeBusinessRule     ErrorCode = "BUSINESS_RULE"
	CodeInvalidState     ErrorCode = "INVALID_STATE"
)

type AppError struct {
	Code    ErrorCode
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func NewLoadError(source string, err error) *AppError {
	return &AppError{Code: CodeLoadFailed, Message: fmt.Sprintf("failed to load %s", source), Err: err}
}

func NewNotFoundError(what, id string) *AppError {
	return &AppError{Code: CodeNotFound, Message: fmt.Sprintf("%s %q not found", what, id)}
}

func NewValidationError(message string) *AppError {
	return &AppError{Code: CodeValidationFailed, Message: message}
}

func NewStateError(message string) *AppError {
	return &AppError{Code: CodeInvalidState, Message: message}
}

// CodeOf reports the code carried by err, or "" for foreign errors.
func CodeOf(err error) ErrorCode {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Code
	}
	var cartErr *CartError
	if errors.As(err, &cartErr) {
		return CodeBusinessRule
	}
	return ""
}

type CartConstraint string

const (
	ConstraintOutOfStock CartConstraint = "out_of_stock"
	ConstraintStock      CartConstraint = "stock"
	ConstraintMinOrder   CartConstraint = "min_order"
	ConstraintMaxOrder   CartConstraint = "max_order"
	ConstraintQuantity   CartConstraint = "quantity"
)

// CartError is a rejected add-to-cart. The cart is left untouched.
type CartError struct {
	Constraint CartConstraint
	Message    string
}

func (e *CartError) Error() string {
	return e.Message
}
