// Copyright (c) 2026 OpSecId
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package exceptions

import (
	"errors"
	"strings"
	"unicode"

	"github.com/go-playground/validator/v10"
)

const (
	CodeValidation  string = "VALIDATION"
	CodeInvalidEnum string = "INVALID_ENUM"
	CodeUnknown     string = "UNKNOWN"
)

const (
	MessageUnknown string = "Something went wrong"
)

type ServiceError struct {
	Code    string
	Message string
}

func NewError(code string, message string) *ServiceError {
	return &ServiceError{
		Code:    code,
		Message: message,
	}
}

func NewValidationError(message string) *ServiceError {
	return NewError(CodeValidation, message)
}

func NewInvalidEnumError(message string) *ServiceError {
	return NewError(CodeInvalidEnum, message)
}

func (e *ServiceError) Error() string {
	return e.Message
}

const (
	fieldErrTagRequired string = "required"
	fieldErrTagEmail    string = "email"

	fieldErrMessageRequired string = "must be provided"
	fieldErrMessageEmail    string = "must be a valid email"
	fieldErrMessageInvalid  string = "must be valid"
)

// FromValidationError flattens validator field errors into a single
// validation ServiceError with snake_case field names.
func FromValidationError(err error) *ServiceError {
	var errs validator.ValidationErrors
	if !errors.As(err, &errs) {
		return NewError(CodeUnknown, MessageUnknown)
	}

	parts := make([]string, 0, len(errs))
	for _, fe := range errs {
		parts = append(parts, toSnakeCase(fe.Field())+" "+fieldErrMessage(fe.Tag()))
	}
	return NewValidationError(strings.Join(parts, "; "))
}

func fieldErrMessage(tag string) string {
	switch tag {
	case fieldErrTagRequired:
		return fieldErrMessageRequired
	case fieldErrTagEmail:
		return fieldErrMessageEmail
	default:
		return fieldErrMessageInvalid
	}
}

func toSnakeCase(camel string) string {
	if camel == strings.ToUpper(camel) {
		return strings.ToLower(camel)
	}

	var result strings.Builder
	for i, char := range camel {
		if unicode.IsUpper(char) {
			lowered := unicode.ToLower(char)
			if i > 0 {
				result.WriteRune('_')
				result.WriteRune(lowered)
				continue
			}

			result.WriteRune(lowered)
		} else {
			result.WriteRune(char)
		}
	}
	return result.String()
}
