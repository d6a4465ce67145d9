// Copyright (c) 2026 OpSecId
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package records defines the wire shapes of the tenant administration
// API: the innkeeper's reservation and tenant records plus the request and
// response bodies of the reservation flow. The shapes are contracts only;
// storage and transport belong to the collaborators that consume them.
package records

import (
	"github.com/go-playground/validator/v10"

	"github.com/OpSecId/traction/exceptions"
)

var validate = validator.New()

// Validate checks a request shape against its declared rules.
func Validate(s any) *exceptions.ServiceError {
	if err := validate.Struct(s); err != nil {
		return exceptions.FromValidationError(err)
	}
	return nil
}
