// Copyright (c) 2026 OpSecId
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package status

import (
	"github.com/OpSecId/traction/exceptions"
	"github.com/OpSecId/traction/internal/utils"
)

// TenantStatus is the lifecycle state of a tenant record.
type TenantStatus string

const (
	TenantActive  TenantStatus = "active"
	TenantDeleted TenantStatus = "deleted"
)

func TenantStatuses() []TenantStatus {
	return []TenantStatus{TenantActive, TenantDeleted}
}

func (s TenantStatus) Valid() bool {
	switch s {
	case TenantActive, TenantDeleted:
		return true
	default:
		return false
	}
}

// ParseTenantStatus matches a raw value against the tenant vocabulary,
// ignoring case and surrounding whitespace.
func ParseTenantStatus(value string) (TenantStatus, *exceptions.ServiceError) {
	s := TenantStatus(utils.Lowered(value))
	if !s.Valid() {
		return "", exceptions.NewInvalidEnumError("'" + value + "' is not a tenant status")
	}
	return s, nil
}
