// Copyright (c) 2026 OpSecId
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package records

import (
	"github.com/google/uuid"

	"github.com/OpSecId/traction/status"
)

// Tenant is a checked-in reservation with its own wallet.
type Tenant struct {
	TenantID   string              `json:"tenant_id"`
	TenantName string              `json:"tenant_name"`
	State      status.TenantStatus `json:"state"`
	WalletID   string              `json:"wallet_id,omitempty"`
}

// NewTenant builds an active tenant with a fresh identifier.
func NewTenant(tenantName, walletID string) Tenant {
	return Tenant{
		TenantID:   uuid.NewString(),
		TenantName: tenantName,
		State:      status.TenantActive,
		WalletID:   walletID,
	}
}
