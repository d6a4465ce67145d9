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

// Reservation is a request for a new tenant wallet as tracked by the
// innkeeper.
type Reservation struct {
	ReservationID string                   `json:"reservation_id"`
	State         status.ReservationStatus `json:"state"`
	TenantName    string                   `json:"tenant_name"`
	TenantReason  string                   `json:"tenant_reason"`
	ContactName   string                   `json:"contact_name"`
	ContactEmail  string                   `json:"contact_email"`
	ContactPhone  string                   `json:"contact_phone"`
	TenantID      string                   `json:"tenant_id,omitempty"`
	WalletID      string                   `json:"wallet_id,omitempty"`
}

// NewReservation builds a reservation in the requested state with a fresh
// identifier.
func NewReservation(req ReservationRequest) Reservation {
	return Reservation{
		ReservationID: uuid.NewString(),
		State:         status.ReservationRequested,
		TenantName:    req.TenantName,
		TenantReason:  req.TenantReason,
		ContactName:   req.ContactName,
		ContactEmail:  req.ContactEmail,
		ContactPhone:  req.ContactPhone,
	}
}
