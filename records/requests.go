// Copyright (c) 2026 OpSecId
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package records

// ReservationRequest is the body submitted to open a reservation.
type ReservationRequest struct {
	TenantName   string `json:"tenant_name" validate:"required"`
	TenantReason string `json:"tenant_reason" validate:"required"`
	ContactName  string `json:"contact_name" validate:"required"`
	ContactEmail string `json:"contact_email" validate:"required,email"`
	ContactPhone string `json:"contact_phone" validate:"required"`
}

// CheckInRequest exchanges an approved reservation token for wallet
// credentials.
type CheckInRequest struct {
	ReservationToken string `json:"reservation_token" validate:"required"`
}

// CheckInResponse carries the credentials of the newly created wallet.
type CheckInResponse struct {
	WalletID  string `json:"wallet_id"`
	WalletKey string `json:"wallet_key"`
	Token     string `json:"token,omitempty"`
}

// WalletTokenRequest asks for a fresh access token for an existing
// wallet.
type WalletTokenRequest struct {
	WalletKey string `json:"wallet_key" validate:"required"`
}

// TokenResponse carries an issued access token.
type TokenResponse struct {
	Token string `json:"token"`
}
