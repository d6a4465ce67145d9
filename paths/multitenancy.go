// Copyright (c) 2026 OpSecId
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package paths

const (
	MultitenancyReservations string = "/multitenancy/reservations"
)

// MultitenancyReservation returns the path for a single wallet reservation.
func MultitenancyReservation(reservationID string) string {
	return MultitenancyReservations + "/" + reservationID
}

// MultitenancyReservationCheckIn returns the path that checks in an approved
// reservation and claims its wallet.
func MultitenancyReservationCheckIn(reservationID string) string {
	return MultitenancyReservations + "/" + reservationID + "/check-in"
}

// MultitenancyTenantToken returns the path that issues a token for a tenant.
func MultitenancyTenantToken(tenantID string) string {
	return "/multitenancy/tenant/" + tenantID + "/token"
}

// MultitenancyWalletToken returns the path that issues a token for a wallet.
func MultitenancyWalletToken(walletID string) string {
	return "/multitenancy/wallet/" + walletID + "/token"
}
