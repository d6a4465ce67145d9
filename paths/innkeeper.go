// Copyright (c) 2026 OpSecId
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package paths

const (
	InnkeeperToken string = "/innkeeper/token"

	InnkeeperTenants      string = "/innkeeper/tenants/"
	InnkeeperReservations string = "/innkeeper/reservations/"
)

// InnkeeperTenant returns the path for a single tenant record.
func InnkeeperTenant(tenantID string) string {
	return InnkeeperTenants + tenantID
}

// InnkeeperReservation returns the path for a single reservation record.
func InnkeeperReservation(reservationID string) string {
	return InnkeeperReservations + reservationID
}

// InnkeeperReservationApprove returns the path that approves a reservation.
func InnkeeperReservationApprove(reservationID string) string {
	return InnkeeperReservations + reservationID + "/approve"
}

// InnkeeperReservationDeny returns the path that denies a reservation.
func InnkeeperReservationDeny(reservationID string) string {
	return InnkeeperReservations + reservationID + "/deny"
}
