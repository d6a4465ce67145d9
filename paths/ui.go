// Copyright (c) 2026 OpSecId
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package paths

// Endpoints served by the tenant UI's own backend rather than the agent.
const (
	Config string = "/config"

	EmailReservationConfirmation string = "/email/reservationConfirmation"
	EmailReservationStatus       string = "/email/reservationStatus"

	OIDCInnkeeperLogin string = "/api/innkeeperLogin"
)
