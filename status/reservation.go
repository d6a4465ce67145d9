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

// ReservationStatus is a reservation state reported by the backend.
type ReservationStatus string

const (
	ReservationRequested ReservationStatus = "requested"
	ReservationApproved  ReservationStatus = "approved"
	ReservationDenied    ReservationStatus = "denied"
	ReservationCheckedIn ReservationStatus = "checked_in"
)

// ReservationView is the reservation vocabulary as presented by the UI, a
// superset of ReservationStatus. Keeping it a distinct type stops the
// local-only value from being assigned into backend-bound fields without an
// explicit Normalize.
type ReservationView string

// ReservationShowWallet marks a reservation whose wallet key is on screen
// for its one-time reveal right after check-in. It never comes from the
// backend and must never be sent to it; once the reveal is dismissed the
// stored state goes back to checked_in.
const ReservationShowWallet ReservationView = "show_wallet"

// View widens a backend state into the UI vocabulary.
func (s ReservationStatus) View() ReservationView {
	return ReservationView(s)
}

// Normalize collapses a view state back to the backend vocabulary: the
// wallet reveal maps to checked_in, every other value to itself.
func (v ReservationView) Normalize() ReservationStatus {
	if v == ReservationShowWallet {
		return ReservationCheckedIn
	}
	return ReservationStatus(v)
}

// ReservationStatuses returns the backend vocabulary in lifecycle order.
func ReservationStatuses() []ReservationStatus {
	return []ReservationStatus{
		ReservationRequested,
		ReservationApproved,
		ReservationDenied,
		ReservationCheckedIn,
	}
}

// ReservationViews returns the UI vocabulary: every backend state plus the
// local-only wallet reveal.
func ReservationViews() []ReservationView {
	statuses := ReservationStatuses()
	views := make([]ReservationView, 0, len(statuses)+1)
	for _, s := range statuses {
		views = append(views, s.View())
	}
	return append(views, ReservationShowWallet)
}

func (s ReservationStatus) Valid() bool {
	switch s {
	case ReservationRequested, ReservationApproved, ReservationDenied, ReservationCheckedIn:
		return true
	default:
		return false
	}
}

func (v ReservationView) Valid() bool {
	if v == ReservationShowWallet {
		return true
	}
	return ReservationStatus(v).Valid()
}

// ParseReservationStatus matches a raw value against the backend
// vocabulary, ignoring case and surrounding whitespace. The local-only
// view value is rejected here on purpose.
func ParseReservationStatus(value string) (ReservationStatus, *exceptions.ServiceError) {
	s := ReservationStatus(utils.Lowered(value))
	if !s.Valid() {
		return "", exceptions.NewInvalidEnumError("'" + value + "' is not a reservation status")
	}
	return s, nil
}

// ParseReservationView matches a raw value against the UI vocabulary,
// accepting the wallet reveal. Meant for reading back locally persisted
// view state, never for backend payloads.
func ParseReservationView(value string) (ReservationView, *exceptions.ServiceError) {
	v := ReservationView(utils.Lowered(value))
	if !v.Valid() {
		return "", exceptions.NewInvalidEnumError("'" + value + "' is not a reservation view")
	}
	return v, nil
}
