// Copyright (c) 2026 OpSecId
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package records

import (
	"time"

	"github.com/OpSecId/traction/internal/utils"
)

// ReservationTokenTTLDays is how long an issued reservation token stays
// valid before check-in.
const ReservationTokenTTLDays int64 = 7

// ReservationToken is the one-time password handed out on approval and
// exchanged for wallet credentials at check-in.
type ReservationToken struct {
	Token     string    `json:"reservation_token"`
	ExpiresAt time.Time `json:"reservation_token_expiry"`
}

// NewReservationToken stamps a token with its expiry relative to now.
func NewReservationToken(token string, now time.Time) ReservationToken {
	return ReservationToken{
		Token:     token,
		ExpiresAt: now.Add(utils.ToDaysDuration(ReservationTokenTTLDays)),
	}
}

// Expired reports whether the token can no longer be used. A token
// without an expiry never expires.
func (t ReservationToken) Expired(now time.Time) bool {
	if t.ExpiresAt.IsZero() {
		return false
	}
	return now.After(t.ExpiresAt)
}
