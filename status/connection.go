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

// ConnectionStatus is a connection lifecycle phase reported by the agent.
type ConnectionStatus string

const (
	ConnectionInvitation ConnectionStatus = "invitation"
	ConnectionResponse   ConnectionStatus = "response"
	ConnectionActive     ConnectionStatus = "active"
)

// ConnectionStatuses returns the connection vocabulary in lifecycle order.
func ConnectionStatuses() []ConnectionStatus {
	return []ConnectionStatus{
		ConnectionInvitation,
		ConnectionResponse,
		ConnectionActive,
	}
}

func (s ConnectionStatus) Valid() bool {
	switch s {
	case ConnectionInvitation, ConnectionResponse, ConnectionActive:
		return true
	default:
		return false
	}
}

// ParseConnectionStatus matches a raw value against the connection
// vocabulary, ignoring case and surrounding whitespace.
func ParseConnectionStatus(value string) (ConnectionStatus, *exceptions.ServiceError) {
	s := ConnectionStatus(utils.Lowered(value))
	if !s.Valid() {
		return "", exceptions.NewInvalidEnumError("'" + value + "' is not a connection status")
	}
	return s, nil
}
