// Copyright (c) 2026 OpSecId
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package paths

const (
	Connections                 string = "/connections"
	ConnectionsCreateInvitation string = "/connections/create-invitation"
)

// Connection returns the path for a single connection record.
func Connection(connectionID string) string {
	return Connections + "/" + connectionID
}

// ConnectionInvitation returns the path for a connection's invitation.
func ConnectionInvitation(connectionID string) string {
	return Connections + "/" + connectionID + "/invitation"
}
