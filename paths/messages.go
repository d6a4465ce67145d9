// Copyright (c) 2026 OpSecId
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package paths

const (
	Basicmessages string = "/basicmessages"
)

// BasicmessagesSend returns the path that sends a basic message over a
// connection.
func BasicmessagesSend(connectionID string) string {
	return Connections + "/" + connectionID + "/send-message"
}
