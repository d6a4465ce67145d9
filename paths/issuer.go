// Copyright (c) 2026 OpSecId
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package paths

const (
	IssuerCredentials string = "/tenant/v1/issuer/credentials/"
)

// IssuerCredential returns the path for a single issued credential.
func IssuerCredential(credentialID string) string {
	return IssuerCredentials + credentialID
}

// IssuerCredentialRevoke returns the path that revokes an issued credential.
func IssuerCredentialRevoke(credentialID string) string {
	return IssuerCredentials + credentialID + "/revoke-credential"
}
