// Copyright (c) 2026 OpSecId
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package paths

const (
	HolderCredentials   string = "/tenant/v1/holder/credentials/"
	HolderPresentations string = "/tenant/v1/holder/presentations/"
)

// HolderCredential returns the path for a single held credential.
func HolderCredential(credentialID string) string {
	return HolderCredentials + credentialID
}

// HolderCredentialAcceptOffer returns the path that accepts a credential
// offer.
func HolderCredentialAcceptOffer(credentialID string) string {
	return HolderCredentials + credentialID + "/accept-offer"
}

// HolderCredentialRejectOffer returns the path that rejects a credential
// offer.
func HolderCredentialRejectOffer(credentialID string) string {
	return HolderCredentials + credentialID + "/reject-offer"
}

// HolderPresentation returns the path for a single holder presentation.
func HolderPresentation(presentationID string) string {
	return HolderPresentations + presentationID
}
