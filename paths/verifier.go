// Copyright (c) 2026 OpSecId
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package paths

const (
	VerifierPresentations             string = "/tenant/v1/verifier/presentations/"
	VerifierPresentationsAdhocRequest string = "/tenant/v1/verifier/presentations/adhoc-request"
	VerifierPresentationTemplates     string = "/tenant/v1/verifier/presentation_templates/"
)

// VerifierPresentation returns the path for a single verifier presentation.
func VerifierPresentation(presentationID string) string {
	return VerifierPresentations + presentationID
}
