// Copyright (c) 2026 OpSecId
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package paths

// Tenant self-service endpoints.
const (
	TenantToken string = "/tenant/token"

	Tenant                   string = "/tenant"
	TenantEndorserConnection string = "/tenant/endorser-connection"
	TenantEndorserInfo       string = "/tenant/endorser-info"
	TenantRegisterPublicDID  string = "/tenant/register-public-did"
)
