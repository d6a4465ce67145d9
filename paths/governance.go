// Copyright (c) 2026 OpSecId
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package paths

const (
	GovernanceSchemaTemplates       string = "/tenant/v1/governance/schema_templates/"
	GovernanceSchemaTemplatesImport string = "/tenant/v1/governance/schema_templates/import"
	GovernanceCredentialTemplates   string = "/tenant/v1/governance/credential_templates/"
)

// GovernanceSchemaTemplate returns the path for a single schema template.
func GovernanceSchemaTemplate(templateID string) string {
	return GovernanceSchemaTemplates + templateID
}

// GovernanceCredentialTemplate returns the path for a single credential
// template.
func GovernanceCredentialTemplate(templateID string) string {
	return GovernanceCredentialTemplates + templateID
}
