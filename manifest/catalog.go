// Copyright (c) 2026 OpSecId
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package manifest

import (
	"github.com/OpSecId/traction/internal/utils"
	"github.com/OpSecId/traction/paths"
)

func constant(name, path string) Entry {
	return Entry{
		Name: name,
		Kind: KindConstant,
		Path: path,
	}
}

func templated(name string, build func(ids ...string) string, params ...string) Entry {
	return Entry{
		Name:   name,
		Kind:   KindTemplated,
		Path:   build(utils.MapSlice(params, placeholder)...),
		Params: params,
		build:  build,
	}
}

// single adapts a one-identifier path builder to the catalog's variadic
// shape. A missing identifier is substituted as an empty string.
func single(build func(id string) string) func(ids ...string) string {
	return func(ids ...string) string {
		if len(ids) == 0 {
			return build("")
		}

		return build(ids[0])
	}
}

var catalog = []Entry{
	// Endpoints served by the tenant UI backend.
	constant("config", paths.Config),
	constant("email_reservation_confirmation", paths.EmailReservationConfirmation),
	constant("email_reservation_status", paths.EmailReservationStatus),
	constant("oidc_innkeeper_login", paths.OIDCInnkeeperLogin),

	// Innkeeper administration.
	constant("innkeeper_token", paths.InnkeeperToken),
	constant("innkeeper_tenants", paths.InnkeeperTenants),
	templated("innkeeper_tenant", single(paths.InnkeeperTenant), "tenant_id"),
	constant("innkeeper_reservations", paths.InnkeeperReservations),
	templated("innkeeper_reservation", single(paths.InnkeeperReservation), "reservation_id"),
	templated("innkeeper_reservation_approve", single(paths.InnkeeperReservationApprove), "reservation_id"),
	templated("innkeeper_reservation_deny", single(paths.InnkeeperReservationDeny), "reservation_id"),

	// Tenant self-service.
	constant("tenant_token", paths.TenantToken),
	constant("tenant", paths.Tenant),
	constant("tenant_endorser_connection", paths.TenantEndorserConnection),
	constant("tenant_endorser_info", paths.TenantEndorserInfo),
	constant("tenant_register_public_did", paths.TenantRegisterPublicDID),
	constant("wallet_did_public", paths.WalletDIDPublic),

	// Connections and messaging.
	constant("connections", paths.Connections),
	constant("connections_create_invitation", paths.ConnectionsCreateInvitation),
	templated("connection", single(paths.Connection), "connection_id"),
	templated("connection_invitation", single(paths.ConnectionInvitation), "connection_id"),
	constant("basicmessages", paths.Basicmessages),
	templated("basicmessages_send", single(paths.BasicmessagesSend), "connection_id"),

	// Holder.
	constant("holder_credentials", paths.HolderCredentials),
	templated("holder_credential", single(paths.HolderCredential), "credential_id"),
	templated("holder_credential_accept_offer", single(paths.HolderCredentialAcceptOffer), "credential_id"),
	templated("holder_credential_reject_offer", single(paths.HolderCredentialRejectOffer), "credential_id"),
	constant("holder_presentations", paths.HolderPresentations),
	templated("holder_presentation", single(paths.HolderPresentation), "presentation_id"),

	// Issuer.
	constant("issuer_credentials", paths.IssuerCredentials),
	templated("issuer_credential", single(paths.IssuerCredential), "credential_id"),
	templated("issuer_credential_revoke", single(paths.IssuerCredentialRevoke), "credential_id"),

	// Verifier.
	constant("verifier_presentations", paths.VerifierPresentations),
	templated("verifier_presentation", single(paths.VerifierPresentation), "presentation_id"),
	constant("verifier_presentations_adhoc_request", paths.VerifierPresentationsAdhocRequest),
	constant("verifier_presentation_templates", paths.VerifierPresentationTemplates),

	// Governance templates.
	constant("governance_schema_templates", paths.GovernanceSchemaTemplates),
	templated("governance_schema_template", single(paths.GovernanceSchemaTemplate), "schema_template_id"),
	constant("governance_schema_templates_import", paths.GovernanceSchemaTemplatesImport),
	constant("governance_credential_templates", paths.GovernanceCredentialTemplates),
	templated("governance_credential_template", single(paths.GovernanceCredentialTemplate), "credential_template_id"),

	// Multitenancy.
	constant("multitenancy_reservations", paths.MultitenancyReservations),
	templated("multitenancy_reservation", single(paths.MultitenancyReservation), "reservation_id"),
	templated("multitenancy_reservation_check_in", single(paths.MultitenancyReservationCheckIn), "reservation_id"),
	templated("multitenancy_tenant_token", single(paths.MultitenancyTenantToken), "tenant_id"),
	templated("multitenancy_wallet_token", single(paths.MultitenancyWalletToken), "wallet_id"),
}
