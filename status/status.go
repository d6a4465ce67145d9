// Copyright (c) 2026 OpSecId
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package status names the closed status vocabularies of the tenant
// administration domain. Values are opaque tokens compared for equality;
// the state machines that move records between them live with the backend
// services that own the records.
package status
