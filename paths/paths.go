// Copyright (c) 2026 OpSecId
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package paths is the single source of truth for the backend endpoint
// paths of the tenant administration API. Constants hold fixed paths and
// functions build paths that embed a resource identifier.
//
// Identifiers are substituted verbatim: no validation and no URL-encoding
// happens here. Callers that need encoded segments must encode before
// building the path.
package paths
