// Copyright (c) 2026 OpSecId
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package table holds the shared defaults for paged data tables.
package table

// RowsDefault is the page size a table starts with. It is always a member
// of the selectable options.
const RowsDefault int = 10

var rowsOptions = [3]int{10, 25, 50}

// RowsOptions returns the selectable page sizes in ascending order. The
// slice is a fresh copy on every call so callers cannot mutate the shared
// options.
func RowsOptions() []int {
	options := make([]int, len(rowsOptions))
	copy(options, rowsOptions[:])
	return options
}
