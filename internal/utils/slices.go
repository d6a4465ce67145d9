// Copyright (c) 2026 OpSecId
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package utils

func MapSlice[T any, U any](s []T, f func(*T) U) []U {
	result := make([]U, len(s))

	for i, v := range s {
		result[i] = f(&v)
	}

	return result
}
