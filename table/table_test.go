// Copyright (c) 2026 OpSecId
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package table_test

import (
	"testing"

	"github.com/OpSecId/traction/table"
)

func TestRowsOptions(t *testing.T) {
	options := table.RowsOptions()

	if len(options) == 0 {
		t.Fatal("Expected at least one page size option")
	}

	t.Run("Should list the page sizes in ascending order", func(t *testing.T) {
		for i := 1; i < len(options); i++ {
			if options[i-1] >= options[i] {
				t.Fatalf("Options %v are not strictly ascending", options)
			}
		}
	})

	t.Run("Should include the default page size", func(t *testing.T) {
		for _, rows := range options {
			if rows == table.RowsDefault {
				return
			}
		}
		t.Fatalf("Default %d is not one of %v", table.RowsDefault, options)
	})
}

func TestRowsOptionsReturnsACopy(t *testing.T) {
	options := table.RowsOptions()
	options[0] = -1

	fresh := table.RowsOptions()
	if fresh[0] == -1 {
		t.Fatal("Mutating the returned slice must not change the shared options")
	}
}
