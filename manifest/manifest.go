// Copyright (c) 2026 OpSecId
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package manifest enumerates every endpoint the tenant interface talks
// to as a named catalog that can be checked for consistency and rendered
// as a machine readable document.
package manifest

import (
	"fmt"
	"strings"

	"github.com/OpSecId/traction/internal/utils"
	"github.com/OpSecId/traction/table"
)

type Kind string

const (
	// KindConstant marks an entry whose path is a fixed literal.
	KindConstant Kind = "constant"
	// KindTemplated marks an entry whose path takes identifiers.
	KindTemplated Kind = "templated"
)

// Entry is one named endpoint of the catalog. Templated entries list
// their parameters in substitution order and render their path with
// `{param}` placeholders.
type Entry struct {
	Name   string   `json:"name" yaml:"name"`
	Kind   Kind     `json:"kind" yaml:"kind"`
	Path   string   `json:"path" yaml:"path"`
	Params []string `json:"params,omitempty" yaml:"params,omitempty"`

	build func(ids ...string) string
}

// BuildPath substitutes ids into the entry's path in parameter order.
// Missing ids are substituted as empty strings and constant entries
// ignore ids entirely.
func (e Entry) BuildPath(ids ...string) string {
	if e.build == nil {
		return e.Path
	}
	return e.build(ids...)
}

// Entries returns a copy of the catalog in declaration order.
func Entries() []Entry {
	entries := make([]Entry, len(catalog))
	copy(entries, catalog)
	return entries
}

// Names returns the entry names in declaration order.
func Names() []string {
	return utils.MapSlice(catalog, func(entry *Entry) string {
		return entry.Name
	})
}

// Lookup finds an entry by name.
func Lookup(name string) (Entry, bool) {
	for _, entry := range catalog {
		if entry.Name == name {
			return entry, true
		}
	}

	return Entry{}, false
}

func placeholder(param *string) string {
	return "{" + *param + "}"
}

// Check verifies the catalog is internally consistent. The manifest
// command runs it before rendering anything.
func Check() error {
	seen := make(map[string]struct{}, len(catalog))

	for _, entry := range catalog {
		if entry.Name == "" {
			return fmt.Errorf("entry with path %q has no name", entry.Path)
		}
		if _, ok := seen[entry.Name]; ok {
			return fmt.Errorf("duplicate entry name %q", entry.Name)
		}
		seen[entry.Name] = struct{}{}

		if !strings.HasPrefix(entry.Path, "/") {
			return fmt.Errorf("entry %q path %q does not begin with a slash", entry.Name, entry.Path)
		}

		switch entry.Kind {
		case KindConstant:
			if len(entry.Params) > 0 || entry.build != nil {
				return fmt.Errorf("constant entry %q declares parameters", entry.Name)
			}
		case KindTemplated:
			if len(entry.Params) == 0 || entry.build == nil {
				return fmt.Errorf("templated entry %q declares no parameters", entry.Name)
			}

			built := entry.build(utils.MapSlice(entry.Params, placeholder)...)
			if built != entry.Path {
				return fmt.Errorf("templated entry %q builds %q instead of %q", entry.Name, built, entry.Path)
			}
		default:
			return fmt.Errorf("entry %q has unknown kind %q", entry.Name, entry.Kind)
		}
	}

	options := table.RowsOptions()
	defaultSeen := false
	for i, rows := range options {
		if rows == table.RowsDefault {
			defaultSeen = true
		}
		if i > 0 && options[i-1] >= rows {
			return fmt.Errorf("table rows options %v are not ascending", options)
		}
	}
	if !defaultSeen {
		return fmt.Errorf("default table rows %d is not one of %v", table.RowsDefault, options)
	}

	return nil
}
