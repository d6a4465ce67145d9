// Copyright (c) 2026 OpSecId
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package manifest

import (
	"encoding/json"
	"io"

	"gopkg.in/yaml.v3"
)

type document struct {
	Entries []Entry `json:"entries" yaml:"entries"`
}

// WriteJSON renders the catalog to w as indented JSON.
func WriteJSON(w io.Writer) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")

	return encoder.Encode(document{Entries: Entries()})
}

// WriteYAML renders the catalog to w as YAML.
func WriteYAML(w io.Writer) error {
	data, err := yaml.Marshal(document{Entries: Entries()})
	if err != nil {
		return err
	}

	_, err = w.Write(data)

	return err
}
