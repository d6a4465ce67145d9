// Copyright (c) 2026 OpSecId
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package config

import (
	"log/slog"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

const (
	FormatJSON string = "json"
	FormatYAML string = "yaml"
)

type Config struct {
	env            string
	debug          bool
	serviceName    string
	manifestFormat string
	manifestOut    string
}

func (c *Config) Env() string {
	return c.env
}

func (c *Config) Debug() bool {
	return c.debug
}

func (c *Config) ServiceName() string {
	return c.serviceName
}

func (c *Config) ManifestFormat() string {
	return c.manifestFormat
}

// ManifestOut is the output file path. When empty the command derives
// one from the format.
func (c *Config) ManifestOut() string {
	return c.manifestOut
}

var variables = [5]string{
	"ENV",
	"DEBUG",
	"SERVICE_NAME",
	"MANIFEST_FORMAT",
	"MANIFEST_OUT",
}

var defaults = map[string]string{
	"ENV":             "development",
	"DEBUG":           "false",
	"SERVICE_NAME":    "traction-manifest",
	"MANIFEST_FORMAT": FormatJSON,
	"MANIFEST_OUT":    "",
}

func NewConfig(logger *slog.Logger, envPath string) Config {
	err := godotenv.Load(envPath)
	if err != nil {
		logger.Error("Error loading .env file")
	}

	variablesMap := make(map[string]string)
	for _, variable := range variables {
		value := os.Getenv(variable)
		if value == "" {
			value = defaults[variable]
		}
		variablesMap[variable] = value
	}

	format := strings.ToLower(variablesMap["MANIFEST_FORMAT"])
	if format != FormatJSON && format != FormatYAML {
		logger.Error("MANIFEST_FORMAT must be json or yaml")
		panic("MANIFEST_FORMAT must be json or yaml")
	}

	return Config{
		env:            variablesMap["ENV"],
		debug:          strings.ToLower(variablesMap["DEBUG"]) == "true",
		serviceName:    variablesMap["SERVICE_NAME"],
		manifestFormat: format,
		manifestOut:    variablesMap["MANIFEST_OUT"],
	}
}
