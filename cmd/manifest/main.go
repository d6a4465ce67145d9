// Copyright (c) 2026 OpSecId
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package main

import (
	"log/slog"
	"os"

	"github.com/OpSecId/traction/internal/config"
	"github.com/OpSecId/traction/internal/utils"
	"github.com/OpSecId/traction/manifest"
)

func outputPath(cfg *config.Config) string {
	if out := cfg.ManifestOut(); out != "" {
		return out
	}

	return "manifest." + cfg.ManifestFormat()
}

func writeManifest(logger *slog.Logger, cfg *config.Config) {
	loc := outputPath(cfg)
	logger = utils.BuildLogger(logger, utils.LoggerOptions{
		Location: "main",
		Function: "writeManifest",
	}).With("name", loc, "format", cfg.ManifestFormat())

	logger.Debug("Creating manifest file")
	file, err := os.Create(loc)
	if err != nil {
		logger.Error("Failed to create manifest file", "error", err)
		panic(err)
	}
	defer file.Close()

	if cfg.ManifestFormat() == config.FormatYAML {
		err = manifest.WriteYAML(file)
	} else {
		err = manifest.WriteJSON(file)
	}
	if err != nil {
		logger.Error("Failed to render manifest", "error", err)
		panic(err)
	}

	logger.Info("Manifest written", "entries", len(manifest.Entries()))
}

func main() {
	logger := utils.DefaultLogger()
	logger.Info("Loading configuration...")
	cfg := config.NewConfig(logger, "./.env")

	logger = utils.InitialLogger(cfg.Env(), cfg.Debug(), cfg.ServiceName())

	logger.Debug("Checking catalog consistency...")
	if err := manifest.Check(); err != nil {
		logger.Error("Catalog consistency check failed", "error", err)
		panic(err)
	}
	logger.Debug("Catalog is consistent")

	writeManifest(logger, &cfg)
}
