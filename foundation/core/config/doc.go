// File: doc.go
// Title: Configuration Management Package Documentation
// Description: Package documentation for the key/value configuration layer.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation with TOML/YAML support
// - 2026-10-19 v0.2.0: fsnotify watching, removed discovery and validation

/*
Package config provides key/value configuration for the Lox tools.

Files are TOML or YAML, chosen by extension. Values are addressed with dot
notation and every getter first consults an environment variable derived
from the key and the configured prefix.

# Loading

	cfg, err := loxconfig.LoadWithOptions("lox.toml", loxconfig.LoadOptions{
		EnvPrefix: "LOX",
		Defaults: map[string]interface{}{
			"lox.max_depth": 256,
		},
	})
	if err != nil {
		return err
	}

	depth := cfg.GetInt("lox.max_depth")      // LOX_LOX_MAX_DEPTH overrides
	trim := cfg.GetBool("lox.trim_strings", false)

# Watching

	cfg.OnChange(func(oldCfg, newCfg *loxconfig.Config) {
		logger.Info("configuration reloaded")
	})
	if err := cfg.Watch(); err != nil {
		return err
	}
	defer cfg.StopWatching()

Handlers run on the watcher goroutine after the new data is in place.
*/
package config
