// ============================================================================
// lox - Lox expression front end
// ============================================================================
//
// Package:     version
// Description: Central version management for the CLI and its components
// Author:      msto63
// Created:     2025-12-06
// Modified:    2026-10-19
// License:     MIT
// ============================================================================

package version

import (
	"fmt"
	"runtime"
)

// Version constants for lox and its components
const (
	// Release version of the command line tool
	Release = "0.1.0"

	// Component versions
	Scanner     = "0.1.0"
	Parser      = "0.1.0"
	Printer     = "0.1.0"
	Interpreter = "0.1.0"
)

// Build metadata, set with -ldflags "-X github.com/msto63/lox/pkg/core/version.Commit=..."
var (
	Commit    = "unknown"
	BuildDate = "unknown"
)

// ComponentVersion returns the version for a given component name
func ComponentVersion(name string) string {
	switch name {
	case "scanner":
		return Scanner
	case "parser":
		return Parser
	case "printer":
		return Printer
	case "interpreter":
		return Interpreter
	default:
		return Release
	}
}

// Components lists the component names known to ComponentVersion
func Components() []string {
	return []string{"scanner", "parser", "printer", "interpreter"}
}

// String returns a one-line description of the build
func String() string {
	return fmt.Sprintf("lox %s (commit %s, built %s, %s %s/%s)",
		Release, Commit, BuildDate, runtime.Version(), runtime.GOOS, runtime.GOARCH)
}
