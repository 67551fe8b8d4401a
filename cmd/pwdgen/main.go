// ============================================================================
// pwdgen - Passwort-Generator
// ============================================================================
//
// Package:     main
// Description: Entry point of the pwdgen command
// Author:      msto63
// Created:     2026-10-19
// License:     MIT
// ============================================================================

package main

import (
	"os"

	"github.com/msto63/pwdgen/cmd/pwdgen/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
