// ============================================================================
// pwdgen - Passwort-Generator
// ============================================================================
//
// Package:     cmd
// Description: Opens the interactive pwdgen window
// Author:      msto63
// Created:     2026-10-19
// License:     MIT
// ============================================================================

package cmd

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/msto63/pwdgen/internal/clipboard"
	"github.com/msto63/pwdgen/internal/generator"
	"github.com/msto63/pwdgen/internal/shell"
	"github.com/msto63/pwdgen/internal/tui/pwdgen"
	"github.com/msto63/pwdgen/pkg/core/config"
	"github.com/msto63/pwdgen/pkg/core/logging"
	"github.com/msto63/pwdgen/pkg/core/version"
)

func runWindow(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	// The window owns the terminal, so logs go to a file.
	var out io.Writer = io.Discard
	if cfg.Log.File != "" {
		f, err := logging.OpenFile(cfg.Log.File)
		if err == nil {
			defer f.Close()
			out = f
		}
	}
	logger := newLogger(cfg, out, "pwdgen")

	sh, err := newShell(cfg, logger)
	if err != nil {
		printError("Zwischenablage nicht verfuegbar", err)
		return err
	}

	logger.Info("window opened", logging.Fields{
		"config":    cfg.Source,
		"clipboard": cfg.Clipboard.Backend,
	})

	err = pwdgen.Run(pwdgen.Config{
		Shell:   sh,
		Logger:  logger,
		Version: version.Version,
	})
	if err != nil {
		logger.ErrorWithErr("window failed", err)
		return err
	}

	logger.Info("window closed")
	return nil
}

// newShell wires the generator and the configured clipboard into a shell
// over the configured parameter table
func newShell(cfg *config.Config, logger *logging.Logger) (*shell.Shell, error) {
	clip, err := clipboard.New(cfg.Clipboard.Backend, nil)
	if err != nil {
		return nil, err
	}
	params := shell.ParametersFromConfig(cfg.Parameters)
	return shell.New(params, generator.New(), clip, logger), nil
}
