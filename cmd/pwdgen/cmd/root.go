// ============================================================================
// pwdgen - Passwort-Generator
// ============================================================================
//
// Package:     cmd
// Description: Root command and shared helpers
// Author:      msto63
// Created:     2026-10-19
// License:     MIT
// ============================================================================

package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/msto63/pwdgen/pkg/core/config"
	"github.com/msto63/pwdgen/pkg/core/logging"
)

var (
	cfgFile string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "pwdgen",
	Short: "pwdgen - Passwort-Generator",
	Long: `pwdgen erzeugt zufaellige Passwoerter.

Ohne Unterkommando oeffnet pwdgen das interaktive Fenster mit
Schiebereglern fuer Anzahl, Laenge und Komplexitaet.

Komplexitaetsstufen:
  1  digits
  2  lowercase
  3  lowercase+uppercase
  4  lowercase+uppercase+digits
  5  lowercase+uppercase+digits+symbols

Konfiguration (erste gefundene Datei):
  --config, $PWDGEN_CONFIG, ./pwdgen.toml, ./pwdgen.yaml,
  <user config dir>/pwdgen/config.{toml,yaml}`,
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	RunE:         runWindow,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "Config-Datei (TOML oder YAML)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Verbose Output")
}

// loadConfig resolves the configuration named by --config or the
// environment
func loadConfig() (*config.Config, error) {
	cfg, err := config.Resolve(cfgFile)
	if err != nil {
		printError("Konfiguration konnte nicht geladen werden", err)
		return nil, err
	}
	return cfg, nil
}

// newLogger builds the command logger writing to out
func newLogger(cfg *config.Config, out io.Writer, name string) *logging.Logger {
	level := cfg.Log.Level
	if verbose {
		level = "debug"
	}
	return logging.NewLogger(logging.LoggerConfig{
		Name:   name,
		Level:  level,
		Format: cfg.Log.Format,
		Output: out,
	})
}

func printError(msg string, err error) {
	fmt.Fprintf(os.Stderr, "Fehler: %s: %v\n", msg, err)
}
