// ============================================================================
// pwdgen - Passwort-Generator
// ============================================================================
//
// Package:     cmd
// Description: Non-interactive password generation
// Author:      msto63
// Created:     2026-10-19
// License:     MIT
// ============================================================================

package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/msto63/pwdgen/internal/generator"
	"github.com/msto63/pwdgen/internal/shell"
	pwerrors "github.com/msto63/pwdgen/pkg/core/errors"
)

// generateOptions holds the flags of the generate command. The *Set fields
// record which flags were given; unset flags keep the configured default.
type generateOptions struct {
	length     int
	number     int
	complexity string
	copy       bool

	lengthSet     bool
	numberSet     bool
	complexitySet bool
}

var genOpts generateOptions

var generateCmd = &cobra.Command{
	Use:     "generate",
	Aliases: []string{"gen", "g"},
	Short:   "Erzeugt Passwoerter ohne Fenster",
	Long: `Erzeugt Passwoerter und gibt sie zeilenweise aus.

Nicht gesetzte Flags verwenden die Standardwerte der Konfiguration.
Werte ausserhalb des konfigurierten Bereichs werden abgelehnt.

Beispiele:
  pwdgen generate
  pwdgen generate -l 16 -n 5 -c 4
  pwdgen generate -c lowercase+uppercase+digits+symbols --copy`,
	Args: cobra.NoArgs,
	RunE: runGenerate,
}

func init() {
	rootCmd.AddCommand(generateCmd)

	generateCmd.Flags().IntVarP(&genOpts.length, "length", "l", 0, "Laenge der Passwoerter")
	generateCmd.Flags().IntVarP(&genOpts.number, "number", "n", 0, "Anzahl der Passwoerter")
	generateCmd.Flags().StringVarP(&genOpts.complexity, "complexity", "c", "",
		"Komplexitaet (1-5 oder Name der Stufe)")
	generateCmd.Flags().BoolVar(&genOpts.copy, "copy", false, "Ergebnis in die Zwischenablage kopieren")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	logger := newLogger(cfg, cmd.ErrOrStderr(), "generate")

	sh, err := newShell(cfg, logger)
	if err != nil {
		return err
	}

	opts := genOpts
	opts.lengthSet = cmd.Flags().Changed("length")
	opts.numberSet = cmd.Flags().Changed("number")
	opts.complexitySet = cmd.Flags().Changed("complexity")

	return generatePasswords(cmd.OutOrStdout(), sh, opts)
}

// generatePasswords applies opts to sh, generates one batch and writes it
// to w, one password per line
func generatePasswords(w io.Writer, sh *shell.Shell, opts generateOptions) error {
	if err := applyOptions(sh, opts); err != nil {
		return err
	}

	if n := sh.Generate(); n != nil {
		return n.Err
	}

	for _, pw := range sh.Result().Passwords {
		if _, err := fmt.Fprintln(w, pw); err != nil {
			return pwerrors.WrapWithCode(err, pwerrors.CodeInternal, "write passwords")
		}
	}

	if opts.copy {
		if n := sh.Copy(); n.Kind == shell.NotifyError {
			return n.Err
		}
	}
	return nil
}

// applyOptions sets every given flag on sh. Values outside the configured
// range are rejected instead of clamped.
func applyOptions(sh *shell.Shell, opts generateOptions) error {
	params := sh.Params()

	if opts.lengthSet {
		if err := checkRange(params.Length, opts.length, pwerrors.CodeInvalidLength); err != nil {
			return err
		}
		sh.SetLength(opts.length)
	}

	if opts.numberSet {
		if err := checkRange(params.Number, opts.number, pwerrors.CodeInvalidNumber); err != nil {
			return err
		}
		sh.SetNumber(opts.number)
	}

	if opts.complexitySet {
		c, err := generator.ParseComplexity(opts.complexity)
		if err != nil {
			return err
		}
		if err := checkRange(params.Complexity, int(c), pwerrors.CodeInvalidComplexity); err != nil {
			return err
		}
		sh.SetComplexity(int(c))
	}

	return nil
}

func checkRange(p shell.Parameter, v int, code pwerrors.Code) error {
	if v < p.Min || v > p.Max {
		return pwerrors.Newf(code, "%s %d out of range [%d, %d]", p.Name, v, p.Min, p.Max).
			WithDetail("value", v)
	}
	return nil
}
