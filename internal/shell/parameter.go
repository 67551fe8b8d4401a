// ============================================================================
// pwdgen - Passwort-Generator
// ============================================================================
//
// Package:     shell
// Description: Bounded numeric parameters driving generation
// Author:      msto63
// Created:     2026-10-19
// License:     MIT
// ============================================================================

package shell

import (
	"github.com/msto63/pwdgen/internal/generator"
	"github.com/msto63/pwdgen/pkg/core/config"
)

// Parameter names
const (
	ParamLength     = "length"
	ParamNumber     = "number"
	ParamComplexity = "complexity"
)

// Parameter is a named numeric setting kept within [Min, Max]
type Parameter struct {
	Name    string
	Min     int
	Max     int
	Default int
	current int
}

// NewParameter creates a parameter whose current value is its default.
// A default outside [min, max] is clamped; max below min is raised to min.
func NewParameter(name string, min, max, def int) Parameter {
	if max < min {
		max = min
	}
	p := Parameter{Name: name, Min: min, Max: max}
	p.Default = p.clamp(def)
	p.current = p.Default
	return p
}

// Current returns the current value
func (p Parameter) Current() int {
	return p.current
}

// Set clamps v into range, stores it and returns the stored value
func (p *Parameter) Set(v int) int {
	p.current = p.clamp(v)
	return p.current
}

// Step moves the current value by delta, clamped
func (p *Parameter) Step(delta int) int {
	return p.Set(p.current + delta)
}

// Reset restores the default
func (p *Parameter) Reset() {
	p.current = p.Default
}

// Fraction returns the position of the current value within the range,
// 0 at Min and 1 at Max
func (p Parameter) Fraction() float64 {
	if p.Max == p.Min {
		return 1
	}
	return float64(p.current-p.Min) / float64(p.Max-p.Min)
}

// Span returns the number of distinct values
func (p Parameter) Span() int {
	return p.Max - p.Min + 1
}

func (p Parameter) clamp(v int) int {
	if v < p.Min {
		return p.Min
	}
	if v > p.Max {
		return p.Max
	}
	return v
}

// Parameters holds the three generation parameters
type Parameters struct {
	Length     Parameter
	Number     Parameter
	Complexity Parameter
}

// ParametersFromConfig builds parameters from the configured table. The
// complexity range is narrowed to the defined tiers, even when the table
// lies entirely outside them.
func ParametersFromConfig(cfg config.ParametersConfig) Parameters {
	lo, hi := int(generator.MinComplexity), int(generator.MaxComplexity)
	cmin := min(max(cfg.Complexity.Min, lo), hi)
	cmax := max(min(cfg.Complexity.Max, hi), cmin)

	return Parameters{
		Length:     NewParameter(ParamLength, cfg.Length.Min, cfg.Length.Max, cfg.Length.Default),
		Number:     NewParameter(ParamNumber, cfg.Number.Min, cfg.Number.Max, cfg.Number.Default),
		Complexity: NewParameter(ParamComplexity, cmin, cmax, cfg.Complexity.Default),
	}
}

// DefaultParameters returns the parameters of the built-in configuration
func DefaultParameters() Parameters {
	return ParametersFromConfig(config.Default().Parameters)
}

// Reset restores every parameter to its default
func (p *Parameters) Reset() {
	p.Length.Reset()
	p.Number.Reset()
	p.Complexity.Reset()
}

// ComplexityTier returns the current complexity as a tier
func (p Parameters) ComplexityTier() generator.Complexity {
	return generator.Complexity(p.Complexity.Current())
}
