// ============================================================================
// pwdgen - Passwort-Generator
// ============================================================================
//
// Package:     generator
// Description: Complexity tiers and their character alphabets
// Author:      msto63
// Created:     2026-10-19
// License:     MIT
// ============================================================================

package generator

import (
	"strconv"
	"strings"

	pwerrors "github.com/msto63/pwdgen/pkg/core/errors"
)

const (
	digitChars     = "0123456789"
	lowercaseChars = "abcdefghijklmnopqrstuvwxyz"
	uppercaseChars = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	symbolChars    = "!\"#$%&'()*+,-./:;<=>?@[\\]^_`{|}~"
)

// Complexity selects the character classes a password is drawn from.
// Higher tiers use broader alphabets.
type Complexity int

const (
	Digits Complexity = iota + 1
	Lowercase
	Letters
	Alphanumeric
	AlphanumericSymbols
)

// Tier bounds
const (
	MinComplexity = Digits
	MaxComplexity = AlphanumericSymbols
)

var tiers = [...]struct {
	name     string
	alphabet string
}{
	Digits:              {"digits", digitChars},
	Lowercase:           {"lowercase", lowercaseChars},
	Letters:             {"lowercase+uppercase", lowercaseChars + uppercaseChars},
	Alphanumeric:        {"lowercase+uppercase+digits", lowercaseChars + uppercaseChars + digitChars},
	AlphanumericSymbols: {"lowercase+uppercase+digits+symbols", lowercaseChars + uppercaseChars + digitChars + symbolChars},
}

// ErrInvalidComplexity is returned for a complexity outside the defined tiers
var ErrInvalidComplexity = pwerrors.New(pwerrors.CodeInvalidComplexity, "invalid complexity")

// Valid reports whether c is a defined tier
func (c Complexity) Valid() bool {
	return c >= MinComplexity && c <= MaxComplexity
}

// Name returns the tier name, e.g. "lowercase+uppercase+digits"
func (c Complexity) Name() string {
	if !c.Valid() {
		return "invalid(" + strconv.Itoa(int(c)) + ")"
	}
	return tiers[c].name
}

// String implements fmt.Stringer
func (c Complexity) String() string {
	return c.Name()
}

// Alphabet returns the characters passwords of this tier are drawn from
func (c Complexity) Alphabet() (string, error) {
	if !c.Valid() {
		return "", invalidComplexity(c)
	}
	return tiers[c].alphabet, nil
}

// Tiers returns all tiers in ascending order
func Tiers() []Complexity {
	out := make([]Complexity, 0, int(MaxComplexity))
	for c := MinComplexity; c <= MaxComplexity; c++ {
		out = append(out, c)
	}
	return out
}

// ParseComplexity accepts a tier number ("4") or a tier name
// ("lowercase+uppercase+digits")
func ParseComplexity(s string) (Complexity, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if n, err := strconv.Atoi(s); err == nil {
		c := Complexity(n)
		if !c.Valid() {
			return 0, invalidComplexity(c)
		}
		return c, nil
	}
	for _, c := range Tiers() {
		if tiers[c].name == s {
			return c, nil
		}
	}
	return 0, pwerrors.Newf(pwerrors.CodeInvalidComplexity, "unknown complexity %q", s)
}

func invalidComplexity(c Complexity) error {
	return pwerrors.Newf(pwerrors.CodeInvalidComplexity,
		"complexity %d is outside %d..%d", int(c), int(MinComplexity), int(MaxComplexity)).
		WithDetail("complexity", int(c))
}
