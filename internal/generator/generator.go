// ============================================================================
// pwdgen - Passwort-Generator
// ============================================================================
//
// Package:     generator
// Description: Random password generation
// Author:      msto63
// Created:     2026-10-19
// License:     MIT
// ============================================================================

// Package generator produces random passwords from the alphabet of a
// complexity tier. Every character is drawn independently and uniformly,
// with replacement.
package generator

import (
	"crypto/rand"
	"io"
	"math/big"
	"strings"

	pwerrors "github.com/msto63/pwdgen/pkg/core/errors"
)

var (
	// ErrInvalidLength is returned for a length below 1
	ErrInvalidLength = pwerrors.New(pwerrors.CodeInvalidLength, "invalid length")
	// ErrInvalidNumber is returned for a batch size below 1
	ErrInvalidNumber = pwerrors.New(pwerrors.CodeInvalidNumber, "invalid number")
)

// Generator draws passwords from a random source
type Generator struct {
	random io.Reader
}

// New returns a Generator reading from crypto/rand
func New() *Generator {
	return &Generator{random: rand.Reader}
}

// NewWithReader returns a Generator reading from r
func NewWithReader(r io.Reader) *Generator {
	return &Generator{random: r}
}

// Generate returns a password of exactly length characters from the
// alphabet of complexity
func (g *Generator) Generate(length int, complexity Complexity) (string, error) {
	if length < 1 {
		return "", pwerrors.Newf(pwerrors.CodeInvalidLength, "length must be at least 1, got %d", length).
			WithDetail("length", length)
	}
	alphabet, err := complexity.Alphabet()
	if err != nil {
		return "", err
	}

	max := big.NewInt(int64(len(alphabet)))

	var sb strings.Builder
	sb.Grow(length)
	for i := 0; i < length; i++ {
		n, err := rand.Int(g.random, max)
		if err != nil {
			return "", pwerrors.WrapWithCode(err, pwerrors.CodeInternal, "read random source")
		}
		sb.WriteByte(alphabet[n.Int64()])
	}

	return sb.String(), nil
}

// GenerateN returns number independent passwords. Duplicates are possible.
func (g *Generator) GenerateN(number, length int, complexity Complexity) ([]string, error) {
	if number < 1 {
		return nil, pwerrors.Newf(pwerrors.CodeInvalidNumber, "number must be at least 1, got %d", number).
			WithDetail("number", number)
	}

	passwords := make([]string, 0, number)
	for i := 0; i < number; i++ {
		p, err := g.Generate(length, complexity)
		if err != nil {
			return nil, err
		}
		passwords = append(passwords, p)
	}
	return passwords, nil
}

var defaultGenerator = New()

// Generate returns a password using crypto/rand
func Generate(length int, complexity Complexity) (string, error) {
	return defaultGenerator.Generate(length, complexity)
}

// GenerateN returns number passwords using crypto/rand
func GenerateN(number, length int, complexity Complexity) ([]string, error) {
	return defaultGenerator.GenerateN(number, length, complexity)
}
