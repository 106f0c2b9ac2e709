// Package passgen generates random passwords from configurable character
// classes and rates their strength. It is stateless and safe for concurrent
// use: every call is a pure computation plus a read from crypto/rand.
package passgen

import (
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"strings"
)

// Class identifies one of the selectable character classes.
type Class string

const (
	ClassUppercase Class = "uppercase"
	ClassLowercase Class = "lowercase"
	ClassNumbers   Class = "numbers"
	ClassSymbols   Class = "symbols"
)

const (
	uppercaseChars = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	lowercaseChars = "abcdefghijklmnopqrstuvwxyz"
	numberChars    = "0123456789"
	symbolChars    = "!@#$%^&*()_+-=[]{}|;:,.<>?"
)

// DefaultMaxLength is the reference upper bound on requested length.
// Callers enforce it; Generate itself only rejects lengths below 1.
const DefaultMaxLength = 16

var (
	ErrInvalidLength = errors.New("password length must be at least 1")
	ErrEmptyPool     = errors.New("character pool is empty: no character classes selected")
)

// allClasses lists every class in pool concatenation order.
var allClasses = []Class{ClassUppercase, ClassLowercase, ClassNumbers, ClassSymbols}

// Alphabet returns the fixed ordered alphabet for the class, or "" for an
// unknown class.
func (c Class) Alphabet() string {
	switch c {
	case ClassUppercase:
		return uppercaseChars
	case ClassLowercase:
		return lowercaseChars
	case ClassNumbers:
		return numberChars
	case ClassSymbols:
		return symbolChars
	}
	return ""
}

// ParseClass converts a wire string into a Class.
func ParseClass(s string) (Class, error) {
	switch c := Class(strings.ToLower(s)); c {
	case ClassUppercase, ClassLowercase, ClassNumbers, ClassSymbols:
		return c, nil
	}
	return "", fmt.Errorf("unknown character class %q", s)
}

// BuildPool concatenates the alphabets of the enabled classes in the fixed
// order uppercase, lowercase, numbers, symbols, regardless of the order they
// appear in the input. Duplicates are ignored. An empty selection yields an
// empty pool, which is a valid result: Generate rejects it, not BuildPool.
func BuildPool(classes []Class) string {
	enabled := make(map[Class]bool, len(classes))
	for _, c := range classes {
		enabled[c] = true
	}

	var pool strings.Builder
	for _, c := range allClasses {
		if enabled[c] {
			pool.WriteString(c.Alphabet())
		}
	}
	return pool.String()
}

// Generate draws length independent uniformly-random characters from pool
// using crypto/rand and returns them in draw order. It fails with
// ErrInvalidLength when length < 1 and ErrEmptyPool when the pool is empty,
// rather than silently producing a degenerate password.
func Generate(length int, pool string) (string, error) {
	if length < 1 {
		return "", ErrInvalidLength
	}
	if pool == "" {
		return "", ErrEmptyPool
	}

	result := make([]byte, length)
	max := big.NewInt(int64(len(pool)))
	for i := range result {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", fmt.Errorf("reading random source: %w", err)
		}
		result[i] = pool[n.Int64()]
	}

	return string(result), nil
}
