package crypto

import (
	"crypto/rand"
	"errors"
	"math/big"
)

const (
	uppercaseChars = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	lowercaseChars = "abcdefghijklmnopqrstuvwxyz"
	digitChars     = "0123456789"

	// SymbolChars is the symbol class used by the generator and recognised by
	// the strength checker.
	SymbolChars = "!@#$%^&*()_+-=[]{}|;:,.<>?"

	MinLength = 4
	MaxLength = 128
)

var (
	ErrLengthTooShort     = errors.New("password length must be at least 4")
	ErrLengthTooLong      = errors.New("password length must be at most 128")
	ErrLengthInsufficient = errors.New("password length must be at least equal to the number of selected character types")
)

// Preset names understood by the generator.
const (
	PresetEasy   = "easy"
	PresetMedium = "medium"
	PresetStrong = "strong"
)

// GeneratorOptions configures the password generator.
// Lowercase letters are always part of the pool.
type GeneratorOptions struct {
	Length    int
	Uppercase bool
	Digits    bool
	Symbols   bool
}

// DefaultOptions returns the custom-mode defaults: 12 characters with all types enabled.
func DefaultOptions() GeneratorOptions {
	return GeneratorOptions{
		Length:    12,
		Uppercase: true,
		Digits:    true,
		Symbols:   true,
	}
}

// PresetOptions returns the options for a named preset. Unknown names yield
// the medium preset and ok=false.
func PresetOptions(name string) (opts GeneratorOptions, ok bool) {
	switch name {
	case PresetEasy:
		return GeneratorOptions{Length: 8, Digits: true}, true
	case PresetMedium:
		return GeneratorOptions{Length: 12, Uppercase: true, Digits: true}, true
	case PresetStrong:
		return GeneratorOptions{Length: 16, Uppercase: true, Digits: true, Symbols: true}, true
	}
	opts, _ = PresetOptions(PresetMedium)
	return opts, false
}

// Generate creates a cryptographically secure random password based on the given options.
func Generate(opts GeneratorOptions) (string, error) {
	if opts.Length < MinLength {
		return "", ErrLengthTooShort
	}
	if opts.Length > MaxLength {
		return "", ErrLengthTooLong
	}

	pool := lowercaseChars
	requiredSets := []string{lowercaseChars}

	if opts.Uppercase {
		pool += uppercaseChars
		requiredSets = append(requiredSets, uppercaseChars)
	}
	if opts.Digits {
		pool += digitChars
		requiredSets = append(requiredSets, digitChars)
	}
	if opts.Symbols {
		pool += SymbolChars
		requiredSets = append(requiredSets, SymbolChars)
	}

	if opts.Length < len(requiredSets) {
		return "", ErrLengthInsufficient
	}

	result := make([]byte, opts.Length)

	// At least one character from each selected type.
	for i, charset := range requiredSets {
		ch, err := randChar(charset)
		if err != nil {
			return "", err
		}
		result[i] = ch
	}

	for i := len(requiredSets); i < opts.Length; i++ {
		ch, err := randChar(pool)
		if err != nil {
			return "", err
		}
		result[i] = ch
	}

	if err := secureShuffle(result); err != nil {
		return "", err
	}

	return string(result), nil
}

// randChar picks a random character from charset using crypto/rand.
func randChar(charset string) (byte, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(int64(len(charset))))
	if err != nil {
		return 0, err
	}
	return charset[n.Int64()], nil
}

// secureShuffle performs a Fisher-Yates shuffle using crypto/rand.
func secureShuffle(data []byte) error {
	for i := len(data) - 1; i > 0; i-- {
		j, err := rand.Int(rand.Reader, big.NewInt(int64(i+1)))
		if err != nil {
			return err
		}
		data[i], data[j.Int64()] = data[j.Int64()], data[i]
	}
	return nil
}
