package crypto

import (
	"strings"
	"unicode"
)

// MaxScore is the highest score Evaluate can assign.
const MaxScore = 5

// Strength labels and their display colors.
const (
	LabelWeak   = "Weak"
	LabelMedium = "Medium"
	LabelStrong = "Strong"

	ColorWeak   = "red"
	ColorMedium = "orange"
	ColorStrong = "green"
)

// Feedback hints, one per failed check.
const (
	HintLength  = "Password should be at least 8 characters long"
	HintCase    = "Add both uppercase and lowercase letters"
	HintDigits  = "Add digits"
	HintSymbols = "Add special characters"
)

// Strength is the outcome of a password evaluation.
type Strength struct {
	Score    int
	Label    string
	Color    string
	Feedback []string
}

// Evaluate scores a password from 0 to MaxScore. One point each is awarded
// for a length of at least 8, mixed case, a digit, a symbol from SymbolChars
// and a length of at least 12. Feedback lists a hint for every failed check
// except the last.
func Evaluate(password string) Strength {
	var (
		score    int
		feedback []string
		length   = len([]rune(password))
	)

	if length >= 8 {
		score++
	} else {
		feedback = append(feedback, HintLength)
	}

	if strings.IndexFunc(password, unicode.IsUpper) >= 0 && strings.IndexFunc(password, unicode.IsLower) >= 0 {
		score++
	} else {
		feedback = append(feedback, HintCase)
	}

	if strings.IndexFunc(password, unicode.IsDigit) >= 0 {
		score++
	} else {
		feedback = append(feedback, HintDigits)
	}

	if strings.ContainsAny(password, SymbolChars) {
		score++
	} else {
		feedback = append(feedback, HintSymbols)
	}

	if length >= 12 {
		score++
	}

	s := Strength{Score: score, Feedback: feedback}
	switch {
	case score <= 2:
		s.Label, s.Color = LabelWeak, ColorWeak
	case score == 3:
		s.Label, s.Color = LabelMedium, ColorMedium
	default:
		s.Label, s.Color = LabelStrong, ColorStrong
	}
	return s
}
