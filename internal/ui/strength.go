package ui

import (
	"github.com/vaultpass/passgen-go/internal/crypto"
	"github.com/vaultpass/passgen-go/internal/i18n"
)

var strengthMessages = map[string]string{
	crypto.LabelWeak:   "strength_weak",
	crypto.LabelMedium: "strength_medium",
	crypto.LabelStrong: "strength_strong",
	crypto.HintLength:  "hint_length",
	crypto.HintCase:    "hint_case",
	crypto.HintDigits:  "hint_digits",
	crypto.HintSymbols: "hint_symbols",
}

// LocalizeStrength translates a strength label or feedback hint sent by the
// backend. Text the backend already localized, or that is unknown, is
// returned unchanged.
func LocalizeStrength(text string) string {
	if id, ok := strengthMessages[text]; ok {
		return i18n.T(id)
	}
	return text
}
