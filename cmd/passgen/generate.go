package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/vaultpass/passgen-go/internal/crypto"
	"github.com/vaultpass/passgen-go/internal/i18n"
	"github.com/vaultpass/passgen-go/internal/ui"
)

func newGenerateCmd(a *app) *cobra.Command {
	var (
		preset    string
		custom    bool
		length    int
		uppercase bool
		digits    bool
		symbols   bool
		copyOut   bool
	)

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a password from a preset or custom settings",
		Example: `  passgen generate --preset strong
  passgen generate --custom --length 24 --symbols=false`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			stderr := cmd.ErrOrStderr()
			opts := append(a.controllerOptions(), ui.WithNotifier(ui.NotifierFunc(func(msg string) {
				fmt.Fprintln(stderr, msg)
			})))
			ctrl := ui.NewController(a.client(), ui.SystemClipboard{}, opts...)

			var err error
			if custom {
				ctrl.SetSlider(length)
				ctrl.SetUppercase(uppercase)
				ctrl.SetDigits(digits)
				ctrl.SetSymbols(symbols)
				err = ctrl.GenerateCustom(cmd.Context())
			} else {
				err = ctrl.GeneratePreset(cmd.Context(), preset)
			}
			if err != nil {
				// The notifier has already printed the reason.
				return errReported
			}

			printResult(cmd.OutOrStdout(), ctrl.Snapshot())

			if copyOut {
				return ctrl.CopyCurrentPassword()
			}
			return nil
		},
	}

	f := cmd.Flags()
	f.StringVar(&preset, "preset", crypto.PresetMedium, `preset name ("easy", "medium", "strong")`)
	f.BoolVar(&custom, "custom", false, "use --length and the character class flags instead of a preset")
	f.IntVar(&length, "length", ui.DefaultLength, "password length, clamped to 4-32")
	f.BoolVar(&uppercase, "uppercase", true, "include uppercase letters")
	f.BoolVar(&digits, "digits", true, "include digits")
	f.BoolVar(&symbols, "symbols", true, "include symbols")
	f.BoolVar(&copyOut, "copy", false, "copy the password to the clipboard")
	cmd.MarkFlagsMutuallyExclusive("preset", "custom")

	return cmd
}

func printResult(w io.Writer, s ui.State) {
	fmt.Fprintln(w, s.DisplayText())
	if label := s.StrengthLabel(); label != "" {
		fmt.Fprintf(w, "%s: %s (%d%%)\n", i18n.T("strength_label"), label, s.BarWidth())
	}
}
