package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vaultpass/passgen-go/internal/i18n"
	"github.com/vaultpass/passgen-go/internal/ui"
)

var errEmptyPassword = errors.New("no password given")

func newCheckCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "check [password]",
		Short: "Check the strength of a password",
		Long: `Check the strength of a password. Without an argument the password is
read from the terminal without echo, or from the first line of stdin.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var password string
			if len(args) == 1 {
				password = args[0]
			} else {
				var err error
				password, err = readPassword(cmd.InOrStdin(), cmd.ErrOrStderr())
				if err != nil {
					return err
				}
			}
			if password == "" {
				return errEmptyPassword
			}

			resp, err := a.client().CheckStrength(cmd.Context(), password)
			if err != nil {
				a.logger.Warn("strength check failed", "error", err)
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s: %s\n", i18n.T("strength_label"), ui.LocalizeStrength(resp.Strength))
			fmt.Fprintln(out, i18n.Tf("score_line", map[string]any{"Score": resp.Score}))
			for _, hint := range resp.Feedback {
				fmt.Fprintf(out, "  - %s\n", ui.LocalizeStrength(hint))
			}
			return nil
		},
	}
}

// readPassword prompts without echo when in is a terminal and otherwise
// reads the first line of in.
func readPassword(in io.Reader, prompt io.Writer) (string, error) {
	if f, ok := in.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		fmt.Fprint(prompt, i18n.T("password_prompt"))
		b, err := term.ReadPassword(int(f.Fd()))
		fmt.Fprintln(prompt)
		if err != nil {
			return "", fmt.Errorf("reading password: %w", err)
		}
		return string(b), nil
	}

	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("reading password: %w", err)
	}
	return strings.TrimRight(line, "\r\n"), nil
}
