// passgen is the client of the password generator backend. Without a
// subcommand it starts the interactive TUI.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"slices"
	"strings"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/vaultpass/passgen-go/internal/client"
	"github.com/vaultpass/passgen-go/internal/i18n"
	"github.com/vaultpass/passgen-go/internal/tui"
	"github.com/vaultpass/passgen-go/internal/ui"
)

var version = "dev" // set by the linker

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		if !errors.Is(err, errReported) {
			fmt.Fprintln(os.Stderr, "Error:", err)
		}
		os.Exit(1)
	}
}

// errReported marks a failure the user has already been told about.
var errReported = errors.New("already reported")

// app carries what every subcommand needs once configuration is resolved.
type app struct {
	v       *viper.Viper
	logger  *slog.Logger
	closeFn func() error
}

func (a *app) client() *client.Client {
	return client.New(a.v.GetString("server"), client.WithTimeout(a.v.GetDuration("timeout")))
}

func (a *app) controllerOptions() []ui.Option {
	return []ui.Option{
		ui.WithLogger(a.logger),
		ui.WithCopyFeedback(a.v.GetDuration("copy_feedback")),
	}
}

// newRootCmd builds a fresh command tree with its own viper instance so tests
// can run commands in isolation.
func newRootCmd() *cobra.Command {
	a := &app{v: viper.New()}
	var cfgFile string

	cmd := &cobra.Command{
		Use:           "passgen",
		Short:         "Generate passwords and check their strength.",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := loadConfig(a.v, cfgFile); err != nil {
				return err
			}
			lang := a.v.GetString("language")
			if langs := i18n.Languages(); !slices.Contains(langs, lang) {
				return fmt.Errorf("unsupported language %q (available: %s)", lang, strings.Join(langs, ", "))
			}
			i18n.Init(lang)

			logger, closeFn, err := newLogger(a.v.GetString("log_file"))
			if err != nil {
				return err
			}
			a.logger, a.closeFn = logger, closeFn
			return nil
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			if a.closeFn != nil {
				return a.closeFn()
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return tui.Run(cmd.Context(), a.client(), ui.SystemClipboard{}, a.controllerOptions()...)
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringVar(&cfgFile, "config", "", "config file (default is $HOME/.passgen.yaml or ./.passgen.yaml)")
	flags.String("server", "http://localhost:8080", "backend base URL")
	flags.Duration("timeout", client.DefaultTimeout, "timeout of each backend request")
	flags.String("lang", "en", `interface language ("en", "ru")`)
	flags.Duration("copy-feedback", ui.DefaultCopyFeedback, "how long the copy confirmation is shown")
	flags.String("log-file", "", "write logs to this file instead of discarding them")

	a.v.BindPFlag("server", flags.Lookup("server"))
	a.v.BindPFlag("timeout", flags.Lookup("timeout"))
	a.v.BindPFlag("language", flags.Lookup("lang"))
	a.v.BindPFlag("copy_feedback", flags.Lookup("copy-feedback"))
	a.v.BindPFlag("log_file", flags.Lookup("log-file"))

	cmd.AddCommand(newGenerateCmd(a))
	cmd.AddCommand(newCheckCmd(a))

	return cmd
}

// loadConfig reads an optional config file and PASSGEN_* environment variables.
func loadConfig(v *viper.Viper, cfgFile string) error {
	v.SetEnvPrefix("PASSGEN")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(home)
		}
		v.AddConfigPath(".")
		v.SetConfigType("yaml")
		v.SetConfigName(".passgen")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile == "" && errors.As(err, &notFound) {
			return nil
		}
		return fmt.Errorf("reading config: %w", err)
	}
	return nil
}

// newLogger returns a logger writing to path, or discarding when path is empty.
// The TUI owns the terminal, so logs never go to stderr.
func newLogger(path string) (*slog.Logger, func() error, error) {
	if path == "" {
		return slog.New(slog.NewTextHandler(io.Discard, nil)), nil, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, nil, fmt.Errorf("opening log file: %w", err)
	}
	logger := slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: slog.LevelDebug}))
	logger.Info("passgen started", "version", version, "time", time.Now().Format(time.RFC3339))
	return logger, f.Close, nil
}
