// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/exeme-project/exeme-lang/internal/config"
	xglog "github.com/exeme-project/exeme-lang/internal/log"
	"github.com/exeme-project/exeme-lang/internal/render"
	"github.com/exeme-project/exeme-lang/internal/site"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

// Options wires the command tree to its environment.
type Options struct {
	Stdout io.Writer
	Stderr io.Writer
}

type runtimeState struct {
	settings config.Settings
	stdout   io.Writer
	stderr   io.Writer
}

// NewRootCommand builds the command tree. Settings come from EXEME_DOCS_*
// environment variables; persistent flags override them.
func NewRootCommand(opts Options) *cobra.Command {
	rt := &runtimeState{
		settings: config.FromEnv(),
		stdout:   opts.Stdout,
		stderr:   opts.Stderr,
	}
	if rt.stdout == nil {
		rt.stdout = os.Stdout
	}
	if rt.stderr == nil {
		rt.stderr = os.Stderr
	}

	root := &cobra.Command{
		Use:           "exeme-docs",
		Short:         "Render the Exeme documentation site configuration",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if err := rt.settings.Validate(); err != nil {
				return err
			}
			rt.configureLogging()
			// One ID per invocation ties together the log lines of a build.
			cmd.SetContext(xglog.ContextWithBuildID(cmd.Context(), uuid.NewString()))
			return nil
		},
	}
	root.SetOut(rt.stdout)
	root.SetErr(rt.stderr)

	flags := root.PersistentFlags()
	flags.StringVar(&rt.settings.LogLevel, "log-level", rt.settings.LogLevel, "log level (debug, info, warn, error)")
	flags.BoolVar(&rt.settings.LogJSON, "log-json", rt.settings.LogJSON, "emit JSON log lines instead of console output")
	flags.StringVarP(&rt.settings.Overlay, "file", "f", rt.settings.Overlay, "YAML site record to use instead of the built-in one")

	root.AddCommand(
		newShowCommand(rt),
		newRenderCommand(rt),
		newBuildCommand(rt),
		newValidateCommand(rt),
		newDiffCommand(rt),
		newWatchCommand(rt),
		newVersionCommand(rt),
	)

	root.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return fmt.Errorf("%w (see --help)", err)
	})
	return root
}

func (rt *runtimeState) configureLogging() {
	var out io.Writer = zerolog.SyncWriter(rt.stderr)
	if !rt.settings.LogJSON {
		out = zerolog.ConsoleWriter{Out: out, NoColor: true}
	}
	xglog.Reconfigure(xglog.Config{Level: rt.settings.LogLevel, Output: out})
}

// siteRecord returns the overlay record when --file is set, else the built-in one.
func (rt *runtimeState) siteRecord(ctx context.Context) (site.SiteConfig, error) {
	cfg := site.Load()
	if rt.settings.Overlay != "" {
		var err error
		cfg, err = site.LoadFile(rt.settings.Overlay)
		if err != nil {
			return site.SiteConfig{}, fmt.Errorf("load %s: %w", rt.settings.Overlay, err)
		}
	}
	site.LogLoaded(xglog.WithComponentFromContext(ctx, "site"), rt.settings.Overlay, cfg)
	return cfg, nil
}

func (rt *runtimeState) input(ctx context.Context) (render.Input, error) {
	cfg, err := rt.siteRecord(ctx)
	if err != nil {
		return render.Input{}, err
	}
	if err := site.Validate(cfg); err != nil {
		return render.Input{}, err
	}
	return render.Input{Site: cfg, Starlight: site.LoadStarlight()}, nil
}
