// SPDX-License-Identifier: MIT

package main

import (
	"fmt"

	"github.com/exeme-project/exeme-lang/internal/render"
	"github.com/exeme-project/exeme-lang/internal/site"
	"github.com/spf13/cobra"
)

func newShowCommand(rt *runtimeState) *cobra.Command {
	format := string(render.FormatYAML)
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Print the site record as YAML or JSON",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			f, err := render.ParseFormat(format)
			if err != nil {
				return err
			}
			if f != render.FormatYAML && f != render.FormatJSON {
				return fmt.Errorf("show supports yaml or json, got %q", format)
			}
			cfg, err := rt.siteRecord(cmd.Context())
			if err != nil {
				return err
			}
			return render.Render(cmd.OutOrStdout(), f, render.Input{Site: cfg})
		},
	}
	cmd.Flags().StringVarP(&format, "format", "o", format, "output format (yaml, json)")
	return cmd
}

func newRenderCommand(rt *runtimeState) *cobra.Command {
	var out string
	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render one configuration file for a documentation tool",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			f, err := render.ParseFormat(rt.settings.Format)
			if err != nil {
				return err
			}
			in, err := rt.input(cmd.Context())
			if err != nil {
				return err
			}
			if out == "" {
				return render.Render(cmd.OutOrStdout(), f, in)
			}
			data, err := render.Bytes(f, in)
			if err != nil {
				return err
			}
			if err := render.WriteFile(cmd.Context(), out, data); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", out)
			return nil
		},
	}
	cmd.Flags().StringVar(&rt.settings.Format, "format", rt.settings.Format, "output format (sphinx, starlight, json, yaml)")
	cmd.Flags().StringVar(&out, "out", "", "write to this file instead of stdout")
	return cmd
}

func newBuildCommand(rt *runtimeState) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "build",
		Short: "Write conf.py and astro.config.mjs into the output directory",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			in, err := rt.input(cmd.Context())
			if err != nil {
				return err
			}
			if err := rt.settings.PrepareOutputDir(); err != nil {
				return err
			}
			paths, err := render.WriteAll(cmd.Context(), rt.settings.OutputDir, render.DefaultTargets(), in)
			if err != nil {
				return err
			}
			for _, p := range paths {
				fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", p)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&rt.settings.OutputDir, "dir", rt.settings.OutputDir, "output directory")
	return cmd
}

func newValidateCommand(rt *runtimeState) *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Validate the built-in or overlay site record",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := rt.siteRecord(cmd.Context())
			if err != nil {
				return err
			}
			if err := site.Validate(cfg); err != nil {
				return err
			}
			name := rt.settings.Overlay
			if name == "" {
				name = "built-in site config"
			}
			fmt.Fprintf(cmd.OutOrStdout(), "✓ %s is valid\n", name)
			return nil
		},
	}
}

func newDiffCommand(rt *runtimeState) *cobra.Command {
	return &cobra.Command{
		Use:   "diff",
		Short: "Show how an overlay differs from the built-in site record",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if rt.settings.Overlay == "" {
				return fmt.Errorf("diff requires --file")
			}
			cfg, err := rt.siteRecord(cmd.Context())
			if err != nil {
				return err
			}
			d := site.Diff(site.Load(), cfg)
			if d == "" {
				fmt.Fprintln(cmd.OutOrStdout(), "no differences")
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "(-built-in +%s):\n%s", rt.settings.Overlay, d)
			return nil
		},
	}
}
