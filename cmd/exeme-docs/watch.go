// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"fmt"

	xglog "github.com/exeme-project/exeme-lang/internal/log"
	"github.com/exeme-project/exeme-lang/internal/render"
	"github.com/exeme-project/exeme-lang/internal/site"
	"github.com/spf13/cobra"
)

func newWatchCommand(rt *runtimeState) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Rebuild the output directory whenever the overlay file changes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if rt.settings.Overlay == "" {
				return fmt.Errorf("watch requires --file")
			}
			return runWatch(cmd.Context(), rt)
		},
	}
	cmd.Flags().StringVar(&rt.settings.OutputDir, "dir", rt.settings.OutputDir, "output directory")
	cmd.Flags().DurationVar(&rt.settings.Debounce, "debounce", rt.settings.Debounce, "quiet period before a reload")
	return cmd
}

func runWatch(ctx context.Context, rt *runtimeState) error {
	logger := xglog.WithComponentFromContext(ctx, "watch")

	if err := rt.settings.PrepareOutputDir(); err != nil {
		return err
	}
	holder, err := site.NewHolder(rt.settings.Overlay, rt.settings.Debounce)
	if err != nil {
		return err
	}

	build := func(cfg site.SiteConfig) error {
		in := render.Input{Site: cfg, Starlight: site.LoadStarlight()}
		_, err := render.WriteAll(ctx, rt.settings.OutputDir, render.DefaultTargets(), in)
		return err
	}

	watchCtx, stopWatch := context.WithCancel(ctx)
	defer func() {
		stopWatch()
		<-holder.Done()
	}()

	// The watcher starts before the first build so edits made meanwhile are seen.
	updates := make(chan site.SiteConfig, 1)
	holder.RegisterListener(updates)
	if err := holder.StartWatcher(watchCtx); err != nil {
		return err
	}

	if err := build(holder.Get()); err != nil {
		return err
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		case cfg := <-updates:
			if err := build(cfg); err != nil {
				logger.Error().Err(err).Str(xglog.FieldEvent, "watch.build_failed").Msg("rebuild failed")
				continue
			}
			logger.Info().
				Str(xglog.FieldEvent, "watch.rebuilt").
				Str(xglog.FieldOutputDir, rt.settings.OutputDir).
				Msg("rebuilt documentation config")
		}
	}
}
