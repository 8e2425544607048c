// SPDX-License-Identifier: MIT

package render

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/exeme-project/exeme-lang/internal/fsutil"
	xglog "github.com/exeme-project/exeme-lang/internal/log"
	"github.com/google/renameio/v2"
	"golang.org/x/sync/errgroup"
)

// Target is one generated file, named relative to the output directory.
type Target struct {
	Name   string
	Format Format
}

// DefaultTargets are the files a documentation checkout expects.
func DefaultTargets() []Target {
	return []Target{
		{Name: "conf.py", Format: FormatSphinx},
		{Name: "astro.config.mjs", Format: FormatStarlight},
	}
}

// WriteFile replaces path with data atomically: readers see the old file or
// the complete new one, never a partial write.
func WriteFile(ctx context.Context, path string, data []byte) error {
	logger := xglog.FromContext(ctx)

	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}

	// renameio handles: temp file creation, fsync, atomic rename, cleanup on error
	pendingFile, err := renameio.NewPendingFile(path, renameio.WithPermissions(0o644))
	if err != nil {
		return fmt.Errorf("create pending file: %w", err)
	}
	defer func() {
		if err := pendingFile.Cleanup(); err != nil {
			logger.Debug().Err(err).Str(xglog.FieldPath, path).Msg("cleanup pending file")
		}
	}()

	if _, err := pendingFile.Write(data); err != nil {
		return fmt.Errorf("write data: %w", err)
	}

	if err := pendingFile.CloseAtomicallyReplace(); err != nil {
		return fmt.Errorf("atomically replace %s: %w", path, err)
	}
	return nil
}

// WriteAll renders every target and writes it under dir. A target name that
// resolves outside dir is rejected. Targets are written concurrently and the
// first failure cancels the rest. It returns the resolved paths actually
// written, in target order.
func WriteAll(ctx context.Context, dir string, targets []Target, in Input) ([]string, error) {
	logger := xglog.WithComponentFromContext(ctx, "render")
	paths := make([]string, len(targets))

	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("create output dir: %w", err)
	}

	g, gctx := errgroup.WithContext(ctx)
	for i, t := range targets {
		g.Go(func() error {
			data, err := Bytes(t.Format, in)
			if err != nil {
				return fmt.Errorf("target %s: %w", t.Name, err)
			}
			if err := gctx.Err(); err != nil {
				return err
			}

			path, err := fsutil.ConfineRelPath(dir, t.Name)
			if err != nil {
				return fmt.Errorf("target %s: %w", t.Name, err)
			}
			if err := WriteFile(gctx, path, data); err != nil {
				return fmt.Errorf("target %s: %w", t.Name, err)
			}
			paths[i] = path

			logger.Info().
				Str(xglog.FieldEvent, "render.written").
				Str(xglog.FieldTarget, t.Name).
				Str(xglog.FieldFormat, string(t.Format)).
				Str(xglog.FieldPath, path).
				Int(xglog.FieldBytes, len(data)).
				Msg("wrote generated file")
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return paths, nil
}
