// SPDX-License-Identifier: MIT

package main

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/exeme-project/exeme-lang/internal/config"
	"github.com/exeme-project/exeme-lang/internal/render"
	"github.com/exeme-project/exeme-lang/internal/site"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"gopkg.in/yaml.v3"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		config.EnvOutputDir, config.EnvLogLevel, config.EnvLogJSON,
		config.EnvFormat, config.EnvOverlay, config.EnvDebounce,
	} {
		t.Setenv(key, "")
	}
}

func run(t *testing.T, ctx context.Context, args ...string) (string, error) {
	t.Helper()
	stdout, _, err := runWithLogs(t, ctx, args...)
	return stdout, err
}

func runWithLogs(t *testing.T, ctx context.Context, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	root := NewRootCommand(Options{Stdout: &stdout, Stderr: &stderr})
	root.SetArgs(args)
	err := root.ExecuteContext(ctx)
	return stdout.String(), stderr.String(), err
}

func logEntries(t *testing.T, stderr string) []map[string]any {
	t.Helper()
	var out []map[string]any
	for _, line := range strings.Split(strings.TrimSpace(stderr), "\n") {
		if line == "" {
			continue
		}
		var entry map[string]any
		require.NoError(t, json.Unmarshal([]byte(line), &entry), "line %q", line)
		out = append(out, entry)
	}
	return out
}

func writeOverlay(t *testing.T, mutate func(*site.SiteConfig)) string {
	t.Helper()
	cfg := site.Load()
	if mutate != nil {
		mutate(&cfg)
	}
	data, err := yaml.Marshal(cfg)
	require.NoError(t, err)
	path := filepath.Join(t.TempDir(), "site.yaml")
	require.NoError(t, os.WriteFile(path, data, 0o600))
	return path
}

func TestShow_JSON(t *testing.T) {
	clearEnv(t)
	out, err := run(t, context.Background(), "show", "--format", "json")
	require.NoError(t, err)

	var got site.SiteConfig
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.True(t, site.Equal(site.Load(), got))
}

func TestShow_RejectsTemplateFormats(t *testing.T) {
	clearEnv(t)
	_, err := run(t, context.Background(), "show", "--format", "sphinx")
	assert.Error(t, err)
}

func TestRender_Stdout(t *testing.T) {
	clearEnv(t)
	out, err := run(t, context.Background(), "render", "--format", "sphinx")
	require.NoError(t, err)

	want, err := render.Bytes(render.FormatSphinx, render.DefaultInput())
	require.NoError(t, err)
	assert.Equal(t, string(want), out)
}

func TestRender_FormatFromEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv(config.EnvFormat, "starlight")

	out, err := run(t, context.Background(), "render")
	require.NoError(t, err)
	assert.Contains(t, out, "export default defineConfig({")
}

func TestRender_ToFile(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "conf.py")

	_, err := run(t, context.Background(), "render", "--out", path)
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `html_theme = "furo"`)
}

func TestRender_InvalidOverlayFails(t *testing.T) {
	clearEnv(t)
	path := writeOverlay(t, func(c *site.SiteConfig) { c.Project = "" })

	_, err := run(t, context.Background(), "render", "--file", path)
	assert.Error(t, err)
}

func TestBuild_WritesTargets(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()

	realDir, err := filepath.EvalSymlinks(dir)
	require.NoError(t, err)

	out, err := run(t, context.Background(), "build", "--dir", dir)
	require.NoError(t, err)
	assert.Contains(t, out, filepath.Join(realDir, "conf.py"))
	assert.FileExists(t, filepath.Join(dir, "conf.py"))
	assert.FileExists(t, filepath.Join(dir, "astro.config.mjs"))
}

func TestValidate(t *testing.T) {
	clearEnv(t)
	out, err := run(t, context.Background(), "validate")
	require.NoError(t, err)
	assert.Contains(t, out, "built-in site config is valid")

	bad := writeOverlay(t, func(c *site.SiteConfig) { c.Extensions = append(c.Extensions, "myst_parser") })
	_, err = run(t, context.Background(), "validate", "--file", bad)
	assert.Error(t, err)
}

func TestDiff(t *testing.T) {
	clearEnv(t)

	_, err := run(t, context.Background(), "diff")
	assert.Error(t, err, "diff without --file")

	same := writeOverlay(t, nil)
	out, err := run(t, context.Background(), "diff", "--file", same)
	require.NoError(t, err)
	assert.Equal(t, "no differences\n", out)

	changed := writeOverlay(t, func(c *site.SiteConfig) { c.ThemeOptions.SourceBranch = "dev" })
	out, err = run(t, context.Background(), "diff", "--file", changed)
	require.NoError(t, err)
	assert.Contains(t, out, "SourceBranch")
	assert.Contains(t, out, `"dev"`)
}

func TestShow_EmptyOverlayFails(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "site.yaml")
	require.NoError(t, os.WriteFile(path, []byte("~\n"), 0o600))

	out, err := run(t, context.Background(), "show", "--file", path)
	assert.ErrorIs(t, err, site.ErrEmptyFile)
	assert.Empty(t, out)

	_, err = run(t, context.Background(), "diff", "--file", path)
	assert.ErrorIs(t, err, site.ErrEmptyFile)
}

func TestBuild_OutputDirIsFile(t *testing.T) {
	clearEnv(t)
	file := filepath.Join(t.TempDir(), "docs")
	require.NoError(t, os.WriteFile(file, []byte("x"), 0o600))

	_, err := run(t, context.Background(), "build", "--dir", file)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "OutputDir")
}

func TestLogs_SiteLoadedCarriesBuildID(t *testing.T) {
	clearEnv(t)
	_, stderr, err := runWithLogs(t, context.Background(), "validate", "--log-json")
	require.NoError(t, err)

	var loaded map[string]any
	for _, e := range logEntries(t, stderr) {
		if e["event"] == "site.loaded" {
			loaded = e
		}
	}
	require.NotNil(t, loaded, "no site.loaded event in %s", stderr)
	assert.NotEmpty(t, loaded["build_id"])
	assert.Equal(t, "Exeme", loaded["project"])
	assert.Equal(t, "furo", loaded["theme"])
	assert.Equal(t, "built-in", loaded["source"])
	assert.Equal(t, "Important: Exeme is in the alpha stages of development, and this documentation is not finished!", loaded["announcement"])
}

func TestLogs_BuildIDDiffersPerRun(t *testing.T) {
	clearEnv(t)
	ids := make(map[string]bool)
	for range 2 {
		_, stderr, err := runWithLogs(t, context.Background(), "show", "--log-json")
		require.NoError(t, err)
		for _, e := range logEntries(t, stderr) {
			if id, ok := e["build_id"].(string); ok {
				ids[id] = true
			}
		}
	}
	assert.Len(t, ids, 2)
}

func TestWatch_FailedFirstBuildStopsWatcher(t *testing.T) {
	defer goleak.VerifyNone(t, goleak.IgnoreCurrent())
	clearEnv(t)
	overlay := writeOverlay(t, nil)

	// A directory named like a target makes the first write fail.
	dir := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(dir, "conf.py"), 0o750))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "conf.py", "keep"), []byte("x"), 0o600))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	_, err := run(t, ctx, "watch", "--file", overlay, "--dir", dir, "--debounce", "20ms")
	require.Error(t, err)
}

func TestInvalidSettingsFail(t *testing.T) {
	clearEnv(t)
	_, err := run(t, context.Background(), "validate", "--log-level", "chatty")
	assert.Error(t, err)
}

func TestVersion(t *testing.T) {
	clearEnv(t)
	out, err := run(t, context.Background(), "version")
	require.NoError(t, err)
	assert.Contains(t, out, "commit:")
}

func TestWatch_BuildsAndStops(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	overlay := writeOverlay(t, nil)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		_, err := run(t, ctx, "watch", "--file", overlay, "--dir", dir, "--debounce", "20ms")
		done <- err
	}()

	conf := filepath.Join(dir, "conf.py")
	require.Eventually(t, func() bool {
		_, err := os.Stat(conf)
		return err == nil
	}, 5*time.Second, 20*time.Millisecond)

	require.NoError(t, os.WriteFile(overlay, mustYAML(t, func(c *site.SiteConfig) { c.HTMLTitle = "Exeme Docs" }), 0o600))
	require.Eventually(t, func() bool {
		data, err := os.ReadFile(conf)
		return err == nil && bytes.Contains(data, []byte(`html_title = "Exeme Docs"`))
	}, 5*time.Second, 20*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("watch did not stop")
	}
}

func mustYAML(t *testing.T, mutate func(*site.SiteConfig)) []byte {
	t.Helper()
	cfg := site.Load()
	mutate(&cfg)
	data, err := yaml.Marshal(cfg)
	require.NoError(t, err)
	return data
}
