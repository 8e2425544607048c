// SPDX-License-Identifier: MIT

package fsutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfineRelPath(t *testing.T) {
	root := t.TempDir()
	realRoot, err := filepath.EvalSymlinks(root)
	require.NoError(t, err)

	got, err := ConfineRelPath(root, "conf.py")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(realRoot, "conf.py"), got)

	got, err = ConfineRelPath(root, "site/astro.config.mjs")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(realRoot, "site", "astro.config.mjs"), got)

	got, err = ConfineRelPath(root, "a/../..name")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(realRoot, "..name"), got)
}

func TestConfineRelPath_Rejects(t *testing.T) {
	root := t.TempDir()

	for _, target := range []string{"../conf.py", "..", "a/../../conf.py"} {
		_, err := ConfineRelPath(root, target)
		assert.ErrorIs(t, err, ErrEscapesRoot, "target %q", target)
	}

	_, err := ConfineRelPath(root, "/etc/passwd")
	assert.Error(t, err)

	_, err = ConfineRelPath(root, `docs\conf.py`)
	assert.Error(t, err)

	_, err = ConfineRelPath(filepath.Join(root, "missing"), "conf.py")
	assert.Error(t, err)
}

func TestConfineRelPath_SymlinkEscape(t *testing.T) {
	root := t.TempDir()
	outside := t.TempDir()
	require.NoError(t, os.Symlink(outside, filepath.Join(root, "link")))

	_, err := ConfineRelPath(root, "link/conf.py")
	assert.ErrorIs(t, err, ErrEscapesRoot)
}
