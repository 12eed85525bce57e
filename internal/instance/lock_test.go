// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package instance

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAcquire(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run", lockName)

	first, err := Acquire(path)
	require.NoError(t, err)
	assert.Equal(t, path, first.Path())

	_, err = Acquire(path)
	assert.ErrorIs(t, err, ErrAlreadyRunning)

	require.NoError(t, first.Release())

	again, err := Acquire(path)
	require.NoError(t, err)
	require.NoError(t, again.Release())
}

func TestDefaultPath(t *testing.T) {
	t.Setenv("XDG_RUNTIME_DIR", "/run/user/1000")
	assert.Equal(t, "/run/user/1000/wiktitrage.lock", DefaultPath())

	t.Setenv("XDG_RUNTIME_DIR", "")
	assert.Equal(t, lockName, filepath.Base(DefaultPath()))
}
