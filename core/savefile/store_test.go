package savefile_test

import (
	"os"
	"path/filepath"
	"testing"

	"h3sed/core/savefile"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOSStore(t *testing.T) {
	dir := t.TempDir()
	name := filepath.Join(dir, "saves", "game.GM1")
	store := savefile.OSStore{}

	w, err := store.Create(name)
	require.NoError(t, err)
	_, err = w.Write([]byte("contents"))
	require.NoError(t, err)
	require.NoError(t, w.Close())

	info, err := store.Stat(name)
	require.NoError(t, err)
	assert.Equal(t, int64(8), info.Size())

	backup, err := savefile.Backup(store, name)
	require.NoError(t, err)
	assert.Equal(t, name+savefile.BackupSuffix, backup)

	data, err := os.ReadFile(backup)
	require.NoError(t, err)
	assert.Equal(t, "contents", string(data))

	_, err = savefile.Backup(store, filepath.Join(dir, "missing.GM1"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestHasExtension(t *testing.T) {
	exts := []string{".GM1", ".CGM"}

	assert.True(t, savefile.HasExtension("game.GM1", exts))
	assert.True(t, savefile.HasExtension("dir/game.gm1", exts))
	assert.True(t, savefile.HasExtension("campaign.cgm", exts))
	assert.False(t, savefile.HasExtension("game.GM2", exts))
	assert.False(t, savefile.HasExtension("GM1", exts))
	assert.False(t, savefile.HasExtension("game.GM1", nil))
}
