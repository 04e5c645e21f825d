package statefile

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type demoState struct {
	Token string
	Count int
}

func TestLoadMissingFile(t *testing.T) {
	sf := New[demoState](filepath.Join(t.TempDir(), "state.gob"))

	obj, exists, err := sf.Load()
	require.NoError(t, err)
	assert.False(t, exists)
	assert.Equal(t, demoState{}, obj)
}

func TestSaveLoadRoundTrip(t *testing.T) {
	sf := New[demoState](filepath.Join(t.TempDir(), "state.gob"))

	require.NoError(t, sf.Save(demoState{Token: "abc123", Count: 7}))

	obj, exists, err := sf.Load()
	require.NoError(t, err)
	assert.True(t, exists)
	assert.Equal(t, demoState{Token: "abc123", Count: 7}, obj)
}

func TestSaveOverwrites(t *testing.T) {
	sf := New[demoState](filepath.Join(t.TempDir(), "state.gob"))

	require.NoError(t, sf.Save(demoState{Token: "first"}))
	require.NoError(t, sf.Save(demoState{Token: "second"}))

	obj, exists, err := sf.Load()
	require.NoError(t, err)
	assert.True(t, exists)
	assert.Equal(t, "second", obj.Token)
}

// an interrupted write must never leave a half-written state behind
func TestSaveLeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()
	sf := New[demoState](filepath.Join(dir, "state.gob"))

	require.NoError(t, sf.Save(demoState{Token: "abc"}))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "state.gob", entries[0].Name())
}

func TestLoadEmptyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.gob")
	require.NoError(t, os.WriteFile(path, nil, 0o644))

	sf := New[demoState](path)
	_, exists, err := sf.Load()
	require.NoError(t, err)
	assert.False(t, exists)
}
