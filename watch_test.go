package main

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestWatchFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "Basic.shader")
	other := filepath.Join(dir, "other.shader")
	require.NoError(t, os.WriteFile(path, []byte("#shader vertex\n"), 0644))

	changed := make(chan struct{}, 16)
	w, err := WatchFile(path, func() {
		changed <- struct{}{}
	})
	require.NoError(t, err)
	defer w.Close()

	// unrelated files in the same directory are ignored
	require.NoError(t, os.WriteFile(other, []byte("x"), 0644))
	select {
	case <-changed:
		t.Fatal("change reported for another file")
	case <-time.After(3 * watchSettle):
	}

	// a burst of writes settles into one call
	for i := 0; i < 3; i++ {
		require.NoError(t, os.WriteFile(path, []byte("#shader fragment\n"), 0644))
	}
	select {
	case <-changed:
	case <-time.After(5 * time.Second):
		t.Fatal("no change reported")
	}
	select {
	case <-changed:
		t.Fatal("burst reported more than once")
	case <-time.After(3 * watchSettle):
	}
}

func TestWatchFileMissingDir(t *testing.T) {
	_, err := WatchFile(filepath.Join(t.TempDir(), "nope", "Basic.shader"), func() {})
	require.Error(t, err)
}
