package watch

import (
	"context"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestRunFiresAfterDebounce(t *testing.T) {
	dir := t.TempDir()
	var fired atomic.Int32

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	done := make(chan error, 1)
	go func() {
		done <- Run(ctx, dir, func() { fired.Add(1) }, Options{
			Ext:      ".java",
			Debounce: 50 * time.Millisecond,
		})
	}()

	// Give the watcher time to register before writing.
	time.Sleep(100 * time.Millisecond)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "A.java"), []byte("class A {}\n"), 0o644))

	require.Eventually(t, func() bool { return fired.Load() >= 1 },
		5*time.Second, 20*time.Millisecond, "callback never fired")

	cancel()
	require.ErrorIs(t, <-done, context.Canceled)
}

func TestRunIgnoresOtherExtensions(t *testing.T) {
	dir := t.TempDir()
	var fired atomic.Int32

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	done := make(chan error, 1)
	go func() {
		done <- Run(ctx, dir, func() { fired.Add(1) }, Options{
			Ext:      ".java",
			Debounce: 50 * time.Millisecond,
		})
	}()

	time.Sleep(100 * time.Millisecond)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0o644))
	time.Sleep(300 * time.Millisecond)
	require.Zero(t, fired.Load())

	cancel()
	<-done
}

func TestRunMissingDir(t *testing.T) {
	err := Run(context.Background(), filepath.Join(t.TempDir(), "absent"), func() {}, Options{})
	require.Error(t, err)
}
