package watch

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWatcher_Relevant(t *testing.T) {
	w := New(WithGeneratedFile("out_gen.go"))

	assert.True(t, w.Relevant("/p/types.go"))
	assert.False(t, w.Relevant("/p/types_test.go"))
	assert.False(t, w.Relevant("/p/out_gen.go"))
	assert.True(t, w.Relevant("/p/shape_gen.go"))
	assert.False(t, w.Relevant("/p/.types.go"))
	assert.False(t, w.Relevant("/p/shapegen.yaml"))
	assert.False(t, w.Relevant("/p/out_gen.unformatted.go.txt"))
}

func TestWatcher_RunDebouncesAndIgnores(t *testing.T) {
	dir := t.TempDir()

	var calls atomic.Int32

	w := New(WithDebounce(100 * time.Millisecond))

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)

	go func() {
		done <- w.Run(ctx, []string{dir}, func(context.Context) error {
			calls.Add(1)
			return errors.New("logged, not fatal")
		})
	}()

	// Give the watcher time to register the directory.
	time.Sleep(100 * time.Millisecond)

	for i := range 3 {
		require.NoError(t, os.WriteFile(filepath.Join(dir, "types.go"), []byte("package p // "+string(rune('a'+i))), 0o644))
	}

	require.Eventually(t, func() bool { return calls.Load() == 1 }, 2*time.Second, 10*time.Millisecond)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "shape_gen.go"), []byte("package p"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "types_test.go"), []byte("package p"), 0o644))
	time.Sleep(200 * time.Millisecond)
	assert.Equal(t, int32(1), calls.Load())

	require.NoError(t, os.WriteFile(filepath.Join(dir, "more.go"), []byte("package p"), 0o644))
	require.Eventually(t, func() bool { return calls.Load() == 2 }, 2*time.Second, 10*time.Millisecond)

	cancel()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("watcher did not stop")
	}
}

func TestWatcher_Errors(t *testing.T) {
	w := New()

	err := w.Run(context.Background(), nil, nil)
	require.ErrorIs(t, err, ErrNoDirs)

	err = w.Run(context.Background(), []string{filepath.Join(t.TempDir(), "missing")}, nil)
	require.Error(t, err)
}
