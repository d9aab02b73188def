package shared

import (
	"context"
	"os"
	"syscall"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeExit records exit codes instead of terminating the test binary.
func fakeExit(t *testing.T) <-chan int {
	t.Helper()
	codes := make(chan int, 1)
	exit = func(code int) { codes <- code }
	t.Cleanup(func() { exit = os.Exit })
	return codes
}

func waitDone(ctx context.Context, t *testing.T) {
	t.Helper()
	select {
	case <-ctx.Done():
	case <-time.After(time.Second):
		t.Fatal("context was not cancelled")
	}
}

func TestWatchSignalsCancelsThenExits(t *testing.T) {
	codes := fakeExit(t)
	ctx, cancel := context.WithCancel(context.Background())
	sigChan := make(chan os.Signal, 2)
	stop := watchSignals(sigChan, cancel, zerolog.Nop())
	defer stop()

	sigChan <- os.Interrupt
	waitDone(ctx, t)

	sigChan <- syscall.SIGTERM
	select {
	case code := <-codes:
		assert.Equal(t, 130, code)
	case <-time.After(time.Second):
		t.Fatal("second signal did not exit")
	}
}

func TestWatchSignalsStopReleasesWatcher(t *testing.T) {
	codes := fakeExit(t)
	ctx, cancel := context.WithCancel(context.Background())
	sigChan := make(chan os.Signal, 2)
	stop := watchSignals(sigChan, cancel, zerolog.Nop())

	sigChan <- os.Interrupt
	waitDone(ctx, t)

	stop()
	stop()
	sigChan <- syscall.SIGTERM

	select {
	case code := <-codes:
		t.Fatalf("exit(%d) called after stop", code)
	case <-time.After(50 * time.Millisecond):
	}
}

func TestSignalContextCancelFunc(t *testing.T) {
	ctx, cancel := SignalContext(context.Background(), zerolog.Nop())
	require.NoError(t, ctx.Err())

	cancel()
	waitDone(ctx, t)
	assert.ErrorIs(t, ctx.Err(), context.Canceled)
}
