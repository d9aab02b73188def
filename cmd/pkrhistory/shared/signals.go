package shared

import (
	"context"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/rs/zerolog"
)

// exit is replaced in tests.
var exit = os.Exit

// SignalContext returns a context cancelled on the first interrupt or
// termination signal. A second signal exits immediately. The returned cancel
// func stops signal handling and releases the watching goroutine.
func SignalContext(parent context.Context, logger zerolog.Logger) (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancel(parent)
	sigChan := make(chan os.Signal, 2)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	return ctx, watchSignals(sigChan, cancel, logger)
}

// watchSignals cancels on the first value from sigChan and exits on the
// second. It stops once the returned func is called.
func watchSignals(sigChan chan os.Signal, cancel context.CancelFunc, logger zerolog.Logger) context.CancelFunc {
	done := make(chan struct{})

	go func() {
		select {
		case sig := <-sigChan:
			logger.Info().Str("signal", sig.String()).Msg("Received signal, finishing in-flight hands")
			cancel()
		case <-done:
			return
		}

		select {
		case sig := <-sigChan:
			select {
			case <-done:
				return
			default:
			}
			logger.Warn().Str("signal", sig.String()).Msg("Second signal, exiting")
			exit(130)
		case <-done:
		}
	}()

	var once sync.Once
	return func() {
		once.Do(func() {
			signal.Stop(sigChan)
			close(done)
		})
		cancel()
	}
}
