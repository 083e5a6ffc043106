// Package harness boots the shared devnet System scenario packages run
// against, and provides the orchestration helpers scenarios are written in.
package harness

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"runtime/debug"
	"strings"
	"sync"

	"github.com/ethereum/go-ethereum/log"
	"github.com/mattn/go-isatty"
)

// ExpectPreconditionsMet names the environment variable that turns a
// missing devnet from a skip into a failure. CI sets it; a laptop without
// the devnet running silently skips the scenario packages.
const ExpectPreconditionsMet = "E2E_EXPECT_PRECONDITIONS_MET"

// TestingM is the subset of *testing.M that DoMain needs.
type TestingM interface {
	Run() int
}

var lockedSystem struct {
	mu  sync.RWMutex
	sys *System
}

func setSystem(s *System) {
	lockedSystem.mu.Lock()
	defer lockedSystem.mu.Unlock()
	lockedSystem.sys = s
}

func currentSystem() *System {
	lockedSystem.mu.RLock()
	defer lockedSystem.mu.RUnlock()
	return lockedSystem.sys
}

// DoMain dials the devnet, enforces the session preconditions, runs the
// package's tests and exits with the suite's code. Every scenario package
// calls it from TestMain. This does not return.
func DoMain(m TestingM) {
	// Nested so deferred cleanup runs before os.Exit.
	code := func() (errCode int) {
		defer func() {
			if x := recover(); x != nil {
				debug.PrintStack()
				_, _ = fmt.Fprintf(os.Stderr, "Panic during test Main: %v\n", x)
				errCode = 1
			}
		}()

		logger := newSessionLogger()
		ctx := context.Background()

		sys, err := dialSystem(ctx, logger)
		if err == nil {
			if err = sys.probe(ctx); err != nil {
				sys.Close()
			}
		}
		if err != nil {
			if expectPreconditionsMet() {
				logger.Error("devnet required but not available", "err", err)
				return 1
			}
			logger.Warn("devnet not available, skipping scenario package", "err", err)
			return 0
		}
		defer sys.Close()

		if err := sys.waitPreconditions(ctx); err != nil {
			logger.Error("session preconditions failed", "err", err)
			return 1
		}

		setSystem(sys)
		defer setSystem(nil)
		return m.Run()
	}()
	_, _ = fmt.Fprintf(os.Stderr, "\nExiting, code: %d\n", code)
	os.Exit(code)
}

func newSessionLogger() log.Logger {
	color := isatty.IsTerminal(os.Stdout.Fd())
	return log.NewLogger(log.NewTerminalHandlerWithLevel(os.Stdout, sessionLogLevel(), color))
}

func sessionLogLevel() slog.Level {
	switch strings.ToLower(os.Getenv("E2E_LOG_LEVEL")) {
	case "trace":
		return log.LevelTrace
	case "debug":
		return log.LevelDebug
	case "warn":
		return log.LevelWarn
	case "error":
		return log.LevelError
	default:
		return log.LevelInfo
	}
}
