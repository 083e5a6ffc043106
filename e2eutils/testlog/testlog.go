// Package testlog routes geth-style structured logs into the unit test log.
package testlog

import (
	"log/slog"
	"os"
	"strings"
	"sync"

	"github.com/ethereum/go-ethereum/log"
)

var useColor = true

func init() {
	if os.Getenv("E2E_TESTLOG_DISABLE_COLOR") == "true" {
		useColor = false
	}
}

// Testing is the subset of testing.TB needed to capture log output.
type Testing interface {
	Logf(format string, args ...any)
	Helper()
}

// Logger returns a logger whose output lands in the test log of t, so
// narration from helpers shows up interleaved with test assertions.
func Logger(t Testing, level slog.Level) log.Logger {
	h := log.NewTerminalHandlerWithLevel(&tWriter{t: t}, level, useColor)
	return log.NewLogger(h)
}

type tWriter struct {
	mu sync.Mutex
	t  Testing
}

func (w *tWriter) Write(p []byte) (int, error) {
	w.t.Helper()
	w.mu.Lock()
	defer w.mu.Unlock()
	for _, line := range strings.Split(strings.TrimRight(string(p), "\n"), "\n") {
		w.t.Logf("%s", line)
	}
	return len(p), nil
}
