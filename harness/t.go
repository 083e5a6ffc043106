package harness

import (
	"context"
	"os"
	"strconv"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/log"
	"github.com/stretchr/testify/require"

	"github.com/nethswitchboard/catalyst-e2e/e2eutils/testlog"
)

// T wraps one scenario test with the shared System, a deadline-bounded
// context, a test-scoped logger and require assertions.
type T struct {
	t   *testing.T
	ctx context.Context
	log log.Logger
	sys *System
	req *require.Assertions
}

// NewT binds a scenario to the package's System. Scenario code conventionally
// names the *testing.T parameter gt and shadows t with the wrapper.
func NewT(gt *testing.T) *T {
	gt.Helper()
	sys := currentSystem()
	if sys == nil {
		panic(`Add a TestMain to the scenario package:

	func TestMain(m *testing.M) {
		harness.DoMain(m)
	}
`)
	}

	ctx := context.Background()
	var cancel context.CancelFunc
	if deadline, ok := gt.Deadline(); ok {
		// Leave room to report the failure before go test kills the binary.
		ctx, cancel = context.WithDeadline(ctx, deadline.Add(-3*time.Second))
	} else {
		ctx, cancel = context.WithCancel(ctx)
	}
	gt.Cleanup(cancel)

	return &T{
		t:   gt,
		ctx: ctx,
		log: testlog.Logger(gt, sessionLogLevel()),
		sys: sys,
		req: require.New(gt),
	}
}

func (t *T) Ctx() context.Context         { return t.ctx }
func (t *T) Logger() log.Logger           { return t.log }
func (t *T) Sys() *System                 { return t.sys }
func (t *T) Require() *require.Assertions { return t.req }

// expectPreconditionsMet reports whether skips must be treated as failures.
func expectPreconditionsMet() bool {
	v, _ := strconv.ParseBool(os.Getenv(ExpectPreconditionsMet))
	return v
}

// Skip marks the scenario as skipped, unless the environment promises the
// preconditions are met, in which case skipping is a failure.
func (t *T) Skip(args ...any) {
	t.t.Helper()
	if expectPreconditionsMet() {
		t.t.Fatal(append([]any{"unexpected test-skip:"}, args...)...)
		return
	}
	t.t.Skip(args...)
}
