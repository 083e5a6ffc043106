package harness

import (
	"context"
	"log/slog"
	"math/big"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/log"
	"github.com/stretchr/testify/require"

	"github.com/nethswitchboard/catalyst-e2e/config"
	"github.com/nethswitchboard/catalyst-e2e/protocol"
)

var (
	operatorOne = common.HexToAddress("0x1111111111111111111111111111111111111111")
	operatorTwo = common.HexToAddress("0x2222222222222222222222222222222222222222")
	fiSender    = common.HexToAddress("0x3333333333333333333333333333333333333333")
)

type fakeOperators struct {
	current []common.Address
	next    []common.Address
	calls   int
}

func (f *fakeOperators) CurrentOperator(context.Context) (common.Address, error) {
	i := f.calls
	f.calls++
	if i >= len(f.current) {
		i = len(f.current) - 1
	}
	return f.current[i], nil
}

func (f *fakeOperators) NextOperator(context.Context) (common.Address, error) {
	i := f.calls - 1
	if i < 0 {
		i = 0
	}
	if i >= len(f.next) {
		i = len(f.next) - 1
	}
	return f.next[i], nil
}

type fakeClock struct {
	waitSlotTargets []uint64
}

func (f *fakeClock) SlotInEpoch(context.Context) (uint64, error) { return 3, nil }

func (f *fakeClock) SlotDuration(context.Context) (time.Duration, error) {
	return 12 * time.Second, nil
}
func (f *fakeClock) WaitSlot(_ context.Context, target uint64) error {
	f.waitSlotTargets = append(f.waitSlotTargets, target)
	return nil
}
func (f *fakeClock) WaitNextSlot(context.Context) error           { return nil }
func (f *fakeClock) WaitHandover(context.Context) error           { return nil }
func (f *fakeClock) WaitNextL1SlotBoundary(context.Context) error { return nil }

type fakeInbox struct {
	storeEmpty bool
}

func (f *fakeInbox) LastBatchID(context.Context) (uint64, error) { return 0, nil }
func (f *fakeInbox) LastBlockID(context.Context) (uint64, error) { return 0, nil }
func (f *fakeInbox) LastProposal(context.Context, uint64) (*protocol.Proposal, error) {
	return nil, nil
}
func (f *fakeInbox) WaitProposal(context.Context, uint64) (*protocol.Proposal, error) {
	return nil, nil
}
func (f *fakeInbox) StoreHead(context.Context) (uint64, error) { return 0, nil }
func (f *fakeInbox) StoreEmpty(context.Context) (bool, error)  { return f.storeEmpty, nil }
func (f *fakeInbox) WaitStoreEmpty(context.Context) error      { return nil }

type fakeNodes struct {
	ensured []int
}

func (f *fakeNodes) Stop(context.Context, int) error    { return nil }
func (f *fakeNodes) Start(context.Context, int) error   { return nil }
func (f *fakeNodes) Restart(context.Context, int) error { return nil }
func (f *fakeNodes) IsRunning(context.Context, int) (bool, error) {
	return true, nil
}
func (f *fakeNodes) EnsureRunning(_ context.Context, node int) error {
	f.ensured = append(f.ensured, node)
	return nil
}

type spamBlocksCall struct {
	n           int
	txsPerBlock uint64
}

type fakeSpammer struct {
	spamBlocks []spamBlocksCall
}

func (f *fakeSpammer) Sender() common.Address                { return operatorOne }
func (f *fakeSpammer) Nonce(context.Context) (uint64, error) { return 0, nil }
func (f *fakeSpammer) Send(context.Context, uint64, *big.Int) (common.Hash, error) {
	return common.Hash{}, nil
}
func (f *fakeSpammer) Transfer(context.Context, *big.Int) (common.Hash, error) {
	return common.Hash{}, nil
}
func (f *fakeSpammer) SpamTxs(context.Context, int) (common.Hash, error) {
	return common.Hash{}, nil
}
func (f *fakeSpammer) SpamBlocks(_ context.Context, n int, txsPerBlock uint64) (common.Hash, error) {
	f.spamBlocks = append(f.spamBlocks, spamBlocksCall{n: n, txsPerBlock: txsPerBlock})
	return common.Hash{}, nil
}
func (f *fakeSpammer) SpamTxsWaitLast(context.Context, int, time.Duration) (common.Hash, error) {
	return common.Hash{}, nil
}
func (f *fakeSpammer) SendBurst(context.Context, int) error { return nil }
func (f *fakeSpammer) WaitIncluded(context.Context, common.Hash) (bool, error) {
	return true, nil
}
func (f *fakeSpammer) WaitNewBlock(context.Context, uint64) (bool, error) {
	return true, nil
}
func (f *fakeSpammer) BlockNumber(context.Context) (uint64, error) { return 0, nil }

type fakeToolbox struct{}

func (fakeToolbox) SendForcedInclusion(context.Context, uint64) (common.Hash, error) {
	return common.HexToHash("0xabc"), nil
}

func fakeSystem() *System {
	return &System{
		Cfg: &config.Config{
			L2PrefundedAddr:       operatorOne,
			L2PrefundedAddr2:      operatorTwo,
			ForcedInclusionSender: fiSender,
			PreconfMinTxs:         1,
			MaxBlocksPerBatch:     10,
		},
		Log:       log.NewLogger(log.DiscardHandler()),
		Clock:     &fakeClock{},
		Inbox:     &fakeInbox{storeEmpty: true},
		Operators: &fakeOperators{current: []common.Address{operatorOne}, next: []common.Address{operatorOne}},
		Nodes:     &fakeNodes{},
		Toolbox:   fakeToolbox{},
		Node1:     &fakeSpammer{},
		Node2:     &fakeSpammer{},
	}
}

func testT(gt *testing.T, sys *System) *T {
	return &T{
		t:   gt,
		ctx: context.Background(),
		log: log.NewLogger(log.DiscardHandler()),
		sys: sys,
		req: require.New(gt),
	}
}

func TestNodeSelectsDriver(t *testing.T) {
	sys := fakeSystem()
	tt := testT(t, sys)
	require.Same(t, sys.Node1, tt.Node(1))
	require.Same(t, sys.Node2, tt.Node(2))
}

func TestOperatorNumber(t *testing.T) {
	sys := fakeSystem()
	tt := testT(t, sys)

	sys.Operators = &fakeOperators{current: []common.Address{operatorOne}, next: []common.Address{operatorOne}}
	require.Equal(t, 1, tt.OperatorNumber())

	sys.Operators = &fakeOperators{current: []common.Address{operatorTwo}, next: []common.Address{operatorTwo}}
	require.Equal(t, 2, tt.OperatorNumber())
}

func TestWaitOperatorSwitchAtSlot(t *testing.T) {
	sys := fakeSystem()
	clock := &fakeClock{}
	sys.Clock = clock
	// Same operator for two epochs, rotation pending on the third.
	sys.Operators = &fakeOperators{
		current: []common.Address{operatorOne, operatorOne, operatorOne},
		next:    []common.Address{operatorOne, operatorOne, operatorTwo},
	}
	tt := testT(t, sys)

	tt.WaitOperatorSwitchAtSlot(5)

	require.Equal(t, []uint64{5, 5, 5}, clock.waitSlotTargets)
}

func TestEnsureNodesRunningOnExit(t *testing.T) {
	sys := fakeSystem()
	nodes := &fakeNodes{}
	sys.Nodes = nodes

	t.Run("scenario", func(st *testing.T) {
		tt := testT(st, sys)
		tt.EnsureNodesRunningOnExit()
	})

	require.Equal(t, []int{1, 2}, nodes.ensured)
}

func TestDrainStoreOnExitWhenDirty(t *testing.T) {
	sys := fakeSystem()
	sys.Inbox = &fakeInbox{storeEmpty: false}
	spammer := &fakeSpammer{}
	sys.Node1 = spammer

	t.Run("scenario", func(st *testing.T) {
		tt := testT(st, sys)
		tt.DrainStoreOnExit()
	})

	require.Equal(t, []spamBlocksCall{{n: 10, txsPerBlock: 1}}, spammer.spamBlocks)
}

func TestDrainStoreOnExitWhenClean(t *testing.T) {
	sys := fakeSystem()
	sys.Inbox = &fakeInbox{storeEmpty: true}
	spammer := &fakeSpammer{}
	sys.Node1 = spammer

	t.Run("scenario", func(st *testing.T) {
		tt := testT(st, sys)
		tt.DrainStoreOnExit()
	})

	require.Empty(t, spammer.spamBlocks)
}

func TestRequireForcedInclusionParameters(t *testing.T) {
	sys := fakeSystem()
	tt := testT(t, sys)
	tt.RequireForcedInclusionParameters()
}

func TestNewTRequiresSystem(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected a panic when no System is booted")
		}
	}()
	NewT(t)
}

func TestSessionLogLevel(t *testing.T) {
	cases := map[string]slog.Level{
		"":      log.LevelInfo,
		"trace": log.LevelTrace,
		"debug": log.LevelDebug,
		"WARN":  log.LevelWarn,
		"error": log.LevelError,
		"junk":  log.LevelInfo,
	}
	for env, want := range cases {
		t.Setenv("E2E_LOG_LEVEL", env)
		require.Equal(t, want, sessionLogLevel(), "E2E_LOG_LEVEL=%q", env)
	}
}

func TestExpectPreconditionsMet(t *testing.T) {
	t.Setenv(ExpectPreconditionsMet, "")
	require.False(t, expectPreconditionsMet())
	t.Setenv(ExpectPreconditionsMet, "true")
	require.True(t, expectPreconditionsMet())
	t.Setenv(ExpectPreconditionsMet, "1")
	require.True(t, expectPreconditionsMet())
	t.Setenv(ExpectPreconditionsMet, "junk")
	require.False(t, expectPreconditionsMet())
}
