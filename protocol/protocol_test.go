package protocol

import (
	"context"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/log"
	"github.com/stretchr/testify/require"

	"github.com/nethswitchboard/catalyst-e2e/config"
	"github.com/nethswitchboard/catalyst-e2e/e2eutils/testlog"
	"github.com/nethswitchboard/catalyst-e2e/e2eutils/wait"
)

// fakeReader scripts the variant surface: proposalsSince returns the scan
// results in order (repeating the last one), storeState walks headSeq toward
// tail.
type fakeReader struct {
	scans      [][]*Proposal
	scanCalls  int
	headSeq    []uint64
	storeCalls int
	tail       uint64
}

func (f *fakeReader) lastBatchID(context.Context) (uint64, error) { return 41, nil }
func (f *fakeReader) lastBlockID(context.Context) (uint64, error) { return 1204, nil }

func (f *fakeReader) proposalsSince(context.Context, uint64) ([]*Proposal, error) {
	i := f.scanCalls
	if i >= len(f.scans) {
		i = len(f.scans) - 1
	}
	f.scanCalls++
	if i < 0 {
		return nil, nil
	}
	return f.scans[i], nil
}

func (f *fakeReader) storeState(context.Context) (uint64, uint64, error) {
	i := f.storeCalls
	if i >= len(f.headSeq) {
		i = len(f.headSeq) - 1
	}
	f.storeCalls++
	return f.headSeq[i], f.tail, nil
}

func newTestInbox(t *testing.T, r reader) *Inbox {
	return &Inbox{log: testlog.Logger(t, log.LevelDebug), r: r}
}

func fastPolicies(t *testing.T) {
	origProposal, origStore := proposalPolicy, storeEmptyPolicy
	proposalPolicy = wait.Policy{Attempts: 3, Interval: time.Millisecond}
	storeEmptyPolicy = wait.Policy{Attempts: 3, Interval: time.Millisecond}
	t.Cleanup(func() {
		proposalPolicy, storeEmptyPolicy = origProposal, origStore
	})
}

func proposal(id uint64) *Proposal {
	return &Proposal{
		Variant:  config.VariantPacaya,
		ID:       id,
		Proposer: common.HexToAddress("0x70997970C51812dc3A010C7d01b50e0d17dc79C8"),
	}
}

func TestLastProposalNilWhenNoneLanded(t *testing.T) {
	ib := newTestInbox(t, &fakeReader{})

	p, err := ib.LastProposal(context.Background(), 100)
	require.NoError(t, err)
	require.Nil(t, p)
}

func TestLastProposalTakesMostRecent(t *testing.T) {
	ib := newTestInbox(t, &fakeReader{
		scans: [][]*Proposal{{proposal(7), proposal(8), proposal(9)}},
	})

	p, err := ib.LastProposal(context.Background(), 100)
	require.NoError(t, err)
	require.NotNil(t, p)
	require.EqualValues(t, 9, p.ID)
}

func TestWaitProposalReturnsOnceEventLands(t *testing.T) {
	fastPolicies(t)
	ib := newTestInbox(t, &fakeReader{
		scans: [][]*Proposal{nil, nil, {proposal(12)}},
	})

	p, err := ib.WaitProposal(context.Background(), 100)
	require.NoError(t, err)
	require.EqualValues(t, 12, p.ID)
}

func TestWaitProposalTimesOut(t *testing.T) {
	fastPolicies(t)
	ib := newTestInbox(t, &fakeReader{})

	_, err := ib.WaitProposal(context.Background(), 100)
	require.ErrorIs(t, err, wait.ErrTimeout)
	require.ErrorContains(t, err, "block 100")
}

func TestStoreEmpty(t *testing.T) {
	ib := newTestInbox(t, &fakeReader{headSeq: []uint64{5}, tail: 5})
	empty, err := ib.StoreEmpty(context.Background())
	require.NoError(t, err)
	require.True(t, empty)

	ib = newTestInbox(t, &fakeReader{headSeq: []uint64{3}, tail: 5})
	empty, err = ib.StoreEmpty(context.Background())
	require.NoError(t, err)
	require.False(t, empty)
}

func TestWaitStoreEmptyDrains(t *testing.T) {
	fastPolicies(t)
	ib := newTestInbox(t, &fakeReader{headSeq: []uint64{3, 4, 5}, tail: 5})
	require.NoError(t, ib.WaitStoreEmpty(context.Background()))
}

func TestWaitStoreEmptyTimesOut(t *testing.T) {
	fastPolicies(t)
	ib := newTestInbox(t, &fakeReader{headSeq: []uint64{3}, tail: 5})

	err := ib.WaitStoreEmpty(context.Background())
	require.ErrorIs(t, err, wait.ErrTimeout)
}

func TestNewInboxRejectsUnknownVariant(t *testing.T) {
	cfg := &config.Config{Protocol: config.Variant("ontake")}
	_, err := NewInbox(cfg, nil, testlog.Logger(t, log.LevelInfo))
	require.ErrorContains(t, err, "unknown protocol variant")
}
