package harness

import (
	"fmt"
	"time"

	"github.com/ethereum/go-ethereum/common"

	"github.com/nethswitchboard/catalyst-e2e/protocol"
	"github.com/nethswitchboard/catalyst-e2e/snapshot"
)

const (
	// operatorSwitchRounds bounds how many epochs WaitOperatorSwitchAtSlot
	// parks on before giving up. Devnet whitelists rotate every epoch, so a
	// healthy devnet needs exactly one round plus however many it takes for
	// both operators to be registered.
	operatorSwitchRounds = 100

	// proposalSpamRounds bounds the spam-then-look cycles in
	// SpamUntilProposal before it falls back to a blocking wait.
	proposalSpamRounds = 10
)

// Node returns the spam driver for catalyst node n.
func (t *T) Node(n int) Spammer {
	t.t.Helper()
	switch n {
	case 1:
		return t.sys.Node1
	case 2:
		return t.sys.Node2
	default:
		t.req.FailNow(fmt.Sprintf("no catalyst node numbered %d", n))
		return nil
	}
}

// CurrentOperator reads the whitelist operator for the current epoch.
func (t *T) CurrentOperator() common.Address {
	t.t.Helper()
	op, err := t.sys.Operators.CurrentOperator(t.ctx)
	t.req.NoError(err, "reading current operator")
	return op
}

// NextOperator reads the whitelist operator for the next epoch.
func (t *T) NextOperator() common.Address {
	t.t.Helper()
	op, err := t.sys.Operators.NextOperator(t.ctx)
	t.req.NoError(err, "reading next operator")
	return op
}

// OperatorNumber maps the current operator address to its catalyst node
// number. Funded account 1 runs node 1; anything else is node 2.
func (t *T) OperatorNumber() int {
	t.t.Helper()
	if t.CurrentOperator() == t.sys.Cfg.L2PrefundedAddr {
		return 1
	}
	return 2
}

// WaitOperatorSwitchAtSlot parks at targetSlot of each epoch until the
// whitelist reports different operators for the current and next epoch, so
// the scenario starts from a slot where a rotation is pending.
func (t *T) WaitOperatorSwitchAtSlot(targetSlot uint64) {
	t.t.Helper()
	var current, next common.Address
	for i := 0; i < operatorSwitchRounds; i++ {
		t.WaitSlot(targetSlot)
		current = t.CurrentOperator()
		next = t.NextOperator()
		if current != next {
			break
		}
		t.log.Info("same operator on both epochs, waiting another epoch",
			"round", i+1, "operator", current)
	}
	t.req.NotEqual(current, next, "current operator should differ from next operator")
	t.log.Info("operator rotation pending", "current", current, "next", next)
}

// SlotInEpoch reports the beacon chain's position within the current epoch.
func (t *T) SlotInEpoch() uint64 {
	t.t.Helper()
	slot, err := t.sys.Clock.SlotInEpoch(t.ctx)
	t.req.NoError(err, "reading slot in epoch")
	return slot
}

// SlotDuration reports the beacon chain's seconds-per-slot as a duration.
func (t *T) SlotDuration() time.Duration {
	t.t.Helper()
	d, err := t.sys.Clock.SlotDuration(t.ctx)
	t.req.NoError(err, "reading slot duration")
	return d
}

// WaitSlot blocks until the beginning of targetSlot within an epoch.
func (t *T) WaitSlot(targetSlot uint64) {
	t.t.Helper()
	t.req.NoError(t.sys.Clock.WaitSlot(t.ctx, targetSlot), "waiting for slot %d", targetSlot)
}

// WaitNextSlot blocks until shortly after the next slot begins, aligning
// sends with the L1 slot grid.
func (t *T) WaitNextSlot() {
	t.t.Helper()
	t.req.NoError(t.sys.Clock.WaitNextSlot(t.ctx), "waiting for the next slot")
}

// WaitHandover blocks until the epoch's handover window has begun.
func (t *T) WaitHandover() {
	t.t.Helper()
	t.req.NoError(t.sys.Clock.WaitHandover(t.ctx), "waiting for handover window")
}

// WaitNextL1SlotBoundary blocks until the next L1 slot starts.
func (t *T) WaitNextL1SlotBoundary() {
	t.t.Helper()
	t.req.NoError(t.sys.Clock.WaitNextL1SlotBoundary(t.ctx), "waiting for next L1 slot")
}

// Sleep pauses the scenario, honoring the test deadline.
func (t *T) Sleep(d time.Duration) {
	t.t.Helper()
	select {
	case <-t.ctx.Done():
		t.req.NoError(t.ctx.Err(), "interrupted while sleeping")
	case <-time.After(d):
	}
}

// L1Head reads the current L1 block number.
func (t *T) L1Head() uint64 {
	t.t.Helper()
	n, err := t.sys.L1.BlockNumber(t.ctx)
	t.req.NoError(err, "reading L1 head")
	return n
}

// LastBatchID reads the inbox batch cursor.
func (t *T) LastBatchID() uint64 {
	t.t.Helper()
	id, err := t.sys.Inbox.LastBatchID(t.ctx)
	t.req.NoError(err, "reading last batch id")
	return id
}

// RestartNodes restarts both catalyst nodes in order.
func (t *T) RestartNodes() {
	t.t.Helper()
	t.req.NoError(t.sys.Nodes.Restart(t.ctx, 1), "restarting catalyst node 1")
	t.req.NoError(t.sys.Nodes.Restart(t.ctx, 2), "restarting catalyst node 2")
}

// SpamPaced pushes n spam transactions through node 1 at one block every two
// L2 slots and waits for the last to preconfirm.
func (t *T) SpamPaced(n int) {
	t.t.Helper()
	_, err := t.sys.Node1.SpamTxsWaitLast(t.ctx, n, t.sys.Cfg.TwoL2Slots())
	t.req.NoError(err, "spamming %d paced transactions", n)
}

// RequireIncluded waits for hash to preconfirm on node n and fails the
// scenario with msg when it does not.
func (t *T) RequireIncluded(node int, hash common.Hash, msg string) {
	t.t.Helper()
	ok, err := t.Node(node).WaitIncluded(t.ctx, hash)
	t.req.NoError(err, "waiting for %s on node %d", hash, node)
	t.req.True(ok, msg)
}

// LastProposalSince scans L1 from fromBlock for the most recent proposal.
// It returns nil when none landed yet.
func (t *T) LastProposalSince(fromBlock uint64) *protocol.Proposal {
	t.t.Helper()
	p, err := t.sys.Inbox.LastProposal(t.ctx, fromBlock)
	t.req.NoError(err, "scanning for proposals from L1 block %d", fromBlock)
	return p
}

// WaitProposalSince blocks until a proposal lands on L1 at or after
// fromBlock and returns it.
func (t *T) WaitProposalSince(fromBlock uint64) *protocol.Proposal {
	t.t.Helper()
	p, err := t.sys.Inbox.WaitProposal(t.ctx, fromBlock)
	t.req.NoError(err, "waiting for a proposal from L1 block %d", fromBlock)
	p.Log(t.log)
	return p
}

// SpamUntilProposal pushes minimal L2 blocks through node 1 until the inbox
// reports a proposal on L1, then returns it. Each round produces one block
// and gives the proposer a full L1 slot to land the batch; after
// proposalSpamRounds rounds it falls back to a blocking wait.
func (t *T) SpamUntilProposal() *protocol.Proposal {
	t.t.Helper()
	since := t.L1Head()
	for i := 0; i < proposalSpamRounds; i++ {
		_, err := t.sys.Node1.SpamBlocks(t.ctx, 1, t.sys.Cfg.PreconfMinTxs)
		t.req.NoError(err, "spamming a block while waiting for a proposal")
		t.WaitNextL1SlotBoundary()
		if p := t.LastProposalSince(since); p != nil {
			p.Log(t.log)
			return p
		}
		t.log.Info("no proposal on L1 yet", "round", i+1, "from_block", since)
	}
	return t.WaitProposalSince(since)
}

// SendForcedInclusion queues a forced inclusion request signed with the
// dedicated sender key, nonceDelta ahead of its confirmed nonce, and returns
// the L2 transaction hash the toolbox reports.
func (t *T) SendForcedInclusion(nonceDelta uint64) common.Hash {
	t.t.Helper()
	hash, err := t.sys.Toolbox.SendForcedInclusion(t.ctx, nonceDelta)
	t.req.NoError(err, "submitting forced inclusion request")
	return hash
}

// StoreHead reads the forced inclusion store's head index.
func (t *T) StoreHead() uint64 {
	t.t.Helper()
	head, err := t.sys.Inbox.StoreHead(t.ctx)
	t.req.NoError(err, "reading forced inclusion store head")
	return head
}

// StoreEmpty reports whether the forced inclusion store has been drained.
func (t *T) StoreEmpty() bool {
	t.t.Helper()
	empty, err := t.sys.Inbox.StoreEmpty(t.ctx)
	t.req.NoError(err, "reading forced inclusion store state")
	return empty
}

// WaitStoreEmpty blocks until the forced inclusion store drains.
func (t *T) WaitStoreEmpty() {
	t.t.Helper()
	t.req.NoError(t.sys.Inbox.WaitStoreEmpty(t.ctx), "waiting for forced inclusion store to drain")
}

// Snapshot captures the chain state scenarios later verify against.
func (t *T) Snapshot() *snapshot.ChainInfo {
	t.t.Helper()
	info, err := t.sys.Recorder.Capture(t.ctx)
	t.req.NoError(err, "capturing chain snapshot")
	return info
}

// RequireNoReorg fails the scenario when the chain no longer contains the
// captured block.
func (t *T) RequireNoReorg(info *snapshot.ChainInfo) {
	t.t.Helper()
	t.req.NoError(info.CheckReorg(t.ctx, t.sys.L2), "preconfirmed chain must not reorg")
}
