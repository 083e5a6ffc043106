package forcedinclusion

import (
	"testing"
)

func TestPreconfForcedInclusionAfterRestart(gt *testing.T) {
	t := newT(gt)
	sys := t.Sys()
	req := t.Require()

	// Earlier scenarios must have moved the store cursor; a fresh devnet
	// cannot exercise recovery of a non-zero head.
	req.Positive(t.StoreHead(), "store head should show past forced inclusions")

	slotDuration := t.SlotDuration()

	t.WaitSlot(1)
	t.RestartNodes()
	t.Sleep(3 * slotDuration)

	t.Snapshot()

	hash := t.SendForcedInclusion(0)

	t.WaitNextSlot()
	t.SpamPaced(int(sys.Cfg.MaxBlocksPerBatch))

	beforeInclusion := t.Snapshot()

	t.Sleep(3 * slotDuration)

	t.RequireNoReorg(beforeInclusion)
	t.RequireIncluded(1, hash, "forced inclusion should be included after the restart")
	t.WaitStoreEmpty()
}

func TestRecoverForcedInclusionAfterRestart(gt *testing.T) {
	t := newT(gt)
	sys := t.Sys()
	req := t.Require()

	start := t.Snapshot()

	t.SendForcedInclusion(0)

	ok, err := sys.Node1.WaitNewBlock(t.Ctx(), start.BlockNumber)
	req.NoError(err, "waiting for a new block on node 1")
	req.True(ok, "node 1 should produce a block after the forced inclusion")

	t.RestartNodes()

	t.WaitStoreEmpty()
	recovered := t.Snapshot()
	req.Equal(start.FISenderNonce+1, recovered.FISenderNonce,
		"forced inclusion should be recovered after the restart")
	t.RequireNoReorg(start)
}
