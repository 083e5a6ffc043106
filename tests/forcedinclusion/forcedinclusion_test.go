package forcedinclusion

import (
	"testing"
)

func TestForcedInclusion(gt *testing.T) {
	t := newT(gt)
	sys := t.Sys()

	t.Require().True(t.StoreEmpty(), "forced inclusion store should be empty before the scenario")
	t.Snapshot()

	hash := t.SendForcedInclusion(0)

	// Spam one more than four batches worth so the forced inclusion's batch
	// is certainly among them.
	t.WaitNextSlot()
	t.SpamPaced(int(4*sys.Cfg.MaxBlocksPerBatch) + 1)
	t.WaitProposalSince(t.L1Head())

	t.RequireIncluded(1, hash, "forced inclusion transaction should be included on node 1")
}

func TestThreeConsecutiveForcedInclusions(gt *testing.T) {
	t := newT(gt)
	sys := t.Sys()

	slotDuration := t.SlotDuration()

	t.RestartNodes()
	t.Sleep(3 * slotDuration)

	t.Require().True(t.StoreEmpty(), "forced inclusion store should be empty before the scenario")

	first := t.SendForcedInclusion(0)
	second := t.SendForcedInclusion(1)
	third := t.SendForcedInclusion(2)

	t.WaitNextSlot()
	t.SpamPaced(int(4 * sys.Cfg.MaxBlocksPerBatch))

	// Two more L1 slots so every propose transaction lands.
	t.Sleep(2 * slotDuration)

	t.RequireIncluded(1, first, "first forced inclusion should be included")
	t.RequireIncluded(1, second, "second forced inclusion should be included")
	t.RequireIncluded(1, third, "third forced inclusion should be included")
	t.WaitStoreEmpty()
}
