package restart

import (
	"testing"

	"github.com/nethswitchboard/catalyst-e2e/harness"
)

// Thirty paced transactions after a double restart should come back as
// thirty L2 blocks and three proposed batches.
func TestPreconfirmationAfterRestart(gt *testing.T) {
	t := harness.NewT(gt)
	sys := t.Sys()
	req := t.Require()

	slotDuration := t.SlotDuration()
	t.Logger().Info("starting position", "slot_in_epoch", t.SlotInEpoch())

	t.RestartNodes()
	t.Sleep(3 * slotDuration)

	before, err := sys.Node1.BlockNumber(t.Ctx())
	req.NoError(err, "reading node 1 head")
	batchBefore := t.LastBatchID()
	t.Logger().Info("chain before spam", "block_number", before, "batch_id", batchBefore)

	blocks := 3 * sys.Cfg.MaxBlocksPerBatch
	t.SpamPaced(int(blocks))

	t.WaitProposalSince(t.L1Head())

	t.Logger().Info("position after inclusion", "slot_in_epoch", t.SlotInEpoch())
	after, err := sys.Node1.BlockNumber(t.Ctx())
	req.NoError(err, "reading node 1 head")
	batchAfter := t.LastBatchID()
	t.Logger().Info("chain after spam", "block_number", after, "batch_id", batchAfter)

	req.GreaterOrEqual(after, before+blocks, "chain should advance by at least the spammed blocks")
	req.GreaterOrEqual(batchAfter, batchBefore+3, "three full batches should have been proposed")
}
