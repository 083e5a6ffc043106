package preconf

import (
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/common"

	"github.com/nethswitchboard/catalyst-e2e/harness"
)

func TestProposeBatchAfterMaxBlocks(gt *testing.T) {
	t := harness.NewT(gt)
	sys := t.Sys()
	req := t.Require()

	head := t.L1Head()
	hdr, err := sys.L1.HeaderByNumber(t.Ctx(), new(big.Int).SetUint64(head))
	req.NoError(err, "reading L1 block %d", head)

	// One past the batch capacity forces a proposal.
	_, err = sys.Node1.SpamTxs(t.Ctx(), 11)
	req.NoError(err, "spamming transactions")

	p := t.WaitProposalSince(head)

	if sys.Cfg.IsPacaya() {
		req.Greater(p.ProposedAt, hdr.Time, "batch should be proposed after the pre-spam block")
	} else {
		req.Greater(p.BlockNumber, head, "proposal should land after the pre-spam block")
	}
	req.Contains(
		[]common.Address{sys.Cfg.L2PrefundedAddr, sys.Cfg.L2PrefundedAddr2},
		p.Proposer,
		"proposer should be one of the two operators",
	)
}

func TestProposingOtherOperatorBlocks(gt *testing.T) {
	t := harness.NewT(gt)
	sys := t.Sys()
	req := t.Require()

	t.EnsureNodesRunningOnExit()

	t.Logger().Info("starting position", "slot_in_epoch", t.SlotInEpoch())
	t.WaitOperatorSwitchAtSlot(5)
	operator := t.OperatorNumber()

	t.SpamUntilProposal()

	// The next block opens a fresh batch owned by the soon-to-rotate operator.
	hash, err := sys.Node1.SpamTxs(t.Ctx(), 1)
	req.NoError(err, "spamming one transaction into the new batch")
	t.RequireIncluded(1, hash, "transaction should be preconfirmed on node 1")

	req.NoError(sys.Nodes.Stop(t.Ctx(), operator), "stopping catalyst node %d", operator)

	t.WaitSlot(0)
	t.WaitProposalSince(t.L1Head())

	t.RequireIncluded(1, hash, "transaction should survive the operator switch without a reorg")
}

func TestVerificationAfterNodeRestart(gt *testing.T) {
	t := harness.NewT(gt)
	sys := t.Sys()
	req := t.Require()

	t.EnsureNodesRunningOnExit()

	t.WaitSlot(5)
	t.SpamUntilProposal()
	head := t.L1Head()

	// Leave one block pending so the restarted node has something to propose.
	_, err := sys.Node1.SpamBlocks(t.Ctx(), 1, sys.Cfg.PreconfMinTxs)
	req.NoError(err, "spamming one extra block")

	operator := t.OperatorNumber()
	req.NoError(sys.Nodes.Stop(t.Ctx(), operator), "stopping catalyst node %d", operator)
	req.NoError(sys.Nodes.Start(t.Ctx(), operator), "starting catalyst node %d", operator)

	t.WaitProposalSince(head)
}
