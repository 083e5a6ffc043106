package preconf

import (
	"math/big"
	"testing"

	"github.com/nethswitchboard/catalyst-e2e/e2eutils/transactions"
	"github.com/nethswitchboard/catalyst-e2e/harness"
)

func TestRPCEndpoints(gt *testing.T) {
	t := harness.NewT(gt)
	sys := t.Sys()
	req := t.Require()

	l1ID, err := sys.L1.ChainID(t.Ctx())
	req.NoError(err, "reading L1 chain id")
	node1ID, err := sys.L2.ChainID(t.Ctx())
	req.NoError(err, "reading node 1 chain id")
	node2ID, err := sys.L2B.ChainID(t.Ctx())
	req.NoError(err, "reading node 2 chain id")

	t.Logger().Info("chain ids", "l1", l1ID, "node1", node1ID, "node2", node2ID)

	req.Positive(l1ID.Sign(), "L1 chain id should be set")
	req.Positive(node1ID.Sign(), "L2 chain id should be set")
	req.NotEqual(l1ID, node1ID, "L1 and L2 should be different chains")
	req.Equal(node1ID, node2ID, "both L2 nodes should serve the same chain")

	spec, err := sys.Beacon.Spec(t.Ctx())
	req.NoError(err, "reading beacon spec")
	t.Logger().Info("beacon spec",
		"seconds_per_slot", spec.SecondsPerSlot, "slots_per_epoch", spec.SlotsPerEpoch)
	req.Positive(spec.SecondsPerSlot, "slot duration should be set")
	req.Positive(spec.SlotsPerEpoch, "epoch length should be set")
}

func TestPreconfirmTransaction(gt *testing.T) {
	t := harness.NewT(gt)
	req := t.Require()

	node1 := t.Node(1)
	nonce, err := node1.Nonce(t.Ctx())
	req.NoError(err, "reading spam account nonce")

	hash, err := node1.Send(t.Ctx(), nonce, transactions.Gwei(50_000))
	req.NoError(err, "sending transfer via node 1")

	t.RequireIncluded(1, hash, "transaction should be preconfirmed on node 1")
}

func TestP2PPreconfirmation(gt *testing.T) {
	t := harness.NewT(gt)
	sys := t.Sys()
	req := t.Require()

	nonce, err := sys.Node1.Nonce(t.Ctx())
	req.NoError(err, "reading spam account nonce")
	before, err := sys.Node2.BlockNumber(t.Ctx())
	req.NoError(err, "reading node 2 head")

	// Sent through node 1, observed on node 2.
	_, err = sys.Node1.Send(t.Ctx(), nonce, transactions.Gwei(60_000))
	req.NoError(err, "sending transfer via node 1")

	ok, err := sys.Node2.WaitNewBlock(t.Ctx(), before)
	req.NoError(err, "waiting for a new block on node 2")
	req.True(ok, "node 2 should receive the preconfirmed block over p2p")

	after, err := sys.Node2.BlockNumber(t.Ctx())
	req.NoError(err, "reading node 2 head")
	t.Logger().Info("node 2 advanced", "from", before, "to", after)

	height := new(big.Int).SetUint64(after)
	node1Header, err := sys.L2.HeaderByNumber(t.Ctx(), height)
	req.NoError(err, "reading block %d from node 1", after)
	node2Header, err := sys.L2B.HeaderByNumber(t.Ctx(), height)
	req.NoError(err, "reading block %d from node 2", after)
	req.Equal(node1Header.Hash(), node2Header.Hash(),
		"nodes should agree on the hash of block %d", after)
}

func TestHandoverTransaction(gt *testing.T) {
	t := harness.NewT(gt)
	sys := t.Sys()
	req := t.Require()

	t.WaitHandover()

	// One nonce fetch; the second send continues the sequence through the
	// other node while both accept transactions for the same chain.
	nonce, err := sys.Node1.Nonce(t.Ctx())
	req.NoError(err, "reading spam account nonce")

	hash, err := sys.Node1.Send(t.Ctx(), nonce, transactions.Gwei(70_000))
	req.NoError(err, "sending transfer via node 1")
	t.RequireIncluded(1, hash, "transaction should be preconfirmed on node 1 during handover")

	hash, err = sys.Node2.Send(t.Ctx(), nonce+1, transactions.Gwei(80_000))
	req.NoError(err, "sending transfer via node 2")
	t.RequireIncluded(2, hash, "transaction should be preconfirmed on node 2 during handover")
}

func TestEndOfSequencing(gt *testing.T) {
	t := harness.NewT(gt)
	sys := t.Sys()
	req := t.Require()

	t.WaitOperatorSwitchAtSlot(25)

	before, err := sys.Node1.BlockNumber(t.Ctx())
	req.NoError(err, "reading node 1 head")

	req.NoError(sys.Node1.SendBurst(t.Ctx(), int(sys.Cfg.PreconfMinTxs)), "bursting transactions")
	t.Sleep(sys.Cfg.TwoL2Slots())

	after, err := sys.Node1.BlockNumber(t.Ctx())
	req.NoError(err, "reading node 1 head")
	req.Equal(before+1, after, "handover buffer should produce exactly one more block")
}
