package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/ethereum/go-ethereum/log"
	"github.com/ethereum/go-ethereum/rpc"
	"github.com/lmittmann/w3"
	"github.com/lmittmann/w3/module/eth"
	"github.com/urfave/cli/v2"

	"github.com/nethswitchboard/catalyst-e2e/config"
	"github.com/nethswitchboard/catalyst-e2e/e2eutils/beacon"
	"github.com/nethswitchboard/catalyst-e2e/protocol"
)

var (
	funcCurrentOperator = w3.MustNewFunc("getOperatorForCurrentEpoch()", "address")
	funcNextOperator    = w3.MustNewFunc("getOperatorForNextEpoch()", "address")
)

// report is everything the preflight reads from the devnet. The scenario
// suites block on the same conditions; this prints them instead.
type report struct {
	L1ChainID       uint64
	L1Head          uint64
	CurrentOperator common.Address
	NextOperator    common.Address

	Node1ChainID uint64
	Node1Head    uint64
	Node2ChainID uint64
	Node2Head    uint64

	LastBatchID uint64
	InboxBlock  uint64
	StoreHead   uint64
	StoreEmpty  bool

	Spec beacon.Spec
}

func main() {
	app := &cli.App{
		Name:  "catalyst-preflight",
		Usage: "Check a preconfirmation devnet against the e2e suite's session preconditions",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "manifest",
				Usage: "Devnet manifest YAML; explicitly set environment variables win over it",
			},
			&cli.DurationFlag{
				Name:  "timeout",
				Usage: "Budget for all devnet reads",
				Value: 30 * time.Second,
			},
		},
		Action: run,
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(cliCtx *cli.Context) error {
	if path := cliCtx.String("manifest"); path != "" {
		m, err := config.LoadManifest(path)
		if err != nil {
			return err
		}
		if err := m.SetDefaults(); err != nil {
			return err
		}
	}
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(cliCtx.Context, cliCtx.Duration("timeout"))
	defer cancel()

	r, err := collect(ctx, cfg)
	if err != nil {
		return err
	}
	r.print(os.Stdout, cfg)

	problems := r.problems()
	for _, p := range problems {
		fmt.Fprintf(os.Stderr, "FAIL: %s\n", p)
	}
	if len(problems) > 0 {
		return fmt.Errorf("%d of the suite's preconditions are not met", len(problems))
	}
	fmt.Println("all preconditions met")
	return nil
}

// collect reads the devnet state, batching the L1 contract reads.
func collect(ctx context.Context, cfg *config.Config) (*report, error) {
	r := &report{}

	l1rpc, err := rpc.DialContext(ctx, cfg.L1RPCURL)
	if err != nil {
		return nil, fmt.Errorf("dialing L1 at %s: %w", cfg.L1RPCURL, err)
	}
	defer l1rpc.Close()

	if err := w3.NewClient(l1rpc).CallCtx(ctx,
		eth.ChainID().Returns(&r.L1ChainID),
		eth.CallFunc(cfg.WhitelistAddress, funcCurrentOperator).Returns(&r.CurrentOperator),
		eth.CallFunc(cfg.WhitelistAddress, funcNextOperator).Returns(&r.NextOperator),
	); err != nil {
		return nil, fmt.Errorf("reading L1 state: %w", err)
	}

	l1 := ethclient.NewClient(l1rpc)
	if r.L1Head, err = l1.BlockNumber(ctx); err != nil {
		return nil, fmt.Errorf("reading L1 head: %w", err)
	}

	if r.Node1ChainID, r.Node1Head, err = readNode(ctx, cfg.L2RPCURL); err != nil {
		return nil, fmt.Errorf("reading node 1 state: %w", err)
	}
	if r.Node2ChainID, r.Node2Head, err = readNode(ctx, cfg.L2RPCURL2); err != nil {
		return nil, fmt.Errorf("reading node 2 state: %w", err)
	}

	// Inbox reads go through the variant-aware protocol layer on the same
	// L1 connection.
	inbox, err := protocol.NewInbox(cfg, l1, log.NewLogger(log.DiscardHandler()))
	if err != nil {
		return nil, err
	}
	if r.LastBatchID, err = inbox.LastBatchID(ctx); err != nil {
		return nil, fmt.Errorf("reading last batch id: %w", err)
	}
	if r.InboxBlock, err = inbox.LastBlockID(ctx); err != nil {
		return nil, fmt.Errorf("reading inbox block cursor: %w", err)
	}
	if r.StoreHead, err = inbox.StoreHead(ctx); err != nil {
		return nil, fmt.Errorf("reading forced inclusion store head: %w", err)
	}
	if r.StoreEmpty, err = inbox.StoreEmpty(ctx); err != nil {
		return nil, fmt.Errorf("reading forced inclusion store state: %w", err)
	}

	if r.Spec, err = beacon.NewClient(cfg.BeaconRPCURL).Spec(ctx); err != nil {
		return nil, fmt.Errorf("reading beacon spec: %w", err)
	}
	return r, nil
}

func readNode(ctx context.Context, url string) (uint64, uint64, error) {
	node, err := ethclient.DialContext(ctx, url)
	if err != nil {
		return 0, 0, fmt.Errorf("dialing %s: %w", url, err)
	}
	defer node.Close()

	chainID, err := node.ChainID(ctx)
	if err != nil {
		return 0, 0, err
	}
	head, err := node.BlockNumber(ctx)
	if err != nil {
		return 0, 0, err
	}
	return chainID.Uint64(), head, nil
}

func (r *report) print(w io.Writer, cfg *config.Config) {
	fmt.Fprintf(w, "protocol:  %s\n", cfg.Protocol)
	fmt.Fprintf(w, "l1:        chain_id=%d head=%d operator=%s next=%s\n",
		r.L1ChainID, r.L1Head, r.CurrentOperator, r.NextOperator)
	fmt.Fprintf(w, "node1:     chain_id=%d head=%d\n", r.Node1ChainID, r.Node1Head)
	fmt.Fprintf(w, "node2:     chain_id=%d head=%d\n", r.Node2ChainID, r.Node2Head)
	fmt.Fprintf(w, "inbox:     batch_id=%d block=%d\n", r.LastBatchID, r.InboxBlock)
	fmt.Fprintf(w, "fi store:  head=%d empty=%t\n", r.StoreHead, r.StoreEmpty)
	fmt.Fprintf(w, "beacon:    seconds_per_slot=%d slots_per_epoch=%d\n",
		r.Spec.SecondsPerSlot, r.Spec.SlotsPerEpoch)
	fmt.Fprintf(w, "params:    min_txs=%d heartbeat=%s max_blocks=%d\n",
		cfg.PreconfMinTxs, cfg.PreconfHeartbeat, cfg.MaxBlocksPerBatch)
}

// problems lists every session precondition the devnet currently fails.
func (r *report) problems() []string {
	var out []string
	if r.L1ChainID == 0 {
		out = append(out, "L1 chain id is zero")
	}
	if r.Node1ChainID == 0 {
		out = append(out, "L2 chain id is zero")
	}
	if r.L1ChainID == r.Node1ChainID {
		out = append(out, "L1 and L2 serve the same chain id")
	}
	if r.Node1ChainID != r.Node2ChainID {
		out = append(out, fmt.Sprintf("L2 nodes serve different chains (%d vs %d)", r.Node1ChainID, r.Node2ChainID))
	}
	if r.CurrentOperator == (common.Address{}) {
		out = append(out, "whitelist has no operator for the current epoch")
	}
	if r.Node1Head < r.InboxBlock {
		out = append(out, fmt.Sprintf("node 1 behind the inbox (have %d, want %d)", r.Node1Head, r.InboxBlock))
	}
	if r.Node2Head < r.InboxBlock {
		out = append(out, fmt.Sprintf("node 2 behind the inbox (have %d, want %d)", r.Node2Head, r.InboxBlock))
	}
	if r.Spec.SecondsPerSlot == 0 || r.Spec.SlotsPerEpoch == 0 {
		out = append(out, "beacon spec is incomplete")
	}
	return out
}
