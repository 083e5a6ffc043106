package harness

import (
	"context"
	"fmt"
	"math/big"
	"time"

	"github.com/docker/docker/client"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/ethereum/go-ethereum/log"
	"golang.org/x/sync/errgroup"

	"github.com/nethswitchboard/catalyst-e2e/config"
	"github.com/nethswitchboard/catalyst-e2e/e2eutils/beacon"
	"github.com/nethswitchboard/catalyst-e2e/e2eutils/contracts/bindings/whitelist"
	"github.com/nethswitchboard/catalyst-e2e/e2eutils/nodes"
	"github.com/nethswitchboard/catalyst-e2e/e2eutils/slots"
	"github.com/nethswitchboard/catalyst-e2e/e2eutils/transactions"
	"github.com/nethswitchboard/catalyst-e2e/e2eutils/wait"
	"github.com/nethswitchboard/catalyst-e2e/protocol"
	"github.com/nethswitchboard/catalyst-e2e/snapshot"
)

// NodeController drives the catalyst node containers by number.
type NodeController interface {
	Stop(ctx context.Context, node int) error
	Start(ctx context.Context, node int) error
	Restart(ctx context.Context, node int) error
	IsRunning(ctx context.Context, node int) (bool, error)
	EnsureRunning(ctx context.Context, node int) error
}

// ForcedInclusionSender queues forced inclusion requests on L1.
type ForcedInclusionSender interface {
	SendForcedInclusion(ctx context.Context, nonceDelta uint64) (common.Hash, error)
}

// InboxReader is the normalized rollup inbox surface scenarios consume.
type InboxReader interface {
	LastBatchID(ctx context.Context) (uint64, error)
	LastBlockID(ctx context.Context) (uint64, error)
	LastProposal(ctx context.Context, fromBlock uint64) (*protocol.Proposal, error)
	WaitProposal(ctx context.Context, fromBlock uint64) (*protocol.Proposal, error)
	StoreHead(ctx context.Context) (uint64, error)
	StoreEmpty(ctx context.Context) (bool, error)
	WaitStoreEmpty(ctx context.Context) error
}

// SlotClock aligns scenario actions with the L1 slot grid.
type SlotClock interface {
	SlotInEpoch(ctx context.Context) (uint64, error)
	SlotDuration(ctx context.Context) (time.Duration, error)
	WaitSlot(ctx context.Context, targetSlot uint64) error
	WaitNextSlot(ctx context.Context) error
	WaitHandover(ctx context.Context) error
	WaitNextL1SlotBoundary(ctx context.Context) error
}

// OperatorReader reads the whitelist rotation.
type OperatorReader interface {
	CurrentOperator(ctx context.Context) (common.Address, error)
	NextOperator(ctx context.Context) (common.Address, error)
}

// Spammer is the transfer surface of a transactions.Driver.
type Spammer interface {
	Sender() common.Address
	Nonce(ctx context.Context) (uint64, error)
	Send(ctx context.Context, nonce uint64, value *big.Int) (common.Hash, error)
	Transfer(ctx context.Context, value *big.Int) (common.Hash, error)
	SpamTxs(ctx context.Context, n int) (common.Hash, error)
	SpamBlocks(ctx context.Context, n int, txsPerBlock uint64) (common.Hash, error)
	SpamTxsWaitLast(ctx context.Context, n int, delay time.Duration) (common.Hash, error)
	SendBurst(ctx context.Context, n int) error
	WaitIncluded(ctx context.Context, txHash common.Hash) (bool, error)
	WaitNewBlock(ctx context.Context, above uint64) (bool, error)
	BlockNumber(ctx context.Context) (uint64, error)
}

// System bundles everything a scenario needs to talk to the devnet. One
// System is shared by the whole test binary; the devnet is shared state, so
// scenarios must tolerate the chain moving under them.
type System struct {
	Cfg *config.Config
	Log log.Logger

	L1  *ethclient.Client
	L2  *ethclient.Client
	L2B *ethclient.Client

	Beacon *beacon.Client

	Clock     SlotClock
	Inbox     InboxReader
	Operators OperatorReader
	Nodes     NodeController
	Toolbox   ForcedInclusionSender

	// Funded account 1 driving each node. The second funded key never signs
	// in scenarios; its address identifies operator 2 on the whitelist.
	Node1 Spammer
	Node2 Spammer

	Recorder *snapshot.Recorder

	docker *client.Client
}

// whitelistOperators adapts the generated whitelist binding to
// OperatorReader.
type whitelistOperators struct {
	wl *whitelist.PreconfWhitelist
}

func (w *whitelistOperators) CurrentOperator(ctx context.Context) (common.Address, error) {
	return w.wl.GetOperatorForCurrentEpoch(&bind.CallOpts{Context: ctx})
}

func (w *whitelistOperators) NextOperator(ctx context.Context) (common.Address, error) {
	return w.wl.GetOperatorForNextEpoch(&bind.CallOpts{Context: ctx})
}

// dialSystem loads the configuration and connects every collaborator. It
// does not touch the chain beyond what the docker daemon ping needs; probe
// does the reachability checks.
func dialSystem(ctx context.Context, logger log.Logger) (*System, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	l1, err := ethclient.DialContext(ctx, cfg.L1RPCURL)
	if err != nil {
		return nil, fmt.Errorf("dialing L1 at %s: %w", cfg.L1RPCURL, err)
	}
	l2, err := ethclient.DialContext(ctx, cfg.L2RPCURL)
	if err != nil {
		return nil, fmt.Errorf("dialing L2 node1 at %s: %w", cfg.L2RPCURL, err)
	}
	l2b, err := ethclient.DialContext(ctx, cfg.L2RPCURL2)
	if err != nil {
		return nil, fmt.Errorf("dialing L2 node2 at %s: %w", cfg.L2RPCURL2, err)
	}

	bcn := beacon.NewClient(cfg.BeaconRPCURL)
	clock := slots.NewClock(bcn, logger)

	inbox, err := protocol.NewInbox(cfg, l1, logger)
	if err != nil {
		return nil, err
	}
	wl, err := whitelist.NewPreconfWhitelist(cfg.WhitelistAddress, l1)
	if err != nil {
		return nil, fmt.Errorf("binding whitelist at %s: %w", cfg.WhitelistAddress, err)
	}

	docker, err := nodes.NewDockerClient()
	if err != nil {
		return nil, err
	}

	sys := &System{
		Cfg:       cfg,
		Log:       logger,
		L1:        l1,
		L2:        l2,
		L2B:       l2b,
		Beacon:    bcn,
		Clock:     clock,
		Inbox:     inbox,
		Operators: &whitelistOperators{wl: wl},
		Nodes:     nodes.NewController(docker, logger),
		Toolbox:   nodes.NewToolbox(docker, cfg, logger),
		Node1:     transactions.NewDriver("node1", l2, cfg.L2PrefundedKey, logger),
		Node2:     transactions.NewDriver("node2", l2b, cfg.L2PrefundedKey, logger),
		docker:    docker,
	}
	sys.Recorder = snapshot.NewRecorder(l2, inbox, clock, cfg.ForcedInclusionSender, logger)
	return sys, nil
}

// probe verifies every endpoint answers before the suite commits to running.
func (s *System) probe(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 15*time.Second)
	defer cancel()

	if _, err := s.L1.ChainID(ctx); err != nil {
		return fmt.Errorf("L1 not answering at %s: %w", s.Cfg.L1RPCURL, err)
	}
	if _, err := s.L2.ChainID(ctx); err != nil {
		return fmt.Errorf("L2 node1 not answering at %s: %w", s.Cfg.L2RPCURL, err)
	}
	if _, err := s.L2B.ChainID(ctx); err != nil {
		return fmt.Errorf("L2 node2 not answering at %s: %w", s.Cfg.L2RPCURL2, err)
	}
	if _, err := s.Beacon.Spec(ctx); err != nil {
		return fmt.Errorf("beacon not answering at %s: %w", s.Cfg.BeaconRPCURL, err)
	}
	return nil
}

// Close releases the RPC and docker connections.
func (s *System) Close() {
	s.L1.Close()
	s.L2.Close()
	s.L2B.Close()
	if s.docker != nil {
		_ = s.docker.Close()
	}
}

// syncPollInterval paces the session precondition polls.
var syncPollInterval = 10 * time.Second

// waitPreconditions blocks until the devnet is in the state every scenario
// assumes: both nodes caught up with the inbox and an operator assigned for
// the current epoch. Unbounded on purpose; a devnet that never gets there is
// aborted by the caller's context or the CI timeout.
func (s *System) waitPreconditions(ctx context.Context) error {
	target, err := s.Inbox.LastBlockID(ctx)
	if err != nil {
		return fmt.Errorf("reading inbox block cursor: %w", err)
	}
	s.Log.Info("waiting for nodes to sync with the inbox", "target_block", target)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error { return s.waitNodeSynced(gctx, "node1", s.Node1, target) })
	g.Go(func() error { return s.waitNodeSynced(gctx, "node2", s.Node2, target) })
	if err := g.Wait(); err != nil {
		return err
	}

	return s.waitOperatorAssigned(ctx)
}

func (s *System) waitNodeSynced(ctx context.Context, name string, node Spammer, target uint64) error {
	return wait.For(ctx, syncPollInterval, func() (bool, error) {
		n, err := node.BlockNumber(ctx)
		if err != nil {
			return false, fmt.Errorf("reading %s head: %w", name, err)
		}
		if n >= target {
			return true, nil
		}
		s.Log.Info("node still syncing", "node", name, "have", n, "want", target)
		return false, nil
	})
}

func (s *System) waitOperatorAssigned(ctx context.Context) error {
	return wait.For(ctx, syncPollInterval, func() (bool, error) {
		op, err := s.Operators.CurrentOperator(ctx)
		if err != nil {
			return false, fmt.Errorf("reading current operator: %w", err)
		}
		if op == (common.Address{}) {
			s.Log.Info("whitelist has no operator assigned yet")
			return false, nil
		}
		s.Log.Info("operator assigned", "operator", op)
		return true, nil
	})
}
