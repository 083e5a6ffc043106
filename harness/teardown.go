package harness

import (
	"context"
	"fmt"

	"github.com/hashicorp/go-multierror"
)

// EnsureNodesRunningOnExit registers a cleanup that brings back any catalyst
// node the scenario left stopped. Scenarios that stop nodes must call this
// first so a mid-scenario failure does not strand the devnet for the rest of
// the suite.
func (t *T) EnsureNodesRunningOnExit() {
	t.t.Helper()
	sys := t.sys
	t.t.Cleanup(func() {
		// Fresh context: the cleanup must reach the devnet even when the
		// scenario died by deadline.
		ctx := context.Background()
		var result *multierror.Error
		for _, node := range []int{1, 2} {
			if err := sys.Nodes.EnsureRunning(ctx, node); err != nil {
				result = multierror.Append(result, fmt.Errorf("catalyst node %d: %w", node, err))
			}
		}
		if err := result.ErrorOrNil(); err != nil {
			t.t.Errorf("failed to bring catalyst nodes back up: %v", err)
		}
	})
}

// DrainStoreOnExit registers a cleanup that flushes any forced inclusion
// requests the scenario left queued. Draining takes one full batch of
// blocks; without it a failed scenario poisons every later one that expects
// an empty store.
func (t *T) DrainStoreOnExit() {
	t.t.Helper()
	sys := t.sys
	t.t.Cleanup(func() {
		ctx := context.Background()
		empty, err := sys.Inbox.StoreEmpty(ctx)
		if err != nil {
			t.t.Errorf("failed to read forced inclusion store state: %v", err)
			return
		}
		if empty {
			return
		}
		sys.Log.Info("draining forced inclusion store left non-empty by scenario")
		if _, err := sys.Node1.SpamBlocks(ctx, int(sys.Cfg.MaxBlocksPerBatch), sys.Cfg.PreconfMinTxs); err != nil {
			t.t.Errorf("failed to drain forced inclusion store: %v", err)
		}
	})
}

// RequireForcedInclusionParameters validates the devnet is configured the way
// the forced inclusion scenarios assume, and that no earlier run left the
// store dirty.
func (t *T) RequireForcedInclusionParameters() {
	t.t.Helper()
	cfg := t.sys.Cfg
	t.req.LessOrEqual(cfg.MaxBlocksPerBatch, uint64(10),
		"scenarios spam multiples of max blocks per batch and need it small")
	t.req.EqualValues(1, cfg.PreconfMinTxs,
		"scenarios count blocks assuming one transaction per block")
	t.req.NotEqual(cfg.L2PrefundedAddr, cfg.ForcedInclusionSender,
		"forced inclusion sender must not share the spam account, its nonce is tracked separately")
	t.req.True(t.StoreEmpty(), "forced inclusion store should start empty")
}
