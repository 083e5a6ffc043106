// Package protocol reads rollup inbox state from L1 and normalizes the
// differences between the pacaya and shasta deployments. Scenario code never
// touches contract bindings directly; it goes through an Inbox.
package protocol

import (
	"context"
	"fmt"
	"time"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/log"

	"github.com/nethswitchboard/catalyst-e2e/config"
	"github.com/nethswitchboard/catalyst-e2e/e2eutils/wait"
)

// Proposal is a batch proposal observed on L1, normalized across variants.
// The pacaya and shasta events carry different payloads; fields that only one
// variant populates are zero on the other.
type Proposal struct {
	Variant config.Variant

	ID          uint64
	Proposer    common.Address
	TxHash      common.Hash
	BlockNumber uint64

	// pacaya
	ProposedAt         uint64
	LastBlockID        uint64
	LastBlockTimestamp uint64

	// shasta
	EndOfSubmissionWindow uint64
}

// Log writes the proposal details the way operators expect to read them for
// the given variant.
func (p *Proposal) Log(logger log.Logger) {
	if p.Variant == config.VariantPacaya {
		logger.Info("batch proposed",
			"batch_id", p.ID,
			"proposer", p.Proposer,
			"proposed_at", p.ProposedAt,
			"last_block_id", p.LastBlockID,
			"last_block_timestamp", p.LastBlockTimestamp,
			"tx", p.TxHash,
			"l1_block", p.BlockNumber)
		return
	}
	logger.Info("proposal submitted",
		"proposal_id", p.ID,
		"proposer", p.Proposer,
		"submission_window_end", p.EndOfSubmissionWindow,
		"tx", p.TxHash,
		"l1_block", p.BlockNumber)
}

// reader is the variant-specific read surface.
type reader interface {
	lastBatchID(ctx context.Context) (uint64, error)
	lastBlockID(ctx context.Context) (uint64, error)
	proposalsSince(ctx context.Context, fromBlock uint64) ([]*Proposal, error)
	storeState(ctx context.Context) (head, tail uint64, err error)
}

var (
	proposalPolicy   = wait.Policy{Attempts: 100, Interval: time.Second}
	storeEmptyPolicy = wait.Policy{Attempts: 300, Interval: time.Second}
)

// Inbox reads proposal and forced-inclusion state for one variant. It is safe
// for concurrent use.
type Inbox struct {
	log log.Logger
	r   reader
}

// NewInbox binds the variant the configuration selects. The backend is
// typically an ethclient connected to L1.
func NewInbox(cfg *config.Config, backend bind.ContractBackend, logger log.Logger) (*Inbox, error) {
	var (
		r   reader
		err error
	)
	switch cfg.Protocol {
	case config.VariantPacaya:
		r, err = newPacayaReader(cfg, backend)
	case config.VariantShasta:
		r, err = newShastaReader(cfg, backend)
	default:
		return nil, fmt.Errorf("unknown protocol variant %q", cfg.Protocol)
	}
	if err != nil {
		return nil, err
	}
	return &Inbox{log: logger, r: r}, nil
}

// LastBatchID returns the most recent batch (pacaya) or proposal (shasta)
// identifier known to the inbox.
func (ib *Inbox) LastBatchID(ctx context.Context) (uint64, error) {
	return ib.r.lastBatchID(ctx)
}

// LastBlockID returns the highest L2 block the inbox has accepted a batch for.
func (ib *Inbox) LastBlockID(ctx context.Context) (uint64, error) {
	return ib.r.lastBlockID(ctx)
}

// LastProposal scans proposal events from the given L1 block and returns the
// most recent one, or nil if none landed yet. Single pass, no waiting.
func (ib *Inbox) LastProposal(ctx context.Context, fromBlock uint64) (*Proposal, error) {
	proposals, err := ib.r.proposalsSince(ctx, fromBlock)
	if err != nil {
		return nil, err
	}
	if len(proposals) == 0 {
		return nil, nil
	}
	p := proposals[len(proposals)-1]
	p.Log(ib.log)
	return p, nil
}

// WaitProposal blocks until a proposal event lands on L1 at or after the
// given block. Proposing happens on the operator's batch cadence, so this can
// legitimately take most of an epoch.
func (ib *Inbox) WaitProposal(ctx context.Context, fromBlock uint64) (*Proposal, error) {
	ib.log.Info("waiting for proposal on L1", "from_block", fromBlock)
	started := time.Now()

	var found *Proposal
	err := proposalPolicy.Run(ctx, func() (bool, error) {
		proposals, err := ib.r.proposalsSince(ctx, fromBlock)
		if err != nil {
			return false, err
		}
		if len(proposals) == 0 {
			return false, nil
		}
		found = proposals[len(proposals)-1]
		return true, nil
	})
	if err != nil {
		return nil, fmt.Errorf("no proposal landed since block %d: %w", fromBlock, err)
	}

	ib.log.Info("proposal observed", "waited", time.Since(started).Round(time.Second))
	found.Log(ib.log)
	return found, nil
}

// StoreHead returns the forced inclusion queue's head index.
func (ib *Inbox) StoreHead(ctx context.Context) (uint64, error) {
	head, _, err := ib.r.storeState(ctx)
	return head, err
}

// StoreEmpty reports whether the forced inclusion queue has been drained.
func (ib *Inbox) StoreEmpty(ctx context.Context) (bool, error) {
	head, tail, err := ib.r.storeState(ctx)
	if err != nil {
		return false, err
	}
	ib.log.Debug("forced inclusion store", "head", head, "tail", tail)
	return head == tail, nil
}

// WaitStoreEmpty blocks until the operator has consumed every pending forced
// inclusion. Draining requires the operator to propose, so the timeout is
// generous.
func (ib *Inbox) WaitStoreEmpty(ctx context.Context) error {
	err := storeEmptyPolicy.Run(ctx, func() (bool, error) {
		return ib.StoreEmpty(ctx)
	})
	if err != nil {
		return fmt.Errorf("forced inclusion store still not empty: %w", err)
	}
	return nil
}
