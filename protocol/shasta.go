package protocol

import (
	"context"
	"fmt"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"

	"github.com/nethswitchboard/catalyst-e2e/config"
	"github.com/nethswitchboard/catalyst-e2e/e2eutils/contracts/bindings/shastainbox"
)

// shastaReader reads everything from the shasta inbox. The forced inclusion
// queue is part of the inbox in shasta, but devnets may still expose it under
// a separate address, so the store gets its own binding.
type shastaReader struct {
	inbox *shastainbox.ShastaInbox
	store *shastainbox.ShastaInbox
}

func newShastaReader(cfg *config.Config, backend bind.ContractBackend) (*shastaReader, error) {
	inbox, err := shastainbox.NewShastaInbox(cfg.InboxAddress, backend)
	if err != nil {
		return nil, fmt.Errorf("binding shasta inbox at %s: %w", cfg.InboxAddress, err)
	}
	store, err := shastainbox.NewShastaInbox(cfg.ForcedInclusionStoreAddr, backend)
	if err != nil {
		return nil, fmt.Errorf("binding forced inclusion state at %s: %w", cfg.ForcedInclusionStoreAddr, err)
	}
	return &shastaReader{inbox: inbox, store: store}, nil
}

func (r *shastaReader) lastBatchID(ctx context.Context) (uint64, error) {
	core, err := r.inbox.GetCoreState(&bind.CallOpts{Context: ctx})
	if err != nil {
		return 0, fmt.Errorf("getCoreState: %w", err)
	}
	next := core.NextProposalId.Uint64()
	// The genesis proposal is seeded at deployment, so next is at least 1.
	if next == 0 {
		return 0, nil
	}
	return next - 1, nil
}

func (r *shastaReader) lastBlockID(ctx context.Context) (uint64, error) {
	core, err := r.inbox.GetCoreState(&bind.CallOpts{Context: ctx})
	if err != nil {
		return 0, fmt.Errorf("getCoreState: %w", err)
	}
	return core.LastProposalBlockId.Uint64(), nil
}

func (r *shastaReader) proposalsSince(ctx context.Context, fromBlock uint64) ([]*Proposal, error) {
	it, err := r.inbox.FilterProposed(&bind.FilterOpts{Start: fromBlock, Context: ctx})
	if err != nil {
		return nil, fmt.Errorf("filtering Proposed logs: %w", err)
	}
	defer it.Close()

	var out []*Proposal
	for it.Next() {
		ev := it.Event
		out = append(out, &Proposal{
			Variant:               config.VariantShasta,
			ID:                    ev.Id.Uint64(),
			Proposer:              ev.Proposer,
			TxHash:                ev.Raw.TxHash,
			BlockNumber:           ev.Raw.BlockNumber,
			EndOfSubmissionWindow: ev.EndOfSubmissionWindowTimestamp.Uint64(),
		})
	}
	if err := it.Error(); err != nil {
		return nil, fmt.Errorf("reading Proposed logs: %w", err)
	}
	return out, nil
}

func (r *shastaReader) storeState(ctx context.Context) (uint64, uint64, error) {
	state, err := r.store.GetForcedInclusionState(&bind.CallOpts{Context: ctx})
	if err != nil {
		return 0, 0, fmt.Errorf("getForcedInclusionState: %w", err)
	}
	return state.Head.Uint64(), state.Tail.Uint64(), nil
}
