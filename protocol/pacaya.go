package protocol

import (
	"context"
	"fmt"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"

	"github.com/nethswitchboard/catalyst-e2e/config"
	"github.com/nethswitchboard/catalyst-e2e/e2eutils/contracts/bindings/fistore"
	"github.com/nethswitchboard/catalyst-e2e/e2eutils/contracts/bindings/pacayainbox"
)

// pacayaReader reads the TaikoInbox plus the standalone forced inclusion
// store contract.
type pacayaReader struct {
	inbox *pacayainbox.TaikoInbox
	store *fistore.ForcedInclusionStore
}

func newPacayaReader(cfg *config.Config, backend bind.ContractBackend) (*pacayaReader, error) {
	inbox, err := pacayainbox.NewTaikoInbox(cfg.InboxAddress, backend)
	if err != nil {
		return nil, fmt.Errorf("binding taiko inbox at %s: %w", cfg.InboxAddress, err)
	}
	store, err := fistore.NewForcedInclusionStore(cfg.ForcedInclusionStoreAddr, backend)
	if err != nil {
		return nil, fmt.Errorf("binding forced inclusion store at %s: %w", cfg.ForcedInclusionStoreAddr, err)
	}
	return &pacayaReader{inbox: inbox, store: store}, nil
}

// lastBatchID reports the inbox's batch counter. Values are only ever
// compared against other reads of the same counter, never across variants.
func (r *pacayaReader) lastBatchID(ctx context.Context) (uint64, error) {
	stats, err := r.inbox.GetStats2(&bind.CallOpts{Context: ctx})
	if err != nil {
		return 0, fmt.Errorf("getStats2: %w", err)
	}
	return stats.NumBatches, nil
}

func (r *pacayaReader) lastBlockID(ctx context.Context) (uint64, error) {
	opts := &bind.CallOpts{Context: ctx}
	stats, err := r.inbox.GetStats2(opts)
	if err != nil {
		return 0, fmt.Errorf("getStats2: %w", err)
	}
	batch, err := r.inbox.GetBatch(opts, stats.NumBatches-1)
	if err != nil {
		return 0, fmt.Errorf("getBatch(%d): %w", stats.NumBatches-1, err)
	}
	return batch.LastBlockId, nil
}

func (r *pacayaReader) proposalsSince(ctx context.Context, fromBlock uint64) ([]*Proposal, error) {
	it, err := r.inbox.FilterBatchProposed(&bind.FilterOpts{Start: fromBlock, Context: ctx})
	if err != nil {
		return nil, fmt.Errorf("filtering BatchProposed logs: %w", err)
	}
	defer it.Close()

	var out []*Proposal
	for it.Next() {
		ev := it.Event
		out = append(out, &Proposal{
			Variant:            config.VariantPacaya,
			ID:                 ev.Meta.BatchId,
			Proposer:           ev.Meta.Proposer,
			TxHash:             ev.Raw.TxHash,
			BlockNumber:        ev.Raw.BlockNumber,
			ProposedAt:         ev.Meta.ProposedAt,
			LastBlockID:        ev.Info.LastBlockId,
			LastBlockTimestamp: ev.Info.LastBlockTimestamp,
		})
	}
	if err := it.Error(); err != nil {
		return nil, fmt.Errorf("reading BatchProposed logs: %w", err)
	}
	return out, nil
}

func (r *pacayaReader) storeState(ctx context.Context) (uint64, uint64, error) {
	opts := &bind.CallOpts{Context: ctx}
	head, err := r.store.Head(opts)
	if err != nil {
		return 0, 0, fmt.Errorf("forced inclusion head: %w", err)
	}
	tail, err := r.store.Tail(opts)
	if err != nil {
		return 0, 0, fmt.Errorf("forced inclusion tail: %w", err)
	}
	return head, tail, nil
}
