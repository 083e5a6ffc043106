// Package snapshot captures point-in-time chain state so scenarios can
// verify, after batches land on L1, that the preconfirmed history they
// observed was never rewritten.
package snapshot

import (
	"context"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/log"
)

// L2Reader is the chain state surface of an ethclient.
type L2Reader interface {
	NonceAt(ctx context.Context, account common.Address, blockNumber *big.Int) (uint64, error)
	BlockNumber(ctx context.Context) (uint64, error)
	HeaderByNumber(ctx context.Context, number *big.Int) (*types.Header, error)
}

// BatchReader yields the inbox's batch cursor, whatever the deployment calls
// it.
type BatchReader interface {
	LastBatchID(ctx context.Context) (uint64, error)
}

// SlotReader tells which L1 slot of the epoch a capture happened in.
type SlotReader interface {
	SlotInEpoch(ctx context.Context) (uint64, error)
}

// ChainInfo is one captured view of the chain. The forced inclusion sender's
// nonce only ever moves when a forced inclusion is executed, which makes it
// the cheapest probe for whether one landed between two captures.
type ChainInfo struct {
	FISenderNonce uint64
	BatchID       uint64
	BlockNumber   uint64
	BlockHash     common.Hash
}

// CheckReorg verifies the block captured earlier is still canonical: the head
// must not have moved backwards past it and the hash at its height must be
// unchanged.
func (info *ChainInfo) CheckReorg(ctx context.Context, l2 L2Reader) error {
	head, err := l2.BlockNumber(ctx)
	if err != nil {
		return fmt.Errorf("reading head: %w", err)
	}
	if info.BlockNumber > head {
		return fmt.Errorf("captured block %d is above the current head %d", info.BlockNumber, head)
	}
	header, err := l2.HeaderByNumber(ctx, new(big.Int).SetUint64(info.BlockNumber))
	if err != nil {
		return fmt.Errorf("reading block %d: %w", info.BlockNumber, err)
	}
	if got := header.Hash(); got != info.BlockHash {
		return fmt.Errorf("reorg detected at block %d: captured hash %s, current hash %s", info.BlockNumber, info.BlockHash, got)
	}
	return nil
}

// Recorder captures ChainInfo from the devnet.
type Recorder struct {
	log      log.Logger
	l2       L2Reader
	batches  BatchReader
	slot     SlotReader
	fiSender common.Address
}

func NewRecorder(l2 L2Reader, batches BatchReader, slot SlotReader, fiSender common.Address, logger log.Logger) *Recorder {
	return &Recorder{
		log:      logger,
		l2:       l2,
		batches:  batches,
		slot:     slot,
		fiSender: fiSender,
	}
}

// Capture reads the chain state as of now and logs it alongside the L1 slot
// position, which is what places the capture on the epoch timeline when
// reading scenario output.
func (r *Recorder) Capture(ctx context.Context) (*ChainInfo, error) {
	slot, err := r.slot.SlotInEpoch(ctx)
	if err != nil {
		return nil, fmt.Errorf("reading slot in epoch: %w", err)
	}
	nonce, err := r.l2.NonceAt(ctx, r.fiSender, nil)
	if err != nil {
		return nil, fmt.Errorf("reading forced inclusion sender nonce: %w", err)
	}
	batchID, err := r.batches.LastBatchID(ctx)
	if err != nil {
		return nil, fmt.Errorf("reading batch cursor: %w", err)
	}
	number, err := r.l2.BlockNumber(ctx)
	if err != nil {
		return nil, fmt.Errorf("reading head: %w", err)
	}
	header, err := r.l2.HeaderByNumber(ctx, new(big.Int).SetUint64(number))
	if err != nil {
		return nil, fmt.Errorf("reading block %d: %w", number, err)
	}

	info := &ChainInfo{
		FISenderNonce: nonce,
		BatchID:       batchID,
		BlockNumber:   number,
		BlockHash:     header.Hash(),
	}
	r.log.Info("chain snapshot",
		"slot_in_epoch", slot,
		"fi_sender_nonce", info.FISenderNonce,
		"batch_id", info.BatchID,
		"block_number", info.BlockNumber,
		"block_hash", info.BlockHash)
	return info, nil
}
