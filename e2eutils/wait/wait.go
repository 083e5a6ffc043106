// Package wait provides the bounded polling primitives every waiter in the
// harness is built on. The external system produces blocks and events on
// its own schedule; all the harness can do is poll with a budget and fail
// loudly when the budget runs out.
package wait

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
)

// ErrTimeout marks a bounded wait that exhausted its attempt budget.
var ErrTimeout = errors.New("timed out")

// Policy is an explicit retry budget. The predicate runs up to Attempts
// times with Interval pauses in between; exhaustion is an error, never a
// silent default.
type Policy struct {
	Attempts int
	Interval time.Duration
}

// Run polls fn until it reports done, errors, or the budget is exhausted.
func (p Policy) Run(ctx context.Context, fn func() (bool, error)) error {
	for i := 0; i < p.Attempts; i++ {
		done, err := fn()
		if err != nil {
			return err
		}
		if done {
			return nil
		}
		if i == p.Attempts-1 {
			break
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(p.Interval):
		}
	}
	return fmt.Errorf("%w after %d attempts (interval %s)", ErrTimeout, p.Attempts, p.Interval)
}

// For polls fn at the given interval until it reports done or the context
// is cancelled. Use a Policy when the wait must be bounded.
func For(ctx context.Context, interval time.Duration, fn func() (bool, error)) error {
	tick := time.NewTicker(interval)
	defer tick.Stop()

	for {
		// Perform the first check immediately, not after one interval.
		done, err := fn()
		if err != nil {
			return err
		}
		if done {
			return nil
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-tick.C:
		}
	}
}

// ReceiptReader is the receipt lookup surface of an ethclient.
type ReceiptReader interface {
	TransactionReceipt(ctx context.Context, txHash common.Hash) (*types.Receipt, error)
}

// BlockNumberReader is the chain height surface of an ethclient.
type BlockNumberReader interface {
	BlockNumber(ctx context.Context) (uint64, error)
}

// Ten seconds covers one preconfirmed block on any sane heartbeat.
var inclusionPolicy = Policy{Attempts: 10, Interval: time.Second}

// ForReceipt waits up to ten seconds for the transaction to be included
// with a successful status. A revert or an exhausted budget yields ok=false
// rather than an error; callers decide whether that is fatal.
func ForReceipt(ctx context.Context, client ReceiptReader, txHash common.Hash) (bool, error) {
	var status uint64
	err := inclusionPolicy.Run(ctx, func() (bool, error) {
		receipt, err := client.TransactionReceipt(ctx, txHash)
		if err != nil {
			// Not found yet; keep polling.
			return false, nil
		}
		status = receipt.Status
		return true, nil
	})
	if errors.Is(err, ErrTimeout) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return status == types.ReceiptStatusSuccessful, nil
}

// ForNewBlock waits up to ten seconds for the chain height to exceed the
// given block number.
func ForNewBlock(ctx context.Context, client BlockNumberReader, above uint64) (bool, error) {
	err := inclusionPolicy.Run(ctx, func() (bool, error) {
		n, err := client.BlockNumber(ctx)
		if err != nil {
			return false, err
		}
		return n > above, nil
	})
	if errors.Is(err, ErrTimeout) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}
