// Package slots aligns harness actions with L1 slot and epoch boundaries.
// All timing decisions run through the Clock so scenarios never do their own
// slot arithmetic.
package slots

import (
	"context"
	"fmt"
	"time"

	"github.com/ethereum/go-ethereum/log"

	"github.com/nethswitchboard/catalyst-e2e/e2eutils/beacon"
)

// HandoverSlot is where the operator handover window opens. The scenario
// slot numbers in this repository assume 32-slot epochs; revisit if the
// devnet ever runs a different epoch length.
const HandoverSlot = 28

// BeaconReader is the beacon-client surface the clock needs.
type BeaconReader interface {
	Spec(ctx context.Context) (beacon.Spec, error)
	HeadSlot(ctx context.Context) (uint64, error)
}

type Clock struct {
	beacon BeaconReader
	log    log.Logger
	now    func() time.Time
}

func NewClock(b BeaconReader, logger log.Logger) *Clock {
	return &Clock{beacon: b, log: logger, now: time.Now}
}

// SlotInEpoch returns the head slot's position within its epoch.
func (c *Clock) SlotInEpoch(ctx context.Context) (uint64, error) {
	spec, err := c.beacon.Spec(ctx)
	if err != nil {
		return 0, err
	}
	headSlot, err := c.beacon.HeadSlot(ctx)
	if err != nil {
		return 0, err
	}
	return headSlot % spec.SlotsPerEpoch, nil
}

// SlotDuration returns the L1 slot time.
func (c *Clock) SlotDuration(ctx context.Context) (time.Duration, error) {
	spec, err := c.beacon.Spec(ctx)
	if err != nil {
		return 0, err
	}
	return time.Duration(spec.SecondsPerSlot) * time.Second, nil
}

// UntilSlot computes how long to wait to land just inside the next
// occurrence of the target slot position. Being exactly at the target slot
// counts as a full epoch away; rounding back onto the current slot would
// defeat every wait-for-window caller. The extra second guarantees the wait
// overshoots the boundary instead of landing on it.
func (c *Clock) UntilSlot(ctx context.Context, targetSlot uint64) (time.Duration, error) {
	spec, err := c.beacon.Spec(ctx)
	if err != nil {
		return 0, err
	}
	slotInEpoch, err := c.SlotInEpoch(ctx)
	if err != nil {
		return 0, err
	}

	slotsToWait := int64((spec.SlotsPerEpoch-slotInEpoch+targetSlot)%spec.SlotsPerEpoch) - 1
	if slotsToWait < 0 {
		slotsToWait = int64(spec.SlotsPerEpoch) - 1
	}
	untilEndOfSlot := spec.SecondsPerSlot - uint64(c.now().Unix())%spec.SecondsPerSlot

	seconds := untilEndOfSlot + uint64(slotsToWait)*spec.SecondsPerSlot + 1
	c.log.Debug("computed slot wait", "slot_in_epoch", slotInEpoch, "target_slot", targetSlot, "seconds", seconds)
	return time.Duration(seconds) * time.Second, nil
}

// UntilNextSlot is UntilSlot for the position after the current one.
func (c *Clock) UntilNextSlot(ctx context.Context) (time.Duration, error) {
	slotInEpoch, err := c.SlotInEpoch(ctx)
	if err != nil {
		return 0, err
	}
	return c.UntilSlot(ctx, slotInEpoch+1)
}

// UntilHandover returns how long until the handover window of the current
// epoch opens, or zero if it is already open.
func (c *Clock) UntilHandover(ctx context.Context) (time.Duration, error) {
	spec, err := c.beacon.Spec(ctx)
	if err != nil {
		return 0, err
	}
	slotInEpoch, err := c.SlotInEpoch(ctx)
	if err != nil {
		return 0, err
	}
	if slotInEpoch >= HandoverSlot {
		return 0, nil
	}
	return time.Duration((HandoverSlot-slotInEpoch)*spec.SecondsPerSlot) * time.Second, nil
}

// WaitSlot blocks until the chain is at the beginning of the target slot
// position.
func (c *Clock) WaitSlot(ctx context.Context, targetSlot uint64) error {
	d, err := c.UntilSlot(ctx, targetSlot)
	if err != nil {
		return err
	}
	c.log.Info("waiting for slot", "target_slot", targetSlot, "wait", d)
	return c.sleep(ctx, d)
}

// WaitNextSlot blocks until the beginning of the next slot position.
func (c *Clock) WaitNextSlot(ctx context.Context) error {
	d, err := c.UntilNextSlot(ctx)
	if err != nil {
		return err
	}
	c.log.Info("waiting for next slot", "wait", d)
	return c.sleep(ctx, d)
}

// WaitHandover blocks until the handover window of the current epoch.
func (c *Clock) WaitHandover(ctx context.Context) error {
	d, err := c.UntilHandover(ctx)
	if err != nil {
		return err
	}
	c.log.Info("waiting for handover window", "wait", d)
	return c.sleep(ctx, d)
}

// WaitNextL1SlotBoundary blocks until the next wall-clock slot boundary,
// without the overshoot margin of WaitSlot. Used between spam rounds to pace
// block production against L1.
func (c *Clock) WaitNextL1SlotBoundary(ctx context.Context) error {
	spec, err := c.beacon.Spec(ctx)
	if err != nil {
		return err
	}
	seconds := spec.SecondsPerSlot - uint64(c.now().Unix())%spec.SecondsPerSlot
	return c.sleep(ctx, time.Duration(seconds)*time.Second)
}

func (c *Clock) sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}
	select {
	case <-ctx.Done():
		return fmt.Errorf("interrupted %s before reaching target slot: %w", d, ctx.Err())
	case <-time.After(d):
		return nil
	}
}
