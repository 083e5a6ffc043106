package slots

import (
	"context"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/log"
	"github.com/stretchr/testify/require"

	"github.com/nethswitchboard/catalyst-e2e/e2eutils/beacon"
	"github.com/nethswitchboard/catalyst-e2e/e2eutils/testlog"
)

type fakeBeacon struct {
	spec beacon.Spec
	head uint64
}

func (f *fakeBeacon) Spec(context.Context) (beacon.Spec, error) { return f.spec, nil }
func (f *fakeBeacon) HeadSlot(context.Context) (uint64, error)  { return f.head, nil }

func newTestClock(t *testing.T, head uint64, unixNow int64) *Clock {
	c := NewClock(&fakeBeacon{
		spec: beacon.Spec{SlotsPerEpoch: 32, SecondsPerSlot: 12},
		head: head,
	}, testlog.Logger(t, log.LevelDebug))
	c.now = func() time.Time { return time.Unix(unixNow, 0) }
	return c
}

// alignedBase is an arbitrary wall-clock second sitting exactly on a slot
// boundary, so tests can place "now" at a chosen offset within the slot.
const alignedBase int64 = 1_755_000_000 - 1_755_000_000%12

func TestUntilSlotLandsInsideTargetSlot(t *testing.T) {
	ctx := context.Background()
	for slot := uint64(0); slot < 32; slot++ {
		for target := uint64(0); target < 32; target++ {
			for _, offset := range []int64{0, 1, 5, 11} {
				c := newTestClock(t, 96+slot, alignedBase+offset)

				d, err := c.UntilSlot(ctx, target)
				require.NoError(t, err)
				secs := int64(d / time.Second)

				require.GreaterOrEqual(t, secs, int64(2),
					"slot=%d target=%d offset=%d", slot, target, offset)

				// Advancing the wall clock by the returned wait must land
				// one second into the requested slot position.
				require.EqualValues(t, 1, (offset+secs)%12,
					"slot=%d target=%d offset=%d", slot, target, offset)
				advanced := (offset + secs) / 12
				require.EqualValues(t, target, (int64(slot)+advanced)%32,
					"slot=%d target=%d offset=%d", slot, target, offset)
			}
		}
	}
}

func TestUntilSlotAtTargetWaitsFullEpoch(t *testing.T) {
	ctx := context.Background()
	c := newTestClock(t, 96+7, alignedBase+4)

	d, err := c.UntilSlot(ctx, 7)
	require.NoError(t, err)
	// 8s left in the current slot, then 31 whole slots, then the margin.
	require.Equal(t, time.Duration(8+31*12+1)*time.Second, d)
}

func TestUntilNextSlotWrapsAroundEpoch(t *testing.T) {
	ctx := context.Background()
	c := newTestClock(t, 96+31, alignedBase)

	d, err := c.UntilNextSlot(ctx)
	require.NoError(t, err)

	want, err := c.UntilSlot(ctx, 0)
	require.NoError(t, err)
	require.Equal(t, want, d)
}

func TestUntilHandover(t *testing.T) {
	ctx := context.Background()

	c := newTestClock(t, 96+10, alignedBase)
	d, err := c.UntilHandover(ctx)
	require.NoError(t, err)
	require.Equal(t, time.Duration(18*12)*time.Second, d)

	for _, slot := range []uint64{28, 29, 31} {
		c := newTestClock(t, 96+slot, alignedBase)
		d, err := c.UntilHandover(ctx)
		require.NoError(t, err)
		require.Zero(t, d, "slot=%d", slot)
	}
}

func TestWaitHandoverInsideWindowReturnsImmediately(t *testing.T) {
	c := newTestClock(t, 96+30, alignedBase)
	require.NoError(t, c.WaitHandover(context.Background()))
}

func TestWaitSlotHonorsContext(t *testing.T) {
	c := newTestClock(t, 96, alignedBase)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := c.WaitSlot(ctx, 5)
	require.ErrorIs(t, err, context.Canceled)
}

func TestSlotDuration(t *testing.T) {
	c := newTestClock(t, 96, alignedBase)
	d, err := c.SlotDuration(context.Background())
	require.NoError(t, err)
	require.Equal(t, 12*time.Second, d)
}
