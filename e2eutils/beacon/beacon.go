// Package beacon is a minimal consensus-layer REST client. The harness only
// needs the chain spec and the current head slot to align its actions with
// L1 slot boundaries.
package beacon

import (
	"context"
	"fmt"
	"strconv"
	"sync"

	"github.com/go-resty/resty/v2"
)

// Spec holds the two chain constants the slot clock runs on.
type Spec struct {
	SlotsPerEpoch  uint64
	SecondsPerSlot uint64
}

type Client struct {
	rc *resty.Client

	mu   sync.Mutex
	spec *Spec
}

func NewClient(baseURL string) *Client {
	return &Client{rc: resty.New().SetBaseURL(baseURL)}
}

type specResponse struct {
	Data struct {
		SlotsPerEpoch  string `json:"SLOTS_PER_EPOCH"`
		SecondsPerSlot string `json:"SECONDS_PER_SLOT"`
	} `json:"data"`
}

type syncingResponse struct {
	Data struct {
		HeadSlot  string `json:"head_slot"`
		IsSyncing bool   `json:"is_syncing"`
	} `json:"data"`
}

// Spec fetches the chain spec. The values are immutable chain constants, so
// the first successful response is cached for the lifetime of the client.
func (c *Client) Spec(ctx context.Context) (Spec, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.spec != nil {
		return *c.spec, nil
	}

	var out specResponse
	resp, err := c.rc.R().SetContext(ctx).SetResult(&out).Get("/eth/v1/config/spec")
	if err != nil {
		return Spec{}, fmt.Errorf("fetch beacon spec: %w", err)
	}
	if resp.IsError() {
		return Spec{}, fmt.Errorf("fetch beacon spec: status %s: %s", resp.Status(), resp.String())
	}

	slotsPerEpoch, err := strconv.ParseUint(out.Data.SlotsPerEpoch, 10, 64)
	if err != nil {
		return Spec{}, fmt.Errorf("parse SLOTS_PER_EPOCH %q: %w", out.Data.SlotsPerEpoch, err)
	}
	secondsPerSlot, err := strconv.ParseUint(out.Data.SecondsPerSlot, 10, 64)
	if err != nil {
		return Spec{}, fmt.Errorf("parse SECONDS_PER_SLOT %q: %w", out.Data.SecondsPerSlot, err)
	}

	c.spec = &Spec{SlotsPerEpoch: slotsPerEpoch, SecondsPerSlot: secondsPerSlot}
	return *c.spec, nil
}

// HeadSlot returns the node's current head slot. Never cached.
func (c *Client) HeadSlot(ctx context.Context) (uint64, error) {
	var out syncingResponse
	resp, err := c.rc.R().SetContext(ctx).SetResult(&out).Get("/eth/v1/node/syncing")
	if err != nil {
		return 0, fmt.Errorf("fetch beacon syncing status: %w", err)
	}
	if resp.IsError() {
		return 0, fmt.Errorf("fetch beacon syncing status: status %s: %s", resp.Status(), resp.String())
	}

	headSlot, err := strconv.ParseUint(out.Data.HeadSlot, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("parse head_slot %q: %w", out.Data.HeadSlot, err)
	}
	return headSlot, nil
}
