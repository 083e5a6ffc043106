package beacon

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSpecIsCached(t *testing.T) {
	var specCalls atomic.Int64
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/eth/v1/config/spec", r.URL.Path)
		specCalls.Add(1)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"data":{"SLOTS_PER_EPOCH":"32","SECONDS_PER_SLOT":"12"}}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	for i := 0; i < 3; i++ {
		spec, err := c.Spec(context.Background())
		require.NoError(t, err)
		require.Equal(t, uint64(32), spec.SlotsPerEpoch)
		require.Equal(t, uint64(12), spec.SecondsPerSlot)
	}
	require.Equal(t, int64(1), specCalls.Load())
}

func TestHeadSlotNotCached(t *testing.T) {
	var calls atomic.Int64
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/eth/v1/node/syncing", r.URL.Path)
		calls.Add(1)
		w.Header().Set("Content-Type", "application/json")
		if calls.Load() == 1 {
			_, _ = w.Write([]byte(`{"data":{"head_slot":"100","is_syncing":false}}`))
		} else {
			_, _ = w.Write([]byte(`{"data":{"head_slot":"101","is_syncing":false}}`))
		}
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	slot, err := c.HeadSlot(context.Background())
	require.NoError(t, err)
	require.Equal(t, uint64(100), slot)

	slot, err = c.HeadSlot(context.Background())
	require.NoError(t, err)
	require.Equal(t, uint64(101), slot)
}

func TestErrorStatusSurfacesBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "beacon node unavailable", http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	_, err := c.Spec(context.Background())
	require.ErrorContains(t, err, "503")
	require.ErrorContains(t, err, "beacon node unavailable")

	_, err = c.HeadSlot(context.Background())
	require.ErrorContains(t, err, "503")
}

func TestMalformedSpecValue(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"data":{"SLOTS_PER_EPOCH":"","SECONDS_PER_SLOT":"12"}}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	_, err := c.Spec(context.Background())
	require.ErrorContains(t, err, "SLOTS_PER_EPOCH")
}
