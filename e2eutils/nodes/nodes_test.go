package nodes

import (
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/require"

	"github.com/nethswitchboard/catalyst-e2e/config"
)

func TestContainerName(t *testing.T) {
	name, err := containerName(1)
	require.NoError(t, err)
	require.Equal(t, "catalyst-node-1", name)

	name, err = containerName(2)
	require.NoError(t, err)
	require.Equal(t, "catalyst-node-2", name)

	_, err = containerName(3)
	require.ErrorContains(t, err, "no catalyst node numbered 3")
	_, err = containerName(0)
	require.Error(t, err)
}

func TestImageFor(t *testing.T) {
	require.Equal(t, "nethswitchboard/taiko-forced-inclusion-toolbox", imageFor(config.VariantPacaya))
	require.Equal(t, "nethswitchboard/taiko-forced-inclusion-toolbox:shasta", imageFor(config.VariantShasta))
}

func TestParseTxHash(t *testing.T) {
	out := `2026-01-12T10:04:01Z INF forced inclusion sent fee=120000 hash=0xAbC123def0000000000000000000000000000000000000000000000000000001 nonce=4
2026-01-12T10:04:01Z INF done`
	h, err := parseTxHash(out)
	require.NoError(t, err)
	require.Equal(t, common.HexToHash("0xabc123def0000000000000000000000000000000000000000000000000000001"), h)
}

func TestParseTxHashPicksFirstMatch(t *testing.T) {
	out := "hash=0x1111111111111111111111111111111111111111111111111111111111111111\n" +
		"hash=0x2222222222222222222222222222222222222222222222222222222222222222\n"
	h, err := parseTxHash(out)
	require.NoError(t, err)
	require.Equal(t, common.HexToHash("0x1111111111111111111111111111111111111111111111111111111111111111"), h)
}

func TestParseTxHashMissing(t *testing.T) {
	_, err := parseTxHash("no hash here, only hash=0x1234 truncated")
	require.ErrorContains(t, err, "no transaction hash")
}
