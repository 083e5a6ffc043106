package transactions

import (
	"context"
	"crypto/ecdsa"
	"errors"
	"math/big"
	"sync"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/ethereum/go-ethereum/log"
	"github.com/stretchr/testify/require"

	"github.com/nethswitchboard/catalyst-e2e/e2eutils/testlog"
)

type fakeClient struct {
	mu           sync.Mutex
	baseFee      *big.Int
	tip          *big.Int
	nonce        uint64
	nonceCalls   int
	height       uint64
	sent         []*types.Transaction
	receipts     map[common.Hash]*types.Receipt
	receiptCalls int
	sendErr      error
}

func newFakeClient() *fakeClient {
	return &fakeClient{
		baseFee:  big.NewInt(1000),
		tip:      big.NewInt(5),
		receipts: map[common.Hash]*types.Receipt{},
	}
}

func (f *fakeClient) ChainID(context.Context) (*big.Int, error) {
	return big.NewInt(167001), nil
}

func (f *fakeClient) HeaderByNumber(context.Context, *big.Int) (*types.Header, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return &types.Header{Number: big.NewInt(int64(f.height)), BaseFee: f.baseFee}, nil
}

func (f *fakeClient) SuggestGasTipCap(context.Context) (*big.Int, error) {
	return f.tip, nil
}

func (f *fakeClient) NonceAt(context.Context, common.Address, *big.Int) (uint64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.nonceCalls++
	return f.nonce, nil
}

func (f *fakeClient) SendTransaction(_ context.Context, tx *types.Transaction) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.sendErr != nil {
		return f.sendErr
	}
	f.sent = append(f.sent, tx)
	// Every accepted transaction is preconfirmed immediately.
	f.receipts[tx.Hash()] = &types.Receipt{Status: types.ReceiptStatusSuccessful}
	f.nonce = tx.Nonce() + 1
	f.height++
	return nil
}

func (f *fakeClient) TransactionReceipt(_ context.Context, txHash common.Hash) (*types.Receipt, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.receiptCalls++
	if r, ok := f.receipts[txHash]; ok {
		return r, nil
	}
	return nil, ethereum.NotFound
}

func (f *fakeClient) BlockNumber(context.Context) (uint64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.height, nil
}

func (f *fakeClient) sentNonces() []uint64 {
	f.mu.Lock()
	defer f.mu.Unlock()
	nonces := make([]uint64, len(f.sent))
	for i, tx := range f.sent {
		nonces[i] = tx.Nonce()
	}
	return nonces
}

func testKey(t *testing.T) *ecdsa.PrivateKey {
	t.Helper()
	key, err := crypto.GenerateKey()
	require.NoError(t, err)
	return key
}

func newTestDriver(t *testing.T, client *fakeClient) *Driver {
	t.Helper()
	return NewDriver("node1", client, testKey(t), testlog.Logger(t, log.LevelDebug))
}

func TestSendAppliesBaseFeeFloor(t *testing.T) {
	client := newFakeClient()
	client.baseFee = big.NewInt(1000)
	d := newTestDriver(t, client)

	_, err := d.Transfer(context.Background(), Gwei(50_000))
	require.NoError(t, err)

	require.Len(t, client.sent, 1)
	tx := client.sent[0]
	require.Equal(t, uint8(types.DynamicFeeTxType), tx.Type())
	require.Equal(t, spamRecipient, *tx.To())
	require.Equal(t, uint64(spamGasLimit), tx.Gas())
	require.Equal(t, Gwei(50_000), tx.Value())
	require.Equal(t, big.NewInt(5), tx.GasTipCap())
	// 2 * 25_000_000 floor + 5 tip.
	require.Equal(t, big.NewInt(50_000_005), tx.GasFeeCap())
}

func TestSendDoublesBaseFeeAboveFloor(t *testing.T) {
	client := newFakeClient()
	client.baseFee = big.NewInt(30_000_000)
	client.tip = big.NewInt(7)
	d := newTestDriver(t, client)

	_, err := d.Transfer(context.Background(), SpamValue)
	require.NoError(t, err)

	require.Equal(t, big.NewInt(60_000_007), client.sent[0].GasFeeCap())
}

func TestSpamTxsRefetchesNonceEachTx(t *testing.T) {
	client := newFakeClient()
	client.nonce = 5
	d := newTestDriver(t, client)

	last, err := d.SpamTxs(context.Background(), 3)
	require.NoError(t, err)

	require.Equal(t, []uint64{5, 6, 7}, client.sentNonces())
	require.Equal(t, 3, client.nonceCalls)
	require.Equal(t, client.sent[2].Hash(), last)
}

func TestSpamBlocksSendsBatchPerBlock(t *testing.T) {
	client := newFakeClient()
	d := newTestDriver(t, client)

	last, err := d.SpamBlocks(context.Background(), 2, 3)
	require.NoError(t, err)

	require.Equal(t, []uint64{0, 1, 2, 3, 4, 5}, client.sentNonces())
	// One nonce fetch per block, not per transaction.
	require.Equal(t, 2, client.nonceCalls)
	require.Equal(t, client.sent[5].Hash(), last)
}

func TestSpamTxsWaitLastManagesNoncesLocally(t *testing.T) {
	client := newFakeClient()
	client.nonce = 9
	d := newTestDriver(t, client)

	last, err := d.SpamTxsWaitLast(context.Background(), 4, time.Millisecond)
	require.NoError(t, err)

	require.Equal(t, []uint64{9, 10, 11, 12}, client.sentNonces())
	require.Equal(t, 1, client.nonceCalls)
	require.Equal(t, client.sent[3].Hash(), last)
	// Only the final transaction's receipt is consulted.
	require.Equal(t, 1, client.receiptCalls)
}

func TestSendBurstSkipsInclusionChecks(t *testing.T) {
	client := newFakeClient()
	d := newTestDriver(t, client)

	require.NoError(t, d.SendBurst(context.Background(), 3))

	require.Equal(t, []uint64{0, 1, 2}, client.sentNonces())
	require.Zero(t, client.receiptCalls)
}

func TestWaitIncludedReportsRevert(t *testing.T) {
	client := newFakeClient()
	d := newTestDriver(t, client)

	hash, err := d.Transfer(context.Background(), SpamValue)
	require.NoError(t, err)
	client.receipts[hash] = &types.Receipt{Status: types.ReceiptStatusFailed}

	ok, err := d.WaitIncluded(context.Background(), hash)
	require.NoError(t, err)
	require.False(t, ok)
}

func TestSendWrapsSubmissionError(t *testing.T) {
	client := newFakeClient()
	client.sendErr = errors.New("txpool full")
	d := newTestDriver(t, client)

	_, err := d.Transfer(context.Background(), SpamValue)
	require.ErrorContains(t, err, "txpool full")
	require.ErrorContains(t, err, d.Sender().Hex())
}

func TestWaitNewBlock(t *testing.T) {
	client := newFakeClient()
	client.height = 4
	d := newTestDriver(t, client)

	ok, err := d.WaitNewBlock(context.Background(), 3)
	require.NoError(t, err)
	require.True(t, ok)
}
