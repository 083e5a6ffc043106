// Package transactions drives preconfirmed L2 transfers. The spam helpers
// are what make the sequencer build blocks: one transfer per block, bursts
// that fill a block, and paced streams that span several L2 slots.
package transactions

import (
	"context"
	"crypto/ecdsa"
	"fmt"
	"math/big"
	"sync"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/ethereum/go-ethereum/log"
	"github.com/ethereum/go-ethereum/params"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"golang.org/x/time/rate"

	"github.com/nethswitchboard/catalyst-e2e/e2eutils/wait"
)

const (
	metricsSubsystem = "catalyst_e2e"

	// spamGasLimit is deliberately above the 21000 a transfer needs; the
	// sequencer must include the transaction even with headroom requested.
	spamGasLimit = 40_000
)

// spamRecipient is the ecrecover precompile; value sent there is simply gone,
// which keeps spam from ever interfering with scenario accounting.
var spamRecipient = common.HexToAddress("0x0000000000000000000000000000000000000001")

// minBaseFee floors the fee calculation. Right after devnet genesis the base
// fee sits near zero and doubling it produces a cap the node rejects.
var minBaseFee = big.NewInt(25_000_000)

// SpamValue is the transfer amount of regular spam transactions. One-off
// transfers in scenarios use distinct amounts so flows can be told apart in
// block explorers.
var SpamValue = Gwei(90_000)

// Gwei returns n gwei as wei.
func Gwei(n int64) *big.Int {
	return new(big.Int).Mul(big.NewInt(n), big.NewInt(params.GWei))
}

var (
	txSubmissions = promauto.NewCounterVec(prometheus.CounterOpts{
		Name:      "tx_submissions_total",
		Subsystem: metricsSubsystem,
		Help:      "Transaction submission attempts by node and status",
	}, []string{"node", "status"})

	txInclusions = promauto.NewCounterVec(prometheus.CounterOpts{
		Name:      "tx_inclusions_total",
		Subsystem: metricsSubsystem,
		Help:      "Preconfirmation outcomes of submitted transactions by node",
	}, []string{"node", "result"})
)

// Client is the subset of ethclient.Client the driver needs.
type Client interface {
	ChainID(ctx context.Context) (*big.Int, error)
	HeaderByNumber(ctx context.Context, number *big.Int) (*types.Header, error)
	SuggestGasTipCap(ctx context.Context) (*big.Int, error)
	NonceAt(ctx context.Context, account common.Address, blockNumber *big.Int) (uint64, error)
	SendTransaction(ctx context.Context, tx *types.Transaction) error
	TransactionReceipt(ctx context.Context, txHash common.Hash) (*types.Receipt, error)
	BlockNumber(ctx context.Context) (uint64, error)
}

// Driver sends transfers from one funded account against one L2 node.
type Driver struct {
	name   string
	log    log.Logger
	client Client
	key    *ecdsa.PrivateKey
	sender common.Address

	mu      sync.Mutex
	chainID *big.Int
}

// NewDriver builds a driver named after the node it talks to; the name shows
// up in logs and metric labels.
func NewDriver(name string, client Client, key *ecdsa.PrivateKey, logger log.Logger) *Driver {
	return &Driver{
		name:   name,
		log:    logger,
		client: client,
		key:    key,
		sender: crypto.PubkeyToAddress(key.PublicKey),
	}
}

// Sender returns the driver's account address.
func (d *Driver) Sender() common.Address {
	return d.sender
}

func (d *Driver) getChainID(ctx context.Context) (*big.Int, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.chainID != nil {
		return d.chainID, nil
	}
	id, err := d.client.ChainID(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetching chain id: %w", err)
	}
	d.chainID = id
	return id, nil
}

func (d *Driver) fees(ctx context.Context) (tip, feeCap *big.Int, err error) {
	head, err := d.client.HeaderByNumber(ctx, nil)
	if err != nil {
		return nil, nil, fmt.Errorf("fetching head for base fee: %w", err)
	}
	baseFee := head.BaseFee
	if baseFee.Cmp(minBaseFee) < 0 {
		baseFee = minBaseFee
	}
	tip, err = d.client.SuggestGasTipCap(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("fetching tip cap: %w", err)
	}
	feeCap = new(big.Int).Add(new(big.Int).Mul(baseFee, big.NewInt(2)), tip)
	return tip, feeCap, nil
}

// Send signs and submits a transfer with an explicit nonce. Callers that
// don't manage nonces themselves want Transfer or the spam helpers.
func (d *Driver) Send(ctx context.Context, nonce uint64, value *big.Int) (common.Hash, error) {
	chainID, err := d.getChainID(ctx)
	if err != nil {
		return common.Hash{}, err
	}
	tip, feeCap, err := d.fees(ctx)
	if err != nil {
		return common.Hash{}, err
	}

	tx := types.MustSignNewTx(d.key, types.LatestSignerForChainID(chainID), &types.DynamicFeeTx{
		ChainID:   chainID,
		Nonce:     nonce,
		To:        &spamRecipient,
		Value:     value,
		Gas:       spamGasLimit,
		GasTipCap: tip,
		GasFeeCap: feeCap,
	})
	if err := d.client.SendTransaction(ctx, tx); err != nil {
		txSubmissions.WithLabelValues(d.name, "error").Inc()
		return common.Hash{}, fmt.Errorf("sending tx nonce %d from %s: %w", nonce, d.sender, err)
	}
	txSubmissions.WithLabelValues(d.name, "ok").Inc()
	d.log.Info("transaction sent", "node", d.name, "from", d.sender, "nonce", nonce, "tx", tx.Hash())
	return tx.Hash(), nil
}

// Transfer sends a single transfer at the account's current nonce.
func (d *Driver) Transfer(ctx context.Context, value *big.Int) (common.Hash, error) {
	nonce, err := d.nonce(ctx)
	if err != nil {
		return common.Hash{}, err
	}
	return d.Send(ctx, nonce, value)
}

// Nonce returns the sender's nonce at the latest block. Callers sending the
// same account through both nodes use it to line up nonces themselves.
func (d *Driver) Nonce(ctx context.Context) (uint64, error) {
	return d.nonce(ctx)
}

// WaitIncluded waits for the transaction to be preconfirmed. False means the
// node did not include it in time, or included it reverted; that is a result
// for the scenario to assert on, not an error.
func (d *Driver) WaitIncluded(ctx context.Context, txHash common.Hash) (bool, error) {
	ok, err := wait.ForReceipt(ctx, d.client, txHash)
	if err != nil {
		return false, err
	}
	if ok {
		txInclusions.WithLabelValues(d.name, "included").Inc()
	} else {
		txInclusions.WithLabelValues(d.name, "missed").Inc()
		d.log.Warn("transaction not preconfirmed in time", "node", d.name, "tx", txHash)
	}
	return ok, nil
}

// SpamTxs sends n transfers one at a time, waiting for each to be
// preconfirmed, and returns the hash of the last one. With preconf_min_txs=1
// every transfer lands in its own L2 block.
func (d *Driver) SpamTxs(ctx context.Context, n int) (common.Hash, error) {
	var last common.Hash
	for i := 0; i < n; i++ {
		nonce, err := d.nonce(ctx)
		if err != nil {
			return last, err
		}
		last, err = d.Send(ctx, nonce, SpamValue)
		if err != nil {
			return last, err
		}
		if _, err := d.WaitIncluded(ctx, last); err != nil {
			return last, err
		}
	}
	return last, nil
}

// SpamBlocks makes the sequencer produce n blocks by sending txsPerBlock
// transfers back to back and waiting for the batch of them to land before
// starting the next block.
func (d *Driver) SpamBlocks(ctx context.Context, n int, txsPerBlock uint64) (common.Hash, error) {
	d.log.Info("spamming blocks", "node", d.name, "blocks", n, "txs_per_block", txsPerBlock)
	var last common.Hash
	for i := 0; i < n; i++ {
		nonce, err := d.nonce(ctx)
		if err != nil {
			return last, err
		}
		for j := uint64(0); j < txsPerBlock; j++ {
			last, err = d.Send(ctx, nonce, SpamValue)
			if err != nil {
				return last, err
			}
			nonce++
		}
		if _, err := d.WaitIncluded(ctx, last); err != nil {
			return last, err
		}
	}
	return last, nil
}

// SpamTxsWaitLast sends n transfers paced by delay, managing nonces locally,
// and waits only for the final one. Pacing at the L2 slot time spreads the
// transfers across consecutive preconfirmed blocks.
func (d *Driver) SpamTxsWaitLast(ctx context.Context, n int, delay time.Duration) (common.Hash, error) {
	nonce, err := d.nonce(ctx)
	if err != nil {
		return common.Hash{}, err
	}
	limiter := rate.NewLimiter(rate.Every(delay), 1)

	var last common.Hash
	for i := 0; i < n; i++ {
		if err := limiter.Wait(ctx); err != nil {
			return last, fmt.Errorf("pacing interrupted: %w", err)
		}
		last, err = d.Send(ctx, nonce+uint64(i), SpamValue)
		if err != nil {
			return last, err
		}
	}
	if _, err := d.WaitIncluded(ctx, last); err != nil {
		return last, err
	}
	return last, nil
}

// SendBurst fires n transfers at consecutive nonces without waiting for any
// of them. Used to stuff a node's mempool before an operator change.
func (d *Driver) SendBurst(ctx context.Context, n int) error {
	nonce, err := d.nonce(ctx)
	if err != nil {
		return err
	}
	for i := 0; i < n; i++ {
		if _, err := d.Send(ctx, nonce+uint64(i), SpamValue); err != nil {
			return err
		}
	}
	return nil
}

// BlockNumber returns the node's current preconfirmed head height.
func (d *Driver) BlockNumber(ctx context.Context) (uint64, error) {
	return d.client.BlockNumber(ctx)
}

// WaitNewBlock waits for the node's head to move above the given height.
// False means it didn't within the inclusion budget.
func (d *Driver) WaitNewBlock(ctx context.Context, above uint64) (bool, error) {
	return wait.ForNewBlock(ctx, d.client, above)
}

func (d *Driver) nonce(ctx context.Context) (uint64, error) {
	nonce, err := d.client.NonceAt(ctx, d.sender, nil)
	if err != nil {
		return 0, fmt.Errorf("fetching nonce of %s: %w", d.sender, err)
	}
	return nonce, nil
}
