// Package config loads the immutable environment-derived configuration
// shared by every scenario and tool in this repository.
package config

import (
	"crypto/ecdsa"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/joho/godotenv"
)

// Variant selects which inbox contract generation the devnet runs.
type Variant string

const (
	VariantPacaya Variant = "pacaya"
	VariantShasta Variant = "shasta"
)

// ParseVariant validates a protocol tag read from the environment.
func ParseVariant(s string) (Variant, error) {
	switch Variant(s) {
	case VariantPacaya, VariantShasta:
		return Variant(s), nil
	default:
		return "", fmt.Errorf("invalid PROTOCOL %q, must be %q or %q", s, VariantPacaya, VariantShasta)
	}
}

// Config is loaded once per session and read-only afterwards.
type Config struct {
	// Funded L2 accounts. The first doubles as the operator-1 identity on
	// the whitelist.
	L2PrefundedKey  *ecdsa.PrivateKey
	L2PrefundedKey2 *ecdsa.PrivateKey
	// Sender used by the forced-inclusion toolbox. Kept separate from the
	// funded keys so its nonce only moves when a forced inclusion lands.
	ForcedInclusionKey *ecdsa.PrivateKey

	L2PrefundedAddr       common.Address
	L2PrefundedAddr2      common.Address
	ForcedInclusionSender common.Address

	InboxAddress             common.Address
	WhitelistAddress         common.Address
	ForcedInclusionStoreAddr common.Address

	PreconfMinTxs     uint64
	PreconfHeartbeat  time.Duration
	MaxBlocksPerBatch uint64
	Protocol          Variant

	L1RPCURL     string
	L2RPCURL     string
	L2RPCURL2    string
	BeaconRPCURL string

	// Raw key material, preserved verbatim for handoff to the
	// forced-inclusion toolbox environment.
	rawPrefundedKey  string
	rawPrefundedKey2 string
	rawFIKey         string
}

func (c *Config) IsPacaya() bool { return c.Protocol == VariantPacaya }
func (c *Config) IsShasta() bool { return c.Protocol == VariantShasta }

// TwoL2Slots is the pacing delay used when one L2 block should form every
// other heartbeat.
func (c *Config) TwoL2Slots() time.Duration {
	return 2 * c.PreconfHeartbeat
}

// EnvStrings reproduces the configuration as KEY=VALUE pairs, in the shape
// the forced-inclusion toolbox container expects.
func (c *Config) EnvStrings() []string {
	return []string{
		"TEST_L2_PREFUNDED_PRIVATE_KEY=" + c.rawPrefundedKey,
		"TEST_L2_PREFUNDED_PRIVATE_KEY_2=" + c.rawPrefundedKey2,
		"L2_PRIVATE_KEY=" + c.rawFIKey,
		"TAIKO_INBOX_ADDRESS=" + c.InboxAddress.Hex(),
		"PRECONF_WHITELIST_ADDRESS=" + c.WhitelistAddress.Hex(),
		"FORCED_INCLUSION_STORE_ADDRESS=" + c.ForcedInclusionStoreAddr.Hex(),
		"PRECONF_MIN_TXS=" + strconv.FormatUint(c.PreconfMinTxs, 10),
		"PRECONF_HEARTBEAT_MS=" + strconv.FormatInt(c.PreconfHeartbeat.Milliseconds(), 10),
		"MAX_BLOCKS_PER_BATCH=" + strconv.FormatUint(c.MaxBlocksPerBatch, 10),
		"PROTOCOL=" + string(c.Protocol),
		"L1_RPC_URL=" + c.L1RPCURL,
		"L2_RPC_URL_NODE1=" + c.L2RPCURL,
		"L2_RPC_URL_NODE2=" + c.L2RPCURL2,
		"BEACON_RPC_URL=" + c.BeaconRPCURL,
	}
}

// Load reads the full configuration from the environment. A `.env` file in
// the working directory is honored, but values already present in the
// environment win. Every missing or malformed value is a fatal error naming
// the variable.
func Load() (*Config, error) {
	// Best effort: running without a .env file is fine.
	_ = godotenv.Load()

	cfg := &Config{}
	var err error

	if cfg.rawPrefundedKey, cfg.L2PrefundedKey, cfg.L2PrefundedAddr, err = requireKey("TEST_L2_PREFUNDED_PRIVATE_KEY"); err != nil {
		return nil, err
	}
	if cfg.rawPrefundedKey2, cfg.L2PrefundedKey2, cfg.L2PrefundedAddr2, err = requireKey("TEST_L2_PREFUNDED_PRIVATE_KEY_2"); err != nil {
		return nil, err
	}
	if cfg.rawFIKey, cfg.ForcedInclusionKey, cfg.ForcedInclusionSender, err = requireKey("L2_PRIVATE_KEY"); err != nil {
		return nil, err
	}
	if cfg.InboxAddress, err = requireAddress("TAIKO_INBOX_ADDRESS"); err != nil {
		return nil, err
	}
	if cfg.WhitelistAddress, err = requireAddress("PRECONF_WHITELIST_ADDRESS"); err != nil {
		return nil, err
	}
	if cfg.ForcedInclusionStoreAddr, err = requireAddress("FORCED_INCLUSION_STORE_ADDRESS"); err != nil {
		return nil, err
	}
	if cfg.PreconfMinTxs, err = requireUint("PRECONF_MIN_TXS"); err != nil {
		return nil, err
	}

	// Heartbeat and batch size treat zero as unset.
	heartbeatMS, err := requireNonZeroUint("PRECONF_HEARTBEAT_MS")
	if err != nil {
		return nil, err
	}
	cfg.PreconfHeartbeat = time.Duration(heartbeatMS) * time.Millisecond
	if cfg.MaxBlocksPerBatch, err = requireNonZeroUint("MAX_BLOCKS_PER_BATCH"); err != nil {
		return nil, err
	}

	protocol, err := requireEnv("PROTOCOL")
	if err != nil {
		return nil, err
	}
	if cfg.Protocol, err = ParseVariant(protocol); err != nil {
		return nil, err
	}

	if cfg.L1RPCURL, err = requireEnv("L1_RPC_URL"); err != nil {
		return nil, err
	}
	if cfg.L2RPCURL, err = requireEnv("L2_RPC_URL_NODE1"); err != nil {
		return nil, err
	}
	if cfg.L2RPCURL2, err = requireEnv("L2_RPC_URL_NODE2"); err != nil {
		return nil, err
	}
	if cfg.BeaconRPCURL, err = requireEnv("BEACON_RPC_URL"); err != nil {
		return nil, err
	}

	return cfg, nil
}

func requireEnv(name string) (string, error) {
	v := os.Getenv(name)
	if v == "" {
		return "", fmt.Errorf("environment variable %s not set", name)
	}
	return v, nil
}

func requireKey(name string) (string, *ecdsa.PrivateKey, common.Address, error) {
	raw, err := requireEnv(name)
	if err != nil {
		return "", nil, common.Address{}, err
	}
	key, err := crypto.HexToECDSA(strings.TrimPrefix(raw, "0x"))
	if err != nil {
		return "", nil, common.Address{}, fmt.Errorf("%s: invalid private key: %w", name, err)
	}
	return raw, key, crypto.PubkeyToAddress(key.PublicKey), nil
}

func requireAddress(name string) (common.Address, error) {
	raw, err := requireEnv(name)
	if err != nil {
		return common.Address{}, err
	}
	if !common.IsHexAddress(raw) {
		return common.Address{}, fmt.Errorf("%s: %q is not a hex address", name, raw)
	}
	return common.HexToAddress(raw), nil
}

func requireUint(name string) (uint64, error) {
	raw, err := requireEnv(name)
	if err != nil {
		return 0, err
	}
	v, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", name, err)
	}
	return v, nil
}

func requireNonZeroUint(name string) (uint64, error) {
	v, err := strconv.ParseUint(os.Getenv(name), 10, 64)
	if err != nil || v == 0 {
		return 0, fmt.Errorf("environment variable %s not set", name)
	}
	return v, nil
}
