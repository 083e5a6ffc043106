package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Manifest describes a devnet in a checked-in YAML file, as an alternative
// to exporting every variable by hand. Key material is deliberately not
// part of the manifest; private keys come from the environment only.
type Manifest struct {
	Endpoints struct {
		L1RPC      string `yaml:"l1_rpc"`
		L2RPCNode1 string `yaml:"l2_rpc_node1"`
		L2RPCNode2 string `yaml:"l2_rpc_node2"`
		BeaconRPC  string `yaml:"beacon_rpc"`
	} `yaml:"endpoints"`
	Contracts struct {
		TaikoInbox           string `yaml:"taiko_inbox"`
		PreconfWhitelist     string `yaml:"preconf_whitelist"`
		ForcedInclusionStore string `yaml:"forced_inclusion_store"`
	} `yaml:"contracts"`
	Protocol string `yaml:"protocol"`
	Params   struct {
		PreconfMinTxs      uint64 `yaml:"preconf_min_txs"`
		PreconfHeartbeatMS uint64 `yaml:"preconf_heartbeat_ms"`
		MaxBlocksPerBatch  uint64 `yaml:"max_blocks_per_batch"`
	} `yaml:"params"`
}

// LoadManifest parses a devnet manifest file.
func LoadManifest(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read manifest: %w", err)
	}
	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parse manifest %s: %w", path, err)
	}
	return &m, nil
}

// SetDefaults exports the manifest values into the process environment,
// skipping any variable that is already set. Explicit environment always
// wins over the manifest.
func (m *Manifest) SetDefaults() error {
	defaults := map[string]string{
		"L1_RPC_URL":                     m.Endpoints.L1RPC,
		"L2_RPC_URL_NODE1":               m.Endpoints.L2RPCNode1,
		"L2_RPC_URL_NODE2":               m.Endpoints.L2RPCNode2,
		"BEACON_RPC_URL":                 m.Endpoints.BeaconRPC,
		"TAIKO_INBOX_ADDRESS":            m.Contracts.TaikoInbox,
		"PRECONF_WHITELIST_ADDRESS":      m.Contracts.PreconfWhitelist,
		"FORCED_INCLUSION_STORE_ADDRESS": m.Contracts.ForcedInclusionStore,
		"PROTOCOL":                       m.Protocol,
	}
	if m.Params.PreconfMinTxs != 0 {
		defaults["PRECONF_MIN_TXS"] = strconv.FormatUint(m.Params.PreconfMinTxs, 10)
	}
	if m.Params.PreconfHeartbeatMS != 0 {
		defaults["PRECONF_HEARTBEAT_MS"] = strconv.FormatUint(m.Params.PreconfHeartbeatMS, 10)
	}
	if m.Params.MaxBlocksPerBatch != 0 {
		defaults["MAX_BLOCKS_PER_BATCH"] = strconv.FormatUint(m.Params.MaxBlocksPerBatch, 10)
	}
	for name, value := range defaults {
		if value == "" || os.Getenv(name) != "" {
			continue
		}
		if err := os.Setenv(name, value); err != nil {
			return fmt.Errorf("set %s: %w", name, err)
		}
	}
	return nil
}
