package config

import (
	"github.com/rotisserie/eris"

	"github.com/omega-labs/omega-chain/utils"
)

const (
	// DefaultBech32Prefix is the account prefix used when none is configured.
	DefaultBech32Prefix = "omega"

	// DefaultRelayGasLimit is the gas forwarded to the settlement relay
	// precompile on each bridge call.
	DefaultRelayGasLimit = uint64(400_000)

	// DefaultComputeMaxIterations caps a single computeHash call so a
	// benchmark invocation cannot exceed a block's compute budget.
	DefaultComputeMaxIterations = uint64(100_000)
)

type OmegaConfig struct {
	// Bech32Prefix is the prefix that all accounts on the chain will have. (i.e. cosmos, akash, evmos...).
	Bech32Prefix string `yaml:"bech32Prefix" json:"bech32Prefix" config:"BECH32_PREFIX"`

	// RelayGasLimit is the amount of gas forwarded to the settlement relay on a
	// bridgeMessage call. The relay address itself is a platform constant and is
	// deliberately not configurable.
	RelayGasLimit uint64 `yaml:"relayGasLimit" json:"relayGasLimit" config:"RELAY_GAS_LIMIT"`

	// ComputeMaxIterations is the maximum number of keccak rounds a single
	// computeHash call may request.
	ComputeMaxIterations uint64 `yaml:"computeMaxIterations" json:"computeMaxIterations" config:"COMPUTE_MAX_ITERATIONS"`
}

// DefaultConfig returns the configuration used when no overrides are set.
func DefaultConfig() OmegaConfig {
	return OmegaConfig{
		Bech32Prefix:         DefaultBech32Prefix,
		RelayGasLimit:        DefaultRelayGasLimit,
		ComputeMaxIterations: DefaultComputeMaxIterations,
	}
}

// FromEnv loads the configuration from environment variables, filling in
// defaults for anything left unset.
func FromEnv() (OmegaConfig, error) {
	cfg, err := utils.LoadConfig[OmegaConfig]()
	if err != nil {
		return OmegaConfig{}, eris.Wrap(err, "failed to load config from env")
	}
	cfg.fillDefaults()
	return cfg, nil
}

func (c *OmegaConfig) fillDefaults() {
	if c.Bech32Prefix == "" {
		c.Bech32Prefix = DefaultBech32Prefix
	}
	if c.RelayGasLimit == 0 {
		c.RelayGasLimit = DefaultRelayGasLimit
	}
	if c.ComputeMaxIterations == 0 {
		c.ComputeMaxIterations = DefaultComputeMaxIterations
	}
}
