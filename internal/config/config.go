// Package config layers application settings on top of the reusable core
// configuration: the operator group, the operator allow-list, deposit
// limits, and the liveness endpoint.
package config

import (
	"fmt"
	"os"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"

	coreconfig "github.com/m3rciful/topupbot/core/config"
)

// DepositsConfig holds deposit workflow settings.
type DepositsConfig struct {
	// GroupChatID is the operator group that receives new request notices.
	GroupChatID int64 `yaml:"group_chat_id" envconfig:"GROUP_CHAT_ID"`
	// OperatorIDs is the static allow-list of operator account ids.
	OperatorIDs []int64 `yaml:"operator_ids" envconfig:"OPERATOR_IDS"`
	// MinAmount is the smallest accepted deposit, in manats. Defaults to 50.
	MinAmount float64 `yaml:"min_amount" envconfig:"MIN_AMOUNT"`
}

// HealthConfig configures the liveness HTTP sidecar.
type HealthConfig struct {
	Port int `yaml:"port" envconfig:"HEALTH_PORT"`
}

// Config is the full application configuration.
type Config struct {
	coreconfig.Config `yaml:",inline"`

	Deposits DepositsConfig `yaml:"deposits"`
	Health   HealthConfig   `yaml:"health"`
}

// CoreConfig exposes the embedded core configuration.
func (c *Config) CoreConfig() *coreconfig.Config {
	if c == nil {
		return nil
	}
	return &c.Config
}

// Load reads YAML config and applies environment overrides, mirroring
// the core loader semantics: a missing file means env-only operation.
func Load(path string) (*Config, error) {
	var cfg Config

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse YAML config: %w", err)
		}
	case os.IsNotExist(err):
		// env-only configuration
	default:
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process env: %w", err)
	}

	if err := Normalize(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Normalize validates application fields after core normalization.
func Normalize(cfg *Config) error {
	if cfg == nil {
		return fmt.Errorf("nil config")
	}
	if err := coreconfig.Normalize(&cfg.Config); err != nil {
		return err
	}

	if cfg.Deposits.GroupChatID == 0 {
		return fmt.Errorf("deposits.group_chat_id is required")
	}
	if len(cfg.Deposits.OperatorIDs) == 0 {
		return fmt.Errorf("deposits.operator_ids must list at least one operator")
	}
	for _, id := range cfg.Deposits.OperatorIDs {
		if id == 0 {
			return fmt.Errorf("deposits.operator_ids must not contain 0")
		}
	}
	if cfg.Deposits.MinAmount <= 0 {
		cfg.Deposits.MinAmount = 50
	}
	if cfg.Health.Port <= 0 {
		cfg.Health.Port = 10000
	}
	return nil
}
