// Package config loads seqbitctl's persistent defaults from
// $HOME/.seqbitctl.yaml, the way wandb-wandb's cmd/ctrlc loads .ctrlc.yaml.
package config

import (
	"errors"
	"fmt"
	"io/fs"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
)

// Config holds the CLI's defaults. Any field a flag sets explicitly
// overrides the value loaded here.
type Config struct {
	// DefaultCapacity is the --capacity default of the list/count/exist
	// subcommands; only list queries use the capacity.
	DefaultCapacity uint32 `mapstructure:"default-capacity"`
	// DefaultMode is loaded from the config file but no subcommand reads
	// it: list, count and exist each run their own fixed mode.
	DefaultMode string `mapstructure:"default-mode"`
}

// Default returns the configuration seqbitctl falls back to when no config
// file is present.
func Default() Config {
	return Config{DefaultCapacity: 1 << 20, DefaultMode: "list"}
}

// Load reads the config file at path (if non-empty) or $HOME/.seqbitctl.yaml
// into viper's global config, then unmarshals it into a Config. A missing
// file is not an error: Default's values are returned unchanged.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		viper.SetConfigFile(path)
	} else {
		home, err := homedir.Dir()
		if err != nil {
			return cfg, fmt.Errorf("resolve home directory: %w", err)
		}
		viper.AddConfigPath(home)
		viper.SetConfigName(".seqbitctl")
		viper.SetConfigType("yaml")
	}

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) || errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("read config: %w", err)
	}

	if err := viper.Unmarshal(&cfg); err != nil {
		return cfg, fmt.Errorf("unmarshal config: %w", err)
	}

	return cfg, nil
}
