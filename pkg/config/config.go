// pkg/config/config.go

package config

import (
	"os"
	"path/filepath"

	cerr "github.com/cockroachdb/errors"
	"github.com/spf13/viper"
)

const (
	DefaultLength   = 12
	DefaultHashCost = 10
	DefaultMount    = "secret"
)

// Settings holds the user-tunable defaults. Flags always win over config,
// config wins over the built-in defaults.
type Settings struct {
	Length     int    `mapstructure:"length"`
	Numbers    bool   `mapstructure:"numbers"`
	Symbols    bool   `mapstructure:"symbols"`
	SaveFile   string `mapstructure:"save_file"`
	HashCost   int    `mapstructure:"hash_cost"`
	VaultMount string `mapstructure:"vault_mount"`
}

// Load reads ~/.genpass/config.yaml if present, then applies GENPASS_*
// environment overrides. A missing config file is not an error.
// GENPASS_CONFIG points at an explicit config file and bypasses the search.
func Load() (*Settings, error) {
	if path := os.Getenv("GENPASS_CONFIG"); path != "" {
		return LoadFrom(path)
	}

	v := viper.New()
	v.SetDefault("length", DefaultLength)
	v.SetDefault("numbers", false)
	v.SetDefault("symbols", false)
	v.SetDefault("save_file", "")
	v.SetDefault("hash_cost", DefaultHashCost)
	v.SetDefault("vault_mount", DefaultMount)

	v.SetEnvPrefix("GENPASS")
	v.AutomaticEnv()

	if home, err := os.UserHomeDir(); err == nil {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(filepath.Join(home, ".genpass"))
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !cerr.As(err, &notFound) {
				return nil, cerr.Wrap(err, "read config file")
			}
		}
	}

	return unmarshal(v)
}

// LoadFrom reads settings from an explicit config file. Used by tests and
// the GENPASS_CONFIG escape hatch.
func LoadFrom(path string) (*Settings, error) {
	v := viper.New()
	v.SetDefault("length", DefaultLength)
	v.SetDefault("hash_cost", DefaultHashCost)
	v.SetDefault("vault_mount", DefaultMount)
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, cerr.Wrapf(err, "read config file %s", path)
	}
	return unmarshal(v)
}

func unmarshal(v *viper.Viper) (*Settings, error) {
	var s Settings
	if err := v.Unmarshal(&s); err != nil {
		return nil, cerr.Wrap(err, "unmarshal settings")
	}
	return &s, nil
}
