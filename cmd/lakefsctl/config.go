package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const appName = "lakefsctl"

// Config is the merged result of flags, LAKECTL_* environment variables and
// the optional $HOME/.lakefsctl.yaml file, in that order of precedence.
type Config struct {
	Server struct {
		EndpointURL string `mapstructure:"endpoint_url"`
	} `mapstructure:"server"`
	Credentials struct {
		AccessKeyID     string `mapstructure:"access_key_id"`
		SecretAccessKey string `mapstructure:"secret_access_key"`
	} `mapstructure:"credentials"`
	Strict  bool   `mapstructure:"strict"`
	Verbose bool   `mapstructure:"verbose"`
	Output  string `mapstructure:"output"`
	NoColor bool   `mapstructure:"no_color"`
}

var flagKeys = map[string]string{
	"endpoint":          "server.endpoint_url",
	"access-key-id":     "credentials.access_key_id",
	"secret-access-key": "credentials.secret_access_key",
	"strict":            "strict",
	"verbose":           "verbose",
	"output":            "output",
	"no-color":          "no_color",
}

func configureViper(v *viper.Viper, configFile string) {
	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName(fmt.Sprintf(".%s", appName))
		v.SetConfigType("yaml")
		v.AddConfigPath("$HOME")
	}
	v.SetEnvPrefix("LAKECTL")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()
	v.SetDefault("output", "text")
}

func readConfig(err error) error {
	if err == nil {
		return nil
	}

	// It's okay if the config file doesn't exist
	if _, ok := err.(viper.ConfigFileNotFoundError); ok {
		return nil
	}

	return fmt.Errorf("failed to read config: %w", err)
}

// loadConfig binds the persistent flags of cmd and resolves the configuration.
func loadConfig(v *viper.Viper, cmd *cobra.Command) (*Config, error) {
	configFile, _ := cmd.Flags().GetString("config")
	configureViper(v, configFile)

	for flag, key := range flagKeys {
		if err := v.BindPFlag(key, cmd.Flags().Lookup(flag)); err != nil {
			return nil, fmt.Errorf("bind flag %s: %w", flag, err)
		}
	}

	if err := readConfig(v.ReadInConfig()); err != nil {
		return nil, err
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	switch cfg.Output {
	case outputText, outputJSON:
	default:
		return nil, fmt.Errorf("invalid output format: %s", cfg.Output)
	}
	return &cfg, nil
}
