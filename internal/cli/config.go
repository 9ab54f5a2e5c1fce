package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/mesh-intelligence/frames/pkg/types"
)

const (
	configFileName = "config"
	configFileType = "yaml"
	envPrefix      = "FRAMES"

	cfgKeyOutput   = "output"
	cfgKeyWorkers  = "workers"
	cfgKeyLogLevel = "log_level"
	cfgKeyLayout   = "layout"
)

// loadConfig reads config.yaml from configDir using Viper. Values fall back
// to FRAMES_* environment variables and then to the defaults. A missing
// config.yaml is not an error.
func loadConfig(configDir string) (*viper.Viper, error) {
	def := types.DefaultConfig()
	v := viper.New()
	v.SetDefault(cfgKeyOutput, def.Output)
	v.SetDefault(cfgKeyWorkers, def.Workers)
	v.SetDefault(cfgKeyLogLevel, def.LogLevel)
	v.SetDefault(cfgKeyLayout, "")
	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()
	v.SetConfigName(configFileName)
	v.SetConfigType(configFileType)
	v.AddConfigPath(configDir)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return v, nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}
	return v, nil
}

// bindFlags lets explicitly set global flags override config values.
func bindFlags(v *viper.Viper, cmd *cobra.Command) error {
	flags := cmd.Flags()
	for key, name := range map[string]string{
		cfgKeyOutput:   "output",
		cfgKeyLogLevel: "log-level",
	} {
		f := flags.Lookup(name)
		if f == nil {
			continue
		}
		if err := v.BindPFlag(key, f); err != nil {
			return fmt.Errorf("bind flag %s: %w", name, err)
		}
	}
	return nil
}
