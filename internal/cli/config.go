package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/mesh-intelligence/wardrobe/pkg/types"
)

const (
	configFileName = "config"
	configFileType = "yaml"
	envPrefix      = "WARDROBE"

	// Config keys in config.yaml; environment variables use the
	// WARDROBE_ prefix and upper case (WARDROBE_ITEMS_FILE).
	cfgKeyBackend   = "backend"
	cfgKeyItemsFile = "items_file"
	cfgKeyColor     = "color"
)

// loadConfig reads config.yaml from configDir using Viper. A missing file or
// directory is not an error; nothing is written. Flags that were set on cmd
// override the environment, which overrides the file.
func loadConfig(configDir string, cmd *cobra.Command) (*viper.Viper, error) {
	v := viper.New()
	v.SetDefault(cfgKeyBackend, types.DefaultBackend)
	v.SetDefault(cfgKeyColor, false)
	v.SetConfigName(configFileName)
	v.SetConfigType(configFileType)
	v.AddConfigPath(configDir)
	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()

	if err := v.BindPFlag(cfgKeyBackend, cmd.Flags().Lookup("backend")); err != nil {
		return nil, fmt.Errorf("bind backend flag: %w", err)
	}
	if err := v.BindPFlag(cfgKeyColor, cmd.Flags().Lookup("color")); err != nil {
		return nil, fmt.Errorf("bind color flag: %w", err)
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return v, nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}
	return v, nil
}
