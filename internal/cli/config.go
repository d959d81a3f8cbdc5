package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vvka-141/normhash/internal/config"
	"github.com/vvka-141/normhash/pkg/normhash"
)

// resolveConfig builds the hashing configuration.
// Priority (highest to lowest): CLI flags > NORMHASH_* environment (.env
// included) > config file > defaults.
func resolveConfig(cmd *cobra.Command, wd string, logger normhash.Logger) (normhash.Config, error) {
	cfg := normhash.DefaultConfig()

	if err := config.LoadDotEnv(wd); err != nil {
		return cfg, err
	}

	fileCfg, err := loadConfigFile(wd, logger)
	if err != nil {
		return cfg, err
	}
	cfg = fileCfg.Apply(cfg)

	envCfg, err := config.FromEnv(os.LookupEnv)
	if err != nil {
		return cfg, err
	}
	cfg = envCfg.Apply(cfg)

	flags := cmd.Flags()
	if flags.Changed("eol") {
		cfg = cfg.WithEOL(hashFlags.eol)
	}
	if flags.Changed("no-eof") {
		cfg = cfg.WithNoEOF(hashFlags.noEOF)
	}
	if flags.Changed("ignore-whitespaces") {
		cfg = cfg.WithIgnoreWhitespaces(hashFlags.ignoreWhitespaces)
	}

	logger.Verbose("Effective configuration: %s", cfg)
	return cfg, nil
}

// loadConfigFile returns the explicit --config file or the discovered one.
// Returns nil config if no file was given and none exists (not an error).
func loadConfigFile(wd string, logger normhash.Logger) (*config.FileConfig, error) {
	if hashFlags.configPath != "" {
		fileCfg, err := config.Load(hashFlags.configPath)
		if errors.Is(err, config.ErrConfigNotFound) {
			return nil, fmt.Errorf("%w: %w", normhash.ErrInvalidConfig, err)
		}
		if err != nil {
			return nil, err
		}
		logger.Verbose("Loaded config file: %s", hashFlags.configPath)
		return fileCfg, nil
	}

	fileCfg, path, err := config.Discover(wd)
	if errors.Is(err, config.ErrConfigNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	logger.Verbose("Loaded config file: %s", path)
	return fileCfg, nil
}
