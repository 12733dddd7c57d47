package cli

import (
	"github.com/BurntSushi/toml"
	"github.com/spf13/cobra"

	"github.com/matzehuels/monadviz/pkg/errors"
)

// Config holds the animation parameters shared by all commands.
//
// Values resolve in three layers: built-in defaults, then an optional TOML
// config file, then any explicitly set command-line flags.
type Config struct {
	NodeCount      int     `toml:"node_count"`       // monads in the network
	FramesPerStage int     `toml:"frames_per_stage"` // frames per animation stage
	Seed           uint64  `toml:"seed"`             // spring layout seed
	Width          float64 `toml:"width"`            // frame width in pixels
	Height         float64 `toml:"height"`           // frame height in pixels
	IntervalMS     int     `toml:"interval_ms"`      // playback interval per frame
}

// defaultConfig returns the demo parameters: 12 monads, 150 frames per
// stage (750 total), layout seed 42, 50ms playback interval.
func defaultConfig() Config {
	return Config{
		NodeCount:      12,
		FramesPerStage: 150,
		Seed:           42,
		Width:          800,
		Height:         800,
		IntervalMS:     50,
	}
}

// validate checks the configuration invariants.
func (c Config) validate() error {
	if c.NodeCount < 2 {
		return errors.New(errors.ErrCodeInvalidConfiguration, "node_count must be >= 2, got %d", c.NodeCount)
	}
	if c.FramesPerStage <= 0 {
		return errors.New(errors.ErrCodeInvalidConfiguration, "frames_per_stage must be > 0, got %d", c.FramesPerStage)
	}
	if c.Width <= 0 || c.Height <= 0 {
		return errors.New(errors.ErrCodeInvalidConfiguration, "frame size must be positive, got %gx%g", c.Width, c.Height)
	}
	if c.IntervalMS <= 0 {
		return errors.New(errors.ErrCodeInvalidConfiguration, "interval_ms must be > 0, got %d", c.IntervalMS)
	}
	return nil
}

// loadConfig returns the defaults overlaid with the TOML file at path.
// An empty path skips the file layer. Unknown keys are rejected so typos
// in a config file fail loudly instead of silently using defaults.
func loadConfig(path string) (Config, error) {
	cfg := defaultConfig()
	if path == "" {
		return cfg, nil
	}

	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, errors.Wrap(errors.ErrCodeInvalidConfiguration, err, "load config %s", path)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return Config{}, errors.New(errors.ErrCodeInvalidConfiguration,
			"unknown config key %q in %s", undecoded[0].String(), path)
	}
	return cfg, nil
}

// Flag names shared by the commands that take animation parameters.
const (
	flagNodes          = "nodes"
	flagFramesPerStage = "frames-per-stage"
	flagSeed           = "seed"
	flagWidth          = "width"
	flagHeight         = "height"
	flagInterval       = "interval"
)

// addConfigFlags registers the animation parameter flags on cmd, bound to
// the fields of flagCfg.
func addConfigFlags(cmd *cobra.Command, flagCfg *Config) {
	d := defaultConfig()
	cmd.Flags().IntVarP(&flagCfg.NodeCount, flagNodes, "n", d.NodeCount, "number of monads in the network")
	cmd.Flags().IntVar(&flagCfg.FramesPerStage, flagFramesPerStage, d.FramesPerStage, "animation frames per stage")
	cmd.Flags().Uint64Var(&flagCfg.Seed, flagSeed, d.Seed, "spring layout seed")
	cmd.Flags().Float64Var(&flagCfg.Width, flagWidth, d.Width, "frame width in pixels")
	cmd.Flags().Float64Var(&flagCfg.Height, flagHeight, d.Height, "frame height in pixels")
	cmd.Flags().IntVar(&flagCfg.IntervalMS, flagInterval, d.IntervalMS, "milliseconds per frame during playback")
}

// resolveConfig merges defaults, the optional config file, and any flags
// the user explicitly set, then validates the result.
func resolveConfig(cmd *cobra.Command, configPath string, flagCfg Config) (Config, error) {
	cfg, err := loadConfig(configPath)
	if err != nil {
		return Config{}, err
	}

	flags := cmd.Flags()
	if flags.Changed(flagNodes) {
		cfg.NodeCount = flagCfg.NodeCount
	}
	if flags.Changed(flagFramesPerStage) {
		cfg.FramesPerStage = flagCfg.FramesPerStage
	}
	if flags.Changed(flagSeed) {
		cfg.Seed = flagCfg.Seed
	}
	if flags.Changed(flagWidth) {
		cfg.Width = flagCfg.Width
	}
	if flags.Changed(flagHeight) {
		cfg.Height = flagCfg.Height
	}
	if flags.Changed(flagInterval) {
		cfg.IntervalMS = flagCfg.IntervalMS
	}

	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
