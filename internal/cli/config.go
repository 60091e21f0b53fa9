package cli

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/SeamusWaldron/nxcube"
)

const (
	defaultSize  = 3
	defaultSpeed = nxcube.DefaultSpeed
)

// Config holds settings shared by all commands. Values come from flags,
// NXCUBE_* environment variables and the config file, in that order.
type Config struct {
	Size  int           `mapstructure:"size" yaml:"size"`
	Speed time.Duration `mapstructure:"speed" yaml:"speed"`

	Gesture GestureSettings `mapstructure:"gesture" yaml:"gesture"`

	// Easing names the animation curve: linear, in-out-quad, out-cubic.
	Easing string `mapstructure:"easing" yaml:"easing"`
	// LogDir is where play --log writes session logs (default ~/.nxcube/logs).
	LogDir string `mapstructure:"log-dir" yaml:"log-dir"`
}

// GestureSettings tunes drags in the terminal, measured in stickers.
type GestureSettings struct {
	Threshold   float64 `mapstructure:"threshold" yaml:"threshold"`
	Sensitivity float64 `mapstructure:"sensitivity" yaml:"sensitivity"`
}

// appConfig is populated before any command runs.
var appConfig = defaultConfig()

func defaultConfig() Config {
	return Config{
		Size:  defaultSize,
		Speed: defaultSpeed,
		Gesture: GestureSettings{
			Threshold:   0.5,
			Sensitivity: 0.05,
		},
		Easing: "out-cubic",
	}
}

func setDefaults(v *viper.Viper) {
	d := defaultConfig()
	v.SetDefault("size", d.Size)
	v.SetDefault("speed", d.Speed)
	v.SetDefault("gesture.threshold", d.Gesture.Threshold)
	v.SetDefault("gesture.sensitivity", d.Gesture.Sensitivity)
	v.SetDefault("easing", d.Easing)
	v.SetDefault("log-dir", d.LogDir)
}

func loadConfig(v *viper.Viper) (Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("failed to decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks the settings the engine would otherwise reject later.
func (c Config) Validate() error {
	if c.Size < 1 {
		return fmt.Errorf("size %d: %w", c.Size, nxcube.ErrInvalidSize)
	}
	if c.Speed <= 0 {
		return fmt.Errorf("speed %s: %w", c.Speed, nxcube.ErrInvalidSpeed)
	}
	if _, ok := easings[c.Easing]; !ok {
		return fmt.Errorf("unknown easing %q", c.Easing)
	}
	return nil
}

// NewCube creates a cube from the config.
func (c Config) NewCube(opts ...nxcube.Option) (*nxcube.Cube, error) {
	return nxcube.New(c.Size, append([]nxcube.Option{nxcube.WithSpeed(c.Speed)}, opts...)...)
}

func asConfigNotFound(err error, target *viper.ConfigFileNotFoundError) bool {
	return errors.As(err, target)
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show the effective configuration",
	Long: `Print the configuration after merging defaults, the config file,
NXCUBE_* environment variables and flags, as YAML.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		enc := yaml.NewEncoder(os.Stdout)
		enc.SetIndent(2)
		defer enc.Close()
		return enc.Encode(appConfig)
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
}
