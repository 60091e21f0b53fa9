// Package cli implements the command-line interface for nxcube.
package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const version = "0.1.0"

var (
	// Global flags
	cfgFile string
	verbose bool
)

// rootCmd is the base command.
var rootCmd = &cobra.Command{
	Use:   "nxcube",
	Short: "NxNxN cube rotation engine",
	Long: `nxcube - turn a virtual NxNxN twisty cube from the terminal.

Apply rotations in nxcube notation, generate scrambles, or play with the
cube interactively using the mouse.

Notation: <axis>[2|3|4]['][@layer]
  x       whole cube, 90 degrees about x
  y'@0    layer 0 about y, backwards
  z2@1    layer 1 about z, half turn`,
	Version:       version,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return initConfig(cmd)
	},
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "Config file (default: ~/.nxcube.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().Int("size", defaultSize, "Cube size N")
	rootCmd.PersistentFlags().Duration("speed", defaultSpeed, "Duration of a quarter turn")
}

// initConfig reads the config file and environment, then binds the flags
// of the running command so flags win over both.
func initConfig(cmd *cobra.Command) error {
	v := viper.New()
	setDefaults(v)

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else if home, err := os.UserHomeDir(); err == nil {
		v.AddConfigPath(home)
		v.SetConfigName(".nxcube")
		v.SetConfigType("yaml")
	}

	v.SetEnvPrefix("NXCUBE")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile != "" || !asConfigNotFound(err, &notFound) {
			return fmt.Errorf("failed to read config: %w", err)
		}
	} else {
		logf("Using config file: %s\n", filepath.Clean(v.ConfigFileUsed()))
	}

	if err := v.BindPFlags(cmd.Flags()); err != nil {
		return fmt.Errorf("failed to bind flags: %w", err)
	}

	cfg, err := loadConfig(v)
	if err != nil {
		return err
	}
	appConfig = cfg
	return nil
}

// logf prints diagnostics to stderr when --verbose is set.
func logf(format string, args ...interface{}) {
	if verbose {
		fmt.Fprintf(os.Stderr, format, args...)
	}
}
