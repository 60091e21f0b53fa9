package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/spf13/cobra"
)

var replayCmd = &cobra.Command{
	Use:   "replay [log-file]",
	Short: "Replay a recorded play session",
	Long: `Replay the turns of a session recorded by 'nxcube play' on a solved cube
and print the final state.

If no log file is specified, lists available log files.

Usage:
  nxcube replay                    # List available logs
  nxcube replay <log-file>         # Replay specific log
  nxcube replay <log-file> -f json # Print the final state as JSON`,
	Args: cobra.MaximumNArgs(1),
	RunE: runReplay,
}

var replayFormat string

func init() {
	rootCmd.AddCommand(replayCmd)
	replayCmd.Flags().StringVarP(&replayFormat, "format", "f", "text", "Output format (text, json, yaml)")
}

// logDir returns the configured log directory, or ~/.nxcube/logs.
func logDir() string {
	if appConfig.LogDir != "" {
		return appConfig.LogDir
	}
	homeDir, _ := os.UserHomeDir()
	return filepath.Join(homeDir, ".nxcube", "logs")
}

func runReplay(cmd *cobra.Command, args []string) error {
	dir := logDir()
	if len(args) == 0 {
		return listLogs(dir)
	}

	logPath := args[0]
	// If not an absolute path, look in log directory
	if !filepath.IsAbs(logPath) {
		if _, err := os.Stat(logPath); err != nil {
			logPath = filepath.Join(dir, logPath)
		}
	}

	log, err := LoadSessionLog(logPath)
	if err != nil {
		return fmt.Errorf("failed to load log: %w", err)
	}
	rotations, err := log.Rotations()
	if err != nil {
		return fmt.Errorf("failed to read rotations: %w", err)
	}

	logf("Loaded log: %s\n", logPath)
	logf("Session: %s\n", log.SessionID)
	logf("Created: %s\n", log.CreatedAt.Format(time.RFC3339))
	logf("Events: %d, rotations: %d\n", len(log.Events), len(rotations))

	cfg := appConfig
	if log.Size > 0 {
		cfg.Size = log.Size
	}
	cube, err := cfg.NewCube()
	if err != nil {
		return err
	}
	ctx := context.Background()
	for i, r := range rotations {
		if err := cube.Rotate(ctx, r); err != nil {
			return fmt.Errorf("rotation %d (%s): %w", i+1, r.Notation(), err)
		}
	}
	return writeResult(cmd.OutOrStdout(), replayFormat, cube, rotations)
}

func listLogs(dir string) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			fmt.Println("No log files found. Record a session first with: nxcube play --log")
			return nil
		}
		return err
	}

	var logs []string
	for _, e := range entries {
		if !e.IsDir() && strings.HasSuffix(e.Name(), ".jsonl") {
			logs = append(logs, e.Name())
		}
	}

	if len(logs) == 0 {
		fmt.Println("No log files found. Record a session first with: nxcube play --log")
		return nil
	}

	// Sort by name (which includes timestamp, so newest last)
	sort.Strings(logs)

	fmt.Println("Available log files:")
	fmt.Println()
	for _, log := range logs {
		fmt.Printf("  %s\n", log)
	}
	fmt.Println()
	fmt.Println("Usage: nxcube replay <filename>")

	return nil
}
