// smartsnakes is a classic snake game for the terminal or a desktop window.
//
// Usage:
//
//	smartsnakes              - Play in the terminal
//	smartsnakes play         - Play in the terminal
//	smartsnakes window       - Play in a 720x480 window
//	smartsnakes config       - Print the effective configuration
//
// Global flags:
//
//	--seed <value>       - RNG seed for fruit placement (0 = time based)
//	--config <path>      - Custom config YAML
//	--log-file <path>    - Write logs to a file
//	--log-level <level>  - debug, info, warn or error (default: info)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagSeed     int64
	flagConfig   string
	flagLogFile  string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "smartsnakes",
	Short: "Smart Snakes - the classic snake game",
	Long: `Smart Snakes is the classic snake game. Eat fruit to grow and score,
avoid the walls and your own tail. Rounds restart automatically.

Controls:
  Arrows/WASD  - Move
  Q/Esc        - Quit

The terminal game needs at least 72x48 characters (one per board cell) and
pauses while the terminal is smaller. Use "smartsnakes window" on smaller
terminals.

Examples:
  smartsnakes
  smartsnakes window
  smartsnakes play --seed 42
  smartsnakes config > ~/.smartsnakes/snake.yaml`,
	Args:          cobra.NoArgs,
	RunE:          runPlay,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(windowCmd)
	rootCmd.AddCommand(configCmd)
}
