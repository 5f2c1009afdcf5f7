// rgbcatcher is a terminal arcade game: catch the falling blocks that match
// your basket's color, dodge the rest.
//
// Usage:
//
//	rgbcatcher               - Play the game
//	rgbcatcher play          - Play the game
//	rgbcatcher config        - Print the default configuration
//
// Global flags:
//
//	--fps <rate>          - Gameplay tick rate (default: from config)
//	--seed <value>        - RNG seed for reproducible gameplay
//	--config <path>       - Path to a custom catcher.yaml
//	--log-file <path>     - Write logs to this file (default: discard)
//	--log-level <level>   - debug, info, warn or error (default: info)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagConfig   string
	flagLogFile  string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "rgbcatcher",
	Short: "RGB Catcher - catch the blocks that match your basket",
	Long: `RGB Catcher is a terminal arcade game. Colored blocks fall from the
top of the screen; catch the ones matching your basket's color to score,
and avoid the others. Letting a matching block through costs health too.

Available commands:
  play     - Play the game (default)
  config   - Print or validate the game configuration

Examples:
  rgbcatcher
  rgbcatcher play --seed 42
  rgbcatcher --config ./my-catcher.yaml --log-file /tmp/rgbcatcher.log
  rgbcatcher config > ~/.rgbcatcher/catcher.yaml`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runPlay,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Gameplay tick rate (0 = from config)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(configCmd)
}
