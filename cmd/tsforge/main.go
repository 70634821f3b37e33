package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/tsforge/tsforge/cmd/tsforge/commands"
	"github.com/tsforge/tsforge/config"
	"github.com/tsforge/tsforge/logger"
)

var rootCmd = &cobra.Command{
	Use:   "tsforge",
	Short: "tsforge - DSL to TypeScript transpiler",
	Long: `tsforge turns compact one-line type descriptions into TypeScript
artifacts: type aliases, interfaces, Zod schemas, and example objects.

Available commands:
  generate - Transpile a DSL line into TypeScript artifacts
  serve    - Start the HTTP transpilation server
  config   - Inspect and update tsforge configuration
  version  - Show version information

Examples:
  tsforge generate "User email:s isAdmin?:b createdAt tags"
  tsforge generate --file user.dsl --out src/types/
  echo "User email:s" | tsforge generate --mode zod
  tsforge serve --port 8780
  tsforge config set generator.strict true`,
	Args: cobra.ArbitraryArgs,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		jsonOutput := err == nil && cfg.Log.JSON
		if err := logger.Initialize(jsonOutput); err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	// Bare invocation with a DSL argument behaves like generate
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 {
			return cmd.Help()
		}
		return commands.RunDefault(cmd, args)
	},
}

func init() {
	rootCmd.AddCommand(commands.GenerateCmd)
	rootCmd.AddCommand(commands.ServeCmd)
	rootCmd.AddCommand(commands.ConfigCmd)
	rootCmd.AddCommand(commands.VersionCmd)
}

func main() {
	defer logger.Cleanup()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
