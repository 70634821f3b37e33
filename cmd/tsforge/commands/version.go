package commands

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/tsforge/tsforge/config"
	"github.com/tsforge/tsforge/version"
)

// VersionCmd represents the version command
var VersionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show tsforge version information",
	Long:  `Display version, build time, commit hash, and platform information for the tsforge binary.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		jsonOutput, _ := cmd.Flags().GetBool("json")
		check, _ := cmd.Flags().GetBool("check")

		info := version.Get()

		if jsonOutput {
			output, err := json.MarshalIndent(info, "", "  ")
			if err != nil {
				return fmt.Errorf("error formatting JSON: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(output))
		} else {
			fmt.Fprintln(cmd.OutOrStdout(), info.String())
			fmt.Fprintf(cmd.OutOrStdout(), "Platform: %s\n", info.Platform)
			fmt.Fprintf(cmd.OutOrStdout(), "Go: %s\n", info.GoVersion)
		}

		if check {
			return runVersionCheck(cmd)
		}
		return nil
	},
}

// runVersionCheck asks the configured registry for the latest release
func runVersionCheck(cmd *cobra.Command) error {
	registryURL := "https://registry.npmjs.org"
	timeout := 10 * time.Second
	if cfg, err := config.Load(); err == nil {
		if cfg.Registry.BaseURL != "" {
			registryURL = cfg.Registry.BaseURL
		}
		if cfg.Registry.TimeoutSeconds > 0 {
			timeout = time.Duration(cfg.Registry.TimeoutSeconds) * time.Second
		}
	}

	result, err := version.NewChecker(registryURL, timeout).Check()
	if err != nil {
		return fmt.Errorf("version check failed: %w", err)
	}

	if result.UpdateAvailable {
		fmt.Fprintln(cmd.OutOrStdout(), pterm.Yellow(result.String()))
	} else {
		fmt.Fprintln(cmd.OutOrStdout(), pterm.Green(result.String()))
	}
	return nil
}

func init() {
	VersionCmd.Flags().BoolP("json", "j", false, "Output version info as JSON")
	VersionCmd.Flags().BoolP("check", "c", false, "Check the registry for a newer release")
}
