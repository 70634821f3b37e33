package commands

import (
	"fmt"
	"strconv"

	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/cobra"

	"github.com/tsforge/tsforge/config"
	"github.com/tsforge/tsforge/errors"
)

// ConfigCmd represents the config command
var ConfigCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect and update tsforge configuration",
	Long: `Inspect and update tsforge configuration.

Settings merge from /etc/tsforge/config.toml, ~/.tsforge/config.toml,
a tsforge.toml found by walking up from the working directory, and
TSFORGE_* environment variables, in that precedence order.

Examples:
  tsforge config show
  tsforge config get generator.strict
  tsforge config set generator.optional_by_default true
  tsforge config path`,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the effective configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		v := config.GetViper()

		data, err := toml.Marshal(v.AllSettings())
		if err != nil {
			return errors.Wrap(err, "failed to render configuration")
		}
		fmt.Fprint(cmd.OutOrStdout(), string(data))
		return nil
	},
}

var configGetCmd = &cobra.Command{
	Use:   "get <key>",
	Short: "Get one configuration value by dotted key",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		value := config.Get(args[0])
		if value == nil {
			return errors.Newf("unknown config key %q", args[0])
		}
		fmt.Fprintln(cmd.OutOrStdout(), value)
		return nil
	},
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Persist one configuration value to the user config file",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		key := args[0]
		value := coerceValue(args[1])

		if err := config.SetValue(key, value); err != nil {
			return errors.Wrapf(err, "failed to set %s", key)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "%s = %v\n", key, value)
		return nil
	},
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the user config file path",
	RunE: func(cmd *cobra.Command, args []string) error {
		path := config.UserConfigPath()
		if path == "" {
			return errors.New("could not determine home directory")
		}
		fmt.Fprintln(cmd.OutOrStdout(), path)
		return nil
	},
}

// coerceValue interprets bool and numeric literals so TOML gets typed
// values rather than strings
func coerceValue(raw string) interface{} {
	if b, err := strconv.ParseBool(raw); err == nil {
		return b
	}
	if i, err := strconv.ParseInt(raw, 10, 64); err == nil {
		return i
	}
	if f, err := strconv.ParseFloat(raw, 64); err == nil {
		return f
	}
	return raw
}

func init() {
	ConfigCmd.AddCommand(configShowCmd)
	ConfigCmd.AddCommand(configGetCmd)
	ConfigCmd.AddCommand(configSetCmd)
	ConfigCmd.AddCommand(configPathCmd)
}
