package cli

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage docmatch configuration",
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show all configured values",
	RunE: func(cmd *cobra.Command, _ []string) error {
		keys := cfg.Keys()
		if len(keys) == 0 {
			cmd.Println("No configuration set.")
			return nil
		}
		for _, key := range keys {
			val, _ := cfg.Get(key)
			cmd.Printf("%s = %v\n", key, val)
		}
		return nil
	},
}

var configGetCmd = &cobra.Command{
	Use:   "get <key>",
	Short: "Show one configured value",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		key := args[0]
		val, ok := cfg.Get(key)
		if !ok {
			return fmt.Errorf("%q is not set", key)
		}
		cmd.Printf("%v\n", val)
		return nil
	},
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a configuration value",
	Long: fmt.Sprintf(`Sets a configuration value. Known keys:

  %s

Integer and boolean values are stored typed; everything else is stored
as a string.`, strings.Join(knownKeys, "\n  ")),
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		key, raw := args[0], args[1]
		if !slices.Contains(knownKeys, key) {
			return fmt.Errorf("unknown configuration key %q (run 'docmatch config set --help' for the list)", key)
		}

		if err := cfg.Set(key, parseConfigValue(raw)); err != nil {
			return fmt.Errorf("saving configuration: %w", err)
		}
		cmd.Printf("Set %s = %s\n", key, raw)
		return nil
	},
}

// parseConfigValue stores integers and booleans typed so the typed
// getters can read them back.
func parseConfigValue(raw string) any {
	if n, err := strconv.Atoi(raw); err == nil {
		return n
	}
	if b, err := strconv.ParseBool(raw); err == nil {
		return b
	}
	return raw
}

func init() {
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configGetCmd)
	configCmd.AddCommand(configSetCmd)
	rootCmd.AddCommand(configCmd)
}
