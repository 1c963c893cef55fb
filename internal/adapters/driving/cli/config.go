package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/trsgrid/internal/core/domain"
	"github.com/custodia-labs/trsgrid/internal/core/services"
	"github.com/custodia-labs/trsgrid/internal/postprocessors"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage settings",
	Long: `View and change the settings stored in config.toml.

Keys:
  input.encoding       input character set (IANA name)
  output.dir           directory for TextGrid files, empty for next to input
  output.extension     output file extension
  pipeline.processors  comma-separated post-processors`,
	RunE: runConfigShow,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current settings",
	Args:  cobra.NoArgs,
	RunE:  runConfigShow,
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Change one setting",
	Args:  cobra.ExactArgs(2),
	RunE:  runConfigSet,
}

func init() {
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSetCmd)
	rootCmd.AddCommand(configCmd)
}

func runConfigShow(cmd *cobra.Command, _ []string) error {
	ensureSettings()
	settings := settingsService.Get()

	cmd.Println("Current Settings")
	cmd.Println("================")
	cmd.Printf("  File: %s\n", settingsService.Path())
	cmd.Println()
	values := map[string]string{
		services.KeyInputEncoding:      settings.Input.Encoding,
		services.KeyOutputDir:          displayDir(settings.Output.Dir),
		services.KeyOutputExtension:    settings.Output.Extension,
		services.KeyPipelineProcessors: strings.Join(settings.Pipeline.Processors, ","),
	}
	for _, key := range services.SettingsKeys {
		cmd.Printf("  %-20s %s\n", key, values[key])
	}
	return nil
}

func runConfigSet(cmd *cobra.Command, args []string) error {
	if args[0] == services.KeyPipelineProcessors {
		if err := checkProcessors(args[1]); err != nil {
			return fmt.Errorf("failed to set %s: %w", args[0], err)
		}
	}

	ensureSettings()
	if err := settingsService.Set(args[0], args[1]); err != nil {
		return fmt.Errorf("failed to set %s: %w", args[0], err)
	}
	cmd.Printf("%s updated\n", args[0])
	return nil
}

// checkProcessors rejects processor names the registry cannot build.
func checkProcessors(list string) error {
	registry := postprocessors.NewRegistry()
	postprocessors.RegisterDefaults(registry)

	for _, name := range strings.Split(list, ",") {
		name = strings.TrimSpace(name)
		if name != "" && !registry.Has(name) {
			return fmt.Errorf("%w: processor %q (available: %s)",
				domain.ErrUnsupportedType, name, strings.Join(registry.Names(), ", "))
		}
	}
	return nil
}

func displayDir(dir string) string {
	if dir == "" {
		return "(next to input)"
	}
	return dir
}
