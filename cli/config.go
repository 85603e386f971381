package cli

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/patchline/patchline/pkg/config"
)

// ConfigCmd groups configuration diagnostics.
func ConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Configuration diagnostics",
	}
	cmd.AddCommand(ConfigShowCmd(), ConfigSourcesCmd())
	return cmd
}

// ConfigShowCmd prints the effective configuration after all sources merged.
// Secrets are redacted.
func ConfigShowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show the effective configuration",
		Args:  cobra.NoArgs,
		RunE:  showConfig,
	}
	cmd.Flags().StringP("format", "f", "yaml", "Output format: yaml or json")
	return cmd
}

func showConfig(cmd *cobra.Command, _ []string) error {
	ctx, err := setupContext(cmd)
	if err != nil {
		return err
	}
	cfg := config.FromContext(ctx)

	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}
	switch format {
	case "yaml":
		data, err := yaml.Marshal(cfg)
		if err != nil {
			return fmt.Errorf("failed to encode configuration: %w", err)
		}
		_, err = cmd.OutOrStdout().Write(data)
		return err
	case "json":
		data, err := renderJSON(cfg)
		if err != nil {
			return err
		}
		return writeResult(cmd, data)
	default:
		return fmt.Errorf("unsupported format %q, use yaml or json", format)
	}
}

// ConfigSourcesCmd lists the configuration sources captured by the last load.
func ConfigSourcesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sources",
		Short: "List configuration sources by precedence",
		Args:  cobra.NoArgs,
		RunE:  showSources,
	}
}

func showSources(cmd *cobra.Command, _ []string) error {
	ctx, err := setupContext(cmd)
	if err != nil {
		return err
	}
	sources := config.ManagerFromContext(ctx).Sources()
	sort.SliceStable(sources, func(i, j int) bool {
		return sourceRank(sources[i].Type()) < sourceRank(sources[j].Type())
	})
	out := cmd.OutOrStdout()
	fmt.Fprintln(out, "Configuration sources (highest to lowest precedence):")
	for i, source := range sources {
		fmt.Fprintf(out, "%d. %s\n", i+1, sourceLabel(source.Type()))
	}
	return nil
}

func sourceRank(t config.SourceType) int {
	switch t {
	case config.SourceCLI:
		return 0
	case config.SourceEnv:
		return 1
	case config.SourceYAML:
		return 2
	default:
		return 3
	}
}

func sourceLabel(t config.SourceType) string {
	switch t {
	case config.SourceCLI:
		return "CLI flags"
	case config.SourceEnv:
		return "Environment variables"
	case config.SourceYAML:
		return "YAML configuration file"
	case config.SourceDefault:
		return "Default values"
	default:
		return string(t)
	}
}
