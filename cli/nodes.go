package cli

import (
	"fmt"
	"os"
	"sort"
	"strings"
	"text/tabwriter"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/patchline/patchline/engine/node"
)

var nodeHeaderStyle = lipgloss.NewStyle().Bold(true)

// NodesCmd lists the registered nodes with their operations.
func NodesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "nodes",
		Short: "List registered nodes and their operations",
		Args:  cobra.NoArgs,
		RunE:  listNodes,
	}
}

func listNodes(cmd *cobra.Command, _ []string) error {
	ctx, err := setupContext(cmd)
	if err != nil {
		return err
	}
	registry, err := buildRegistry(ctx)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	styled := isTerminal(os.Stdout)
	for _, def := range registry.List() {
		header := def.ID
		if styled {
			header = nodeHeaderStyle.Render(header)
		}
		fmt.Fprintf(out, "%s  %s\n", header, def.Description)

		w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
		for _, action := range def.Actions() {
			fmt.Fprintf(w, "  %s\t%s\n", action.String(), def.Operations[action].Description)
		}
		for _, alias := range sortedAliases(def.Aliases) {
			fmt.Fprintf(w, "  %s\talias of %s\n", alias[0], alias[1])
		}
		if len(def.Loaders) > 0 {
			fmt.Fprintf(w, "  loaders\t%s\n", strings.Join(sortedNames(def.Loaders), ", "))
		}
		if err := w.Flush(); err != nil {
			return err
		}
		fmt.Fprintln(out)
	}
	return nil
}

func sortedAliases(aliases map[node.Action]node.Action) [][2]string {
	out := make([][2]string, 0, len(aliases))
	for from, to := range aliases {
		out = append(out, [2]string{from.String(), to.String()})
	}
	sort.Slice(out, func(i, j int) bool { return out[i][0] < out[j][0] })
	return out
}

func sortedNames(loaders map[string]node.OptionLoader) []string {
	names := make([]string, 0, len(loaders))
	for name := range loaders {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
