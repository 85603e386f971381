package cli

import (
	"github.com/spf13/cobra"
)

// OptionsCmd runs a node's option loader, the dynamic dropdowns a host UI
// would populate.
func OptionsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "options <node> <loader>",
		Short: "Run a node option loader",
		Example: `  patchline options mattermost channels

  patchline options clockify projects --param workspaceId=w1`,
		Args: cobra.ExactArgs(2),
		RunE: loadOptions,
	}

	cmd.Flags().StringArrayP("param", "p", nil, "Loader parameter as key=value")
	cmd.Flags().String("output", "", "Write the options to a file instead of stdout")

	return cmd
}

func loadOptions(cmd *cobra.Command, args []string) error {
	ctx, err := setupContext(cmd)
	if err != nil {
		return err
	}
	registry, err := buildRegistry(ctx)
	if err != nil {
		return err
	}
	def, err := registry.Get(args[0])
	if err != nil {
		return err
	}

	paramFlags, err := cmd.Flags().GetStringArray("param")
	if err != nil {
		return err
	}
	params, err := parseParams(paramFlags, "")
	if err != nil {
		return err
	}

	options, err := def.LoadOptions(ctx, args[1], params)
	if err != nil {
		return err
	}
	data, err := renderJSON(options)
	if err != nil {
		return err
	}
	return writeResult(cmd, data)
}
