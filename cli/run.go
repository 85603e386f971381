package cli

import (
	"github.com/spf13/cobra"

	"github.com/patchline/patchline/engine/node"
	"github.com/patchline/patchline/engine/pipeline"
)

// RunCmd executes one node operation over an item list.
func RunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run <node>",
		Short: "Execute a node operation",
		Long: "Execute one operation of a registered node. Parameters come from\n" +
			"--param flags and an optional params file; an items file runs the\n" +
			"operation once per item with the shared parameters folded in.",
		Example: `  patchline run mattermost --resource message --operation post \
    --param channel_id=ch1 --param 'message=release shipped'

  patchline run clockify --resource project --operation getAll \
    --param workspaceId=w1 --param returnAll=true`,
		Args: cobra.ExactArgs(1),
		RunE: runNode,
	}

	cmd.Flags().StringP("resource", "r", "", "Resource to operate on, e.g. message")
	cmd.Flags().StringP("operation", "o", "", "Operation to perform, e.g. post")
	cmd.Flags().StringArrayP("param", "p", nil, "Parameter as key=value; JSON values stay typed")
	cmd.Flags().String("params-file", "", "YAML or JSON file with operation parameters")
	cmd.Flags().String("items", "", "JSON file with the input item list")
	cmd.Flags().String("output", "", "Write the result to a file instead of stdout")
	cmd.Flags().Bool("full", false, "Print the whole execution envelope, not just the outputs")
	_ = cmd.MarkFlagRequired("resource")
	_ = cmd.MarkFlagRequired("operation")

	return cmd
}

func runNode(cmd *cobra.Command, args []string) error {
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

	resource, err := cmd.Flags().GetString("resource")
	if err != nil {
		return err
	}
	operation, err := cmd.Flags().GetString("operation")
	if err != nil {
		return err
	}
	paramFlags, err := cmd.Flags().GetStringArray("param")
	if err != nil {
		return err
	}
	paramsFile, err := cmd.Flags().GetString("params-file")
	if err != nil {
		return err
	}
	itemsFile, err := cmd.Flags().GetString("items")
	if err != nil {
		return err
	}

	params, err := parseParams(paramFlags, paramsFile)
	if err != nil {
		return err
	}
	items, err := readItems(itemsFile)
	if err != nil {
		return err
	}

	inputs, err := mergeItems(items, params)
	if err != nil {
		return err
	}

	action := node.Action{Resource: resource, Operation: operation}
	execution, runErr := pipeline.Run(ctx, def, action, inputs)

	full, err := cmd.Flags().GetBool("full")
	if err != nil {
		return err
	}
	if runErr != nil {
		if full && execution != nil {
			if data, renderErr := renderJSON(execution); renderErr == nil {
				_ = writeResult(cmd, data)
			}
		}
		return runErr
	}

	var payload any = execution.Outputs
	if full {
		payload = execution
	}
	data, err := renderJSON(payload)
	if err != nil {
		return err
	}
	return writeResult(cmd, data)
}
