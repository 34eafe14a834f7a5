package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newValidateCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "validate <project>",
		Short: "Load a project file and report what it contains",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := ctx.loadProject(args[0])
			if err != nil {
				return err
			}
			summary := map[string]any{
				"artboard":    p.Artboard.Name,
				"version":     p.Version,
				"states":      len(p.States),
				"transitions": len(p.Transitions),
				"chains":      len(p.Chains),
			}
			if ctx.jsonOutput() {
				return writeJSON(cmd, summary)
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Artboard:    %s (%s)\n", p.Artboard.Name, p.Artboard.ID)
			fmt.Fprintf(out, "States:      %d\n", len(p.States))
			fmt.Fprintf(out, "Transitions: %d\n", len(p.Transitions))
			fmt.Fprintf(out, "Chains:      %d\n", len(p.Chains))
			fmt.Fprintln(out, "Project valid")
			return nil
		},
	}
}
