package main

import (
	"fmt"

	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/spf13/cobra"

	"github.com/phanxgames/tableau"
)

func newDiffCommand(ctx *commandContext) *cobra.Command {
	var all bool

	cmd := &cobra.Command{
		Use:   "diff <project> <from-state> <to-state>",
		Short: "Show which element properties change between two states",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := ctx.loadProject(args[0])
			if err != nil {
				return err
			}
			from, err := p.State(args[1])
			if err != nil {
				return err
			}
			to, err := p.State(args[2])
			if err != nil {
				return err
			}

			d := tableau.Diff(from, to)
			ctx.log().Debug("diffed states", "from", from.ID, "to", to.ID, "changed", len(d.Changed()))
			if ctx.jsonOutput() {
				return writeJSON(cmd, d)
			}

			out := cmd.OutOrStdout()
			rows := diffRows(d, all, ctx.colorize(out))
			if len(rows) == 0 {
				fmt.Fprintf(out, "No animatable changes between %s and %s\n", from.Name, to.Name)
				return nil
			}
			fmt.Fprintln(out, renderTable(
				[]string{"Element", "Status", "Property", "From", "To"},
				rows,
				[]columnAlignment{alignLeft, alignLeft, alignLeft, alignRight, alignRight},
				nil,
			))
			return nil
		},
	}
	cmd.Flags().BoolVar(&all, "all", false, "Include unchanged properties")
	return cmd
}

func diffRows(d tableau.StateDiff, all, colorize bool) [][]string {
	var rows [][]string
	for i := range d.Elements {
		ed := &d.Elements[i]
		status := elementStatus(ed)
		for _, pd := range ed.Properties {
			if !pd.HasChanged && !all {
				continue
			}
			to := formatValue(pd.Property, pd.To)
			if pd.HasChanged {
				to = paint(to, colorize, text.FgGreen)
			}
			rows = append(rows, []string{
				elementLabel(ed.ElementID, ed.ElementName),
				status,
				string(pd.Property),
				formatValue(pd.Property, pd.From),
				to,
			})
			status = ""
		}
	}
	return rows
}

func elementStatus(ed *tableau.ElementDiff) string {
	switch {
	case ed.Entering():
		return "enter"
	case ed.Exiting():
		return "exit"
	case ed.HasAnimatableChanges:
		return "changed"
	}
	return "same"
}

func elementLabel(id, name string) string {
	if name == "" || name == id {
		return id
	}
	return fmt.Sprintf("%s (%s)", name, id)
}

func formatValue(p tableau.Property, v tableau.Value) string {
	if !v.Defined {
		return "-"
	}
	if p == tableau.PropVisible {
		return yesNo(v.Bool())
	}
	return fmtNum(v.Number)
}
