package main

import (
	"errors"
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/phanxgames/tableau"
)

func newSampleCommand(ctx *commandContext) *cobra.Command {
	var at float64
	var progress float64
	var seed uint64

	cmd := &cobra.Command{
		Use:   "sample <project> <transition>",
		Short: "Interpolate a transition at one instant",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := ctx.loadProject(args[0])
			if err != nil {
				return err
			}
			tr, from, to, err := resolveTransition(p, args[1])
			if err != nil {
				return err
			}
			sched := tableau.BuildSchedule(tr, from, to, seededRand(seed))

			if cmd.Flags().Changed("progress") {
				if cmd.Flags().Changed("at") {
					return errors.New("--at and --progress are mutually exclusive")
				}
				if progress < 0 || progress > 1 {
					return fmt.Errorf("--progress must be between 0 and 1, got %v", progress)
				}
				at = progress * tableau.TransitionSpan(tr, sched)
			}

			frame := tableau.InterpolateTransition(tr, from, to, at, sched)
			ctx.log().Debug("sampled transition", "transition", tr.ID, "at", at, "elements", len(frame))
			if ctx.jsonOutput() {
				return writeJSON(cmd, map[string]any{"transitionId": tr.ID, "at": at, "frame": frame})
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s at %s\n", tr.ID, fmtMs(at))
			fmt.Fprintln(cmd.OutOrStdout(), renderFrame(frame))
			return nil
		},
	}
	cmd.Flags().Float64Var(&at, "at", 0, "Milliseconds after the trigger")
	cmd.Flags().Float64Var(&progress, "progress", 0, "Linear position in [0,1] across the transition span")
	cmd.Flags().Uint64Var(&seed, "seed", 1, "Seed for random staggers")
	return cmd
}

func renderFrame(frame tableau.Frame) string {
	ids := make([]string, 0, len(frame))
	for id := range frame {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	rows := make([][]string, 0, len(ids))
	for _, id := range ids {
		e := frame[id]
		gap := "-"
		if e.Layout != nil && e.Layout.Gap != nil {
			gap = fmtNum(*e.Layout.Gap)
		}
		rows = append(rows, []string{
			elementLabel(id, e.Name),
			fmtNum(e.X),
			fmtNum(e.Y),
			fmtNum(e.Width),
			fmtNum(e.Height),
			fmtNum(e.Opacity),
			fmtNum(e.Scale),
			fmtNum(e.Rotation),
			yesNo(e.Visible),
			gap,
		})
	}
	right := alignRight
	return renderTable(
		[]string{"Element", "X", "Y", "Width", "Height", "Opacity", "Scale", "Rotation", "Visible", "Gap"},
		rows,
		[]columnAlignment{alignLeft, right, right, right, right, right, right, right, alignLeft, right},
		nil,
	)
}
