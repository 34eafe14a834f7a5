package main

import (
	"fmt"

	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/spf13/cobra"

	"github.com/phanxgames/tableau"
)

func newTimelineCommand(ctx *commandContext) *cobra.Command {
	var at float64

	cmd := &cobra.Command{
		Use:   "timeline <project>",
		Short: "Lay out the default state sequence",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := ctx.loadProject(args[0])
			if err != nil {
				return err
			}
			tl := tableau.ComputeTimeline(p.States, p.Transitions)

			if cmd.Flags().Changed("at") {
				seg, ok := tl.At(at)
				if !ok {
					return fmt.Errorf("no timeline segment at %s", fmtMs(at))
				}
				if ctx.jsonOutput() {
					return writeJSON(cmd, seg)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s at %s: %s\n", seg.Kind, fmtMs(at), segmentSubject(seg))
				return nil
			}

			if ctx.jsonOutput() {
				return writeJSON(cmd, tl)
			}
			colorize := ctx.colorize(cmd.OutOrStdout())
			rows := make([][]string, 0, len(tl.Segments))
			for i, seg := range tl.Segments {
				kind := string(seg.Kind)
				if seg.Kind == tableau.SegmentTransition {
					kind = paint(kind, colorize, text.FgCyan)
				}
				rows = append(rows, []string{
					fmt.Sprint(i + 1),
					kind,
					segmentSubject(seg),
					fmtMs(seg.Window.Start),
					fmtMs(seg.Window.End),
					fmtMs(seg.Window.Duration()),
				})
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderTable(
				[]string{"#", "Kind", "Subject", "Start", "End", "Duration"},
				rows,
				[]columnAlignment{alignRight, alignLeft, alignLeft, alignRight, alignRight, alignRight},
				[]string{"", "", "total", "", "", fmtMs(tl.TotalDuration)},
			))
			return nil
		},
	}
	cmd.Flags().Float64Var(&at, "at", 0, "Only print the segment covering this time")
	return cmd
}

func segmentSubject(seg tableau.Segment) string {
	if seg.Kind == tableau.SegmentTransition {
		return fmt.Sprintf("%s (%s -> %s)", seg.TransitionID, seg.FromStateID, seg.ToStateID)
	}
	return seg.StateID
}
