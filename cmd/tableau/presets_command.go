package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/phanxgames/tableau"
)

type presetOutput struct {
	Name    string     `json:"name"`
	Bezier  [4]float64 `json:"bezier"`
	Samples [3]float64 `json:"samples"`
}

var presetSamplePoints = [3]float64{0.25, 0.5, 0.75}

func newPresetsCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "presets",
		Short: "List the named easing presets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			names := tableau.PresetNames()
			presets := make([]presetOutput, 0, len(names))
			for _, name := range names {
				curve := tableau.Preset(name)
				out := presetOutput{Name: name, Bezier: curve.Resolve().Array()}
				for i, x := range presetSamplePoints {
					out.Samples[i] = tableau.Evaluate(x, curve)
				}
				presets = append(presets, out)
			}

			if ctx.jsonOutput() {
				return writeJSON(cmd, presets)
			}
			rows := make([][]string, 0, len(presets))
			for _, p := range presets {
				rows = append(rows, []string{
					p.Name,
					tableau.Preset(p.Name).Resolve().String(),
					fmtNum(p.Samples[0]),
					fmtNum(p.Samples[1]),
					fmtNum(p.Samples[2]),
				})
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderTable(
				[]string{"Preset", "Curve", "25%", "50%", "75%"},
				rows,
				[]columnAlignment{alignLeft, alignLeft, alignRight, alignRight, alignRight},
				nil,
			))
			return nil
		},
	}
}
