package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/phanxgames/tableau"
)

type chainOutput struct {
	ChainID   string                `json:"chainId"`
	At        float64               `json:"at"`
	Iteration int                   `json:"iteration"`
	Reversing bool                  `json:"reversing"`
	StateID   string                `json:"stateId"`
	Progress  tableau.ChainProgress `json:"progress"`
	Timing    tableau.ChainTiming   `json:"timing"`
	Frame     tableau.Frame         `json:"frame,omitempty"`
}

func newChainCommand(ctx *commandContext) *cobra.Command {
	var at float64
	var reverse bool
	var withFrame bool

	cmd := &cobra.Command{
		Use:   "chain <project> <chain>",
		Short: "Show where a chain's playhead is at a given time",
		Long: "Show where a chain's playhead is at a given time.\n\n" +
			"Without --reverse, ping-pong chains play backwards on odd iterations and\n" +
			"maxIterations is honoured. --reverse forces the backward half-cycle.",
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := ctx.loadProject(args[0])
			if err != nil {
				return err
			}
			chain, err := p.Chain(args[1])
			if err != nil {
				return err
			}
			states := p.StateMap()

			player := tableau.NewChainPlayer(chain, states)
			player.Seek(at)

			out := chainOutput{
				ChainID:   chain.ID,
				At:        at,
				Iteration: player.Iteration(),
				Reversing: player.Reversing(),
				Timing:    player.Timing,
			}
			var frame tableau.Frame
			if cmd.Flags().Changed("reverse") {
				out.Reversing = reverse
				out.Progress = tableau.Progress(chain, player.Timing, at, reverse)
				frame = tableau.SampleChain(chain, player.Timing, states, at, reverse)
			} else {
				out.Progress = player.Progress()
				frame = player.Frame()
			}
			if n := len(chain.Steps); n > 0 {
				out.StateID = chain.Steps[min(out.Progress.StepIndex, n-1)].StateID
			} else {
				out.StateID = chain.StartStateID
			}
			if withFrame {
				out.Frame = frame
			}

			if ctx.jsonOutput() {
				return writeJSON(cmd, out)
			}
			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "Chain:      %s (%s)\n", chain.Name, chain.Mode)
			fmt.Fprintf(w, "At:         %s of %s per cycle\n", fmtMs(at), fmtMs(player.Timing.CycleDuration))
			fmt.Fprintf(w, "Iteration:  %d\n", out.Iteration)
			fmt.Fprintf(w, "Reversing:  %s\n", yesNo(out.Reversing))
			fmt.Fprintf(w, "Step:       %d -> %s\n", out.Progress.StepIndex, out.StateID)
			fmt.Fprintf(w, "Phase:      %s %s%%\n", out.Progress.Phase, fmtNum(out.Progress.StepProgress*100))
			fmt.Fprintf(w, "Complete:   %s\n", yesNo(out.Progress.IsComplete))
			if withFrame {
				fmt.Fprintln(w, renderFrame(frame))
			}
			return nil
		},
	}
	cmd.Flags().Float64Var(&at, "at", 0, "Milliseconds since the chain started")
	cmd.Flags().BoolVar(&reverse, "reverse", false, "Sample the backward half-cycle of a ping-pong chain")
	cmd.Flags().BoolVar(&withFrame, "frame", false, "Include the interpolated frame")
	return cmd
}
