package main

import (
	"fmt"
	"math/rand/v2"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/phanxgames/tableau"
	"github.com/phanxgames/tableau/internal/project"
)

type planEntry struct {
	ElementID string `json:"elementId"`
	tableau.ElementTiming
}

type planOutput struct {
	TransitionID string      `json:"transitionId"`
	Span         float64     `json:"span"`
	Hierarchical bool        `json:"hierarchical"`
	Entries      []planEntry `json:"entries"`
}

func newPlanCommand(ctx *commandContext) *cobra.Command {
	var seed uint64

	cmd := &cobra.Command{
		Use:   "plan <project> <transition>",
		Short: "Print the per-element delay, duration and easing of a transition",
		Long: "Print the per-element delay, duration and easing of a transition.\n\n" +
			"The transition is named by id or as from->to using state ids or names.",
		Args: cobra.ExactArgs(2),
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
			plan := planOutput{
				TransitionID: tr.ID,
				Span:         tableau.TransitionSpan(tr, sched),
				Hierarchical: sched.Hierarchical,
				Entries:      sortedEntries(sched),
			}
			if ctx.jsonOutput() {
				return writeJSON(cmd, plan)
			}

			rows := make([][]string, 0, len(plan.Entries))
			for _, e := range plan.Entries {
				props := "all"
				if len(e.Properties) > 0 {
					names := make([]string, len(e.Properties))
					for i, prop := range e.Properties {
						names[i] = string(prop)
					}
					props = strings.Join(names, ",")
				}
				rows = append(rows, []string{
					e.ElementID,
					fmt.Sprint(e.Depth),
					fmtMs(e.Delay),
					fmtMs(e.Duration),
					fmtMs(e.End()),
					e.Easing.String(),
					props,
				})
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderTable(
				[]string{"Element", "Depth", "Delay", "Duration", "End", "Easing", "Properties"},
				rows,
				[]columnAlignment{alignLeft, alignRight, alignRight, alignRight, alignRight, alignLeft, alignLeft},
				[]string{"", "", "", "", fmtMs(plan.Span), "span", ""},
			))
			return nil
		},
	}
	cmd.Flags().Uint64Var(&seed, "seed", 1, "Seed for random staggers")
	return cmd
}

func resolveTransition(p *project.Project, ref string) (*tableau.StateTransition, *tableau.AnimationState, *tableau.AnimationState, error) {
	tr, err := p.Transition(ref)
	if err != nil {
		return nil, nil, nil, err
	}
	from, to, err := p.Endpoints(tr)
	if err != nil {
		return nil, nil, nil, err
	}
	return tr, from, to, nil
}

func seededRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed))
}

// sortedEntries orders schedule entries by start time, then id.
func sortedEntries(sched tableau.Schedule) []planEntry {
	entries := make([]planEntry, 0, len(sched.Entries))
	for id, t := range sched.Entries {
		entries = append(entries, planEntry{ElementID: id, ElementTiming: t})
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Delay != entries[j].Delay {
			return entries[i].Delay < entries[j].Delay
		}
		return entries[i].ElementID < entries[j].ElementID
	})
	return entries
}
