// Command tableau inspects artboard animation projects from the terminal.
//
// It diffs states, prints the per-element timing plan of a transition,
// samples transitions and chains at arbitrary instants, lays out the default
// timeline, and exports keyframes as JSON for code generators. Every command
// accepts --output table|json.
package main
