// Package tableau is the timing and interpolation engine behind state-based
// scene animation.
//
// A designer captures discrete [AnimationState] snapshots of a scene graph
// and connects them with [StateTransition] edges. tableau answers the one
// question a renderer or exporter needs each frame: what does every element
// look like right now?
//
// # Quick start
//
//	from := tableau.AnimationState{ID: "rest", Elements: []tableau.ElementSnapshot{card}}
//	to := tableau.AnimationState{ID: "open", Elements: []tableau.ElementSnapshot{cardOpen}}
//	tr := tableau.StateTransition{
//		FromStateID: "rest", ToStateID: "open",
//		Duration: 300, Easing: tableau.Preset(tableau.EaseOut),
//	}
//
//	sched := tableau.BuildSchedule(&tr, &from, &to, nil)
//	frame := tableau.InterpolateTransition(&tr, &from, &to, 150, sched)
//	x := frame["card"].X
//
// # Pieces
//
// [Evaluate] resolves an [EasingCurve] (preset, custom cubic-bezier, or
// spring) to four control points and solves it. [Diff] compares two states
// property by property. [Plan] and [BuildSchedule] derive per-element delay
// and duration from the element hierarchy, staggers and overrides.
// [Interpolate] turns a schedule and an elapsed time into a [Frame],
// handling entering and exiting elements and parent-to-child transform
// inheritance. [Progress] maps elapsed time onto an [AnimationChain] under
// once, loop and ping-pong playback.
//
// Everything above is a pure function of its arguments and safe to call
// from multiple goroutines. [TransitionPlayer] and [ChainPlayer] are thin,
// caller-driven clocks (via [gween]) for live preview, and
// [SampleKeyframes] samples a transition in parallel for code generators.
//
// Units: durations and delays are milliseconds, angles are degrees, opacity
// is in [0,1], positions and sizes are host pixels.
//
// [gween]: https://github.com/tanema/gween
package tableau
