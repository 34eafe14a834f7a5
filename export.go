package tableau

import (
	"context"
	"errors"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// ErrKeyframeCount is returned when fewer than one keyframe interval is
// requested.
var ErrKeyframeCount = errors.New("keyframe count must be at least 1")

// Keyframe is one sampled instant of a transition. Offset is the position
// in [0,1] across the transition span; Time is in ms.
type Keyframe struct {
	Offset float64 `json:"offset"`
	Time   float64 `json:"time"`
	Frame  Frame   `json:"frame"`
}

// KeyframeOptions controls SampleKeyframes. Count is the number of
// intervals, so Count+1 keyframes are produced. Workers bounds parallelism
// and defaults to GOMAXPROCS.
type KeyframeOptions struct {
	Count   int
	Workers int
}

// SampleKeyframes samples a transition at evenly spaced instants for code
// generators. Interpolation is pure, so frames are computed in parallel.
// The returned slice is ordered by time.
func SampleKeyframes(ctx context.Context, tr *StateTransition, from, to *AnimationState, sched Schedule, opts KeyframeOptions) ([]Keyframe, error) {
	if opts.Count < 1 {
		return nil, ErrKeyframeCount
	}
	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	span := TransitionSpan(tr, sched)
	out := make([]Keyframe, opts.Count+1)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i := range out {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			offset := float64(i) / float64(opts.Count)
			t := span * offset
			out[i] = Keyframe{
				Offset: offset,
				Time:   t,
				Frame:  InterpolateTransition(tr, from, to, t, sched),
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}
