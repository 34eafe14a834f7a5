package tableau

import "math"

// hierarchy is a flat, per-call view of the parent/child relationships in
// an element list. Indices refer to the list it was built from.
type hierarchy struct {
	order    []int // depth-first, parent before child
	depth    []int
	parent   []int // -1 for roots
	sibling  []int // index within the sibling group
	siblings []int // size of the sibling group
}

// buildHierarchy derives the tree from ParentID. Roots are elements with no
// parent, a parent outside the list, or a parent chain that loops back on
// itself. Duplicate ids after the first occurrence are left out of order.
func buildHierarchy(els []ElementSnapshot) *hierarchy {
	n := len(els)
	h := &hierarchy{
		order:    make([]int, 0, n),
		depth:    make([]int, n),
		parent:   make([]int, n),
		sibling:  make([]int, n),
		siblings: make([]int, n),
	}
	idx := indexElements(els)
	visited := make([]bool, n)
	kids := make([][]int, n)
	roots := make([]int, 0, n)

	for i := range els {
		h.parent[i] = -1
		if idx[els[i].ID] != i {
			visited[i] = true
			continue
		}
		p, ok := idx[els[i].ParentID]
		if els[i].ParentID == "" || !ok || p == i {
			roots = append(roots, i)
			continue
		}
		kids[p] = append(kids[p], i)
	}

	tree := make([][]int, n)
	var visit func(i, depth int)
	visit = func(i, depth int) {
		visited[i] = true
		h.depth[i] = depth
		h.order = append(h.order, i)
		for _, c := range kids[i] {
			if visited[c] {
				continue
			}
			tree[i] = append(tree[i], c)
			h.parent[c] = i
			visit(c, depth+1)
		}
	}

	for _, r := range roots {
		visit(r, 0)
	}
	// Whatever is left hangs off a parent cycle.
	for i := range els {
		if !visited[i] {
			roots = append(roots, i)
			visit(i, 0)
		}
	}

	group := func(members []int) {
		for k, c := range members {
			h.sibling[c] = k
			h.siblings[c] = len(members)
		}
	}
	group(roots)
	for _, members := range tree {
		group(members)
	}
	return h
}

// siblingOffset returns the stagger offset of one sibling within its group.
func siblingOffset(index, count int, st CascadeStagger) float64 {
	if count <= 1 || st.Amount == 0 {
		return 0
	}
	center := float64(count-1) / 2
	dist := math.Abs(float64(index) - center)
	switch st.Direction {
	case CascadeReverse:
		return float64(count-1-index) * st.Amount
	case CascadeCenterOut:
		return dist * st.Amount
	case CascadeEdgesIn:
		return (center - dist) * st.Amount
	default:
		return float64(index) * st.Amount
	}
}

// depthScale returns scale^depth. Non-positive scales count as 1.
func depthScale(scale float64, depth int) float64 {
	if scale <= 0 || depth == 0 {
		return 1
	}
	return math.Pow(scale, float64(depth))
}

// Plan computes the per-element delay and duration for a transition.
//
// Without an enabled cascade every element gets the base timing. With one,
// each element is delayed by depth × DelayPerLevel plus its sibling stagger
// offset, and its duration is baseDuration × DurationScale^depth, so the
// factor compounds once per level below the root.
func Plan(elements []ElementSnapshot, cascade *CascadeConfig, baseDuration, baseDelay float64, easing EasingCurve) Schedule {
	sched := Schedule{Entries: make(map[string]ElementTiming, len(elements))}
	if cascade == nil || !cascade.Enabled {
		for i := range elements {
			if _, ok := sched.Entries[elements[i].ID]; ok {
				continue
			}
			sched.Entries[elements[i].ID] = ElementTiming{Delay: baseDelay, Duration: baseDuration, Easing: easing}
		}
		return sched
	}

	sched.Hierarchical = true
	h := buildHierarchy(elements)
	for _, i := range h.order {
		depth := h.depth[i]
		sched.Entries[elements[i].ID] = ElementTiming{
			Delay:    baseDelay + float64(depth)*cascade.DelayPerLevel + siblingOffset(h.sibling[i], h.siblings[i], cascade.Stagger),
			Duration: baseDuration * depthScale(cascade.DurationScale, depth),
			Easing:   easing,
			Depth:    depth,
		}
	}
	return sched
}
