package focus

import (
	"strings"

	"github.com/korreman/sway-overfocus/internal/geometry"
	"github.com/korreman/sway-overfocus/internal/logging"
	"github.com/korreman/sway-overfocus/internal/target"
	"github.com/korreman/sway-overfocus/internal/tree"
)

// Neighbor runs the focus decision algorithm over a snapshot. Each
// target is attempted in the order given; the first attempt that lands
// on a node different from the focused one wins. Returns the arena
// index of the new focus, or -1 when no target produces a move.
func Neighbor(t *tree.Tree, targets []target.Target) int {
	f := t.Focused
	for _, tg := range targets {
		n := attempt(t, f, tg)
		if n >= 0 && n != f {
			logging.Debug().
				Str("target", tg.String()).
				Int64("from", t.At(f).ID).
				Int64("to", t.At(n).ID).
				Msg("target matched")
			return n
		}
		logging.Debug().Str("target", tg.String()).Msg("no match")
	}
	return -1
}

func attempt(t *tree.Tree, f int, tg target.Target) int {
	switch tg.Kind {
	case target.KindSplit, target.KindGroup:
		return tiledAttempt(t, f, tg)
	case target.KindFloat:
		return floatAttempt(t, f, tg)
	case target.KindOutput:
		return outputAttempt(t, f, tg)
	case target.KindWorkspace:
		return workspaceAttempt(t, f, tg)
	default:
		return -1
	}
}

// matchesAxis reports whether a container's layout lines up with the
// target's kind and direction: horizontal splits and tab bars run
// left/right, vertical splits and stacks run up/down.
func matchesAxis(l tree.Layout, tg target.Target) bool {
	switch l {
	case tree.LayoutSplitH:
		return tg.Kind == target.KindSplit && !tg.Dir.Vertical()
	case tree.LayoutSplitV:
		return tg.Kind == target.KindSplit && tg.Dir.Vertical()
	case tree.LayoutTabbed:
		return tg.Kind == target.KindGroup && !tg.Dir.Vertical()
	case tree.LayoutStacked:
		return tg.Kind == target.KindGroup && tg.Dir.Vertical()
	default:
		return false
	}
}

// matchAncestor walks upward from `from` and returns the nearest
// ancestor whose children run along the target's axis, together with
// the direct child the path passes through. Ancestors reached through a
// floating attachment are skipped: a float has no index among the tiled
// children it hovers over.
func matchAncestor(t *tree.Tree, from int, tg target.Target) (int, int) {
	child := from
	for p := t.At(child).Parent; p >= 0; child, p = p, t.At(p).Parent {
		if matchesAxis(t.At(p).Layout, tg) && !t.At(child).Floating {
			return p, child
		}
	}
	return -1, -1
}

// tiledAttempt handles split and group targets, which move by tree
// order. Spill edges restart the ancestor search from the matched
// ancestor itself until a sibling exists or the walk leaves the root.
func tiledAttempt(t *tree.Tree, f int, tg target.Target) int {
	ref := t.At(f).Rect
	cur := f
	spilled := false
	for {
		a, c := matchAncestor(t, cur, tg)
		if a < 0 {
			return -1
		}
		siblings := t.At(a).Children
		i := t.ChildIndex(a, c)
		if i < 0 {
			return -1
		}
		j := i + 1
		if tg.Dir.Backward() {
			j = i - 1
		}
		if 0 <= j && j < len(siblings) {
			policy := byFocusOrder
			if spilled && tg.Edge == target.EdgeTraverse {
				policy = byProximity
			}
			return descend(t, siblings[j], policy, ref)
		}
		switch tg.Edge {
		case target.EdgeWrap:
			k := ((j % len(siblings)) + len(siblings)) % len(siblings)
			if siblings[k] == c {
				return -1
			}
			return descend(t, siblings[k], byFocusOrder, ref)
		case target.EdgeInactive, target.EdgeTraverse:
			spilled = true
			cur = a
		default: // EdgeStop
			return -1
		}
	}
}

// floatAttempt moves between the floating containers of the focused
// workspace. Floats carry no tree ordering, so neighbors are selected
// geometrically; they never spill past their workspace.
func floatAttempt(t *tree.Tree, f int, tg target.Target) int {
	ws := t.WorkspaceOf(f)
	if ws < 0 {
		return -1
	}
	anchor := t.FloatAnchor(ws, f)
	if anchor < 0 {
		return -1
	}
	var cands []geometry.Candidate
	var indices []int
	for _, fl := range t.At(ws).Floats {
		if fl == anchor {
			continue
		}
		cands = append(cands, geometry.Candidate{ID: t.At(fl).ID, Rect: t.At(fl).Rect})
		indices = append(indices, fl)
	}
	ref := t.At(anchor).Rect
	if i, ok := geometry.CenterNeighbor(ref, cands, tg.Dir); ok {
		return descend(t, indices[i], byFocusOrder, t.At(f).Rect)
	}
	if tg.Edge == target.EdgeWrap {
		if i, ok := geometry.ExtremeOpposite(cands, tg.Dir); ok {
			return descend(t, indices[i], byFocusOrder, t.At(f).Rect)
		}
	}
	return -1
}

// outputAttempt moves between outputs by geometry, measuring against
// the closest point inside each candidate so that offset or unequally
// sized output arrangements still resolve.
func outputAttempt(t *tree.Tree, f int, tg target.Target) int {
	o := t.OutputOf(f)
	if o < 0 {
		return -1
	}
	var cands []geometry.Candidate
	var indices []int
	for _, c := range t.At(t.Root).Children {
		n := t.At(c)
		if c == o || n.Kind != tree.KindOutput || strings.HasPrefix(n.Name, "__") {
			continue
		}
		cands = append(cands, geometry.Candidate{ID: n.ID, Rect: n.Rect})
		indices = append(indices, c)
	}
	ref := t.At(o).Rect.Center()
	dest, ok := geometry.ClosestPointNeighbor(ref, cands, tg.Dir)
	if !ok && tg.Edge == target.EdgeWrap {
		dest, ok = geometry.FarthestOpposite(ref, cands, tg.Dir)
	}
	if !ok {
		return -1
	}
	policy := byFocusOrder
	if tg.Edge == target.EdgeTraverse {
		policy = byProximity
	}
	return descend(t, indices[dest], policy, t.At(f).Rect)
}

// workspaceAttempt steps through the workspaces of the focused output
// in the window manager's ordering. Spill edges fail: there is no
// enclosing frame above an output's workspace list.
func workspaceAttempt(t *tree.Tree, f int, tg target.Target) int {
	ws := t.WorkspaceOf(f)
	if ws < 0 {
		return -1
	}
	o := t.At(ws).Parent
	if o < 0 {
		return -1
	}
	siblings := t.At(o).Children
	i := t.ChildIndex(o, ws)
	if i < 0 {
		return -1
	}
	j := i + 1
	if tg.Dir.Backward() {
		j = i - 1
	}
	if 0 <= j && j < len(siblings) {
		return descend(t, siblings[j], byFocusOrder, t.At(f).Rect)
	}
	if tg.Edge == target.EdgeWrap {
		k := ((j % len(siblings)) + len(siblings)) % len(siblings)
		if siblings[k] == ws {
			return -1
		}
		return descend(t, siblings[k], byFocusOrder, t.At(f).Rect)
	}
	return -1
}
