package focus

import (
	"github.com/korreman/sway-overfocus/internal/geometry"
	"github.com/korreman/sway-overfocus/internal/tree"
)

// descentPolicy selects how a leaf is picked when landing on a
// container: by the container's most-recently-focused child, or by
// geometric proximity to the previously focused rectangle.
type descentPolicy int

const (
	byFocusOrder descentPolicy = iota
	byProximity
)

// descend resolves a container to the leaf that should actually receive
// focus. It terminates: every step moves strictly downward.
func descend(t *tree.Tree, n int, policy descentPolicy, ref geometry.Rect) int {
	for !t.At(n).Leaf() {
		var next int
		if policy == byProximity {
			next = nearestChild(t, n, ref)
		} else {
			next = t.ByFocusOrder(n)
		}
		if next < 0 {
			break
		}
		n = next
	}
	return n
}

// nearestChild picks the child (tiled or floating) whose rectangle lies
// closest to the center of ref, ties broken by smaller id.
func nearestChild(t *tree.Tree, n int, ref geometry.Rect) int {
	c := ref.Center()
	best := -1
	var bestDist int
	var bestID int64
	consider := func(child int) {
		p := t.At(child).Rect.ClosestPoint(c)
		dx := p.X - c.X
		dy := p.Y - c.Y
		d := dx*dx + dy*dy
		id := t.At(child).ID
		if best < 0 || d < bestDist || (d == bestDist && id < bestID) {
			best = child
			bestDist = d
			bestID = id
		}
	}
	for _, child := range t.At(n).Children {
		consider(child)
	}
	for _, child := range t.At(n).Floats {
		consider(child)
	}
	return best
}
