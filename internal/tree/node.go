package tree

import (
	"github.com/korreman/sway-overfocus/internal/geometry"
)

// Kind classifies a container within the window manager's hierarchy.
type Kind int

const (
	KindRoot Kind = iota
	KindOutput
	KindWorkspace
	KindCon
	KindFloatingCon
	KindDockArea
)

// String returns the wire spelling of a Kind.
func (k Kind) String() string {
	switch k {
	case KindRoot:
		return "root"
	case KindOutput:
		return "output"
	case KindWorkspace:
		return "workspace"
	case KindCon:
		return "con"
	case KindFloatingCon:
		return "floating_con"
	case KindDockArea:
		return "dockarea"
	default:
		return "unknown"
	}
}

// Layout is the child arrangement of a container.
type Layout int

const (
	LayoutNone Layout = iota
	LayoutSplitH
	LayoutSplitV
	LayoutTabbed
	LayoutStacked
	LayoutOutput
)

// String returns the wire spelling of a Layout.
func (l Layout) String() string {
	switch l {
	case LayoutSplitH:
		return "splith"
	case LayoutSplitV:
		return "splitv"
	case LayoutTabbed:
		return "tabbed"
	case LayoutStacked:
		return "stacked"
	case LayoutOutput:
		return "output"
	default:
		return "none"
	}
}

// Node is one container in the snapshot. Nodes live in the Tree's arena
// and refer to each other by index, which keeps ancestor walks O(1) per
// step without cyclic pointers.
type Node struct {
	ID      int64
	Name    string
	Kind    Kind
	Layout  Layout
	Rect    geometry.Rect
	Focused bool

	// Parent is the arena index of the parent, -1 for the root.
	Parent int
	// Floating marks nodes attached through the parent's floating list.
	Floating bool

	// Children and Floats are arena indices, in wire order.
	Children []int
	Floats   []int
	// FocusOrder lists child ids most-recently-focused first, spanning
	// both Children and Floats.
	FocusOrder []int64
}

// Leaf reports whether the node has no children of either kind.
func (n *Node) Leaf() bool {
	return len(n.Children) == 0 && len(n.Floats) == 0
}

// Tree is an immutable snapshot of the window manager's container tree.
type Tree struct {
	Nodes   []Node
	Root    int
	Focused int
}

// At returns the node at arena index i.
func (t *Tree) At(i int) *Node {
	return &t.Nodes[i]
}

// ChildIndex returns the position of child (an arena index) within
// parent's tiled children, or -1 when child is not a tiled child.
func (t *Tree) ChildIndex(parent, child int) int {
	for i, c := range t.At(parent).Children {
		if c == child {
			return i
		}
	}
	return -1
}

// FloatMember reports whether child is attached through parent's
// floating list.
func (t *Tree) FloatMember(parent, child int) bool {
	for _, c := range t.At(parent).Floats {
		if c == child {
			return true
		}
	}
	return false
}

// Ancestor walks upward from i until pred matches, returning the arena
// index of the match or -1.
func (t *Tree) Ancestor(i int, pred func(*Node) bool) int {
	for p := t.At(i).Parent; p >= 0; p = t.At(p).Parent {
		if pred(t.At(p)) {
			return p
		}
	}
	return -1
}

// WorkspaceOf returns the workspace ancestor of i (or i itself when it
// is a workspace), -1 when there is none.
func (t *Tree) WorkspaceOf(i int) int {
	if t.At(i).Kind == KindWorkspace {
		return i
	}
	return t.Ancestor(i, func(n *Node) bool { return n.Kind == KindWorkspace })
}

// OutputOf returns the output ancestor of i (or i itself), -1 when
// there is none.
func (t *Tree) OutputOf(i int) int {
	if t.At(i).Kind == KindOutput {
		return i
	}
	return t.Ancestor(i, func(n *Node) bool { return n.Kind == KindOutput })
}

// ByFocusOrder resolves the most-recently-focused child of i, looking
// the focus_order ids up among both tiled and floating children. Falls
// back to the first tiled child when focus_order is missing or stale.
func (t *Tree) ByFocusOrder(i int) int {
	n := t.At(i)
	for _, id := range n.FocusOrder {
		for _, c := range n.Children {
			if t.At(c).ID == id {
				return c
			}
		}
		for _, c := range n.Floats {
			if t.At(c).ID == id {
				return c
			}
		}
	}
	if len(n.Children) > 0 {
		return n.Children[0]
	}
	if len(n.Floats) > 0 {
		return n.Floats[0]
	}
	return -1
}

// FloatAnchor returns the ancestor of i (or i itself) that is a direct
// member of workspace ws's floating list, or -1. This is the container
// whose geometry competes with sibling floats.
func (t *Tree) FloatAnchor(ws, i int) int {
	for c := i; c >= 0; c = t.At(c).Parent {
		if t.At(c).Parent == ws && t.At(c).Floating {
			return c
		}
	}
	return -1
}
