package target

import "github.com/korreman/sway-overfocus/internal/geometry"

// Kind selects which class of container a target navigates between.
type Kind int

const (
	KindSplit Kind = iota
	KindGroup
	KindFloat
	KindWorkspace
	KindOutput
)

// String returns the token spelling of a Kind.
func (k Kind) String() string {
	switch k {
	case KindSplit:
		return "split"
	case KindGroup:
		return "group"
	case KindFloat:
		return "float"
	case KindWorkspace:
		return "workspace"
	case KindOutput:
		return "output"
	default:
		return "unknown"
	}
}

// Edge describes what happens when a directional step would leave the
// containing frame.
type Edge int

const (
	// EdgeStop does nothing; focus stays put.
	EdgeStop Edge = iota
	// EdgeWrap wraps around to the first or last sibling.
	EdgeWrap
	// EdgeInactive spills into the next matching ancestor, descending by
	// most-recently-focused child.
	EdgeInactive
	// EdgeTraverse spills like EdgeInactive but descends by geometric
	// proximity to the previously focused container.
	EdgeTraverse
)

// String returns the token spelling of an Edge.
func (e Edge) String() string {
	switch e {
	case EdgeStop:
		return "s"
	case EdgeWrap:
		return "w"
	case EdgeInactive:
		return "i"
	case EdgeTraverse:
		return "t"
	default:
		return "?"
	}
}

// Target is one parsed movement intent. Targets are attempted strictly
// in the order the user supplied them.
type Target struct {
	Kind Kind
	Dir  geometry.Direction
	Edge Edge
}

// String reassembles the argv token form, e.g. "split-rs".
func (t Target) String() string {
	var dir string
	switch t.Dir {
	case geometry.DirUp:
		dir = "u"
	case geometry.DirDown:
		dir = "d"
	case geometry.DirLeft:
		dir = "l"
	case geometry.DirRight:
		dir = "r"
	}
	return t.Kind.String() + "-" + dir + t.Edge.String()
}
