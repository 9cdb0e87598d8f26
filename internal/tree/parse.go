package tree

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/korreman/sway-overfocus/internal/geometry"
)

// ErrNoFocus is returned when the snapshot claims no focused container.
var ErrNoFocus = errors.New("tree has no focused node")

// ErrMultiFocus is returned when more than one container claims focus.
var ErrMultiFocus = errors.New("tree has more than one focused node")

// Raw mirrors the per-node JSON payload of a get_tree reply. Both sway
// and i3 emit this shape.
type Raw struct {
	ID            int64   `json:"id"`
	Name          string  `json:"name"`
	Type          string  `json:"type"`
	Layout        string  `json:"layout"`
	Rect          RawRect `json:"rect"`
	Focused       bool    `json:"focused"`
	Nodes         []Raw   `json:"nodes"`
	FloatingNodes []Raw   `json:"floating_nodes"`
	Focus         []int64 `json:"focus"`
}

// RawRect is the wire form of a rectangle.
type RawRect struct {
	X      int `json:"x"`
	Y      int `json:"y"`
	Width  int `json:"width"`
	Height int `json:"height"`
}

// Parse decodes a get_tree reply and builds the arena.
func Parse(data []byte) (*Tree, error) {
	var root Raw
	if err := json.Unmarshal(data, &root); err != nil {
		return nil, fmt.Errorf("malformed tree reply: %w", err)
	}
	return Build(&root)
}

// Build flattens a decoded payload into a Tree and checks the focus
// invariant: exactly one node carries focused=true.
func Build(root *Raw) (*Tree, error) {
	if root.Type != "root" {
		return nil, fmt.Errorf("tree root has type %q, want \"root\"", root.Type)
	}
	t := &Tree{Focused: -1}
	if _, err := t.add(root, -1, false); err != nil {
		return nil, err
	}
	if t.Focused < 0 {
		return nil, ErrNoFocus
	}
	return t, nil
}

func (t *Tree) add(raw *Raw, parent int, floating bool) (int, error) {
	idx := len(t.Nodes)
	kind := parseKind(raw.Type, floating)
	layout := parseLayout(raw.Layout)
	// sway reports the root as splith; left as-is it would match split
	// targets and index across outputs. Outputs and the root only
	// participate through their kind.
	switch kind {
	case KindRoot:
		layout = LayoutNone
	case KindOutput:
		layout = LayoutOutput
	}
	t.Nodes = append(t.Nodes, Node{
		ID:         raw.ID,
		Name:       raw.Name,
		Kind:       kind,
		Layout:     layout,
		Rect:       geometry.Rect{X: raw.Rect.X, Y: raw.Rect.Y, W: raw.Rect.Width, H: raw.Rect.Height},
		Focused:    raw.Focused,
		Parent:     parent,
		Floating:   floating,
		FocusOrder: raw.Focus,
	})
	if raw.Focused {
		if t.Focused >= 0 {
			return 0, ErrMultiFocus
		}
		t.Focused = idx
	}
	for i := range raw.Nodes {
		c, err := t.add(&raw.Nodes[i], idx, false)
		if err != nil {
			return 0, err
		}
		t.Nodes[idx].Children = append(t.Nodes[idx].Children, c)
	}
	for i := range raw.FloatingNodes {
		c, err := t.add(&raw.FloatingNodes[i], idx, true)
		if err != nil {
			return 0, err
		}
		t.Nodes[idx].Floats = append(t.Nodes[idx].Floats, c)
	}
	return idx, nil
}

func parseKind(s string, floating bool) Kind {
	switch s {
	case "root":
		return KindRoot
	case "output":
		return KindOutput
	case "workspace":
		return KindWorkspace
	case "floating_con":
		return KindFloatingCon
	case "dockarea":
		return KindDockArea
	default:
		// i3 reports floats as "floating_con"; sway keeps "con" and
		// relies on the floating_nodes attachment.
		if floating {
			return KindFloatingCon
		}
		return KindCon
	}
}

func parseLayout(s string) Layout {
	switch s {
	case "splith":
		return LayoutSplitH
	case "splitv":
		return LayoutSplitV
	case "tabbed":
		return LayoutTabbed
	case "stacked":
		return LayoutStacked
	case "output":
		return LayoutOutput
	default:
		return LayoutNone
	}
}
