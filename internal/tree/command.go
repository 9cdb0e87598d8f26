package tree

import (
	"errors"
	"fmt"
)

// ErrNoCommand is returned when a node cannot be addressed by any focus
// command: the root, or a nameless workspace or output (in either mode).
var ErrNoCommand = errors.New("no focus command for node")

// FocusCommand renders the command that moves focus to n.
//
// Plain containers are addressed by their stable id. i3 cannot focus
// workspaces or outputs through con_id criteria, so those fall back to
// name-based commands; sway accepts con_id everywhere but the same
// name-based forms keep empty workspaces reachable.
func FocusCommand(n *Node, i3 bool) (string, error) {
	switch n.Kind {
	case KindRoot:
		return "", ErrNoCommand
	case KindWorkspace:
		if n.Name == "" {
			return "", ErrNoCommand
		}
		return fmt.Sprintf("workspace %s", n.Name), nil
	case KindOutput:
		if n.Name == "" {
			return "", ErrNoCommand
		}
		return fmt.Sprintf("focus output %s", n.Name), nil
	default:
		if i3 {
			return fmt.Sprintf("[con_id=\"%d\"] focus", n.ID), nil
		}
		return fmt.Sprintf("[con_id=%d] focus", n.ID), nil
	}
}
