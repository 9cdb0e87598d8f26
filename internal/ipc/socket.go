package ipc

import (
	"context"
	"fmt"

	sway "github.com/joshuarubin/go-sway"

	"github.com/korreman/sway-overfocus/internal/tree"
)

// Socket talks to sway's IPC socket directly instead of shelling out,
// saving a subprocess per keypress. sway only: i3 users go through
// i3-msg.
type Socket struct {
	client sway.Client
}

// NewSocket connects to the socket advertised by SWAYSOCK.
func NewSocket(ctx context.Context) (*Socket, error) {
	client, err := sway.New(ctx)
	if err != nil {
		return nil, &Failure{Op: "sway socket", Err: err}
	}
	return &Socket{client: client}, nil
}

// GetTree fetches the layout tree over the socket.
func (s *Socket) GetTree(ctx context.Context) (*tree.Tree, error) {
	root, err := s.client.GetTree(ctx)
	if err != nil {
		return nil, &Failure{Op: "get_tree", Err: err}
	}
	t, err := tree.Build(fromSway(root))
	if err != nil {
		return nil, &Failure{Op: "get_tree", Err: err}
	}
	return t, nil
}

// RunCommand dispatches a command over the socket.
func (s *Socket) RunCommand(ctx context.Context, command string) error {
	replies, err := s.client.RunCommand(ctx, command)
	if err != nil {
		return &Failure{Op: "run_command", Err: err}
	}
	for i, r := range replies {
		if !r.Success {
			return &Failure{Op: "run_command", Err: fmt.Errorf("command %d failed: %s", i, r.Error)}
		}
	}
	return nil
}

// fromSway rebuilds the wire payload from go-sway's node type so both
// transports share one tree builder.
func fromSway(n *sway.Node) *tree.Raw {
	raw := &tree.Raw{
		ID:      n.ID,
		Name:    n.Name,
		Type:    string(n.Type),
		Layout:  string(n.Layout),
		Focused: n.Focused,
		Focus:   n.Focus,
		Rect: tree.RawRect{
			X:      int(n.Rect.X),
			Y:      int(n.Rect.Y),
			Width:  int(n.Rect.Width),
			Height: int(n.Rect.Height),
		},
	}
	for _, c := range n.Nodes {
		raw.Nodes = append(raw.Nodes, *fromSway(c))
	}
	for _, c := range n.FloatingNodes {
		raw.FloatingNodes = append(raw.FloatingNodes, *fromSway(c))
	}
	return raw
}
