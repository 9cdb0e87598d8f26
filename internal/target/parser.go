package target

import (
	"errors"
	"fmt"
	"strings"

	"github.com/korreman/sway-overfocus/internal/geometry"
)

// ErrEmpty is returned when no target tokens were supplied.
var ErrEmpty = errors.New("no targets given")

// BadTargetError reports a token that does not match the target grammar.
type BadTargetError struct {
	Token  string
	Reason string
}

func (e *BadTargetError) Error() string {
	return fmt.Sprintf("bad target %q: %s", e.Token, e.Reason)
}

// Parse converts one argv token of the shape <kind>-<dir><edge> into a
// Target, e.g. "split-lt" or "group-rw".
func Parse(token string) (Target, error) {
	name, mode, ok := strings.Cut(token, "-")
	if !ok {
		return Target{}, &BadTargetError{token, "expected <kind>-<dir><edge>"}
	}

	var kind Kind
	switch name {
	case "split":
		kind = KindSplit
	case "group":
		kind = KindGroup
	case "float":
		kind = KindFloat
	case "workspace":
		kind = KindWorkspace
	case "output":
		kind = KindOutput
	default:
		return Target{}, &BadTargetError{token, fmt.Sprintf("unknown kind %q", name)}
	}

	if len(mode) != 2 {
		return Target{}, &BadTargetError{token, "expected one direction and one edge character"}
	}

	var dir geometry.Direction
	switch mode[0] {
	case 'u':
		dir = geometry.DirUp
	case 'd':
		dir = geometry.DirDown
	case 'l':
		dir = geometry.DirLeft
	case 'r':
		dir = geometry.DirRight
	default:
		return Target{}, &BadTargetError{token, fmt.Sprintf("unknown direction %q", mode[0:1])}
	}

	var edge Edge
	switch mode[1] {
	case 's':
		edge = EdgeStop
	case 'w':
		edge = EdgeWrap
	case 'i':
		edge = EdgeInactive
	case 't':
		edge = EdgeTraverse
	default:
		return Target{}, &BadTargetError{token, fmt.Sprintf("unknown edge mode %q", mode[1:2])}
	}

	return Target{Kind: kind, Dir: dir, Edge: edge}, nil
}

// ParseAll parses an ordered token list. Order is significant: the focus
// engine attempts targets front to back and takes the first success.
func ParseAll(tokens []string) ([]Target, error) {
	if len(tokens) == 0 {
		return nil, ErrEmpty
	}
	targets := make([]Target, 0, len(tokens))
	for _, tok := range tokens {
		t, err := Parse(tok)
		if err != nil {
			return nil, err
		}
		targets = append(targets, t)
	}
	return targets, nil
}
