package output

import (
	"fmt"
	"io"

	"github.com/olekukonko/tablewriter"

	"github.com/korreman/sway-overfocus/internal/tree"
)

// PrintOutputsTable prints every output with its geometry and visible
// workspace.
func PrintOutputsTable(w io.Writer, t *tree.Tree) {
	table := tablewriter.NewWriter(w)
	table.Header("ID", "Name", "Geometry", "Workspace")

	for _, o := range t.At(t.Root).Children {
		n := t.At(o)
		if n.Kind != tree.KindOutput {
			continue
		}
		visible := ""
		if ws := t.ByFocusOrder(o); ws >= 0 {
			visible = t.At(ws).Name
		}
		table.Append(
			fmt.Sprintf("%d", n.ID),
			n.Name,
			fmt.Sprintf("%dx%d@%d,%d", n.Rect.W, n.Rect.H, n.Rect.X, n.Rect.Y),
			visible,
		)
	}

	table.Render()
}

// PrintWorkspacesTable prints every workspace with its output, window
// counts, and whether it holds the focus.
func PrintWorkspacesTable(w io.Writer, t *tree.Tree) {
	table := tablewriter.NewWriter(w)
	table.Header("Name", "Output", "Tiled", "Floating", "Focused")

	for _, o := range t.At(t.Root).Children {
		if t.At(o).Kind != tree.KindOutput {
			continue
		}
		for _, ws := range t.At(o).Children {
			n := t.At(ws)
			if n.Kind != tree.KindWorkspace {
				continue
			}
			focused := ""
			if holdsFocus(t, ws) {
				focused = "*"
			}
			table.Append(
				n.Name,
				t.At(o).Name,
				fmt.Sprintf("%d", len(n.Children)),
				fmt.Sprintf("%d", len(n.Floats)),
				focused,
			)
		}
	}

	table.Render()
}

func holdsFocus(t *tree.Tree, ws int) bool {
	for i := t.Focused; i >= 0; i = t.At(i).Parent {
		if i == ws {
			return true
		}
	}
	return false
}
