// Package output renders human-readable views of the layout tree for
// the inspection subcommands. Nothing here is on the focus path.
package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/korreman/sway-overfocus/internal/tree"
)

var (
	kindColor    = color.New(color.FgCyan)
	focusedColor = color.New(color.FgGreen, color.Bold)
	idColor      = color.New(color.FgYellow)
	floatColor   = color.New(color.FgMagenta)
)

// PrintTree writes an indented rendition of the snapshot, marking the
// focused node and the floating attachments.
func PrintTree(w io.Writer, t *tree.Tree) {
	printNode(w, t, t.Root, 0, false)
}

func printNode(w io.Writer, t *tree.Tree, i, depth int, floating bool) {
	n := t.At(i)
	var b strings.Builder
	b.WriteString(strings.Repeat("  ", depth))
	b.WriteString(idColor.Sprintf("[%d]", n.ID))
	b.WriteString(" ")
	b.WriteString(kindColor.Sprint(n.Kind.String()))
	if n.Layout != tree.LayoutNone {
		fmt.Fprintf(&b, "/%s", n.Layout)
	}
	fmt.Fprintf(&b, " %dx%d@%d,%d", n.Rect.W, n.Rect.H, n.Rect.X, n.Rect.Y)
	if floating {
		b.WriteString(" ")
		b.WriteString(floatColor.Sprint("float"))
	}
	if n.Name != "" {
		fmt.Fprintf(&b, " | %s", n.Name)
	}
	if n.Focused {
		b.WriteString(" ")
		b.WriteString(focusedColor.Sprint("*focused*"))
	}
	fmt.Fprintln(w, b.String())

	for _, c := range n.Children {
		printNode(w, t, c, depth+1, false)
	}
	for _, c := range n.Floats {
		printNode(w, t, c, depth+1, true)
	}
}
