package graph

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"proot/internal/theme"
)

// Header is the first line of every rendered graph
const Header = "Pull Request Graph"

// Connector glyphs
const (
	glyphRoot     = "┌"
	glyphBranch   = "├──○"
	glyphLeaf     = "└──○"
	glyphVertical = "│"
	glyphBlank    = " "
)

// RenderOptions controls presentation of the rendered tree
type RenderOptions struct {
	EnableColor  bool
	SortChildren bool // Sort each child list instead of keeping input order
	Styles       theme.Styles
}

// Renderer prints a Graph as a connector-decorated tree
type Renderer struct {
	opts RenderOptions
}

// NewRenderer creates a Renderer
func NewRenderer(opts RenderOptions) *Renderer {
	return &Renderer{opts: opts}
}

// Render returns the header followed by one tree per root, each followed by
// a blank line. A branch is expanded at most once per call, so shared
// children and cycles are printed without repeating their subtree.
func (r *Renderer) Render(g *Graph) string {
	var b strings.Builder
	visited := make(map[string]bool)

	b.WriteString(Header)
	b.WriteString("\n\n")

	for _, root := range g.Roots() {
		fmt.Fprintf(&b, "%s %s\n",
			r.paint(r.opts.Styles.Connector, glyphRoot),
			r.paint(r.opts.Styles.Root, root))
		r.walk(g, root, "", visited, &b)
		b.WriteString("\n")
	}

	return b.String()
}

func (r *Renderer) walk(g *Graph, node, indent string, visited map[string]bool, b *strings.Builder) {
	if visited[node] {
		return
	}
	visited[node] = true

	children := g.adjacency[node]
	if r.opts.SortChildren {
		children = append([]string(nil), children...)
		sort.Strings(children)
	}

	for i, head := range children {
		last := i == len(children)-1
		connector, continuation := glyphBranch, glyphVertical
		if last {
			connector, continuation = glyphLeaf, glyphBlank
		}

		if pr, ok := g.Lookup(head, node); ok {
			fmt.Fprintf(b, "%s%s %s %s - %s\n",
				indent,
				r.paint(r.opts.Styles.Connector, connector),
				r.paint(r.opts.Styles.Number, fmt.Sprintf("[#%d]", pr.Number)),
				head,
				r.paint(r.opts.Styles.Title, pr.DisplayTitle()))
		} else {
			fmt.Fprintf(b, "%s  %s\n", indent, head)
		}

		r.walk(g, head, indent+r.paint(r.opts.Styles.Connector, continuation)+"  ", visited, b)
	}
}

func (r *Renderer) paint(style lipgloss.Style, s string) string {
	if !r.opts.EnableColor || s == "" {
		return s
	}
	return style.Render(s)
}
