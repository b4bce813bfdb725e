// Package graph builds the branch dependency graph of a set of pull requests
// and renders it as a tree.
package graph

import (
	"sort"

	"proot/internal/domain"
)

// EdgeKey identifies the PR that stacks Head on top of Base
type EdgeKey struct {
	Base string
	Head string
}

// Graph maps each base branch to the head branches built directly on it.
// It is built once by New and never mutated afterwards.
type Graph struct {
	adjacency map[string][]string
	prs       map[EdgeKey]domain.PullRequest
}

// New builds a Graph from a list of pull requests.
// Children keep the order of the input list. When two PRs share the same
// (head, base) pair the last one wins in the PR index.
func New(prs []domain.PullRequest) *Graph {
	g := &Graph{
		adjacency: make(map[string][]string),
		prs:       make(map[EdgeKey]domain.PullRequest, len(prs)),
	}

	for _, pr := range prs {
		head := pr.HeadName()
		g.prs[EdgeKey{Head: head, Base: pr.BaseRefName}] = pr
		g.adjacency[pr.BaseRefName] = append(g.adjacency[pr.BaseRefName], head)
	}

	return g
}

// Lookup returns the PR that stacks head on top of base
func (g *Graph) Lookup(head, base string) (domain.PullRequest, bool) {
	pr, ok := g.prs[EdgeKey{Head: head, Base: base}]
	return pr, ok
}

// Children returns a copy of the heads built directly on base
func (g *Graph) Children(base string) []string {
	children := g.adjacency[base]
	if len(children) == 0 {
		return nil
	}
	return append([]string(nil), children...)
}

// Bases returns every branch used as a base, sorted
func (g *Graph) Bases() []string {
	bases := make([]string, 0, len(g.adjacency))
	for base := range g.adjacency {
		bases = append(bases, base)
	}
	sort.Strings(bases)
	return bases
}

// Len returns the number of indexed PRs
func (g *Graph) Len() int {
	return len(g.prs)
}

// Edges returns the total number of base -> head entries
func (g *Graph) Edges() int {
	n := 0
	for _, children := range g.adjacency {
		n += len(children)
	}
	return n
}

// Roots returns the bases that are never the head of another PR, sorted.
func (g *Graph) Roots() []string {
	heads := make(map[string]struct{}, len(g.prs))
	for _, children := range g.adjacency {
		for _, head := range children {
			heads[head] = struct{}{}
		}
	}

	var roots []string
	for base := range g.adjacency {
		if _, isHead := heads[base]; !isHead {
			roots = append(roots, base)
		}
	}
	sort.Strings(roots)
	return roots
}

// Format renders the graph as plain text with default options
func (g *Graph) Format() string {
	return NewRenderer(RenderOptions{}).Render(g)
}
