package cmd

import (
	"context"
	"strings"
)

// FilterCmd prints the graph of PRs matching a search query
type FilterCmd struct {
	Me     bool     `help:"Only show PRs you created" short:"m"`
	Custom []string `help:"Custom filter (check 'gh pr list --help' for more info)" short:"c" sep:"none"`
}

// Run executes the filter command
func (f *FilterCmd) Run(cli *CLI) error {
	return cli.showGraph(context.Background(), f.search())
}

// search builds the gh search query, one space after each term
func (f *FilterCmd) search() string {
	var b strings.Builder
	if f.Me {
		b.WriteString("author:@me ")
	}
	for _, custom := range f.Custom {
		b.WriteString(custom)
		b.WriteString(" ")
	}
	return b.String()
}
