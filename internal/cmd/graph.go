package cmd

import (
	"context"
	"fmt"
	"strconv"
)

// GraphCmd prints the PR graph, or opens a PR on the web when given a number
type GraphCmd struct {
	Number string `arg:"" optional:"" name:"pr-number" help:"Number of the PR to open on the web"`
}

// Validate rejects PR numbers that are not positive integers
func (g *GraphCmd) Validate() error {
	if g.Number == "" {
		return nil
	}
	_, err := g.prNumber()
	return err
}

// Run executes the graph command
func (g *GraphCmd) Run(cli *CLI) error {
	ctx := context.Background()

	if g.Number == "" {
		return cli.showGraph(ctx, "")
	}

	number, err := g.prNumber()
	if err != nil {
		return err
	}
	if err := cli.Container.GraphService.OpenPullRequest(ctx, cli.firstRepo(), number); err != nil {
		return err
	}
	cli.success(fmt.Sprintf("Opened PR %d on the web", number))
	return nil
}

func (g *GraphCmd) prNumber() (int, error) {
	number, err := strconv.Atoi(g.Number)
	if err != nil || number <= 0 {
		return 0, fmt.Errorf("invalid PR number %q: expected a positive integer", g.Number)
	}
	return number, nil
}
