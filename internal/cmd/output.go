package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"

	"proot/internal/config"
	"proot/internal/graph"
	"proot/internal/logging"
	"proot/internal/services"
	"proot/internal/theme"
)

// colorEnabled resolves the --color mode for w.
// In auto mode color is used only on terminals and when NO_COLOR is unset.
func colorEnabled(mode string, w io.Writer) bool {
	switch mode {
	case config.ColorAlways:
		return true
	case config.ColorNever:
		return false
	}

	if _, noColor := os.LookupEnv("NO_COLOR"); noColor {
		return false
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

func (c *CLI) styles() (theme.Styles, bool) {
	return c.stylesFor(c.Stdout), colorEnabled(c.Color, c.Stdout)
}

func (c *CLI) stylesFor(w io.Writer) theme.Styles {
	if c.Color == config.ColorAlways {
		return theme.ForcedStyles(w)
	}
	return theme.DefaultStyles(w)
}

func (c *CLI) success(message string) {
	if styles, enabled := c.styles(); enabled {
		message = styles.Success.Render(message)
	}
	c.printf("✨ %s\n", message)
}

// ReportError prints err to w with the failure prefix
func (c *CLI) ReportError(w io.Writer, err error) {
	message := fmt.Sprintf("❌ %v", err)
	if colorEnabled(c.Color, w) {
		message = c.stylesFor(w).Error.Render(message)
	}
	fmt.Fprintln(w, message)
}

// showGraph fetches the PRs matching search and prints their graph
func (c *CLI) showGraph(ctx context.Context, search string) error {
	results, err := c.Container.GraphService.LoadGraphs(ctx, services.GraphRequest{
		Limit:  c.Limit,
		Repos:  c.Repo,
		Search: search,
		State:  c.State,
	})
	if errors.Is(err, services.ErrNoPullRequests) {
		c.printf("No PRs found\n")
		return nil
	}
	if err != nil {
		return err
	}

	styles, enabled := c.styles()
	renderer := graph.NewRenderer(graph.RenderOptions{
		EnableColor:  enabled,
		SortChildren: c.Sort,
		Styles:       styles,
	})

	if len(results) == 1 {
		c.printf("%s\n", renderer.Render(results[0].Graph))
		return nil
	}

	for _, rg := range results {
		heading := rg.Repo
		if enabled {
			heading = styles.Repo.Render(heading)
		}
		c.printf("%s\n", heading)
		if rg.Graph == nil {
			c.printf("No PRs found\n\n")
			continue
		}
		c.printf("%s\n", renderer.Render(rg.Graph))
	}

	logging.Logger.Debug("Printed PR graphs", "repos", len(results))
	return nil
}
