package cmd

import (
	"context"
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"proot/internal/domain"
	"proot/internal/logging"
	"proot/internal/ports"
	"proot/internal/services"
)

// PickCmd lets the user choose a PR interactively and opens it on the web
type PickCmd struct {
	Me bool `help:"Only list PRs you created" short:"m"`
}

// Run executes the pick command
func (p *PickCmd) Run(cli *CLI) error {
	ctx := context.Background()
	repo := cli.firstRepo()

	search := ""
	if p.Me {
		search = "author:@me"
	}

	prs, err := cli.Container.GraphService.ListPullRequests(ctx, ports.ListOptions{
		Limit:  cli.Limit,
		Repo:   repo,
		Search: search,
		State:  cli.State,
	})
	if errors.Is(err, services.ErrNoPullRequests) {
		cli.printf("No PRs found\n")
		return nil
	}
	if err != nil {
		return err
	}

	var number int
	form := newPickForm(prs, &number)

	final, err := tea.NewProgram(form).Run()
	if err != nil {
		return fmt.Errorf("error running picker: %w", err)
	}
	if f, ok := final.(*huh.Form); !ok || f.State != huh.StateCompleted {
		logging.Logger.Debug("PR picker cancelled")
		return nil
	}

	if err := cli.Container.GraphService.OpenPullRequest(ctx, repo, number); err != nil {
		return err
	}
	cli.success(fmt.Sprintf("Opened PR %d on the web", number))
	return nil
}

func newPickForm(prs []domain.PullRequest, number *int) *huh.Form {
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[int]().
				Title("Open pull request").
				Options(pickOptions(prs)...).
				Value(number),
		),
	)
	// The form runs as the program's root model, so it must end the program itself
	form.SubmitCmd = tea.Quit
	form.CancelCmd = tea.Quit
	return form
}

// pickOptions labels each PR as "#N head → base  title"
func pickOptions(prs []domain.PullRequest) []huh.Option[int] {
	options := make([]huh.Option[int], 0, len(prs))
	for _, pr := range prs {
		label := fmt.Sprintf("#%d %s → %s", pr.Number, pr.HeadName(), pr.BaseRefName)
		if title := pr.DisplayTitle(); title != "" {
			label += "  " + title
		}
		options = append(options, huh.NewOption(label, pr.Number))
	}
	return options
}
