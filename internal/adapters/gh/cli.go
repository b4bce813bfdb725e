package gh

import (
	"bufio"
	"bytes"
	"context"
	"strconv"
	"strings"

	"proot/internal/logging"
	"proot/internal/ports"
)

// PullRequestFields is the --json field list requested from `gh pr list`.
// domain.ParsePullRequests depends on exactly these fields.
const PullRequestFields = "id,number,title,url,state,isCrossRepository,baseRefName,headRefName,headRepositoryOwner"

const binary = "gh"

// CLI implements ports.PullRequestSource on top of the GitHub CLI
type CLI struct {
	runner ports.CommandRunner
}

// Compile-time interface verification
var _ ports.PullRequestSource = (*CLI)(nil)

// NewCLI creates a new CLI using runner to invoke gh
func NewCLI(runner ports.CommandRunner) *CLI {
	return &CLI{runner: runner}
}

// CheckHealth runs `gh --version` and returns its first line
func (c *CLI) CheckHealth(ctx context.Context) (string, error) {
	logging.Logger.Info("Checking if gh cli is installed")

	output, err := c.runner.Run(ctx, binary, []string{"--version"})
	if err != nil {
		return "", err
	}

	scanner := bufio.NewScanner(bytes.NewReader(output))
	if scanner.Scan() {
		return strings.TrimSpace(scanner.Text()), nil
	}
	return "", nil
}

// ListPullRequests runs `gh pr list --json ...` and returns its raw output
func (c *CLI) ListPullRequests(ctx context.Context, opts ports.ListOptions) ([]byte, error) {
	logging.Logger.Info("Getting PR list from GitHub", "repo", opts.Repo, "search", opts.Search, "state", opts.State)
	return c.runner.Run(ctx, binary, listArgs(opts))
}

// OpenInBrowser runs `gh pr view <number> --web`
func (c *CLI) OpenInBrowser(ctx context.Context, repo string, number int) error {
	logging.Logger.Info("Opening PR on GitHub", "repo", repo, "number", number)

	args := []string{"pr", "view", strconv.Itoa(number), "--web"}
	if repo != "" {
		args = append(args, "--repo", repo)
	}

	_, err := c.runner.Run(ctx, binary, args)
	return err
}

func listArgs(opts ports.ListOptions) []string {
	args := []string{"pr", "list", "--json", PullRequestFields}
	if opts.Repo != "" {
		args = append(args, "--repo", opts.Repo)
	}
	if opts.State != "" {
		args = append(args, "--state", opts.State)
	}
	if opts.Limit > 0 {
		args = append(args, "--limit", strconv.Itoa(opts.Limit))
	}
	if search := strings.TrimSpace(opts.Search); search != "" {
		args = append(args, "--search", search)
	}
	return args
}
