package ports

import "context"

// ListOptions narrows down the pull requests returned by a PullRequestSource
type ListOptions struct {
	Limit  int    // 0 = provider default
	Repo   string // OWNER/REPO, empty for the current directory's repository
	Search string // Provider search query (e.g. "author:@me")
	State  string // open, closed, merged, all
}

// PullRequestSource provides pull request data for the graph
type PullRequestSource interface {
	// CheckHealth verifies the provider is installed and reachable, returning its version
	CheckHealth(ctx context.Context) (string, error)
	// ListPullRequests returns the raw JSON array of pull request records
	ListPullRequests(ctx context.Context, opts ListOptions) ([]byte, error)
	// OpenInBrowser opens a pull request in the default web browser
	OpenInBrowser(ctx context.Context, repo string, number int) error
}
