package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"proot/internal/domain"
	"proot/internal/graph"
	"proot/internal/logging"
	"proot/internal/ports"
)

// ErrNoPullRequests is returned when the provider reports an empty PR list
var ErrNoPullRequests = errors.New("no PRs found")

// GraphRequest describes which pull requests to graph
type GraphRequest struct {
	Limit  int
	Repos  []string // Empty means the repository of the current directory
	Search string
	State  string
}

// RepoGraph is the graph of a single repository.
// Graph is nil when the repository has no matching PRs.
type RepoGraph struct {
	Graph        *graph.Graph
	PullRequests []domain.PullRequest
	Repo         string
}

// GraphService fetches pull requests and builds their dependency graph
type GraphService struct {
	source  ports.PullRequestSource
	timeout time.Duration
}

// NewGraphService creates a new GraphService.
// Every provider call is bounded by timeout (0 disables the limit).
func NewGraphService(source ports.PullRequestSource, timeout time.Duration) *GraphService {
	return &GraphService{
		source:  source,
		timeout: timeout,
	}
}

// CheckHealth verifies the PR provider is available and returns its version
func (s *GraphService) CheckHealth(ctx context.Context) (string, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	version, err := s.source.CheckHealth(ctx)
	if err != nil {
		return "", err
	}
	logging.Logger.Debug("PR provider is healthy", "version", version)
	return version, nil
}

// OpenPullRequest opens PR number of repo in the browser
func (s *GraphService) OpenPullRequest(ctx context.Context, repo string, number int) error {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	return s.source.OpenInBrowser(ctx, repo, number)
}

// ListPullRequests fetches and decodes the pull requests of one repository.
// Returns ErrNoPullRequests when the list is empty.
func (s *GraphService) ListPullRequests(ctx context.Context, opts ports.ListOptions) ([]domain.PullRequest, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	output, err := s.source.ListPullRequests(ctx, opts)
	if err != nil {
		return nil, err
	}

	prs, err := domain.ParsePullRequests(output)
	if err != nil {
		logging.Logger.Error("Failed to decode PR list", "repo", opts.Repo, "error", err)
		return nil, err
	}

	logging.Logger.Debug("Decoded PR list", "repo", opts.Repo, "count", len(prs))
	if len(prs) == 0 {
		return nil, ErrNoPullRequests
	}
	return prs, nil
}

// LoadGraph builds the graph of a single repository
func (s *GraphService) LoadGraph(ctx context.Context, opts ports.ListOptions) (*RepoGraph, error) {
	prs, err := s.ListPullRequests(ctx, opts)
	if err != nil {
		return nil, err
	}

	g := graph.New(prs)
	logging.Logger.Debug("Built PR graph",
		"repo", opts.Repo,
		"prs", g.Len(),
		"edges", g.Edges(),
		"roots", len(g.Roots()))

	return &RepoGraph{
		Graph:        g,
		PullRequests: prs,
		Repo:         opts.Repo,
	}, nil
}

// LoadGraphs builds one graph per requested repository, fetching in parallel.
// Results keep the order of req.Repos. Repositories without PRs get a nil
// Graph; ErrNoPullRequests is returned only when every repository is empty.
func (s *GraphService) LoadGraphs(ctx context.Context, req GraphRequest) ([]RepoGraph, error) {
	repos := req.Repos
	if len(repos) == 0 {
		repos = []string{""}
	}

	results := make([]RepoGraph, len(repos))
	g, ctx := errgroup.WithContext(ctx)

	for i, repo := range repos {
		g.Go(func() error {
			rg, err := s.LoadGraph(ctx, ports.ListOptions{
				Limit:  req.Limit,
				Repo:   repo,
				Search: req.Search,
				State:  req.State,
			})
			if errors.Is(err, ErrNoPullRequests) {
				results[i] = RepoGraph{Repo: repo}
				return nil
			}
			if err != nil {
				if repo != "" {
					return fmt.Errorf("%s: %w", repo, err)
				}
				return err
			}
			results[i] = *rg
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	for _, rg := range results {
		if rg.Graph != nil {
			return results, nil
		}
	}
	return nil, ErrNoPullRequests
}

func (s *GraphService) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if s.timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, s.timeout)
}
