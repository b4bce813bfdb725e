package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"proot/internal/domain"
	"proot/internal/ports"
	portsmocks "proot/internal/ports/mocks"
)

const twoStackedPRs = `[
	{"id": "1", "number": 1, "title": "Base work", "url": "u", "state": "OPEN", "isCrossRepository": false, "baseRefName": "main", "headRefName": "base-work"},
	{"id": "2", "number": 2, "title": "On top", "url": "u", "state": "OPEN", "isCrossRepository": false, "baseRefName": "base-work", "headRefName": "on-top"}
]`

func TestLoadGraph(t *testing.T) {
	source := portsmocks.NewMockPullRequestSource(t)
	opts := ports.ListOptions{State: "open", Limit: 30}
	source.EXPECT().ListPullRequests(mock.Anything, opts).Return([]byte(twoStackedPRs), nil)

	rg, err := NewGraphService(source, time.Second).LoadGraph(context.Background(), opts)

	require.NoError(t, err)
	require.NotNil(t, rg.Graph)
	assert.Len(t, rg.PullRequests, 2)
	assert.Equal(t, []string{"main"}, rg.Graph.Roots())
	assert.Equal(t, 2, rg.Graph.Len())
}

func TestLoadGraph_Empty(t *testing.T) {
	source := portsmocks.NewMockPullRequestSource(t)
	source.EXPECT().ListPullRequests(mock.Anything, mock.Anything).Return([]byte("[]\n"), nil)

	rg, err := NewGraphService(source, time.Second).LoadGraph(context.Background(), ports.ListOptions{})

	assert.Nil(t, rg)
	assert.ErrorIs(t, err, ErrNoPullRequests)
}

func TestLoadGraph_DecodeError(t *testing.T) {
	source := portsmocks.NewMockPullRequestSource(t)
	source.EXPECT().ListPullRequests(mock.Anything, mock.Anything).
		Return([]byte(`[{"id": "1", "number": 1}]`), nil)

	_, err := NewGraphService(source, time.Second).LoadGraph(context.Background(), ports.ListOptions{})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrDecode)
}

func TestLoadGraph_NullDocument(t *testing.T) {
	source := portsmocks.NewMockPullRequestSource(t)
	source.EXPECT().ListPullRequests(mock.Anything, mock.Anything).Return([]byte("null\n"), nil)

	rg, err := NewGraphService(source, time.Second).LoadGraph(context.Background(), ports.ListOptions{})

	assert.Nil(t, rg)
	assert.ErrorIs(t, err, domain.ErrDecode)
	assert.NotErrorIs(t, err, ErrNoPullRequests)
}

func TestLoadGraph_SourceError(t *testing.T) {
	source := portsmocks.NewMockPullRequestSource(t)
	sourceErr := errors.New("gh exploded")
	source.EXPECT().ListPullRequests(mock.Anything, mock.Anything).Return(nil, sourceErr)

	_, err := NewGraphService(source, time.Second).LoadGraph(context.Background(), ports.ListOptions{})

	assert.ErrorIs(t, err, sourceErr)
}

func TestListPullRequests_AppliesTimeout(t *testing.T) {
	source := portsmocks.NewMockPullRequestSource(t)
	source.EXPECT().ListPullRequests(mock.Anything, mock.Anything).
		RunAndReturn(func(ctx context.Context, _ ports.ListOptions) ([]byte, error) {
			deadline, ok := ctx.Deadline()
			assert.True(t, ok)
			assert.WithinDuration(t, time.Now().Add(time.Minute), deadline, 5*time.Second)
			return []byte(twoStackedPRs), nil
		})

	_, err := NewGraphService(source, time.Minute).ListPullRequests(context.Background(), ports.ListOptions{})

	require.NoError(t, err)
}

func TestLoadGraphs_CurrentRepository(t *testing.T) {
	source := portsmocks.NewMockPullRequestSource(t)
	source.EXPECT().
		ListPullRequests(mock.Anything, ports.ListOptions{Search: "author:@me", State: "all", Limit: 10}).
		Return([]byte(twoStackedPRs), nil)

	results, err := NewGraphService(source, 0).LoadGraphs(context.Background(), GraphRequest{
		Limit:  10,
		Search: "author:@me",
		State:  "all",
	})

	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "", results[0].Repo)
	assert.NotNil(t, results[0].Graph)
}

func TestLoadGraphs_MultipleRepositoriesKeepOrder(t *testing.T) {
	source := portsmocks.NewMockPullRequestSource(t)
	source.EXPECT().ListPullRequests(mock.Anything, ports.ListOptions{Repo: "octo/one"}).
		Return([]byte(twoStackedPRs), nil)
	source.EXPECT().ListPullRequests(mock.Anything, ports.ListOptions{Repo: "octo/empty"}).
		Return([]byte(`[]`), nil)
	source.EXPECT().ListPullRequests(mock.Anything, ports.ListOptions{Repo: "octo/two"}).
		Return([]byte(`[{"id": "9", "number": 9, "url": "u", "state": "OPEN", "baseRefName": "develop", "headRefName": "x"}]`), nil)

	results, err := NewGraphService(source, time.Second).LoadGraphs(context.Background(), GraphRequest{
		Repos: []string{"octo/one", "octo/empty", "octo/two"},
	})

	require.NoError(t, err)
	require.Len(t, results, 3)
	assert.Equal(t, "octo/one", results[0].Repo)
	assert.NotNil(t, results[0].Graph)
	assert.Equal(t, "octo/empty", results[1].Repo)
	assert.Nil(t, results[1].Graph)
	assert.Equal(t, "octo/two", results[2].Repo)
	assert.Equal(t, []string{"develop"}, results[2].Graph.Roots())
}

func TestLoadGraphs_AllEmpty(t *testing.T) {
	source := portsmocks.NewMockPullRequestSource(t)
	source.EXPECT().ListPullRequests(mock.Anything, mock.Anything).Return([]byte(`[]`), nil).Times(2)

	results, err := NewGraphService(source, time.Second).LoadGraphs(context.Background(), GraphRequest{
		Repos: []string{"octo/a", "octo/b"},
	})

	assert.Nil(t, results)
	assert.ErrorIs(t, err, ErrNoPullRequests)
}

func TestLoadGraphs_ErrorNamesRepository(t *testing.T) {
	source := portsmocks.NewMockPullRequestSource(t)
	source.EXPECT().ListPullRequests(mock.Anything, ports.ListOptions{Repo: "octo/bad"}).
		Return([]byte(`{}`), nil)

	_, err := NewGraphService(source, time.Second).LoadGraphs(context.Background(), GraphRequest{
		Repos: []string{"octo/bad"},
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrDecode)
	assert.Contains(t, err.Error(), "octo/bad: ")
}

func TestCheckHealth(t *testing.T) {
	source := portsmocks.NewMockPullRequestSource(t)
	source.EXPECT().CheckHealth(mock.Anything).Return("gh version 2.62.0", nil)

	version, err := NewGraphService(source, time.Second).CheckHealth(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "gh version 2.62.0", version)
}

func TestOpenPullRequest(t *testing.T) {
	source := portsmocks.NewMockPullRequestSource(t)
	source.EXPECT().OpenInBrowser(mock.Anything, "octo/one", 7).Return(nil)

	err := NewGraphService(source, time.Second).OpenPullRequest(context.Background(), "octo/one", 7)

	require.NoError(t, err)
}
