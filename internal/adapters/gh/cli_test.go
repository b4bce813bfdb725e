package gh

import (
	"context"
	"errors"
	"os/exec"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"proot/internal/ports"
	portsmocks "proot/internal/ports/mocks"
)

func TestListArgs(t *testing.T) {
	tests := []struct {
		name     string
		opts     ports.ListOptions
		expected []string
	}{
		{
			name:     "defaults",
			opts:     ports.ListOptions{},
			expected: []string{"pr", "list", "--json", PullRequestFields},
		},
		{
			name: "all options",
			opts: ports.ListOptions{Limit: 50, Repo: "cli/cli", Search: "author:@me ", State: "all"},
			expected: []string{
				"pr", "list", "--json", PullRequestFields,
				"--repo", "cli/cli",
				"--state", "all",
				"--limit", "50",
				"--search", "author:@me",
			},
		},
		{
			name:     "blank search is dropped",
			opts:     ports.ListOptions{Search: "   "},
			expected: []string{"pr", "list", "--json", PullRequestFields},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, listArgs(tt.opts))
		})
	}
}

func TestCLI_ListPullRequests(t *testing.T) {
	runner := portsmocks.NewMockCommandRunner(t)
	runner.EXPECT().
		Run(mock.Anything, "gh", []string{"pr", "list", "--json", PullRequestFields, "--state", "open"}).
		Return([]byte(`[]`), nil)

	output, err := NewCLI(runner).ListPullRequests(context.Background(), ports.ListOptions{State: "open"})

	require.NoError(t, err)
	assert.Equal(t, "[]", string(output))
}

func TestCLI_ListPullRequests_Error(t *testing.T) {
	runner := portsmocks.NewMockCommandRunner(t)
	cmdErr := &CommandError{Args: []string{"pr", "list"}, Stderr: "no git remotes found"}
	runner.EXPECT().Run(mock.Anything, "gh", mock.Anything).Return(nil, cmdErr)

	output, err := NewCLI(runner).ListPullRequests(context.Background(), ports.ListOptions{})

	require.Error(t, err)
	assert.Nil(t, output)
	assert.Equal(t, "no git remotes found", err.Error())
}

func TestCLI_CheckHealth(t *testing.T) {
	runner := portsmocks.NewMockCommandRunner(t)
	runner.EXPECT().
		Run(mock.Anything, "gh", []string{"--version"}).
		Return([]byte("gh version 2.62.0 (2024-11-14)\nhttps://github.com/cli/cli/releases/tag/v2.62.0\n"), nil)

	version, err := NewCLI(runner).CheckHealth(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "gh version 2.62.0 (2024-11-14)", version)
}

func TestCLI_CheckHealth_NotInstalled(t *testing.T) {
	runner := portsmocks.NewMockCommandRunner(t)
	runner.EXPECT().
		Run(mock.Anything, "gh", []string{"--version"}).
		Return(nil, &CommandError{Args: []string{"--version"}, Err: ErrNotInstalled})

	_, err := NewCLI(runner).CheckHealth(context.Background())

	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNotInstalled))
	assert.Contains(t, err.Error(), "gh CLI not found")
}

func TestCLI_OpenInBrowser(t *testing.T) {
	tests := []struct {
		name     string
		repo     string
		expected []string
	}{
		{"current repo", "", []string{"pr", "view", "42", "--web"}},
		{"explicit repo", "cli/cli", []string{"pr", "view", "42", "--web", "--repo", "cli/cli"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			runner := portsmocks.NewMockCommandRunner(t)
			runner.EXPECT().Run(mock.Anything, "gh", tt.expected).Return(nil, nil)

			err := NewCLI(runner).OpenInBrowser(context.Background(), tt.repo, 42)

			require.NoError(t, err)
		})
	}
}

func TestCommandError(t *testing.T) {
	cause := errors.New("exit status 1")

	withStderr := &CommandError{Args: []string{"pr", "list"}, Err: cause, Stderr: "not a git repository"}
	assert.Equal(t, "not a git repository", withStderr.Error())
	assert.True(t, errors.Is(withStderr, cause))

	withoutStderr := &CommandError{Args: []string{"pr", "list"}, Err: cause}
	assert.Equal(t, "failed to run gh pr list: exit status 1", withoutStderr.Error())
}

func TestExecRunner_MissingBinary(t *testing.T) {
	_, err := NewExecRunner().Run(context.Background(), "proot-test-binary-that-does-not-exist", nil)

	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNotInstalled))
}

func TestCommandError_Timeout(t *testing.T) {
	err := &CommandError{Args: []string{"pr", "list"}, Err: context.DeadlineExceeded, Stderr: "signal: killed"}

	assert.Equal(t, "gh pr list timed out (raise --timeout): context deadline exceeded", err.Error())
	assert.True(t, errors.Is(err, context.DeadlineExceeded))
}

func TestExecRunner_Timeout(t *testing.T) {
	if _, err := exec.LookPath("sleep"); err != nil {
		t.Skip("sleep not available")
	}
	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err := NewExecRunner().Run(ctx, "sleep", []string{"5"})

	require.Error(t, err)
	assert.True(t, errors.Is(err, context.DeadlineExceeded))
	assert.Contains(t, err.Error(), "timed out")
	assert.NotContains(t, err.Error(), "signal: killed")
}
