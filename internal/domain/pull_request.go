package domain

// RepositoryOwner is the account owning the head repository of a PR
type RepositoryOwner struct {
	Login string
}

// PullRequest represents a pull request as reported by the PR-data provider
type PullRequest struct {
	BaseRefName         string           // Branch the PR targets
	HeadRefName         string           // Branch containing the changes
	HeadRepositoryOwner *RepositoryOwner // Set only when IsCrossRepository is true
	ID                  string
	IsCrossRepository   bool
	Number              int
	State               string  // OPEN, CLOSED, MERGED (opaque)
	Title               *string // nil when absent
	URL                 string
}

// HeadName returns the effective head branch name.
// Cross-repository PRs are qualified with the fork owner's login.
func (pr PullRequest) HeadName() string {
	if pr.IsCrossRepository && pr.HeadRepositoryOwner != nil {
		return pr.HeadRepositoryOwner.Login + "/" + pr.HeadRefName
	}
	return pr.HeadRefName
}

// DisplayTitle returns the title, or an empty string when absent
func (pr PullRequest) DisplayTitle() string {
	if pr.Title == nil {
		return ""
	}
	return *pr.Title
}
