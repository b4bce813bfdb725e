package domain

import (
	"encoding/json"
	"errors"
)

var errNotArray = errors.New("expected a JSON array of pull requests")

// wirePullRequest mirrors one element of `gh pr list --json` output.
// Pointers distinguish absent (or null) fields from zero values.
type wirePullRequest struct {
	BaseRefName         *string    `json:"baseRefName"`
	HeadRefName         *string    `json:"headRefName"`
	HeadRepositoryOwner *wireOwner `json:"headRepositoryOwner"`
	ID                  *string    `json:"id"`
	IsCrossRepository   *bool      `json:"isCrossRepository"`
	Number              *int       `json:"number"`
	State               *string    `json:"state"`
	Title               *string    `json:"title"`
	URL                 *string    `json:"url"`
}

type wireOwner struct {
	Login *string `json:"login"`
}

// ParsePullRequests decodes a JSON array of pull request records.
// The whole array is rejected on the first record missing a required field.
func ParsePullRequests(data []byte) ([]PullRequest, error) {
	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, &DecodeError{Index: -1, Err: err}
	}
	if raw == nil {
		return nil, &DecodeError{Index: -1, Err: errNotArray}
	}

	prs := make([]PullRequest, 0, len(raw))
	for i, item := range raw {
		pr, err := decodePullRequest(item)
		if err != nil {
			err.Index = i
			return nil, err
		}
		prs = append(prs, pr)
	}
	return prs, nil
}

func decodePullRequest(item json.RawMessage) (PullRequest, *DecodeError) {
	var w wirePullRequest
	if err := json.Unmarshal(item, &w); err != nil {
		decodeErr := &DecodeError{Err: err}
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) {
			decodeErr.Field = typeErr.Field
		}
		return PullRequest{}, decodeErr
	}

	required := []struct {
		name    string
		present bool
	}{
		{"id", w.ID != nil},
		{"number", w.Number != nil},
		{"url", w.URL != nil},
		{"state", w.State != nil},
		{"baseRefName", w.BaseRefName != nil},
		{"headRefName", w.HeadRefName != nil},
	}
	for _, field := range required {
		if !field.present {
			return PullRequest{}, &DecodeError{Field: field.name, Err: ErrMissingField}
		}
	}

	pr := PullRequest{
		BaseRefName: *w.BaseRefName,
		HeadRefName: *w.HeadRefName,
		ID:          *w.ID,
		Number:      *w.Number,
		State:       *w.State,
		Title:       w.Title,
		URL:         *w.URL,
	}

	if w.IsCrossRepository != nil && *w.IsCrossRepository {
		if w.HeadRepositoryOwner == nil || w.HeadRepositoryOwner.Login == nil {
			return PullRequest{}, &DecodeError{Field: "headRepositoryOwner.login", Err: ErrMissingField}
		}
		pr.IsCrossRepository = true
		pr.HeadRepositoryOwner = &RepositoryOwner{Login: *w.HeadRepositoryOwner.Login}
	}

	return pr, nil
}
