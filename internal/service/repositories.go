package service

import (
	"context"
	"errors"
	"fmt"
	"net/url"

	"github.com/tracker-tv/github-create-repo/internal/github"
	"github.com/tracker-tv/github-create-repo/models"
)

type RepositoryService interface {
	Create(ctx context.Context, req models.RepositoryCreationRequest) (models.Outcome, error)
}

type repositoriesService struct {
	gh github.Client
}

func NewRepositoriesService(ghClient github.Client) RepositoryService {
	return &repositoriesService{gh: ghClient}
}

// Create sends req to GitHub and classifies what came back. The error is
// reserved for requests that could not be built; everything that happens on
// the wire is reported through the Outcome.
func (s *repositoriesService) Create(ctx context.Context, req models.RepositoryCreationRequest) (models.Outcome, error) {
	if err := req.Validate(); err != nil {
		return models.Outcome{}, fmt.Errorf("validating repository request: %w", err)
	}

	payload, err := req.Payload()
	if err != nil {
		return models.Outcome{}, fmt.Errorf("encoding repository request: %w", err)
	}

	resp, body, err := s.gh.CreateUserRepo(ctx, payload)
	switch {
	case err == nil && resp != nil:
		return models.SuccessOutcome(resp.StatusCode, string(body)), nil
	case err == nil:
		return models.FailureOutcome("no response received"), nil
	case resp != nil && resp.Response != nil:
		return models.HTTPErrorOutcome(resp.StatusCode, string(body)), nil
	default:
		return models.FailureOutcome(failureMessage(err)), nil
	}
}

// failureMessage drops the "Post <url>:" prefix net/http adds so only the
// underlying cause is reported.
func failureMessage(err error) string {
	var urlErr *url.Error
	if errors.As(err, &urlErr) && urlErr.Err != nil {
		return urlErr.Err.Error()
	}
	return err.Error()
}
