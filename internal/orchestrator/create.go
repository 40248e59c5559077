package orchestrator

import (
	"context"
	"fmt"
	"io"

	"github.com/tracker-tv/github-create-repo/internal/service"
	"github.com/tracker-tv/github-create-repo/models"
	"go.uber.org/zap"
)

// RepoCreator creates the default repository and prints what happened.
type RepoCreator struct {
	repos service.RepositoryService
	out   io.Writer
	log   *zap.SugaredLogger
}

func NewRepoCreator(repos service.RepositoryService, out io.Writer, log *zap.SugaredLogger) *RepoCreator {
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	return &RepoCreator{repos: repos, out: out, log: log}
}

func (c *RepoCreator) Run(ctx context.Context) models.Outcome {
	req := models.DefaultRepositoryRequest()
	c.log.Infow("creating repository", "name", req.Name, "private", req.Private)

	outcome, err := c.repos.Create(ctx, req)
	if err != nil {
		outcome = models.FailureOutcome(err.Error())
	}

	c.report(outcome)
	Print(c.out, outcome, c.log)

	return outcome
}

func (c *RepoCreator) report(outcome models.Outcome) {
	switch outcome.Kind {
	case models.OutcomeSuccess:
		c.log.Infow("repository created", "status", outcome.StatusCode)
	case models.OutcomeHTTPError:
		c.log.Warnw("github rejected repository creation", "status", outcome.StatusCode)
	default:
		c.log.Errorw("repository creation failed", "error", outcome.Message)
	}
}

// Print writes the outcome lines to out, stopping at the first failed write.
func Print(out io.Writer, outcome models.Outcome, log *zap.SugaredLogger) {
	for _, line := range outcome.Lines() {
		if _, err := fmt.Fprintln(out, line); err != nil {
			log.Errorw("writing outcome", "error", err)
			return
		}
	}
}
