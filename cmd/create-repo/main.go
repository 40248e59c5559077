package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/tracker-tv/github-create-repo/internal/config"
	"github.com/tracker-tv/github-create-repo/internal/github"
	"github.com/tracker-tv/github-create-repo/internal/logger"
	"github.com/tracker-tv/github-create-repo/internal/orchestrator"
	"github.com/tracker-tv/github-create-repo/internal/service"
	"github.com/tracker-tv/github-create-repo/models"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(cfg.LogLevel)
	defer func() { _ = log.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	outcome := run(ctx, cfg, os.Stdout, log)

	if code := exitCode(cfg, outcome); code != 0 {
		stop()
		_ = log.Sync()
		os.Exit(code)
	}
}

// exitCode is 0 unless strict exit is enabled and the repository was not created.
func exitCode(cfg *config.Config, outcome models.Outcome) int {
	if cfg.StrictExit && !outcome.OK() {
		return 1
	}
	return 0
}

func run(ctx context.Context, cfg *config.Config, out io.Writer, log *zap.SugaredLogger) models.Outcome {
	ghClient, err := github.New(cfg.GithubToken,
		github.WithBaseURL(cfg.GithubAPIURL),
		github.WithTimeout(cfg.HTTPTimeout),
	)
	if err != nil {
		outcome := models.FailureOutcome(err.Error())
		orchestrator.Print(out, outcome, log)
		return outcome
	}

	if cfg.GithubToken == config.PlaceholderToken {
		log.Warnw("GITHUB_TOKEN not set, sending placeholder credential")
	}

	repoSvc := service.NewRepositoriesService(ghClient)
	creator := orchestrator.NewRepoCreator(repoSvc, out, log)

	return creator.Run(ctx)
}
