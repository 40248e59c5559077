package config

import (
	"time"

	"github.com/caarlos0/env/v11"
)

// PlaceholderToken is sent when GITHUB_TOKEN is not set. GitHub answers it
// with 401, which is reported like any other HTTP error.
const PlaceholderToken = "your_token_here"

// GithubAPIURL reads CREATE_REPO_API_URL rather than GITHUB_API_URL, which
// Actions runners always export.
type Config struct {
	GithubToken  string        `env:"GITHUB_TOKEN" envDefault:"your_token_here"`
	GithubAPIURL string        `env:"CREATE_REPO_API_URL" envDefault:"https://api.github.com/"`
	HTTPTimeout  time.Duration `env:"GITHUB_HTTP_TIMEOUT" envDefault:"0s"`
	LogLevel     string        `env:"LOG_LEVEL" envDefault:"info"`
	StrictExit   bool          `env:"CREATE_REPO_STRICT_EXIT" envDefault:"false"`
}

func Load() (*Config, error) {
	return parse(env.Options{})
}

// LoadFromEnvironment reads the configuration from environ instead of the
// process environment.
func LoadFromEnvironment(environ map[string]string) (*Config, error) {
	if environ == nil {
		environ = map[string]string{}
	}
	return parse(env.Options{Environment: environ})
}

func parse(opts env.Options) (*Config, error) {
	var cfg Config
	if err := env.ParseWithOptions(&cfg, opts); err != nil {
		return nil, err
	}
	return &cfg, nil
}
