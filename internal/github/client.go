package github

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	gh "github.com/google/go-github/v80/github"
	"github.com/hashicorp/go-cleanhttp"
)

const (
	DefaultBaseURL = "https://api.github.com/"

	mediaTypeGithubJSON = "application/vnd.github+json"
	apiVersion          = "2022-11-28"
	userAgent           = "tracker-tv-create-repo"
)

type Client interface {
	CreateUserRepo(ctx context.Context, payload []byte) (*gh.Response, []byte, error)
}

type client struct {
	github *gh.Client
}

type options struct {
	baseURL   string
	timeout   time.Duration
	transport http.RoundTripper
}

type Option func(*options)

func WithBaseURL(baseURL string) Option {
	return func(o *options) { o.baseURL = baseURL }
}

// WithTimeout sets the http.Client timeout. Zero means no timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(o *options) { o.timeout = timeout }
}

// WithTransport replaces the round tripper underneath the auth transport.
func WithTransport(rt http.RoundTripper) Option {
	return func(o *options) { o.transport = rt }
}

type authTransport struct {
	token string
	base  http.RoundTripper
}

func (t *authTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	req = req.Clone(req.Context())
	req.Header.Set("Authorization", "Bearer "+t.token)
	return t.base.RoundTrip(req)
}

func New(token string, opts ...Option) (Client, error) {
	o := options{baseURL: DefaultBaseURL}
	for _, opt := range opts {
		opt(&o)
	}
	if o.transport == nil {
		o.transport = cleanhttp.DefaultPooledTransport()
	}

	baseURL, err := parseBaseURL(o.baseURL)
	if err != nil {
		return nil, err
	}

	httpClient := &http.Client{
		Transport: &authTransport{token: token, base: o.transport},
		Timeout:   o.timeout,
	}

	ghClient := gh.NewClient(httpClient)
	ghClient.BaseURL = baseURL
	ghClient.UserAgent = userAgent

	return &client{github: ghClient}, nil
}

func parseBaseURL(raw string) (*url.URL, error) {
	if !strings.HasSuffix(raw, "/") {
		raw += "/"
	}
	u, err := url.Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("parsing base URL %q: %w", raw, err)
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("base URL %q must be absolute", raw)
	}
	return u, nil
}
