package github

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"

	gh "github.com/google/go-github/v80/github"
)

// CreateUserRepo posts payload to /user/repos as the authenticated user.
//
// Whenever GitHub answered, the response and its full body are returned; for
// a non-2xx status err is the go-github error (*gh.ErrorResponse and
// friends). A nil response means the request never got an answer.
func (c *client) CreateUserRepo(ctx context.Context, payload []byte) (*gh.Response, []byte, error) {
	req, err := c.newCreateUserRepoRequest(ctx, payload)
	if err != nil {
		return nil, nil, err
	}

	httpResp, err := c.github.Client().Do(req)
	if err != nil {
		return nil, nil, err
	}
	// CheckResponse swaps Body for an in-memory copy, so keep the network body.
	networkBody := httpResp.Body
	defer networkBody.Close()

	body, err := io.ReadAll(networkBody)
	if err != nil {
		return nil, nil, fmt.Errorf("reading response body: %w", err)
	}
	httpResp.Body = io.NopCloser(bytes.NewReader(body))

	resp := &gh.Response{Response: httpResp}
	if err := gh.CheckResponse(httpResp); err != nil {
		var accepted *gh.AcceptedError
		if errors.As(err, &accepted) {
			return resp, body, nil
		}
		return resp, body, err
	}

	return resp, body, nil
}

func (c *client) newCreateUserRepoRequest(ctx context.Context, payload []byte) (*http.Request, error) {
	u, err := c.github.BaseURL.Parse("user/repos")
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, u.String(), bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}

	req.Header.Set("Accept", mediaTypeGithubJSON)
	req.Header.Set("X-GitHub-Api-Version", apiVersion)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", c.github.UserAgent)

	return req, nil
}
