package github

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_Defaults(t *testing.T) {
	c, err := New("test-token")

	require.NoError(t, err)
	assert.Implements(t, (*Client)(nil), c)

	impl := c.(*client)
	assert.Equal(t, DefaultBaseURL, impl.github.BaseURL.String())
	assert.Equal(t, userAgent, impl.github.UserAgent)
}

func TestNew_WithBaseURLAddsTrailingSlash(t *testing.T) {
	c, err := New("test-token", WithBaseURL("https://ghe.example.com/api/v3"))

	require.NoError(t, err)
	assert.Equal(t, "https://ghe.example.com/api/v3/", c.(*client).github.BaseURL.String())
}

func TestNew_InvalidBaseURL(t *testing.T) {
	tests := []string{"://missing-scheme", "not-absolute"}

	for _, raw := range tests {
		t.Run(raw, func(t *testing.T) {
			c, err := New("test-token", WithBaseURL(raw))

			assert.Error(t, err)
			assert.Nil(t, c)
		})
	}
}

func TestOptions(t *testing.T) {
	rt := http.DefaultTransport
	o := options{}

	for _, opt := range []Option{
		WithBaseURL("https://ghe.example.com/"),
		WithTimeout(5 * time.Second),
		WithTransport(rt),
	} {
		opt(&o)
	}

	assert.Equal(t, "https://ghe.example.com/", o.baseURL)
	assert.Equal(t, 5*time.Second, o.timeout)
	assert.Equal(t, rt, o.transport)
}

func TestAuthTransport_RoundTrip(t *testing.T) {
	transport := &authTransport{token: "my-secret-token", base: http.DefaultTransport}

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer my-secret-token", r.Header.Get("Authorization"))
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	req, err := http.NewRequest(http.MethodGet, server.URL, nil)
	require.NoError(t, err)

	resp, err := transport.RoundTrip(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Empty(t, req.Header.Get("Authorization"), "caller's request must not be mutated")
}
