package github

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/go-github/v66/github"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"opencsg.com/github-team-membership/builder/git/membership"
	"opencsg.com/github-team-membership/common/config"
	"opencsg.com/github-team-membership/version"
)

var _ membership.TeamMembership = (*Client)(nil)

// Client talks to the GitHub REST API on behalf of one invocation. It is not
// shared: credentials differ per invocation.
type Client struct {
	ghClient      *github.Client
	retryAttempts uint
	retryDelay    time.Duration
}

type Option func(*options)

type options struct {
	transport http.RoundTripper
}

// WithTransport replaces the underlying http transport, mostly for tests.
func WithTransport(rt http.RoundTripper) Option {
	return func(o *options) {
		o.transport = rt
	}
}

func NewClient(config *config.Config, creds membership.Credentials, opts ...Option) (*Client, error) {
	if creds.Token == "" {
		return nil, errors.New("github access token is required")
	}
	o := &options{transport: http.DefaultTransport}
	for _, opt := range opts {
		opt(o)
	}

	hc := &http.Client{
		Timeout:   time.Duration(config.GitHub.TimeoutSEC) * time.Second,
		Transport: otelhttp.NewTransport(o.transport),
	}
	gh := github.NewClient(hc).WithAuthToken(creds.Token)
	gh.UserAgent = userAgent(config, creds)

	if config.GitHub.APIURL != "" {
		baseURL, err := url.Parse(config.GitHub.APIURL)
		if err != nil {
			return nil, fmt.Errorf("invalid github api url %q: %w", config.GitHub.APIURL, err)
		}
		if !strings.HasSuffix(baseURL.Path, "/") {
			baseURL.Path += "/"
		}
		gh.BaseURL = baseURL
	}

	attempts := config.GitHub.RetryAttempts
	if attempts == 0 {
		// retry-go treats 0 as retry forever
		attempts = 1
	}
	return &Client{
		ghClient:      gh,
		retryAttempts: attempts,
		retryDelay:    time.Duration(config.GitHub.RetryDelayMS) * time.Millisecond,
	}, nil
}

func userAgent(config *config.Config, creds membership.Credentials) string {
	if creds.UserAgent != "" {
		return creds.UserAgent
	}
	return config.GitHub.UserAgent + "/" + version.Version
}
