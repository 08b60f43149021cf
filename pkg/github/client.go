// Package github wraps the GitHub REST API calls the verifier needs:
// branch lookups and file content fetches against a single org/repo pair.
package github

import (
	"encoding/base64"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/cli/go-gh/v2/pkg/api"
	"github.com/harmonyeval/harmony-verifier/pkg/logger"
	"github.com/harmonyeval/harmony-verifier/pkg/stringutil"
)

var clientLog = logger.New("github:client")

const (
	defaultHost    = "github.com"
	acceptHeader   = "application/vnd.github.v3+json"
	userAgent      = "harmony-multi-branch-verifier"
	requestTimeout = 10 * time.Second

	// Response bodies from failed API calls are truncated to this many
	// characters before they reach logs or findings.
	errorBodyLimit = 200
)

// Client issues read-only REST calls scoped to one repository.
type Client struct {
	rest *api.RESTClient
	org  string
	repo string
}

// Options configures a Client. Host defaults to github.com; Transport
// is overridable so tests can point the client at a local server.
type Options struct {
	Token     string
	Org       string
	Repo      string
	Host      string
	Transport http.RoundTripper
}

// NewClient creates a GitHub REST client using go-gh. The Authorization
// header is set explicitly to the Bearer scheme rather than go-gh's
// default token scheme.
func NewClient(opts Options) (*Client, error) {
	host := opts.Host
	if host == "" {
		host = defaultHost
	}

	rest, err := api.NewRESTClient(api.ClientOptions{
		AuthToken: opts.Token,
		Host:      host,
		Headers: map[string]string{
			"Accept":        acceptHeader,
			"Authorization": "Bearer " + opts.Token,
			"User-Agent":    userAgent,
		},
		Timeout:   requestTimeout,
		Transport: opts.Transport,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create GitHub client: %w", err)
	}

	return &Client{rest: rest, org: opts.Org, repo: opts.Repo}, nil
}

// branchResponse is the subset of the branch payload the verifier reads.
type branchResponse struct {
	Name   string `json:"name"`
	Commit struct {
		SHA string `json:"sha"`
	} `json:"commit"`
}

// BranchExists reports whether the named branch exists in the repository.
// A 404 response means the branch is absent and is not an error; any
// other API failure is returned with its body truncated for display.
func (c *Client) BranchExists(branch string) (bool, error) {
	path := fmt.Sprintf("repos/%s/%s/branches/%s", c.org, c.repo, branch)
	clientLog.Printf("GET %s", path)

	var resp branchResponse
	err := c.rest.Get(path, &resp)
	if err == nil {
		clientLog.Printf("Branch %s is at %s", branch, resp.Commit.SHA)
		return true, nil
	}

	var httpErr *api.HTTPError
	if errors.As(err, &httpErr) {
		if httpErr.StatusCode == http.StatusNotFound {
			clientLog.Printf("Branch %s not found (404)", branch)
			return false, nil
		}
		return false, fmt.Errorf("branch lookup returned HTTP %d: %s",
			httpErr.StatusCode, stringutil.Truncate(httpErr.Message, errorBodyLimit))
	}
	return false, fmt.Errorf("branch lookup failed: %w", err)
}

// contentsResponse is the subset of the contents payload the verifier
// reads. Content is a pointer so a missing field can be told apart from
// an empty file.
type contentsResponse struct {
	Name     string  `json:"name"`
	Encoding string  `json:"encoding"`
	Content  *string `json:"content"`
}

// FileContent fetches a file from the repository at the given ref and
// returns its decoded text. The contents endpoint delivers base64 with
// embedded newlines; those are stripped before decoding, and the result
// must be valid UTF-8.
func (c *Client) FileContent(path, ref string) (string, error) {
	apiPath := fmt.Sprintf("repos/%s/%s/contents/%s?ref=%s", c.org, c.repo, path, ref)
	clientLog.Printf("GET %s", apiPath)

	var resp contentsResponse
	if err := c.rest.Get(apiPath, &resp); err != nil {
		var httpErr *api.HTTPError
		if errors.As(err, &httpErr) {
			return "", fmt.Errorf("fetching %s returned HTTP %d: %s",
				path, httpErr.StatusCode, stringutil.Truncate(httpErr.Message, errorBodyLimit))
		}
		return "", fmt.Errorf("fetching %s: %w", path, err)
	}

	if resp.Content == nil {
		return "", fmt.Errorf("contents response for %s has no content field", path)
	}

	decoded, err := base64.StdEncoding.DecodeString(strings.ReplaceAll(*resp.Content, "\n", ""))
	if err != nil {
		return "", fmt.Errorf("decoding %s: %w", path, err)
	}
	if !utf8.Valid(decoded) {
		return "", fmt.Errorf("decoded content of %s is not valid UTF-8", path)
	}

	clientLog.Printf("Fetched %s at %s (%d bytes, encoding %s)", path, ref, len(decoded), resp.Encoding)
	return string(decoded), nil
}
