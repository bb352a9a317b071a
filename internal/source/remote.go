package source

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"
)

// defaultHTTPClient is the default HTTP client used by Remote
// This can be overridden for testing
var defaultHTTPClient = http.DefaultClient

// Default timeout for HTTP requests
const defaultHTTPTimeout = 30 * time.Second

// maxRemoteBytes caps how much of a remote response is read
const maxRemoteBytes = 16 * 1024 * 1024

// Remote resolves script output from a remote HTTP/HTTPS resource
type Remote struct {
	source string
	client *http.Client
}

// NewRemote creates a new Remote source
func NewRemote(source string, client *http.Client) (*Remote, error) {
	if !isValidURL(source) {
		return nil, fmt.Errorf("invalid URL: %s", source)
	}

	// Use provided client or default client if not provided
	if client == nil {
		client = defaultHTTPClient
		if client == nil {
			client = &http.Client{
				Timeout: defaultHTTPTimeout,
				CheckRedirect: func(req *http.Request, via []*http.Request) error {
					if len(via) >= 10 {
						return fmt.Errorf("too many redirects")
					}
					return nil
				},
			}
		}
	}

	return &Remote{source: source, client: client}, nil
}

// Resolve fetches the resource
func (r *Remote) Resolve(ctx context.Context) (string, *Metadata, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, r.source, nil)
	if err != nil {
		return "", nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Accept", "text/plain,application/json")
	req.Header.Set("User-Agent", "scriptlens/1.0")

	resp, err := r.client.Do(req)
	if err != nil {
		return "", nil, fmt.Errorf("failed to fetch URL: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", nil, fmt.Errorf("unexpected status fetching %s: %s", r.source, resp.Status)
	}

	content, err := io.ReadAll(io.LimitReader(resp.Body, maxRemoteBytes))
	if err != nil {
		return "", nil, fmt.Errorf("failed to read response: %w", err)
	}

	return string(content), &Metadata{
		Name: r.source,
		Type: TypeRemote,
		Path: r.source,
		Size: int64(len(content)),
	}, nil
}
