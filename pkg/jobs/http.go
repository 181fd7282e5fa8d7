package jobs

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/flowboardhq/flowboard/pkg/httputil"
)

// defaultGenerateTimeout bounds one generation request to the backend.
// Clip generation is slow; the timeout covers a single HTTP exchange, not
// the whole job.
const defaultGenerateTimeout = 10 * time.Minute

// HTTPGenerator calls an external clip-generation service over HTTP.
// One POST to Endpoint carries the request; the response body holds the
// clip URL. Transient failures (network errors, 5xx) are retried with
// exponential backoff.
type HTTPGenerator struct {
	Endpoint string
	Client   *http.Client
}

// generateResponse is the backend's reply.
type generateResponse struct {
	ClipURL string `json:"clip_url"`
}

// GenerateClip submits the request to the backend and returns the clip URL.
func (g *HTTPGenerator) GenerateClip(ctx context.Context, req Request) (string, error) {
	client := g.Client
	if client == nil {
		client = &http.Client{Timeout: defaultGenerateTimeout}
	}

	body, err := json.Marshal(req)
	if err != nil {
		return "", fmt.Errorf("encode request: %w", err)
	}

	var clipURL string
	err = httputil.RetryWithBackoff(ctx, func() error {
		httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, g.Endpoint, bytes.NewReader(body))
		if err != nil {
			return err
		}
		httpReq.Header.Set("Content-Type", "application/json")

		resp, err := client.Do(httpReq)
		if err != nil {
			return &httputil.RetryableError{Err: err}
		}
		defer resp.Body.Close()

		switch {
		case httputil.StatusRetryable(resp.StatusCode):
			return &httputil.RetryableError{Err: fmt.Errorf("backend returned %d", resp.StatusCode)}
		case resp.StatusCode != http.StatusOK:
			data, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
			return fmt.Errorf("backend returned %d: %s", resp.StatusCode, data)
		}

		var out generateResponse
		if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
			return fmt.Errorf("decode response: %w", err)
		}
		if out.ClipURL == "" {
			return fmt.Errorf("backend returned empty clip URL")
		}
		clipURL = out.ClipURL
		return nil
	})
	if err != nil {
		return "", err
	}
	return clipURL, nil
}

// Ensure HTTPGenerator implements Generator.
var _ Generator = (*HTTPGenerator)(nil)
