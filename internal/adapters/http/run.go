package http

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/glot-run/glotctl/internal/domain"
	"github.com/glot-run/glotctl/internal/ports"
	"github.com/glot-run/glotctl/pkg/log"
)

const runEndpoint = "/run"

// RunClient implements ports.Runner against the service's run API.
type RunClient struct {
	client      ports.HTTPClient
	logger      log.Logger
	baseURL     string
	accessToken string
}

// NewRunClient creates a run client bound to one service base URL.
// The access token is sent as the X-Access-Token header.
func NewRunClient(client ports.HTTPClient, logger log.Logger, baseURL, accessToken string) *RunClient {
	return &RunClient{
		client:      client,
		logger:      logger,
		baseURL:     baseURL,
		accessToken: accessToken,
	}
}

// Run posts a run request and decodes the result.
func (c *RunClient) Run(ctx context.Context, runReq domain.RunRequest) (domain.RunResult, error) {
	body, err := json.Marshal(runReq)
	if err != nil {
		return domain.RunResult{}, fmt.Errorf("marshal request: %w", err)
	}

	url := c.baseURL + runEndpoint
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return domain.RunResult{}, fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("X-Access-Token", c.accessToken)
	req.Header.Set("Content-Type", "application/json")

	c.logger.Debug("running code",
		log.String("language", runReq.Payload.Language),
		log.String("image", runReq.Image),
		log.Int("files", len(runReq.Payload.Files)))

	resp, err := c.client.Do(req)
	if err != nil {
		return domain.RunResult{}, fmt.Errorf("send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode/100 != 2 {
		respBody, _ := io.ReadAll(resp.Body)
		return domain.RunResult{}, fmt.Errorf("server returned %d: %s", resp.StatusCode, string(respBody))
	}

	var result domain.RunResult
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return domain.RunResult{}, fmt.Errorf("decode response: %w", err)
	}
	return result, nil
}
