// Package http implements the service-facing clients over plain HTTP.
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

const languagesEndpoint = "/admin/languages"

// AdminClient implements ports.Registrar against the service's admin API.
type AdminClient struct {
	client  ports.HTTPClient
	logger  log.Logger
	baseURL string
	token   string
}

// NewAdminClient creates an admin client bound to one service base URL.
// The token is sent as "Authorization: Token <token>" on every request.
func NewAdminClient(client ports.HTTPClient, logger log.Logger, baseURL, token string) *AdminClient {
	return &AdminClient{
		client:  client,
		logger:  logger,
		baseURL: baseURL,
		token:   token,
	}
}

// Register submits one language descriptor with a single PUT.
// The request is identical on every call; there is no retry here.
func (c *AdminClient) Register(ctx context.Context, lang domain.Language) error {
	if err := lang.Validate(); err != nil {
		return err
	}

	body, err := json.Marshal(lang)
	if err != nil {
		return fmt.Errorf("marshal descriptor: %w", err)
	}

	url := c.baseURL + languagesEndpoint
	req, err := http.NewRequestWithContext(ctx, http.MethodPut, url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("Authorization", "Token "+c.token)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode/100 != 2 {
		respBody, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("server returned %d: %s", resp.StatusCode, string(respBody))
	}

	c.logger.Info("registered language",
		log.String("name", lang.Name),
		log.String("version", lang.Version),
		log.String("image", lang.Image))
	return nil
}
