package auth

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/distrimed/order-service/internal/config"
)

// Client fetches seller-to-client assignments from the auth service. Used by
// the reporting read path only.
type Client struct {
	logger  *slog.Logger
	baseURL string
	http    *http.Client
}

func NewClient(logger *slog.Logger, cfg config.Collaborator) *Client {
	return &Client{
		logger:  logger.With(slog.String("client", "auth")),
		baseURL: cfg.BaseURL,
		http:    &http.Client{Timeout: cfg.Timeout},
	}
}

func (c *Client) GetAssignedClients(ctx context.Context, sellerID string) ([]string, error) {
	url := fmt.Sprintf("%s/sellers/%s/clients", c.baseURL, sellerID)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("auth service unreachable: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("auth service returned status %d", resp.StatusCode)
	}

	var res struct {
		ClientIDs []string `json:"client_ids"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&res); err != nil {
		return nil, fmt.Errorf("failed to decode auth response: %w", err)
	}
	return res.ClientIDs, nil
}
