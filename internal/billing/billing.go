// Package billing opens the hosted billing portal for the signed-in
// user. Plan changes themselves happen inside the portal.
package billing

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"time"

	brandforgeerrors "github.com/forgeline/brandforge/pkg/errors"
)

const billingService = "billing"

// Client requests billing portal sessions from the payments backend.
type Client struct {
	baseURL string
	client  *http.Client
}

// NewClient builds a billing client against the service at baseURL.
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: 15 * time.Second},
	}
}

// PortalURL creates a portal session for the user behind accessToken
// and returns the URL to open in a browser.
func (c *Client) PortalURL(ctx context.Context, accessToken string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/billing/portal", nil)
	if err != nil {
		return "", brandforgeerrors.NewRequestError(billingService, 0, "building request", err)
	}
	req.Header.Set("Authorization", "Bearer "+accessToken)

	resp, err := c.client.Do(req)
	if err != nil {
		return "", brandforgeerrors.NewRequestError(billingService, 0, err.Error(), err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return "", brandforgeerrors.NewRequestError(billingService, resp.StatusCode, strings.TrimSpace(string(body)), nil)
	}

	var payload struct {
		URL string `json:"url"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return "", brandforgeerrors.NewRequestError(billingService, resp.StatusCode, "decoding portal response", err)
	}
	if payload.URL == "" {
		return "", brandforgeerrors.NewRequestError(billingService, resp.StatusCode, "portal response carried no url", nil)
	}
	return payload.URL, nil
}
