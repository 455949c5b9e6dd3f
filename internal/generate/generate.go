// Package generate calls the hosted generation service to regenerate
// image and copy slots on a design. Requests are fire-and-forget from
// the editor's point of view; results land as row changes on the
// design and its brand's images.
package generate

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"time"

	brandforgeerrors "github.com/forgeline/brandforge/pkg/errors"
)

const generateService = "generate"

// Client issues regeneration requests.
type Client struct {
	baseURL string
	client  *http.Client
}

// NewClient builds a generation client against the service at baseURL.
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: 30 * time.Second},
	}
}

// RegenerateImage asks for a new image for one slot of a design.
func (c *Client) RegenerateImage(ctx context.Context, accessToken, designID, slotKey string) error {
	return c.post(ctx, "/generate/image", accessToken, designID, slotKey)
}

// RegenerateCopy asks for new text for one slot of a design.
func (c *Client) RegenerateCopy(ctx context.Context, accessToken, designID, slotKey string) error {
	return c.post(ctx, "/generate/copy", accessToken, designID, slotKey)
}

func (c *Client) post(ctx context.Context, path, accessToken, designID, slotKey string) error {
	body, err := json.Marshal(map[string]string{
		"design_id": designID,
		"slot_key":  slotKey,
	})
	if err != nil {
		return brandforgeerrors.NewRequestError(generateService, 0, "encoding request", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return brandforgeerrors.NewRequestError(generateService, 0, "building request", err)
	}
	req.Header.Set("Authorization", "Bearer "+accessToken)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return brandforgeerrors.NewRequestError(generateService, 0, err.Error(), err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusAccepted && resp.StatusCode != http.StatusOK {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return brandforgeerrors.NewRequestError(generateService, resp.StatusCode, strings.TrimSpace(string(msg)), nil)
	}
	return nil
}
