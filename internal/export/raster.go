package export

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"strings"
	"time"

	brandforgeerrors "github.com/forgeline/brandforge/pkg/errors"
)

const rasterService = "raster"

// Rasterizer converts an HTML document into PNG bytes.
type Rasterizer interface {
	Rasterize(ctx context.Context, html []byte) ([]byte, error)
}

// HTTPRasterizer delegates rasterization to the hosted screenshot
// service, which renders the document in a headless browser.
type HTTPRasterizer struct {
	baseURL string
	client  *http.Client
}

// NewHTTPRasterizer builds a rasterizer against the service at baseURL.
func NewHTTPRasterizer(baseURL string) *HTTPRasterizer {
	return &HTTPRasterizer{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: 60 * time.Second},
	}
}

// Rasterize posts the document and returns the PNG response body.
func (r *HTTPRasterizer) Rasterize(ctx context.Context, html []byte) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, r.baseURL+"/raster/png", bytes.NewReader(html))
	if err != nil {
		return nil, brandforgeerrors.NewRequestError(rasterService, 0, "building request", err)
	}
	req.Header.Set("Content-Type", "text/html")

	resp, err := r.client.Do(req)
	if err != nil {
		return nil, brandforgeerrors.NewRequestError(rasterService, 0, err.Error(), err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return nil, brandforgeerrors.NewRequestError(rasterService, resp.StatusCode, strings.TrimSpace(string(msg)), nil)
	}

	png, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, brandforgeerrors.NewRequestError(rasterService, resp.StatusCode, "reading png body", err)
	}
	return png, nil
}
