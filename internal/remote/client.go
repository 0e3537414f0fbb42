package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/propagation"

	"displayinfo/internal/domain"
	"displayinfo/internal/server"
)

// HTTP is a displayinfod client.
type HTTP struct {
	Base string
	HTTP *http.Client
}

// NewHTTP returns a client for the service at base. A nil client uses
// http.DefaultClient.
func NewHTTP(base string, client *http.Client) *HTTP {
	if client == nil {
		client = http.DefaultClient
	}
	return &HTTP{Base: strings.TrimRight(base, "/"), HTTP: client}
}

// BuildDisplayInfo asks the service to classify snap.
func (c *HTTP) BuildDisplayInfo(ctx context.Context, snap domain.Snapshot) (domain.DisplayInfo, error) {
	var rec domain.Record
	if err := c.post(ctx, "/v1/display-info", snap, &rec); err != nil {
		return domain.DisplayInfo{}, err
	}
	info, err := domain.FromRecord(rec)
	if err != nil {
		return domain.DisplayInfo{}, fmt.Errorf("remote returned an invalid record: %w", err)
	}
	return info, nil
}

// ClassifyDensity asks the service for the bucket of a DPI pair.
func (c *HTTP) ClassifyDensity(ctx context.Context, xDpi, yDpi float64) (domain.DensityBucket, error) {
	var out server.DensityResponse
	if err := c.post(ctx, "/v1/density", server.DensityRequest{XDpi: xDpi, YDpi: yDpi}, &out); err != nil {
		return 0, err
	}
	return out.Density, nil
}

func (c *HTTP) post(ctx context.Context, path string, in any, out any) error {
	buf := new(bytes.Buffer)
	if err := json.NewEncoder(buf).Encode(in); err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.Base+path, buf)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	otel.GetTextMapPropagator().Inject(ctx, propagation.HeaderCarrier(req.Header))

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode/100 != 2 {
		return fmt.Errorf("displayinfod post %s: %s: %s", path, resp.Status, errorMessage(resp.Body))
	}
	if out != nil {
		return json.NewDecoder(resp.Body).Decode(out)
	}
	return nil
}

// errorMessage extracts the server's error text, falling back to the raw body.
func errorMessage(body io.Reader) string {
	b, _ := io.ReadAll(io.LimitReader(body, 4<<10))
	var e server.ErrorResponse
	if err := json.Unmarshal(b, &e); err == nil && e.Error != "" {
		return e.Error
	}
	return strings.TrimSpace(string(b))
}

var _ domain.RemoteClient = (*HTTP)(nil)
