// Package upstream fetches the model catalog from the configured
// OpenRouter-style source.
package upstream

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"resty.dev/v3"

	"modelscout/catalog-api/internal/domain/catalog"
	"modelscout/catalog-api/internal/infrastructure/logger"
	"modelscout/catalog-api/internal/utils/platformerrors"
)

// Client retrieves the full model catalog over HTTP.
type Client struct {
	client     *resty.Client
	catalogURL string
}

func NewClient(client *resty.Client, catalogURL string) *Client {
	return &Client{
		client:     client,
		catalogURL: catalogURL,
	}
}

// Source identifies the upstream for snapshot provenance.
func (c *Client) Source() string {
	return c.catalogURL
}

// ListModels fetches the catalog. The upstream body may be a bare JSON
// array or an object carrying a "data" array; records without an ID are
// quarantined rather than propagated.
func (c *Client) ListModels(ctx context.Context) ([]catalog.Model, error) {
	var payload catalogPayload
	resp, err := c.client.R().
		SetContext(ctx).
		SetResult(&payload).
		Get(c.catalogURL)
	if err != nil {
		return nil, platformerrors.NewError(ctx, platformerrors.LayerInfrastructure, platformerrors.ErrorTypeExternal, "catalog fetch failed", err, "b1f9c8a2-4d26-4f6e-9f4b-1df1f0a4d9c3")
	}
	if resp.IsError() {
		return nil, c.errorFromResponse(ctx, resp, "catalog fetch failed")
	}
	if payload.Quarantined > 0 {
		log := logger.GetLogger()
		log.Warn().
			Int("quarantined", payload.Quarantined).
			Int("accepted", len(payload.Models)).
			Msg("dropped malformed catalog records")
	}
	return payload.Models, nil
}

type catalogPayload struct {
	Models      []catalog.Model
	Quarantined int
}

func (p *catalogPayload) UnmarshalJSON(data []byte) error {
	raw := bytes.TrimSpace(data)
	if len(raw) > 0 && raw[0] == '{' {
		var envelope struct {
			Data json.RawMessage `json:"data"`
		}
		if err := json.Unmarshal(raw, &envelope); err != nil {
			return err
		}
		if len(envelope.Data) == 0 {
			return errors.New("catalog payload has no data array")
		}
		raw = bytes.TrimSpace(envelope.Data)
	}

	var items []json.RawMessage
	if err := json.Unmarshal(raw, &items); err != nil {
		return err
	}

	p.Models = make([]catalog.Model, 0, len(items))
	for _, item := range items {
		var m catalog.Model
		if err := json.Unmarshal(item, &m); err != nil {
			p.Quarantined++
			continue
		}
		if m.ID == "" {
			p.Quarantined++
			continue
		}
		p.Models = append(p.Models, m)
	}
	return nil
}

func (c *Client) errorFromResponse(ctx context.Context, resp *resty.Response, message string) error {
	status := 0
	if resp != nil {
		status = resp.StatusCode()
	}
	if resp == nil || resp.RawResponse == nil || resp.RawResponse.Body == nil {
		return platformerrors.NewError(ctx, platformerrors.LayerInfrastructure, platformerrors.ErrorTypeExternal, fmt.Sprintf("%s with status %d", message, status), nil, "7c2c8e41-90df-4f0e-8a4c-64c25f9ddf28")
	}
	defer resp.RawResponse.Body.Close()
	body, err := io.ReadAll(resp.RawResponse.Body)
	if err != nil {
		return platformerrors.NewError(ctx, platformerrors.LayerInfrastructure, platformerrors.ErrorTypeExternal, fmt.Sprintf("%s with status %d", message, status), nil, "3f6f3268-8a17-4b5f-ba2e-57f0a2f2f7da")
	}
	trimmed := strings.TrimSpace(string(body))
	if trimmed == "" {
		return platformerrors.NewError(ctx, platformerrors.LayerInfrastructure, platformerrors.ErrorTypeExternal, fmt.Sprintf("%s with status %d", message, status), nil, "5d0f9a44-23cb-4f44-bd11-b8380d9b0f44")
	}
	return platformerrors.NewError(ctx, platformerrors.LayerInfrastructure, platformerrors.ErrorTypeExternal, fmt.Sprintf("%s with status %d: %s", message, status, trimmed), nil, "9f7f9e3c-6a3d-4f9f-9a1f-2f8e6f9a0b11")
}
