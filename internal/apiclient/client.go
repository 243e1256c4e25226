// Package apiclient talks to the client directory HTTP API. It is what the
// form uses to submit records and to run lookups through the server, and
// it turns error bodies back into the same Go errors the server started
// from.
package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	domain "github.com/BruksfildServices01/client-directory/internal/domain/client"
	"github.com/BruksfildServices01/client-directory/internal/enrichment"
	"github.com/BruksfildServices01/client-directory/internal/form"
	"github.com/BruksfildServices01/client-directory/internal/httperr"
	"github.com/BruksfildServices01/client-directory/internal/httpresp"
	"github.com/BruksfildServices01/client-directory/internal/models"
	"github.com/BruksfildServices01/client-directory/internal/validation"
)

// APIError is any failure response the client has no better mapping for.
type APIError struct {
	Status  int
	Code    string
	Message string
}

func (e *APIError) Error() string {
	if e.Code == "" {
		return fmt.Sprintf("api: status %d", e.Status)
	}
	return fmt.Sprintf("api: status %d: %s: %s", e.Status, e.Code, e.Message)
}

type Client struct {
	baseURL string
	http    *http.Client
}

// New returns a client for the API at baseURL. A nil hc gets a client
// with a 15s timeout.
func New(baseURL string, hc *http.Client) *Client {
	if hc == nil {
		hc = &http.Client{Timeout: 15 * time.Second}
	}
	return &Client{baseURL: strings.TrimRight(baseURL, "/"), http: hc}
}

// ======================================================
// CLIENTS
// ======================================================

func (c *Client) List(ctx context.Context) ([]models.Client, error) {
	var out []models.Client
	if err := c.do(ctx, http.MethodGet, "/clients", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) Get(ctx context.Context, id uint) (*models.Client, error) {
	var out models.Client
	if err := c.do(ctx, http.MethodGet, clientPath(id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) Create(ctx context.Context, in validation.ClientInput) (uint, error) {
	var out httpresp.CreatedResponse
	if err := c.do(ctx, http.MethodPost, "/clients", in, &out); err != nil {
		return 0, err
	}
	return out.ID, nil
}

func (c *Client) Replace(ctx context.Context, id uint, in validation.ClientInput) error {
	return c.do(ctx, http.MethodPut, clientPath(id), in, nil)
}

func (c *Client) Patch(ctx context.Context, id uint, in validation.ClientInput) (*models.Client, error) {
	var out struct {
		Message string         `json:"message"`
		Client  *models.Client `json:"updatedClient"`
	}
	if err := c.do(ctx, http.MethodPatch, clientPath(id), in, &out); err != nil {
		return nil, err
	}
	return out.Client, nil
}

func (c *Client) Delete(ctx context.Context, id uint) error {
	return c.do(ctx, http.MethodDelete, clientPath(id), nil, nil)
}

// ======================================================
// FORM ADAPTERS
// ======================================================

// Lookup runs a cnpj or cep lookup through the server.
func (c *Client) Lookup(ctx context.Context, kind enrichment.Kind, key string) (enrichment.Prefill, error) {
	var out struct {
		Fields enrichment.Prefill `json:"fields"`
	}
	path := fmt.Sprintf("/lookup/%s/%s", kind, url.PathEscape(key))
	if err := c.do(ctx, http.MethodGet, path, nil, &out); err != nil {
		return nil, err
	}
	if out.Fields == nil {
		out.Fields = enrichment.Prefill{}
	}
	return out.Fields, nil
}

// Submitter returns the form submitter for a new record (id 0) or for
// an edit of id.
func (c *Client) Submitter(id uint) form.SubmitFunc {
	return func(ctx context.Context, in validation.ClientInput) error {
		if id == 0 {
			_, err := c.Create(ctx, in)
			return err
		}
		return c.Replace(ctx, id, in)
	}
}

// ======================================================
// TRANSPORT
// ======================================================

func clientPath(id uint) string {
	return fmt.Sprintf("/clients/%d", id)
}

func (c *Client) do(ctx context.Context, method, path string, body, dst any) error {
	var rdr io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode body: %w", err)
		}
		rdr = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, rdr)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode >= 300 {
		return decodeError(resp.StatusCode, raw)
	}
	if dst == nil || len(raw) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// decodeError maps an error body onto validation.Errors, the not-found
// sentinel or a field-scoped LookupError.
func decodeError(status int, raw []byte) error {
	var he httperr.HTTPError
	_ = json.Unmarshal(raw, &he)

	switch {
	case he.Code == httperr.CodeValidationFailed && len(he.Fields) > 0:
		return validation.Errors(he.Fields)
	case he.Code == httperr.CodeClientNotFound:
		return domain.ErrNotFound
	case he.Code == httperr.CodeLookupNotFound:
		return &enrichment.LookupError{Field: lookupField(he.Fields), Err: enrichment.ErrNotFound}
	case status == http.StatusBadGateway && he.Code == httperr.CodeLookupFailed:
		return &enrichment.LookupError{Field: lookupField(he.Fields), Err: enrichment.ErrUnavailable}
	}

	return &APIError{Status: status, Code: he.Code, Message: he.Message}
}

func lookupField(fields map[string]string) string {
	for k := range fields {
		return k
	}
	return ""
}
