// Package recordapi adapts the repository interfaces to a hosted
// project/table record store. The store exposes three generic operations
// (fetch all records of a table, fetch one by id, create records) addressed
// by a project id and public key. Field names on the wire are snake_case;
// the mapping to domain types happens once here, in the DTOs, and nowhere
// else.
//
// The store has no update or delete operation, so those repository methods
// report ErrNotSupported.
package recordapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/harborview/frontdesk/internal/config"
)

var (
	// ErrFetch wraps any transport or store failure on a read. Callers do
	// not distinguish not-found from network from server error.
	ErrFetch = errors.New("record store fetch failed")
	// ErrCreate wraps any failure on a create. The store reports no
	// partial-record errors.
	ErrCreate = errors.New("record store create failed")
	// ErrNotSupported marks operations the record store does not offer.
	ErrNotSupported = errors.New("operation not supported by record store")
)

type Client struct {
	baseURL   string
	projectID string
	publicKey string
	http      *http.Client
}

func NewClient(cfg config.RecordAPIConfig) *Client {
	return &Client{
		baseURL:   cfg.BaseURL,
		projectID: cfg.ProjectID,
		publicKey: cfg.PublicKey,
		http:      &http.Client{Timeout: cfg.Timeout},
	}
}

type fetchEnvelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

type createEnvelope struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Results []struct {
		Data json.RawMessage `json:"data"`
	} `json:"results"`
}

// FetchRecords retrieves every record of a table, decoded into out (a
// pointer to a slice of DTOs).
func (c *Client) FetchRecords(ctx context.Context, table string, fields []string, out any) error {
	body := map[string]any{"fields": fields}
	data, err := c.post(ctx, fmt.Sprintf("/api/%s/tables/%s/fetch", c.projectID, table), body)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrFetch, err)
	}
	var env fetchEnvelope
	if err := json.Unmarshal(data, &env); err != nil {
		return fmt.Errorf("%w: decoding response: %w", ErrFetch, err)
	}
	if !env.Success {
		return fmt.Errorf("%w: %s", ErrFetch, env.Message)
	}
	if len(env.Data) == 0 {
		return nil
	}
	if err := json.Unmarshal(env.Data, out); err != nil {
		return fmt.Errorf("%w: decoding records: %w", ErrFetch, err)
	}
	return nil
}

// GetRecordByID retrieves one record by id, decoded into out (a pointer to
// a DTO). A missing record leaves out untouched and returns found=false.
func (c *Client) GetRecordByID(ctx context.Context, table, id string, fields []string, out any) (bool, error) {
	body := map[string]any{"fields": fields}
	data, err := c.post(ctx, fmt.Sprintf("/api/%s/tables/%s/records/%s", c.projectID, table, id), body)
	if err != nil {
		return false, fmt.Errorf("%w: %w", ErrFetch, err)
	}
	var env fetchEnvelope
	if err := json.Unmarshal(data, &env); err != nil {
		return false, fmt.Errorf("%w: decoding response: %w", ErrFetch, err)
	}
	if !env.Success {
		return false, fmt.Errorf("%w: %s", ErrFetch, env.Message)
	}
	if len(env.Data) == 0 || string(env.Data) == "null" {
		return false, nil
	}
	if err := json.Unmarshal(env.Data, out); err != nil {
		return false, fmt.Errorf("%w: decoding record: %w", ErrFetch, err)
	}
	return true, nil
}

// CreateRecord stores one record and decodes the stored representation into
// out.
func (c *Client) CreateRecord(ctx context.Context, table string, record, out any) error {
	body := map[string]any{"records": []any{record}}
	data, err := c.post(ctx, fmt.Sprintf("/api/%s/tables/%s/create", c.projectID, table), body)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrCreate, err)
	}
	var env createEnvelope
	if err := json.Unmarshal(data, &env); err != nil {
		return fmt.Errorf("%w: decoding response: %w", ErrCreate, err)
	}
	if !env.Success {
		return fmt.Errorf("%w: %s", ErrCreate, env.Message)
	}
	if len(env.Results) == 0 {
		return fmt.Errorf("%w: empty result set", ErrCreate)
	}
	if err := json.Unmarshal(env.Results[0].Data, out); err != nil {
		return fmt.Errorf("%w: decoding record: %w", ErrCreate, err)
	}
	return nil
}

func (c *Client) post(ctx context.Context, path string, body any) ([]byte, error) {
	payload, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("encoding request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("building request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Public-Key", c.publicKey)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	var buf bytes.Buffer
	if _, err := buf.ReadFrom(resp.Body); err != nil {
		return nil, fmt.Errorf("reading response: %w", err)
	}
	return buf.Bytes(), nil
}
