// Package nodeclient talks to the wallet node's REST API. It backs every
// chain-facing collaborator of the transaction services: UTXO snapshots,
// change address allocation, signing, submission and tip queries.
package nodeclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/adawallet/walletcore-backend/internal/wallet/model"
)

const defaultRequestTimeout = 30 * time.Second

// Metrics records duration and status of node API calls.
type Metrics interface {
	Observe(operation string, err error, started time.Time)
}

// Client is a thin instrumented wrapper over the node's HTTP API.
type Client struct {
	baseURL string
	http    *http.Client
	metrics Metrics

	pool changePool
}

// NewClient validates the base URL and builds a Client.
func NewClient(baseURL string, metrics Metrics) (*Client, error) {
	if baseURL == "" {
		return nil, errors.New("node base url is required")
	}
	if _, err := url.Parse(baseURL); err != nil {
		return nil, fmt.Errorf("parse node base url: %w", err)
	}
	if metrics == nil {
		return nil, errors.New("metrics is required")
	}

	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: defaultRequestTimeout},
		metrics: metrics,
	}, nil
}

// Tip returns the node's current chain tip.
func (c *Client) Tip(ctx context.Context) (tip model.BlockTime, err error) {
	started := time.Now()
	defer func() {
		c.metrics.Observe("tip", err, started)
	}()

	err = c.do(ctx, http.MethodGet, "/v2/network/tip", nil, &tip)
	return tip, err
}

// TransactionBlock resolves the block a transaction was included in, or
// nil while it is still outside the ledger.
func (c *Client) TransactionBlock(ctx context.Context, txID string) (block *model.BlockTime, err error) {
	started := time.Now()
	defer func() {
		c.metrics.Observe("transaction_block", err, started)
	}()

	var bt model.BlockTime
	err = c.do(ctx, http.MethodGet, "/v2/transactions/"+url.PathEscape(txID)+"/block", nil, &bt)
	if errors.Is(err, model.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &bt, nil
}

// apiError is the node's error payload.
type apiError struct {
	Message string `json:"message"`
}

func (c *Client) do(ctx context.Context, method, path string, in, out any) error {
	var body io.Reader
	if in != nil {
		encoded, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("encode request body: %w", err)
		}
		body = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer func() {
		_, _ = io.Copy(io.Discard, resp.Body)
		_ = resp.Body.Close()
	}()

	if resp.StatusCode == http.StatusNotFound {
		return model.ErrNotFound
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var payload apiError
		if decodeErr := json.NewDecoder(resp.Body).Decode(&payload); decodeErr == nil && payload.Message != "" {
			return fmt.Errorf("%s %s: node returned %d: %s", method, path, resp.StatusCode, payload.Message)
		}
		return fmt.Errorf("%s %s: node returned %d", method, path, resp.StatusCode)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response body: %w", err)
	}
	return nil
}
