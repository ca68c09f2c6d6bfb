package jsonrpc

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"

	"github.com/google/uuid"
	"github.com/hashicorp/go-retryablehttp"
)

// httpClient sends JSON-RPC requests to an HTTP endpoint.
type httpClient struct {
	providerEndpoint string                // The URL of the remote JSON-RPC server
	httpClient       *retryablehttp.Client // The HTTP client used to perform requests
}

var _ Client = (*httpClient)(nil)

// Fetch sends a JSON-RPC request to the remote server with the given method and parameters.
// The request id is a random UUID string.
func (c *httpClient) Fetch(ctx context.Context, method string, params ...any) (json.RawMessage, error) {
	body, err := json.Marshal(newRequest(uuid.NewString(), method, params))
	if err != nil {
		return nil, err
	}

	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodPost, c.providerEndpoint, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}

	req.Header.Set("Content-Type", "application/json")

	res, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()

	var data response
	if err := json.NewDecoder(res.Body).Decode(&data); err != nil {
		return nil, err
	}

	if err := data.Err(); err != nil {
		return nil, err
	}

	return data.Result, nil
}

// NewHTTPClient returns a Client that posts JSON-RPC requests to
// providerEndpoint using client, typically built with transport/http.NewClient.
func NewHTTPClient(providerEndpoint string, client *retryablehttp.Client) *httpClient {
	return &httpClient{
		providerEndpoint: providerEndpoint,
		httpClient:       client,
	}
}
