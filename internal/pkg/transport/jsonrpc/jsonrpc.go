// Package jsonrpc provides JSON-RPC 2.0 clients for Ethereum-style nodes.
//
// Two transports are available: an HTTP client with automatic retries for
// plain request/response calls, and a WebSocket client that additionally
// supports server-pushed subscriptions (eth_subscribe). Both implement Client.
package jsonrpc

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
)

// jsonrpcVersion is the protocol version sent with every request.
const jsonrpcVersion = "2.0"

// ErrProviderReturnedError indicates that the remote JSON-RPC server returned an error response.
var ErrProviderReturnedError = errors.New("provider error")

// Client sends JSON-RPC requests and returns their raw results.
type Client interface {
	// Fetch sends a JSON-RPC request with the given method name and parameters.
	// It returns the raw JSON result or an error if the request or response fails.
	// A JSON null result is returned as-is; interpreting it is up to the caller.
	Fetch(ctx context.Context, method string, params ...any) (json.RawMessage, error)
}

// request is a JSON-RPC 2.0 request object.
type request struct {
	JsonRPC string `json:"jsonrpc"`
	ID      string `json:"id"`
	Method  string `json:"method"`
	Params  []any  `json:"params"`
}

// newRequest builds a request, normalizing nil params to an empty array since
// most nodes reject a null params field.
func newRequest(id, method string, params []any) request {
	if params == nil {
		params = []any{}
	}

	return request{
		JsonRPC: jsonrpcVersion,
		ID:      id,
		Method:  method,
		Params:  params,
	}
}

// rpcError is the error member of a JSON-RPC response.
type rpcError struct {
	Code    int    `json:"code"`    // Error code defined by the JSON-RPC spec or custom server logic
	Message string `json:"message"` // Human-readable error message
}

// response represents a standard JSON-RPC 2.0 response.
type response struct {
	JsonRPC string          `json:"jsonrpc"`
	ID      json.RawMessage `json:"id,omitempty"`
	Error   *rpcError       `json:"error,omitempty"`
	Result  json.RawMessage `json:"result,omitempty"`
}

// Err returns an error if the response includes a JSON-RPC error object.
// It wraps ErrProviderReturnedError with the provided error code and message.
func (r response) Err() error {
	if r.Error == nil {
		return nil
	}

	return fmt.Errorf("%w: [%d] - %s", ErrProviderReturnedError, r.Error.Code, r.Error.Message)
}

// IsNull reports whether a raw result is absent or the JSON null literal.
func IsNull(raw json.RawMessage) bool {
	return len(raw) == 0 || string(raw) == "null"
}
