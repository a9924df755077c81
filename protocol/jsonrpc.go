// Package protocol defines the structures and constants for the A2A
// (Agent-to-Agent) protocol, based on the JSON-RPC 2.0 specification.
package protocol

import (
	"encoding/json"
	"errors"
	"fmt"
)

// ErrUnrecognizedResponse marks a response envelope that carries neither a
// result nor an error. Such an envelope is a protocol violation.
var ErrUnrecognizedResponse = errors.New("unrecognized A2A response")

// ErrorPayload defines the structure of the 'error' object within a JSON-RPC
// response, aligning with the JSON-RPC 2.0 specification used by A2A.
type ErrorPayload struct {
	Code    int         `json:"code"`           // Use codes from constants.go
	Message string      `json:"message"`        // Short error description
	Data    interface{} `json:"data,omitempty"` // Optional additional error details
}

// Request represents a standard JSON-RPC request object.
type Request struct {
	JSONRPC string      `json:"jsonrpc"`          // MUST be "2.0"
	ID      string      `json:"id"`               // Request ID, unique per invocation
	Method  string      `json:"method"`           // Method name (e.g., "message/send")
	Params  interface{} `json:"params,omitempty"` // Validated parameters
}

// NewRequest creates a new JSON-RPC request object for the given method.
func NewRequest(id, method string, params interface{}) *Request {
	return &Request{
		JSONRPC: Version,
		ID:      id,
		Method:  method,
		Params:  params,
	}
}

// Response represents a standard JSON-RPC response object: the envelope
// returned by one remote call. Exactly one of Result or Error is populated
// on any well-formed envelope.
type Response struct {
	JSONRPC string          `json:"jsonrpc"`          // MUST be "2.0"
	ID      interface{}     `json:"id,omitempty"`     // Mirrors the request ID
	Result  json.RawMessage `json:"result,omitempty"` // Result payload (on success)
	Error   *ErrorPayload   `json:"error,omitempty"`  // Error object (on failure)
}

// ResponseKind classifies a response envelope into its closed set of
// variants.
type ResponseKind int

const (
	// KindSuccess is an envelope carrying a result payload.
	KindSuccess ResponseKind = iota
	// KindError is an envelope carrying an error object.
	KindError
	// KindUnrecognized is an envelope carrying neither variant.
	KindUnrecognized
)

// Kind reports which variant of the envelope is populated. An error object
// takes precedence so that a malformed envelope carrying both still reports
// its error.
func (r *Response) Kind() ResponseKind {
	switch {
	case r.Error != nil:
		return KindError
	case len(r.Result) > 0 && string(r.Result) != "null":
		return KindSuccess
	default:
		return KindUnrecognized
	}
}

// Payload extracts the printable payload from the envelope: the result for a
// success envelope, the error object for an error envelope. An unrecognized
// envelope yields ErrUnrecognizedResponse naming the envelope's raw JSON.
func (r *Response) Payload() (interface{}, error) {
	switch r.Kind() {
	case KindError:
		return r.Error, nil
	case KindSuccess:
		return r.Result, nil
	default:
		raw, err := json.Marshal(r)
		if err != nil {
			return nil, fmt.Errorf("%w (unserializable envelope: %v)", ErrUnrecognizedResponse, err)
		}
		return nil, fmt.Errorf("%w: %s", ErrUnrecognizedResponse, raw)
	}
}
