package types

import (
	"context"

	"github.com/localrivet/ca2a/protocol"
)

// StreamEvent carries one item of a streaming call: either a response
// envelope or a terminal transport error. Exactly one field is set.
type StreamEvent struct {
	Response *protocol.Response
	Err      error
}

// Transport abstracts the HTTP layer used to reach an A2A endpoint.
// It provides one unary and one streaming call path; callers pick the path
// from the validated method, so no runtime capability probing is needed.
type Transport interface {
	// Send performs a single request/response round trip and returns the
	// one response envelope produced by the server.
	Send(ctx context.Context, req *protocol.Request) (*protocol.Response, error)

	// Stream opens a server-streamed call and returns a channel delivering
	// response envelopes in arrival order. The channel is closed when the
	// server ends the stream; a mid-stream failure is delivered as the
	// final event before the close.
	Stream(ctx context.Context, req *protocol.Request) (<-chan StreamEvent, error)

	// Close releases any resources held by the transport. After Close is
	// called, the transport should not be used.
	Close() error
}
