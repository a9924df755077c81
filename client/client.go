// Package client implements the ca2a call dispatcher. It validates the
// requested A2A method against the supported set, validates the raw
// parameter map into the protocol request shape, invokes the transport with
// a freshly generated request ID, and drains the resulting envelope or
// envelope stream to the output sink in arrival order.
package client

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/google/uuid"

	"github.com/localrivet/ca2a/items"
	"github.com/localrivet/ca2a/logx"
	"github.com/localrivet/ca2a/protocol"
	"github.com/localrivet/ca2a/types"
)

// Renderer writes one structured payload to the output sink.
type Renderer interface {
	Print(v interface{}) error
}

// Client performs one A2A call and drives its output to completion.
type Client struct {
	transport types.Transport
	renderer  Renderer
	out       io.Writer
	verbose   bool
	logger    types.Logger
}

// Options holds configuration for a Client.
type Options struct {
	Transport types.Transport // Required
	Renderer  Renderer        // Required
	Out       io.Writer       // Verbose label output; defaults to os.Stdout
	Verbose   bool            // Echo the raw request and response envelopes
	Logger    types.Logger    // Optional logger; defaults to logx
}

// New creates a new Client instance.
func New(opts Options) (*Client, error) {
	if opts.Transport == nil {
		return nil, errors.New("client: transport is required")
	}
	if opts.Renderer == nil {
		return nil, errors.New("client: renderer is required")
	}
	out := opts.Out
	if out == nil {
		out = os.Stdout
	}
	logger := opts.Logger
	if logger == nil {
		logger = logx.NewDefaultLogger()
	}
	return &Client{
		transport: opts.Transport,
		renderer:  opts.Renderer,
		out:       out,
		verbose:   opts.Verbose,
		logger:    logger,
	}, nil
}

// Invoke performs one call with the given method and raw parameters and
// drains its entire output. The transport is released on every exit path.
// Method and parameter validation failures abort before any network call.
func (c *Client) Invoke(ctx context.Context, method string, params items.Params) error {
	defer c.transport.Close()

	switch method {
	case protocol.MethodMessageSend, protocol.MethodMessageStream:
	default:
		return fmt.Errorf("%w: %s (choose from %s)",
			ErrUnsupportedMethod, method, strings.Join(protocol.Methods, ", "))
	}

	validated, err := protocol.ValidateSendParams(params)
	if err != nil {
		return err
	}

	req := protocol.NewRequest(uuid.NewString(), method, validated)
	if err := c.showRequest(req); err != nil {
		return err
	}

	c.logger.Debug("dispatching %s id=%s", method, req.ID)
	if method == protocol.MethodMessageStream {
		return c.invokeStreaming(ctx, req)
	}
	return c.invokeUnary(ctx, req)
}

// invokeUnary performs one round trip and renders the single envelope.
func (c *Client) invokeUnary(ctx context.Context, req *protocol.Request) error {
	envelope, err := c.transport.Send(ctx, req)
	if err != nil {
		return err
	}
	first := true
	return c.showEnvelope(envelope, &first)
}

// invokeStreaming drains envelopes in arrival order until the transport
// signals end-of-stream. Each envelope is rendered immediately; a mid-stream
// failure aborts without rolling back already flushed output.
func (c *Client) invokeStreaming(ctx context.Context, req *protocol.Request) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	events, err := c.transport.Stream(ctx, req)
	if err != nil {
		return err
	}
	// On an abort mid-stream the producer must not stay blocked on its
	// channel send: cancel the call and consume whatever remains so the
	// transport can release the response body.
	defer func() {
		cancel()
		for range events {
		}
	}()

	first := true
	for event := range events {
		if event.Err != nil {
			return event.Err
		}
		if err := c.showEnvelope(event.Response, &first); err != nil {
			return err
		}
	}
	return nil
}

// showRequest echoes the serialized request before dispatch when verbose.
func (c *Client) showRequest(req *protocol.Request) error {
	if !c.verbose {
		return nil
	}
	if _, err := fmt.Fprintln(c.out, "Request:"); err != nil {
		return err
	}
	return c.renderer.Print(req)
}

// showEnvelope renders one response envelope: the raw envelope in verbose
// mode, otherwise the extracted success or error payload.
func (c *Client) showEnvelope(envelope *protocol.Response, first *bool) error {
	if c.verbose {
		if *first {
			*first = false
			if _, err := fmt.Fprintln(c.out, "Response:"); err != nil {
				return err
			}
		}
		return c.renderer.Print(envelope)
	}

	payload, err := envelope.Payload()
	if err != nil {
		return err
	}
	return c.renderer.Print(payload)
}
