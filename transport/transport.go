// Package transport implements the HTTP transport used to reach an A2A
// JSON-RPC endpoint: a plain POST for unary calls and a POST answered with a
// text/event-stream body for streaming calls. This implementation uses
// standard net/http without external SSE libraries.
package transport

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/localrivet/ca2a/logx"
	"github.com/localrivet/ca2a/protocol"
	"github.com/localrivet/ca2a/types"
)

// ErrTransport marks network and HTTP-level failures surfaced by the
// transport.
var ErrTransport = errors.New("transport failure")

// SSE field prefixes per the EventSource wire format.
var (
	fieldData  = []byte("data:")
	fieldEvent = []byte("event:")
	fieldID    = []byte("id:")
	fieldRetry = []byte("retry:")
)

// maxEventSize bounds a single SSE line. Events larger than this abort the
// stream with an error rather than silently truncating.
const maxEventSize = 1 << 20

// HTTPTransport implements types.Transport over net/http. The configured
// headers are attached to every outgoing request.
type HTTPTransport struct {
	endpoint   string
	headers    map[string]string
	httpClient *http.Client
	logger     types.Logger
}

// Ensure interface compliance
var _ types.Transport = (*HTTPTransport)(nil)

// Options holds configuration for an HTTPTransport.
type Options struct {
	Endpoint   string            // Full URL of the A2A JSON-RPC endpoint
	Headers    map[string]string // Extra headers attached to every request
	HTTPClient *http.Client      // Optional custom client
	Logger     types.Logger      // Optional logger; defaults to logx
}

// NewHTTPTransport creates a new HTTPTransport instance.
func NewHTTPTransport(opts Options) (*HTTPTransport, error) {
	if opts.Endpoint == "" {
		return nil, fmt.Errorf("%w: endpoint is required", ErrTransport)
	}
	logger := opts.Logger
	if logger == nil {
		logger = logx.NewDefaultLogger()
	}
	httpClient := opts.HTTPClient
	if httpClient == nil {
		// No client-level timeout: a streaming response stays open for the
		// lifetime of the call and is bounded by the request context.
		httpClient = &http.Client{}
	}
	return &HTTPTransport{
		endpoint:   opts.Endpoint,
		headers:    opts.Headers,
		httpClient: httpClient,
		logger:     logger,
	}, nil
}

// newHTTPRequest marshals the JSON-RPC request and builds the outgoing POST,
// including the configured extra headers.
func (t *HTTPTransport) newHTTPRequest(ctx context.Context, req *protocol.Request, accept string) (*http.Request, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("%w: marshaling request: %v", ErrTransport, err)
	}
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, t.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("%w: building request: %v", ErrTransport, err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Accept", accept)
	for key, value := range t.headers {
		httpReq.Header.Set(key, value)
	}
	return httpReq, nil
}

// Send performs one unary round trip and decodes the single response
// envelope.
func (t *HTTPTransport) Send(ctx context.Context, req *protocol.Request) (*protocol.Response, error) {
	httpReq, err := t.newHTTPRequest(ctx, req, "application/json")
	if err != nil {
		return nil, err
	}

	t.logger.Debug("POST %s method=%s id=%s", t.endpoint, req.Method, req.ID)
	resp, err := t.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTransport, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, statusError(resp)
	}

	var envelope protocol.Response
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return nil, fmt.Errorf("%w: decoding response: %v", ErrTransport, err)
	}
	return &envelope, nil
}

// Stream opens a server-streamed call. Envelopes are delivered on the
// returned channel in arrival order with one envelope of slack; the channel
// is closed when the server ends the stream. The response body is released
// on every exit path.
func (t *HTTPTransport) Stream(ctx context.Context, req *protocol.Request) (<-chan types.StreamEvent, error) {
	httpReq, err := t.newHTTPRequest(ctx, req, "text/event-stream")
	if err != nil {
		return nil, err
	}
	httpReq.Header.Set("Cache-Control", "no-cache")

	t.logger.Debug("POST %s method=%s id=%s (streaming)", t.endpoint, req.Method, req.ID)
	resp, err := t.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTransport, err)
	}
	if resp.StatusCode != http.StatusOK {
		err := statusError(resp)
		resp.Body.Close()
		return nil, err
	}

	events := make(chan types.StreamEvent, 1)
	go t.readEvents(resp.Body, events)
	return events, nil
}

// Close releases idle connections held by the underlying HTTP client.
func (t *HTTPTransport) Close() error {
	t.httpClient.CloseIdleConnections()
	return nil
}

// readEvents scans the SSE body line by line, accumulating data: fields
// until a blank line terminates the event, then decodes the event payload
// as one response envelope.
func (t *HTTPTransport) readEvents(body io.ReadCloser, events chan<- types.StreamEvent) {
	defer close(events)
	defer body.Close()

	scanner := bufio.NewScanner(body)
	scanner.Buffer(make([]byte, 0, 64*1024), maxEventSize)

	var data bytes.Buffer
	dispatch := func() bool {
		if len(bytes.TrimSpace(data.Bytes())) == 0 {
			data.Reset()
			return true
		}
		var envelope protocol.Response
		if err := json.Unmarshal(data.Bytes(), &envelope); err != nil {
			events <- types.StreamEvent{Err: fmt.Errorf("%w: decoding stream event: %v", ErrTransport, err)}
			return false
		}
		events <- types.StreamEvent{Response: &envelope}
		data.Reset()
		return true
	}

	for scanner.Scan() {
		line := scanner.Bytes()
		switch {
		case len(bytes.TrimSpace(line)) == 0:
			if !dispatch() {
				return
			}
		case bytes.HasPrefix(line, fieldData):
			if data.Len() > 0 {
				data.WriteByte('\n')
			}
			// The wire format strips exactly one leading space after the
			// field name; everything else is payload.
			data.Write(bytes.TrimPrefix(line[len(fieldData):], []byte(" ")))
		case bytes.HasPrefix(line, fieldEvent),
			bytes.HasPrefix(line, fieldID),
			bytes.HasPrefix(line, fieldRetry):
			// Event names, ids and retry hints are not used by the A2A stream.
		case bytes.HasPrefix(line, []byte(":")):
			// Comment / keep-alive line.
		default:
			t.logger.Debug("ignoring unrecognized SSE line: %q", line)
		}
	}
	if err := scanner.Err(); err != nil {
		events <- types.StreamEvent{Err: fmt.Errorf("%w: reading stream: %v", ErrTransport, err)}
		return
	}
	// A final event may lack the trailing blank line.
	dispatch()
}

// statusError summarizes a non-200 HTTP response, including a bounded
// excerpt of the body.
func statusError(resp *http.Response) error {
	body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
	excerpt := bytes.TrimSpace(body)
	if len(excerpt) == 0 {
		return fmt.Errorf("%w: unexpected status %s", ErrTransport, resp.Status)
	}
	return fmt.Errorf("%w: unexpected status %s: %s", ErrTransport, resp.Status, excerpt)
}
