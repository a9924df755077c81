// Package ca2a provides a command-line client for A2A (Agent-to-Agent)
// endpoints speaking JSON-RPC 2.0 over HTTP.
//
// # Organization
//
// The module is organized into the following main packages:
//
//   - github.com/localrivet/ca2a/items: the key=value / key:=json / key:header
//     request-item grammar
//   - github.com/localrivet/ca2a/protocol: JSON-RPC envelope and A2A message
//     types with request-shape validation
//   - github.com/localrivet/ca2a/transport: unary and SSE-streaming HTTP
//     transport
//   - github.com/localrivet/ca2a/client: the call dispatcher
//   - github.com/localrivet/ca2a/render: terminal output sink with optional
//     syntax highlighting
//
// The ca2a binary lives in cmd/ca2a:
//
//	ca2a https://agent.example.com/a2a message/send \
//	    message:='{"role":"user","parts":[{"kind":"text","text":"hi"}],"messageId":"m1"}' \
//	    x-api-key:secret
package ca2a

// Version is the current release of the ca2a tool.
const Version = "0.1.0"
