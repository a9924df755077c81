package client

import (
	"errors"

	"github.com/localrivet/ca2a/protocol"
	"github.com/localrivet/ca2a/transport"
)

// Standard error types that can be used with errors.Is()
var (
	// ErrUnsupportedMethod marks a method outside the supported set. It is
	// detected before any transport call is made.
	ErrUnsupportedMethod = errors.New("unsupported method")

	// ErrInvalidParams marks a parameter map that fails request-shape
	// validation. Re-exported from protocol for callers classifying
	// dispatcher failures in one place.
	ErrInvalidParams = protocol.ErrInvalidParams

	// ErrUnrecognizedResponse marks an envelope carrying neither a result
	// nor an error.
	ErrUnrecognizedResponse = protocol.ErrUnrecognizedResponse

	// ErrTransport marks a network or HTTP-level failure.
	ErrTransport = transport.ErrTransport
)
