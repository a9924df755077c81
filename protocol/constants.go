package protocol

// Version is the JSON-RPC protocol version tag carried on every request and
// response.
const Version = "2.0"

// Method names for the A2A operations this client can invoke.
// The set is closed; dispatching any other method is a configuration error.
const (
	MethodMessageSend   = "message/send"
	MethodMessageStream = "message/stream"
)

// Methods lists the supported method names in display order.
var Methods = []string{MethodMessageSend, MethodMessageStream}

// Standard JSON-RPC 2.0 error codes.
const (
	CodeParseError     = -32700
	CodeInvalidRequest = -32600
	CodeMethodNotFound = -32601
	CodeInvalidParams  = -32602
	CodeInternalError  = -32603
)

// A2A-specific error codes, defined in the -32000 to -32099 server range.
const (
	CodeTaskNotFound                 = -32001
	CodeTaskNotCancelable            = -32002
	CodePushNotificationNotSupported = -32003
	CodeUnsupportedOperation         = -32004
	CodeContentTypeNotSupported      = -32005
)
