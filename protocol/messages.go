package protocol

import (
	"errors"
	"fmt"

	"github.com/mitchellh/mapstructure"
)

// ErrInvalidParams marks a raw parameter map that does not validate into the
// request shape of the chosen method.
var ErrInvalidParams = errors.New("invalid message/send params")

// Role identifies the author of a message.
type Role string

const (
	RoleUser  Role = "user"
	RoleAgent Role = "agent"
)

// Part is one unit of content within a message. Which of Text, File or Data
// is populated depends on Kind.
type Part struct {
	Kind     string                 `json:"kind,omitempty" mapstructure:"kind"`
	Text     string                 `json:"text,omitempty" mapstructure:"text"`
	File     map[string]interface{} `json:"file,omitempty" mapstructure:"file"`
	Data     map[string]interface{} `json:"data,omitempty" mapstructure:"data"`
	Metadata map[string]interface{} `json:"metadata,omitempty" mapstructure:"metadata"`
}

// Message is a single turn of communication between a user and an agent.
type Message struct {
	Role      Role                   `json:"role" mapstructure:"role"`
	Parts     []Part                 `json:"parts" mapstructure:"parts"`
	MessageID string                 `json:"messageId" mapstructure:"messageId"`
	ContextID string                 `json:"contextId,omitempty" mapstructure:"contextId"`
	TaskID    string                 `json:"taskId,omitempty" mapstructure:"taskId"`
	Kind      string                 `json:"kind,omitempty" mapstructure:"kind"`
	Metadata  map[string]interface{} `json:"metadata,omitempty" mapstructure:"metadata"`
}

// MessageSendConfiguration tunes how the server handles a send request.
type MessageSendConfiguration struct {
	AcceptedOutputModes []string `json:"acceptedOutputModes,omitempty" mapstructure:"acceptedOutputModes"`
	HistoryLength       int      `json:"historyLength,omitempty" mapstructure:"historyLength"`
	Blocking            bool     `json:"blocking,omitempty" mapstructure:"blocking"`
}

// MessageSendParams is the parameter shape shared by the message/send and
// message/stream methods.
type MessageSendParams struct {
	Message       Message                   `json:"message" mapstructure:"message"`
	Configuration *MessageSendConfiguration `json:"configuration,omitempty" mapstructure:"configuration"`
	Metadata      map[string]interface{}    `json:"metadata,omitempty" mapstructure:"metadata"`
}

// Validate checks the fields the protocol requires on a send request.
func (p *MessageSendParams) Validate() error {
	m := &p.Message
	if m.Role != RoleUser && m.Role != RoleAgent {
		return fmt.Errorf("message.role must be %q or %q, got %q", RoleUser, RoleAgent, m.Role)
	}
	if len(m.Parts) == 0 {
		return errors.New("message.parts must not be empty")
	}
	if m.MessageID == "" {
		return errors.New("message.messageId is required")
	}
	return nil
}

// ValidateSendParams decodes a raw parameter map into MessageSendParams and
// validates the fields the protocol requires. Failures wrap
// ErrInvalidParams so callers can classify them with errors.Is.
func ValidateSendParams(raw map[string]interface{}) (*MessageSendParams, error) {
	var params MessageSendParams
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:  &params,
		TagName: "mapstructure",
	})
	if err != nil {
		return nil, fmt.Errorf("failed to build params decoder: %w", err)
	}
	if err := decoder.Decode(raw); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidParams, err)
	}
	if err := params.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidParams, err)
	}
	return &params, nil
}
