package protocol

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestSerialization(t *testing.T) {
	req := NewRequest("req-123", MethodMessageSend, map[string]interface{}{"key": "value"})

	data, err := json.Marshal(req)
	require.NoError(t, err)

	var parsed map[string]interface{}
	err = json.Unmarshal(data, &parsed)
	require.NoError(t, err)

	assert.Equal(t, "2.0", parsed["jsonrpc"])
	assert.Equal(t, "req-123", parsed["id"])
	assert.Equal(t, "message/send", parsed["method"])
	assert.NotNil(t, parsed["params"])
}

func TestRequestOmitsNilParams(t *testing.T) {
	req := NewRequest("req-1", MethodMessageStream, nil)

	data, err := json.Marshal(req)
	require.NoError(t, err)

	var parsed map[string]interface{}
	err = json.Unmarshal(data, &parsed)
	require.NoError(t, err)

	_, hasParams := parsed["params"]
	assert.False(t, hasParams, "params field should be omitted when nil")
}

func TestResponseKindSuccess(t *testing.T) {
	var resp Response
	err := json.Unmarshal([]byte(`{"jsonrpc":"2.0","id":"1","result":{"kind":"message"}}`), &resp)
	require.NoError(t, err)

	assert.Equal(t, KindSuccess, resp.Kind())

	payload, err := resp.Payload()
	require.NoError(t, err)
	assert.JSONEq(t, `{"kind":"message"}`, string(payload.(json.RawMessage)))
}

func TestResponseKindError(t *testing.T) {
	var resp Response
	err := json.Unmarshal([]byte(`{"jsonrpc":"2.0","id":"1","error":{"code":-32601,"message":"Method not found"}}`), &resp)
	require.NoError(t, err)

	assert.Equal(t, KindError, resp.Kind())

	payload, err := resp.Payload()
	require.NoError(t, err)
	errPayload, ok := payload.(*ErrorPayload)
	require.True(t, ok)
	assert.Equal(t, CodeMethodNotFound, errPayload.Code)
	assert.Equal(t, "Method not found", errPayload.Message)
}

func TestResponseKindUnrecognized(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"neither variant", `{"jsonrpc":"2.0","id":"1"}`},
		{"null result", `{"jsonrpc":"2.0","id":"1","result":null}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var resp Response
			err := json.Unmarshal([]byte(tt.raw), &resp)
			require.NoError(t, err)

			assert.Equal(t, KindUnrecognized, resp.Kind())

			_, err = resp.Payload()
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrUnrecognizedResponse)
			assert.Contains(t, err.Error(), `"jsonrpc":"2.0"`,
				"error should name the envelope's raw serialized form")
		})
	}
}

func TestResponseErrorTakesPrecedence(t *testing.T) {
	var resp Response
	err := json.Unmarshal([]byte(`{"jsonrpc":"2.0","id":"1","result":{"x":1},"error":{"code":-32603,"message":"boom"}}`), &resp)
	require.NoError(t, err)

	assert.Equal(t, KindError, resp.Kind())
}
