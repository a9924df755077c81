package items

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseStringParam(t *testing.T) {
	params, headers, err := Parse([]string{"name=Alice"})
	require.NoError(t, err)

	assert.Equal(t, "Alice", params["name"])
	assert.Empty(t, headers)
	_, inHeaders := headers["name"]
	assert.False(t, inHeaders, "a = item must never contribute a header")
}

func TestParseHeader(t *testing.T) {
	params, headers, err := Parse([]string{"x-api-key:secret"})
	require.NoError(t, err)

	assert.Equal(t, "secret", headers["x-api-key"])
	_, inParams := params["x-api-key"]
	assert.False(t, inParams, "a : item must never contribute a param")
}

func TestParseJSONParam(t *testing.T) {
	tests := []struct {
		name string
		item string
		key  string
		want interface{}
	}{
		{"number", "age:=30", "age", float64(30)},
		{"bool", "active:=true", "active", true},
		{"null", "missing:=null", "missing", nil},
		{"string", `greeting:="hi"`, "greeting", "hi"},
		{"array", `tags:=["a","b"]`, "tags", []interface{}{"a", "b"}},
		{"object", `msg:={"role":"user","n":1}`, "msg",
			map[string]interface{}{"role": "user", "n": float64(1)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			params, headers, err := Parse([]string{tt.item})
			require.NoError(t, err)
			assert.Equal(t, tt.want, params[tt.key])
			assert.Empty(t, headers)
		})
	}
}

func TestParseInvalidJSONValue(t *testing.T) {
	_, _, err := Parse([]string{"age:=not-json"})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidValue)
	assert.Contains(t, err.Error(), "not-json", "error should name the offending value")
}

func TestSeparatorPrecedence(t *testing.T) {
	// a:=b must be parsed as a raw JSON param (and fail, since b is not
	// JSON), never as header "a" with value "=b".
	_, _, err := Parse([]string{"a:=b"})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidValue)

	params, headers, err := Parse([]string{"a:=1"})
	require.NoError(t, err)
	assert.Equal(t, float64(1), params["a"])
	assert.Empty(t, headers)
}

func TestParseInvalidItem(t *testing.T) {
	tests := []string{
		"bad_token", // no separator at all
		"=value",    // empty key
		":value",    // empty key
		"key=",      // empty value
		"key:",      // empty value
		"key:=",     // empty value
	}
	for _, item := range tests {
		t.Run(item, func(t *testing.T) {
			_, _, err := Parse([]string{item})
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidItem)
			assert.Contains(t, err.Error(), item, "error should name the raw item")
		})
	}
}

func TestParseAllOrNothing(t *testing.T) {
	params, headers, err := Parse([]string{"name=Alice", "bad_token", "age:=30"})
	require.Error(t, err)
	assert.Nil(t, params, "no partial params on failure")
	assert.Nil(t, headers, "no partial headers on failure")
}

func TestParseConcreteScenario(t *testing.T) {
	params, headers, err := Parse([]string{"name=Alice", "age:=30", "x-api-key:secret"})
	require.NoError(t, err)

	assert.Equal(t, Params{"name": "Alice", "age": float64(30)}, params)
	assert.Equal(t, Headers{"x-api-key": "secret"}, headers)
}

func TestParseLastOccurrenceWins(t *testing.T) {
	params, headers, err := Parse([]string{"k=first", "k=second", "h:one", "h:two"})
	require.NoError(t, err)

	assert.Equal(t, "second", params["k"])
	assert.Equal(t, "two", headers["h"])
}

func TestParseMultilineValue(t *testing.T) {
	params, _, err := Parse([]string{"note=line1\nline2"})
	require.NoError(t, err)
	assert.Equal(t, "line1\nline2", params["note"])

	params, _, err = Parse([]string{"obj:={\n  \"a\": 1\n}"})
	require.NoError(t, err)
	assert.Equal(t, map[string]interface{}{"a": float64(1)}, params["obj"])
}

func TestParseValueNotTrimmed(t *testing.T) {
	params, headers, err := Parse([]string{"k=  padded  ", "h:  padded  "})
	require.NoError(t, err)
	assert.Equal(t, "  padded  ", params["k"])
	assert.Equal(t, "  padded  ", headers["h"])
}

func TestParseValueMayContainSeparators(t *testing.T) {
	params, headers, err := Parse([]string{"eq=a=b:c", "hdr:a:b=c"})
	require.NoError(t, err)
	assert.Equal(t, "a=b:c", params["eq"])
	assert.Equal(t, "a:b=c", headers["hdr"])
}

func TestParseRejectsTrailingGarbage(t *testing.T) {
	_, _, err := Parse([]string{`v:=1 2`})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidValue)
}

func TestParseDepthCap(t *testing.T) {
	deep := strings.Repeat("[", MaxLiteralDepth+1) + strings.Repeat("]", MaxLiteralDepth+1)
	_, _, err := Parse([]string{"v:=" + deep})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidValue)

	ok := strings.Repeat("[", MaxLiteralDepth) + strings.Repeat("]", MaxLiteralDepth)
	_, _, err = Parse([]string{"v:=" + ok})
	assert.NoError(t, err)
}

func TestParseEmptyInput(t *testing.T) {
	params, headers, err := Parse(nil)
	require.NoError(t, err)
	assert.Empty(t, params)
	assert.Empty(t, headers)
}
