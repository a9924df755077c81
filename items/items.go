// Package items implements the request-item grammar used on the ca2a
// command line. Each item is a single argument of one of three forms:
//
//	key=value    string parameter, stored verbatim
//	key:=value   raw JSON parameter (object, array, string, number, bool, null)
//	key:value    HTTP header, stored verbatim
//
// The key may not contain ':' or '='; the value may contain anything,
// including newlines, and is never trimmed.
package items

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// MaxLiteralDepth caps how deeply a := JSON literal may nest. The grammar
// itself imposes no limit; the cap guards against pathological inputs.
const MaxLiteralDepth = 64

// Params maps parameter keys to their decoded values.
type Params map[string]interface{}

// Headers maps header names to verbatim header values.
type Headers map[string]string

var (
	// ErrInvalidItem marks an argument that matches no separator.
	ErrInvalidItem = errors.New("invalid item")

	// ErrInvalidValue marks a := item whose value is not valid JSON.
	ErrInvalidValue = errors.New("invalid JSON value")
)

// Parse splits raw command-line items into parameters and headers.
// Parsing is all-or-nothing: the first malformed item fails the whole call
// and no partial maps are returned. On key collision the last item wins.
func Parse(raw []string) (Params, Headers, error) {
	params := make(Params, len(raw))
	headers := make(Headers)

	for _, item := range raw {
		if err := parseOne(item, params, headers); err != nil {
			return nil, nil, err
		}
	}
	return params, headers, nil
}

func parseOne(item string, params Params, headers Headers) error {
	key, sep, value, ok := split(item)
	if !ok {
		return fmt.Errorf("%w: %q", ErrInvalidItem, item)
	}

	switch sep {
	case "=": // String field
		params[key] = value
	case ":=": // Raw JSON field
		decoded, err := decodeLiteral(value)
		if err != nil {
			return fmt.Errorf("%w: %q", ErrInvalidValue, value)
		}
		params[key] = decoded
	case ":": // Header field
		headers[key] = value
	}
	return nil
}

// split locates the first separator in the item. ":=" wins over ":" when
// both match at the same offset. Both key and value must be non-empty.
func split(item string) (key, sep, value string, ok bool) {
	i := strings.IndexAny(item, ":=")
	if i <= 0 {
		return "", "", "", false
	}

	key = item[:i]
	if item[i] == ':' && i+1 < len(item) && item[i+1] == '=' {
		sep = ":="
		value = item[i+2:]
	} else {
		sep = string(item[i])
		value = item[i+1:]
	}
	if value == "" {
		return "", "", "", false
	}
	return key, sep, value, true
}

// decodeLiteral parses a := value as a single JSON document. Trailing
// non-whitespace after the document and nesting beyond MaxLiteralDepth are
// rejected.
func decodeLiteral(value string) (interface{}, error) {
	if err := checkDepth(value); err != nil {
		return nil, err
	}

	decoder := json.NewDecoder(strings.NewReader(value))
	var decoded interface{}
	if err := decoder.Decode(&decoded); err != nil {
		return nil, err
	}
	if decoder.More() {
		return nil, errors.New("trailing data after JSON value")
	}
	return decoded, nil
}

// checkDepth token-walks the value and rejects nesting deeper than
// MaxLiteralDepth.
func checkDepth(value string) error {
	decoder := json.NewDecoder(strings.NewReader(value))
	depth := 0
	for {
		token, err := decoder.Token()
		if err != nil {
			// io.EOF ends the walk; malformed input surfaces again from
			// the real decode.
			return nil
		}
		delim, isDelim := token.(json.Delim)
		if !isDelim {
			continue
		}
		switch delim {
		case '{', '[':
			depth++
			if depth > MaxLiteralDepth {
				return fmt.Errorf("value nests deeper than %d levels", MaxLiteralDepth)
			}
		case '}', ']':
			depth--
		}
	}
}
