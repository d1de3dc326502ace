package jsonutil

import (
	"encoding/json"
	"errors"
	"strings"
)

// Decode parses JSON bytes into generic values, tolerating an artifact
// some models produce: the entire object arriving as one quoted JSON
// string. String values are re-normalized through the JSON decoder on
// the way out.
func Decode(raw []byte) (any, error) {
	v, err := decodeUnwrapping(raw)
	if err != nil {
		return nil, err
	}
	return deepUnescape(v), nil
}

func decodeUnwrapping(raw []byte) (any, error) {
	var anyVal any
	if err := json.Unmarshal(raw, &anyVal); err != nil {
		return nil, errors.New("jsonutil: cannot parse JSON payload")
	}
	s, ok := anyVal.(string)
	if !ok {
		return anyVal, nil
	}
	// The whole payload arrived as one quoted JSON string; decode once more.
	var inner any
	if err := json.Unmarshal([]byte(s), &inner); err != nil {
		return anyVal, nil
	}
	return inner, nil
}

// UnescapeUnicodeString round-trips a string value through the JSON
// decoder, rejecting sequences the decoder cannot represent.
func UnescapeUnicodeString(s string) (string, error) {
	// Trick: force JSON to treat the string as a quoted JSON string
	esc := strings.ReplaceAll(s, `\`, `\\`)
	esc = strings.ReplaceAll(esc, `"`, `\"`)
	var out string
	if err := json.Unmarshal([]byte(`"`+esc+`"`), &out); err != nil {
		return "", err
	}
	return out, nil
}

// deepUnescape recursively traverses maps and slices,
// normalizing every string value.
func deepUnescape(v any) any {
	switch x := v.(type) {
	case string:
		if s, err := UnescapeUnicodeString(x); err == nil {
			return s
		}
		return x
	case []any:
		out := make([]any, len(x))
		for i := range x {
			out[i] = deepUnescape(x[i])
		}
		return out
	case map[string]any:
		out := make(map[string]any, len(x))
		for k, vv := range x {
			out[k] = deepUnescape(vv)
		}
		return out
	default:
		return v
	}
}
