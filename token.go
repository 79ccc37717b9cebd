package repoabs

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"time"
)

var _encoder = base64.RawURLEncoding

// EncodeStartToken encodes a cursor value into an opaque token suitable for
// API payloads. An empty token means the start of the dataset.
//
// Usage guide: pass the token returned with one page verbatim into the next
// request; decode it with DecodeStartToken and feed the value to
// PaginationOption.StartID.
func EncodeStartToken(startID any) string {
	if startID == nil {
		return ""
	}

	jsonData, err := json.Marshal(startID)
	if err != nil {
		panic(fmt.Errorf("cannot marshal start token value: %w", err))
	}

	return _encoder.EncodeToString(jsonData)
}

// DecodeStartToken decodes a token produced by EncodeStartToken back into a
// cursor value. An empty token decodes to nil. String values that parse as
// RFC 3339 timestamps are returned as time.Time, so that cursors over
// datetime columns survive the JSON round trip.
func DecodeStartToken(b64Token string) (any, error) {
	if len(b64Token) == 0 {
		return nil, nil
	}

	jsonData, err := _encoder.DecodeString(b64Token)
	if err != nil {
		return nil, fmt.Errorf("failed to decode base64 encoded start token: %w", err)
	}

	var value any
	if err = json.Unmarshal(jsonData, &value); err != nil {
		return nil, fmt.Errorf("failed to unmarshal json encoded start token: %w", err)
	}

	return parseAnyValue(value), nil
}

func parseAnyValue(v any) any {
	// Try parsing a value as time.Time. If it succeeds, return time.Time.
	// Otherwise return the original value.
	fnParseBytesToTimeOrValue := func(vBytes []byte) any {
		dst := time.Time{}
		err := dst.UnmarshalText(vBytes)
		if err == nil {
			return dst
		}

		return v
	}

	switch vt := v.(type) {
	case string:
		return fnParseBytesToTimeOrValue([]byte(vt))
	case []byte:
		return fnParseBytesToTimeOrValue(vt)
	default:
		return v
	}
}
