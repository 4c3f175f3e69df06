package records

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Payload is a decoded upstream response. Keys other than the record list and
// pagination fields are carried through to the snapshot untouched.
type Payload map[string]any

// Record is a single worksheet row keyed by column header.
type Record = map[string]any

const (
	Records           = "records"
	RecordsCount      = "records_count"
	RecordsStartIndex = "records_start_index"
	RecordsEndIndex   = "records_end_index"
	LastModified      = "last_modified"
)

var ErrMalformedResponse = errors.New("malformed response")

var pagination = []string{RecordsCount, RecordsStartIndex, RecordsEndIndex}

// Decode reads a JSON object into a Payload. Numbers are decoded as json.Number
// so that they are written back out exactly as received.
func Decode(r io.Reader) (Payload, error) {
	decoder := json.NewDecoder(r)
	decoder.UseNumber()

	var v any
	if err := decoder.Decode(&v); err != nil {
		return nil, fmt.Errorf("%w (%v)", ErrMalformedResponse, err)
	}

	object, ok := v.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("%w (expected JSON object, got %T)", ErrMalformedResponse, v)
	}

	return Payload(object), nil
}

// Adapt resolves the record list from either the flat or the nested ('data')
// envelope and promotes it, along with any missing pagination fields, to the
// top level of the payload.
func Adapt(payload Payload) error {
	data, _ := payload["data"].(map[string]any)

	v := payload[Records]
	if v == nil && data != nil {
		v = data[Records]
	}

	if v == nil {
		v = []any{}
	}

	list, ok := v.([]any)
	if !ok {
		return fmt.Errorf("%w (expected list of records, got %T)", ErrMalformedResponse, v)
	}

	payload[Records] = list

	if data != nil {
		for _, field := range pagination {
			if _, ok := payload[field]; ok {
				continue
			}

			if v, ok := data[field]; ok {
				payload[field] = v
			}
		}
	}

	return nil
}

// Count returns the 'records_count' field as an integer, falling back to the
// length of the record list.
func Count(payload Payload) int {
	if n, ok := toInt(payload[RecordsCount]); ok {
		return n
	}

	list, _ := payload[Records].([]any)

	return len(list)
}

func toInt(v any) (int, bool) {
	switch n := v.(type) {
	case int:
		return n, true

	case int64:
		return int(n), true

	case float64:
		return int(n), true

	case json.Number:
		if i, err := n.Int64(); err == nil {
			return int(i), true
		} else if f, err := n.Float64(); err == nil {
			return int(f), true
		}

	case string:
		if i, err := strconv.Atoi(strings.TrimSpace(n)); err == nil {
			return i, true
		}
	}

	return 0, false
}
