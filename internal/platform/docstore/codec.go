package docstore

import (
	"fmt"
	"reflect"
	"strings"
	"time"

	sonic "github.com/bytedance/sonic"
)

// Encode converts a tagged struct (or map) into document data. Values end up
// as plain JSON types: float64, string, bool, nil, []any, map[string]any.
func Encode(v any) (map[string]any, error) {
	raw, err := sonic.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("encode document: %w", err)
	}

	var out map[string]any
	if err := sonic.Unmarshal(raw, &out); err != nil {
		return nil, fmt.Errorf("encode document: %w", err)
	}
	if out == nil {
		return nil, fmt.Errorf("encode document: %T is not an object", v)
	}
	return out, nil
}

// Decode fills out from document data.
func Decode(data map[string]any, out any) error {
	raw, err := sonic.Marshal(data)
	if err != nil {
		return fmt.Errorf("decode document: %w", err)
	}
	if err := sonic.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("decode document: %w", err)
	}
	return nil
}

func (d Document) DataTo(out any) error {
	return Decode(d.Data, out)
}

// Normalize deep-copies data into plain JSON types.
func Normalize(data map[string]any) (map[string]any, error) {
	if data == nil {
		return map[string]any{}, nil
	}
	return Encode(data)
}

func normalizeValue(v any) (any, error) {
	raw, err := sonic.Marshal(v)
	if err != nil {
		return nil, err
	}
	var out any
	if err := sonic.Unmarshal(raw, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// DeepMerge writes src into dst. Nested objects present on both sides are
// merged key by key; every other value in src replaces the one in dst.
func DeepMerge(dst, src map[string]any) map[string]any {
	if dst == nil {
		dst = make(map[string]any, len(src))
	}
	for key, value := range src {
		srcMap, srcIsMap := value.(map[string]any)
		dstMap, dstIsMap := dst[key].(map[string]any)
		if srcIsMap && dstIsMap {
			dst[key] = DeepMerge(dstMap, srcMap)
			continue
		}
		dst[key] = value
	}
	return dst
}

func equalValues(left, right any) bool {
	return reflect.DeepEqual(left, right)
}

// compareValues orders normalized JSON values. Values of different kinds
// order by kind: null < bool < number < string < other.
func compareValues(left, right any) int {
	lr, rr := kindRank(left), kindRank(right)
	if lr != rr {
		return lr - rr
	}

	switch l := left.(type) {
	case bool:
		r := right.(bool)
		switch {
		case l == r:
			return 0
		case !l:
			return -1
		default:
			return 1
		}
	case float64:
		r := right.(float64)
		switch {
		case l < r:
			return -1
		case l > r:
			return 1
		default:
			return 0
		}
	case string:
		r := right.(string)
		if lt, err := time.Parse(time.RFC3339Nano, l); err == nil {
			if rt, err := time.Parse(time.RFC3339Nano, r); err == nil {
				return lt.Compare(rt)
			}
		}
		return strings.Compare(l, r)
	}
	return 0
}

func kindRank(v any) int {
	switch v.(type) {
	case nil:
		return 0
	case bool:
		return 1
	case float64:
		return 2
	case string:
		return 3
	default:
		return 4
	}
}
