// Copyright: This file is part of otelog, released under https://github.com/otelog/otelog/blob/main/LICENSE

package otel

import (
	"math"
	"sort"

	otlpcommon "go.opentelemetry.io/proto/otlp/common/v1"

	"github.com/otelog/otelog/pkg/event"
)

// Value converts a Go value to an OTEL [otlpcommon.AnyValue].
// The variant is closed: string, bool, integers, floats, []byte, []any,
// map[string]any and []event.Property, the last three converted recursively.
// ok is false for anything else, meaning the value has no OTLP representation
// and the caller should drop it.
func Value(v any) (av *otlpcommon.AnyValue, ok bool) {
	switch v := v.(type) {
	case string:
		return stringValue(v), true
	case bool:
		return &otlpcommon.AnyValue{Value: &otlpcommon.AnyValue_BoolValue{BoolValue: v}}, true
	case int:
		return intValue(int64(v)), true
	case int8:
		return intValue(int64(v)), true
	case int16:
		return intValue(int64(v)), true
	case int32:
		return intValue(int64(v)), true
	case int64:
		return intValue(v), true
	case uint:
		return Value(uint64(v))
	case uint8:
		return intValue(int64(v)), true
	case uint16:
		return intValue(int64(v)), true
	case uint32:
		return intValue(int64(v)), true
	case uint64:
		if v > math.MaxInt64 { // No OTLP representation.
			return nil, false
		}
		return intValue(int64(v)), true
	case float32:
		return doubleValue(float64(v)), true
	case float64:
		return doubleValue(v), true
	case []byte:
		return &otlpcommon.AnyValue{Value: &otlpcommon.AnyValue_BytesValue{BytesValue: v}}, true
	case []any:
		values := make([]*otlpcommon.AnyValue, 0, len(v))
		for _, e := range v {
			if av, ok := Value(e); ok {
				values = append(values, av)
			}
		}
		return &otlpcommon.AnyValue{Value: &otlpcommon.AnyValue_ArrayValue{ArrayValue: &otlpcommon.ArrayValue{Values: values}}}, true
	case []event.Property:
		kvs := make([]*otlpcommon.KeyValue, 0, len(v))
		for _, p := range v {
			if av, ok := Value(p.Value); ok {
				kvs = append(kvs, &otlpcommon.KeyValue{Key: p.Key, Value: av})
			}
		}
		return kvlistValue(kvs), true
	case map[string]any:
		keys := make([]string, 0, len(v))
		for k := range v {
			keys = append(keys, k)
		}
		sort.Strings(keys) // Deterministic kvlist order.
		kvs := make([]*otlpcommon.KeyValue, 0, len(v))
		for _, k := range keys {
			if av, ok := Value(v[k]); ok {
				kvs = append(kvs, &otlpcommon.KeyValue{Key: k, Value: av})
			}
		}
		return kvlistValue(kvs), true
	}
	return nil, false
}

func stringValue(s string) *otlpcommon.AnyValue {
	return &otlpcommon.AnyValue{Value: &otlpcommon.AnyValue_StringValue{StringValue: s}}
}

func intValue(i int64) *otlpcommon.AnyValue {
	return &otlpcommon.AnyValue{Value: &otlpcommon.AnyValue_IntValue{IntValue: i}}
}

func doubleValue(f float64) *otlpcommon.AnyValue {
	return &otlpcommon.AnyValue{Value: &otlpcommon.AnyValue_DoubleValue{DoubleValue: f}}
}

func kvlistValue(kvs []*otlpcommon.KeyValue) *otlpcommon.AnyValue {
	return &otlpcommon.AnyValue{Value: &otlpcommon.AnyValue_KvlistValue{KvlistValue: &otlpcommon.KeyValueList{Values: kvs}}}
}
