// Copyright: This file is part of otelog, released under https://github.com/otelog/otelog/blob/main/LICENSE

package otel

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	otlp "go.opentelemetry.io/proto/otlp/common/v1"
	"google.golang.org/protobuf/proto"

	"github.com/otelog/otelog/pkg/event"
)

var (
	stringA = &otlp.AnyValue{Value: &otlp.AnyValue_StringValue{StringValue: "a"}}
	int9    = &otlp.AnyValue{Value: &otlp.AnyValue_IntValue{IntValue: 9}}
	double9 = &otlp.AnyValue{Value: &otlp.AnyValue_DoubleValue{DoubleValue: 9.9}}
)

func kv(k string, v *otlp.AnyValue) *otlp.KeyValue { return &otlp.KeyValue{Key: k, Value: v} }

func kvlist(kvs ...*otlp.KeyValue) *otlp.AnyValue {
	return &otlp.AnyValue{Value: &otlp.AnyValue_KvlistValue{KvlistValue: &otlp.KeyValueList{Values: kvs}}}
}

func array(vs ...*otlp.AnyValue) *otlp.AnyValue {
	return &otlp.AnyValue{Value: &otlp.AnyValue_ArrayValue{ArrayValue: &otlp.ArrayValue{Values: vs}}}
}

func TestValue(t *testing.T) {
	for _, x := range []struct {
		name string
		in   any
		want *otlp.AnyValue
	}{
		{"string", "a", stringA},
		{"bool", true, &otlp.AnyValue{Value: &otlp.AnyValue_BoolValue{BoolValue: true}}},
		{"int", 9, int9},
		{"int32", int32(9), int9},
		{"int64", int64(9), int9},
		{"uint16", uint16(9), int9},
		{"uint64", uint64(9), int9},
		{"float64", 9.9, double9},
		{"float32", float32(0.5), &otlp.AnyValue{Value: &otlp.AnyValue_DoubleValue{DoubleValue: 0.5}}},
		{"bytes", []byte{3}, &otlp.AnyValue{Value: &otlp.AnyValue_BytesValue{BytesValue: []byte{3}}}},
		{"array", []any{"a", 9}, array(stringA, int9)},
		{"array drops unrepresentable", []any{"a", struct{}{}, 9}, array(stringA, int9)},
		{"nested array", []any{[]any{"a"}}, array(array(stringA))},
		{"properties keep order", []event.Property{{Key: "s", Value: "a"}, {Key: "i", Value: 9}}, kvlist(kv("s", stringA), kv("i", int9))},
		{"map keys sorted", map[string]any{"i": 9, "a": "a"}, kvlist(kv("a", stringA), kv("i", int9))},
		{"map drops unrepresentable", map[string]any{"a": "a", "x": make(chan int)}, kvlist(kv("a", stringA))},
		{"nested map", map[string]any{"m": map[string]any{"s": "a"}}, kvlist(kv("m", kvlist(kv("s", stringA))))},
	} {
		t.Run(x.name, func(t *testing.T) {
			got, ok := Value(x.in)
			assert.True(t, ok)
			assert.True(t, proto.Equal(x.want, got), "want %v, got %v", x.want, got)
		})
	}
}

func TestValue_Unrepresentable(t *testing.T) {
	for _, x := range []struct {
		name string
		in   any
	}{
		{"nil", nil},
		{"struct", struct{ X int }{1}},
		{"chan", make(chan int)},
		{"func", func() {}},
		{"time", time.Now()},
		{"uint64 overflow", uint64(math.MaxInt64) + 1},
	} {
		t.Run(x.name, func(t *testing.T) {
			got, ok := Value(x.in)
			assert.False(t, ok)
			assert.Nil(t, got)
		})
	}
}
