// Copyright: This file is part of otelog, released under https://github.com/otelog/otelog/blob/main/LICENSE

package otel

import (
	"encoding/hex"
	"fmt"
	"strings"

	otlpcommon "go.opentelemetry.io/proto/otlp/common/v1"
	logspb "go.opentelemetry.io/proto/otlp/logs/v1"

	"github.com/otelog/otelog/pkg/event"
)

// Reserved property names for trace correlation. Values under these keys
// populate the record's TraceId/SpanId fields and never appear in the body
// properties, valid or not.
const (
	TraceIDProperty = "TraceId"
	SpanIDProperty  = "SpanId"
)

// body sets the record body: a kvlist with a "message" entry, present only when
// the trimmed message is non-empty, and a "properties" entry, always present.
// Trace and span id properties are promoted to the record's first-class fields.
func body(r *logspb.LogRecord, e *event.Event, rendered string) {
	var entries []*otlpcommon.KeyValue
	if m := strings.TrimSpace(rendered); m != "" {
		entries = append(entries, &otlpcommon.KeyValue{Key: "message", Value: stringValue(m)})
	}
	properties := []*otlpcommon.KeyValue{}
	for _, p := range e.Properties {
		switch p.Key {
		case TraceIDProperty:
			if id, ok := hexID(p.Value, 16); ok {
				r.TraceId = id
			}
		case SpanIDProperty:
			if id, ok := hexID(p.Value, 8); ok {
				r.SpanId = id
			}
		default:
			if av, ok := Value(p.Value); ok {
				properties = append(properties, &otlpcommon.KeyValue{Key: p.Key, Value: av})
			}
		}
	}
	entries = append(entries, &otlpcommon.KeyValue{Key: "properties", Value: kvlistValue(properties)})
	r.Body = kvlistValue(entries)
}

// hexID decodes the string form of v as a hex identifier of exactly n bytes.
func hexID(v any, n int) ([]byte, bool) {
	s, isString := v.(string)
	if !isString {
		s = fmt.Sprint(v)
	}
	if len(s) != 2*n {
		return nil, false
	}
	id, err := hex.DecodeString(s)
	if err != nil {
		return nil, false
	}
	return id, true
}
