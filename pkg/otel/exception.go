// Copyright: This file is part of otelog, released under https://github.com/otelog/otelog/blob/main/LICENSE

package otel

import (
	otlpcommon "go.opentelemetry.io/proto/otlp/common/v1"
	logspb "go.opentelemetry.io/proto/otlp/logs/v1"

	"github.com/otelog/otelog/pkg/event"
)

// OTEL semantic convention attribute names for exception diagnostics.
const (
	AttrExceptionType       = "exception.type"
	AttrExceptionMessage    = "exception.message"
	AttrExceptionStacktrace = "exception.stacktrace"
)

// exception appends exception diagnostics to the record attributes,
// no-op when the event carries none. Existing attributes are never replaced.
func exception(r *logspb.LogRecord, e *event.Event) {
	x := e.Exception
	if x == nil {
		return
	}
	attr := func(key, value string) {
		r.Attributes = append(r.Attributes, &otlpcommon.KeyValue{Key: key, Value: stringValue(value)})
	}
	attr(AttrExceptionType, x.Type)
	if x.Message != "" {
		attr(AttrExceptionMessage, x.Message)
	}
	if x.Stacktrace != "" {
		attr(AttrExceptionStacktrace, x.Stacktrace)
	}
}
