// Copyright: This file is part of otelog, released under https://github.com/otelog/otelog/blob/main/LICENSE

package otel

import (
	"time"

	logspb "go.opentelemetry.io/proto/otlp/logs/v1"

	"github.com/otelog/otelog/pkg/event"
)

// now provides observed timestamps, replaced in tests.
var now = time.Now

// Record builds one OTLP log record from one event.
// rendered optionally overrides the event's message text, empty means use e.Message.
// The timestamp, severity, body and exception projections run in that order,
// each only ever adds fields to the record. The only possible error is a
// severity level outside the known scale.
func Record(e *event.Event, rendered string) (*logspb.LogRecord, error) {
	if rendered == "" {
		rendered = e.Message
	}
	r := &logspb.LogRecord{}
	timestamps(r, e)
	if err := severity(r, e); err != nil {
		return nil, err
	}
	body(r, e, rendered)
	exception(r, e)
	return r, nil
}

// timestamps sets event time from the event and observed time from the clock.
// Both are nanoseconds since the Unix epoch.
// A zero event time has no Unix representation and is left unset.
func timestamps(r *logspb.LogRecord, e *event.Event) {
	if !e.Timestamp.IsZero() {
		r.TimeUnixNano = uint64(e.Timestamp.UnixNano())
	}
	r.ObservedTimeUnixNano = uint64(now().UnixNano())
}
