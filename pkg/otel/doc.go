// Copyright: This file is part of otelog, released under https://github.com/otelog/otelog/blob/main/LICENSE

// Package otel translates structured log events into the OTEL logs data model.
//
// Each call to [Record] builds one [go.opentelemetry.io/proto/otlp/logs/v1.LogRecord]
// from one [event.Event]; [Resource] projects process resource metadata into OTLP
// attributes. Translation is a pure projection: values with no OTLP representation
// are dropped, never substituted, and no state is kept between calls, so events may
// be translated concurrently without synchronization.
package otel
