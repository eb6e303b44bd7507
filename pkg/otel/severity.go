// Copyright: This file is part of otelog, released under https://github.com/otelog/otelog/blob/main/LICENSE

package otel

import (
	"fmt"

	logspb "go.opentelemetry.io/proto/otlp/logs/v1"

	"github.com/otelog/otelog/pkg/event"
)

// severityNumbers maps event levels onto the OTLP 1-24 severity scale,
// one band per level. Immutable after init.
var severityNumbers = map[event.Level]logspb.SeverityNumber{
	event.Verbose:     logspb.SeverityNumber_SEVERITY_NUMBER_TRACE,
	event.Debug:       logspb.SeverityNumber_SEVERITY_NUMBER_DEBUG,
	event.Information: logspb.SeverityNumber_SEVERITY_NUMBER_INFO,
	event.Warning:     logspb.SeverityNumber_SEVERITY_NUMBER_WARN,
	event.Error:       logspb.SeverityNumber_SEVERITY_NUMBER_ERROR,
	event.Fatal:       logspb.SeverityNumber_SEVERITY_NUMBER_FATAL,
}

// severity sets the severity text and number.
// A level outside the mapping is an error, never a silent default.
func severity(r *logspb.LogRecord, e *event.Event) error {
	n, ok := severityNumbers[e.Level]
	if !ok {
		return fmt.Errorf("no OTLP severity for level %v", e.Level)
	}
	r.SeverityText = e.Level.String()
	r.SeverityNumber = n
	return nil
}
