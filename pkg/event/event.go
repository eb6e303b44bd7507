// Copyright: This file is part of otelog, released under https://github.com/otelog/otelog/blob/main/LICENSE

// Package event defines the structured log event model consumed by the translation layer.
package event

import "time"

// Event is one structured log event, fully formed by the logging front-end.
// Translation reads it and never modifies it.
type Event struct {
	// Timestamp is when the event occurred, timezone aware.
	Timestamp time.Time `json:"timestamp"`
	// Level is the severity of the event.
	Level Level `json:"level"`
	// Message is the rendered message text. May be empty or whitespace.
	Message string `json:"message,omitempty"`
	// Properties are named values attached to the event, keys unique.
	Properties []Property `json:"properties,omitempty"`
	// Exception is an optional error attached to the event.
	Exception *Exception `json:"exception,omitempty"`
}

// Property is a single named value on an event.
type Property struct {
	Key   string `json:"key"`
	Value any    `json:"value"`
}
