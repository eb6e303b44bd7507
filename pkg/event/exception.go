// Copyright: This file is part of otelog, released under https://github.com/otelog/otelog/blob/main/LICENSE

package event

import "fmt"

// Exception describes an error attached to an event: the error's type identity,
// its message, and a full diagnostic trace when one is available.
type Exception struct {
	Type       string `json:"type"`
	Message    string `json:"message,omitempty"`
	Stacktrace string `json:"stacktrace,omitempty"`
}

// ExceptionFrom builds an Exception from an error, nil for a nil error.
// Stacktrace is the "%+v" rendering when it adds information beyond the message,
// as for errors created by [github.com/pkg/errors].
func ExceptionFrom(err error) *Exception {
	if err == nil {
		return nil
	}
	x := &Exception{Type: fmt.Sprintf("%T", err), Message: err.Error()}
	if s := fmt.Sprintf("%+v", err); s != x.Message {
		x.Stacktrace = s
	}
	return x
}
