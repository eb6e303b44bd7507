// Copyright: This file is part of otelog, released under https://github.com/otelog/otelog/blob/main/LICENSE

package event

import (
	"fmt"
	"strings"
)

// Level is the severity of an event, ordered least to most severe.
type Level int

const (
	Verbose Level = iota
	Debug
	Information
	Warning
	Error
	Fatal
)

var levelNames = [...]string{"Verbose", "Debug", "Information", "Warning", "Error", "Fatal"}

// String returns the canonical display name of the level.
func (l Level) String() string {
	if l < Verbose || l > Fatal {
		return fmt.Sprintf("Level(%d)", int(l))
	}
	return levelNames[l]
}

// ParseLevel returns the Level with the given canonical name, case insensitive.
func ParseLevel(s string) (Level, error) {
	for i, name := range levelNames {
		if strings.EqualFold(s, name) {
			return Level(i), nil
		}
	}
	return 0, fmt.Errorf("unknown level: %q", s)
}

// MarshalText implements [encoding.TextMarshaler] using the canonical name.
func (l Level) MarshalText() ([]byte, error) {
	if l < Verbose || l > Fatal {
		return nil, fmt.Errorf("unknown level: %v", int(l))
	}
	return []byte(levelNames[l]), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler], accepts canonical names.
func (l *Level) UnmarshalText(text []byte) error {
	parsed, err := ParseLevel(string(text))
	if err != nil {
		return err
	}
	*l = parsed
	return nil
}
