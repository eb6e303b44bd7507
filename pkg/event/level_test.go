// Copyright: This file is part of otelog, released under https://github.com/otelog/otelog/blob/main/LICENSE

package event

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLevel_String(t *testing.T) {
	for _, x := range []struct {
		level Level
		want  string
	}{
		{Verbose, "Verbose"},
		{Debug, "Debug"},
		{Information, "Information"},
		{Warning, "Warning"},
		{Error, "Error"},
		{Fatal, "Fatal"},
		{Level(42), "Level(42)"},
		{Level(-1), "Level(-1)"},
	} {
		assert.Equal(t, x.want, x.level.String())
	}
}

func TestParseLevel(t *testing.T) {
	for _, x := range []struct {
		in   string
		want Level
	}{
		{"Error", Error},
		{"error", Error},
		{"INFORMATION", Information},
		{"fatal", Fatal},
	} {
		t.Run(x.in, func(t *testing.T) {
			got, err := ParseLevel(x.in)
			require.NoError(t, err)
			assert.Equal(t, x.want, got)
		})
	}
}

func TestParseLevel_Unknown(t *testing.T) {
	_, err := ParseLevel("Critical")
	assert.EqualError(t, err, `unknown level: "Critical"`)
}

func TestLevel_UnmarshalText(t *testing.T) {
	var l Level
	require.NoError(t, l.UnmarshalText([]byte("warning")))
	assert.Equal(t, Warning, l)
	assert.Error(t, l.UnmarshalText([]byte("loud")))
	assert.Equal(t, Warning, l, "failed unmarshal must not modify the level")
}
