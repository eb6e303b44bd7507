// Copyright: This file is part of otelog, released under https://github.com/otelog/otelog/blob/main/LICENSE

package otel

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResource(t *testing.T) {
	got := Resource(map[string]any{
		AttrServiceName: "auth",
		"process.pid":   42,
		"broken":        struct{}{}, // unrepresentable, skipped
	})
	sort.Slice(got, func(i, j int) bool { return got[i].Key < got[j].Key })
	want := []string{"process.pid", AttrServiceName}
	require.Len(t, got, len(want))
	for i, k := range want {
		assert.Equal(t, k, got[i].Key)
	}
	assert.Equal(t, "auth", got[1].Value.GetStringValue())
	assert.Equal(t, int64(42), got[0].Value.GetIntValue())
}

func TestResource_Nil(t *testing.T) {
	assert.Empty(t, Resource(nil))
}
