// Copyright: This file is part of otelog, released under https://github.com/otelog/otelog/blob/main/LICENSE

package otel

import (
	otlpcommon "go.opentelemetry.io/proto/otlp/common/v1"
)

// Constants for commonly used OTEL resource attribute names.
// Attribute names are an open set, these are the ones otelog refers to by name.
const (
	AttrServiceName    = "service.name"
	AttrServiceVersion = "service.version"
)

// Resource projects process resource metadata into OTLP attributes,
// one KeyValue per entry whose value has an OTLP representation.
// Unrepresentable values are skipped, a nil map yields an empty list.
// Order follows map iteration, no further guarantee.
func Resource(attrs map[string]any) []*otlpcommon.KeyValue {
	kvs := []*otlpcommon.KeyValue{}
	for k, v := range attrs {
		if av, ok := Value(v); ok {
			kvs = append(kvs, &otlpcommon.KeyValue{Key: k, Value: av})
		}
	}
	return kvs
}
