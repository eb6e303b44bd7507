// Copyright: This file is part of otelog, released under https://github.com/otelog/otelog/blob/main/LICENSE

package main

import (
	"fmt"
	"io"

	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/proto"
	"sigs.k8s.io/yaml"

	"github.com/otelog/otelog/internal/pkg/must"
)

// printer prints one protobuf message in the chosen output format.
type printer func(m proto.Message)

func newPrinter(w io.Writer, format string) (printer, error) {
	switch format {
	case "json":
		return func(m proto.Message) {
			fmt.Fprintf(w, "%s\n", must.Must1(protojson.Marshal(m)))
		}, nil
	case "json-pretty":
		opts := protojson.MarshalOptions{Multiline: true, Indent: "  "}
		return func(m proto.Message) {
			fmt.Fprintf(w, "%s\n", must.Must1(opts.Marshal(m)))
		}, nil
	case "yaml":
		return func(m proto.Message) {
			j := must.Must1(protojson.Marshal(m))
			fmt.Fprintf(w, "---\n%s", must.Must1(yaml.JSONToYAML(j)))
		}, nil
	default:
		return nil, fmt.Errorf("invalid output format: %v", format)
	}
}
