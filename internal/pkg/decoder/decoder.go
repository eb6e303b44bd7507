// Copyright: This file is part of otelog, released under https://github.com/otelog/otelog/blob/main/LICENSE

// Package decoder encapsulates the choice of YAML/JSON decoder and adds line numbering.
package decoder

import (
	"io"

	"k8s.io/apimachinery/pkg/util/yaml"
)

// Decoder decodes a stream of YAML docs or JSON objects.
// In case of error Line() gives the current line.
type Decoder struct {
	reader  *lineReader
	decoder *yaml.YAMLOrJSONDecoder
}

func New(r io.Reader) *Decoder {
	lr := newLineReader(r)
	return &Decoder{reader: lr, decoder: yaml.NewYAMLOrJSONDecoder(lr, 1024)}
}

// Decode the next document in the stream into v, io.EOF at end of stream.
func (d *Decoder) Decode(v any) error { return d.decoder.Decode(v) }

// Line is the number of complete lines read so far.
func (d *Decoder) Line() int { return d.reader.line }
