// Copyright: This file is part of otelog, released under https://github.com/otelog/otelog/blob/main/LICENSE

package decoder

import (
	"bufio"
	"bytes"
	"io"
)

// lineReader is a bufio.Reader that counts lines as they are read.
// Read returns at most one line per call so the count stays accurate.
type lineReader struct {
	*bufio.Reader
	line int
}

func newLineReader(r io.Reader) *lineReader {
	return &lineReader{Reader: bufio.NewReader(r)}
}

// Read returns at most one line of data, and keeps count of lines returned.
// Only recognizes "\n" as a line separator.
func (r *lineReader) Read(data []byte) (int, error) {
	peek, err := r.Peek(len(data))
	if len(peek) == 0 {
		return 0, err
	}
	i := bytes.IndexByte(peek, '\n')
	if i < 0 { // No newline in view
		return r.Reader.Read(data[:len(peek)])
	}
	r.line++
	return r.Reader.Read(data[:i+1])
}
