// SPDX-FileCopyrightText: 2023 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package compression

import (
	"bytes"
	"io"

	"github.com/klauspost/compress/flate"
)

// Deflate is the DEFLATE compression method, the one compression method TLS
// standardized besides null.
//
// https://tools.ietf.org/html/rfc3749#section-2.1
type Deflate struct {
	// Level is the flate compression level. Zero means flate.DefaultCompression.
	Level int
}

func (d Deflate) level() int {
	if d.Level == 0 {
		return flate.DefaultCompression
	}

	return d.Level
}

// Compress returns a writer that emits one DEFLATE stream per record into
// the sink.
func (d Deflate) Compress(sink io.Writer) io.Writer {
	return &blockTransform{sink: sink, transform: func(src []byte) ([]byte, error) {
		var out bytes.Buffer
		fw, err := flate.NewWriter(&out, d.level())
		if err != nil {
			return nil, err
		}
		if _, err := fw.Write(src); err != nil {
			return nil, err
		}
		if err := fw.Close(); err != nil {
			return nil, err
		}

		return out.Bytes(), nil
	}}
}

// Decompress returns a writer that inflates one record's DEFLATE stream into
// the sink.
func (d Deflate) Decompress(sink io.Writer) io.Writer {
	return &blockTransform{sink: sink, transform: func(src []byte) ([]byte, error) {
		fr := flate.NewReader(bytes.NewReader(src))
		out, err := io.ReadAll(fr)
		if err != nil {
			return nil, err
		}
		if err := fr.Close(); err != nil {
			return nil, err
		}

		return out, nil
	}}
}
