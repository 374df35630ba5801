// SPDX-FileCopyrightText: 2023 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package compression

import (
	"bytes"
	"io"

	"github.com/andybalholm/brotli"
)

// Brotli compresses each record payload as an independent brotli stream.
type Brotli struct {
	// Quality is the brotli quality level. Zero means brotli.DefaultCompression.
	Quality int
}

func (b Brotli) quality() int {
	if b.Quality == 0 {
		return brotli.DefaultCompression
	}

	return b.Quality
}

// Compress returns a writer that emits one brotli stream per record into the
// sink.
func (b Brotli) Compress(sink io.Writer) io.Writer {
	return &blockTransform{sink: sink, transform: func(src []byte) ([]byte, error) {
		var out bytes.Buffer
		bw := brotli.NewWriterLevel(&out, b.quality())
		if _, err := bw.Write(src); err != nil {
			return nil, err
		}
		if err := bw.Close(); err != nil {
			return nil, err
		}

		return out.Bytes(), nil
	}}
}

// Decompress returns a writer that expands one record's brotli stream into
// the sink.
func (b Brotli) Decompress(sink io.Writer) io.Writer {
	return &blockTransform{sink: sink, transform: func(src []byte) ([]byte, error) {
		return io.ReadAll(brotli.NewReader(bytes.NewReader(src)))
	}}
}
