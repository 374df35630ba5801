// SPDX-FileCopyrightText: 2023 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package compression

import (
	"bytes"
	"io"

	"github.com/pierrec/lz4/v4"
)

// LZ4 compresses each record payload as an independent lz4 frame.
type LZ4 struct{}

// Compress returns a writer that emits one lz4 frame per record into the
// sink.
func (LZ4) Compress(sink io.Writer) io.Writer {
	return &blockTransform{sink: sink, transform: func(src []byte) ([]byte, error) {
		var out bytes.Buffer
		zw := lz4.NewWriter(&out)
		if _, err := zw.Write(src); err != nil {
			return nil, err
		}
		if err := zw.Close(); err != nil {
			return nil, err
		}

		return out.Bytes(), nil
	}}
}

// Decompress returns a writer that expands one record's lz4 frame into the
// sink.
func (LZ4) Decompress(sink io.Writer) io.Writer {
	return &blockTransform{sink: sink, transform: func(src []byte) ([]byte, error) {
		return io.ReadAll(lz4.NewReader(bytes.NewReader(src)))
	}}
}
