// SPDX-FileCopyrightText: 2023 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package compression

import (
	"io"

	"github.com/golang/snappy"
)

// Snappy compresses each record payload as an independent snappy block.
type Snappy struct{}

// Compress returns a writer that emits one snappy block per record into the
// sink.
func (Snappy) Compress(sink io.Writer) io.Writer {
	return &blockTransform{sink: sink, transform: func(src []byte) ([]byte, error) {
		return snappy.Encode(nil, src), nil
	}}
}

// Decompress returns a writer that expands one record's snappy block into
// the sink.
func (Snappy) Decompress(sink io.Writer) io.Writer {
	return &blockTransform{sink: sink, transform: func(src []byte) ([]byte, error) {
		return snappy.Decode(nil, src)
	}}
}
