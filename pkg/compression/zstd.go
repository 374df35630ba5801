// SPDX-FileCopyrightText: 2023 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package compression

import (
	"io"

	"github.com/klauspost/compress/zstd"
)

// Zstd compresses each record payload as an independent zstd frame.
type Zstd struct {
	encoder *zstd.Encoder
	decoder *zstd.Decoder
}

// NewZstd creates a Zstd Spec. The underlying encoder and decoder are safe
// to share between the read and write directions.
func NewZstd() (*Zstd, error) {
	encoder, err := zstd.NewWriter(nil)
	if err != nil {
		return nil, err
	}

	decoder, err := zstd.NewReader(nil)
	if err != nil {
		return nil, err
	}

	return &Zstd{encoder: encoder, decoder: decoder}, nil
}

// Compress returns a writer that emits one zstd frame per record into the
// sink.
func (z *Zstd) Compress(sink io.Writer) io.Writer {
	return &blockTransform{sink: sink, transform: func(src []byte) ([]byte, error) {
		return z.encoder.EncodeAll(src, nil), nil
	}}
}

// Decompress returns a writer that expands one record's zstd frame into the
// sink.
func (z *Zstd) Decompress(sink io.Writer) io.Writer {
	return &blockTransform{sink: sink, transform: func(src []byte) ([]byte, error) {
		return z.decoder.DecodeAll(src, nil)
	}}
}
