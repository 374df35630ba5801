// SPDX-FileCopyrightText: 2023 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

// Package compression provides the pluggable compression transforms applied
// to record payloads before encryption and after decryption.
package compression

import (
	"bytes"
	"io"
)

// Spec is the active compression transform for one direction. Compress and
// Decompress wrap a sink; returning the sink itself signals that no
// transformation is performed and the payload passes through untouched.
// Non-identity writers implement Flusher, which completes the transform of
// everything written so far into the sink.
type Spec interface {
	Compress(sink io.Writer) io.Writer
	Decompress(sink io.Writer) io.Writer
}

// Flusher completes a pending transform into the sink.
type Flusher interface {
	Flush() error
}

// Null is the identity Spec every connection starts with.
type Null struct{}

// Compress returns the sink untouched.
func (Null) Compress(sink io.Writer) io.Writer { return sink }

// Decompress returns the sink untouched.
func (Null) Decompress(sink io.Writer) io.Writer { return sink }

// blockTransform accumulates one record payload and applies a whole-block
// transform into the sink on Flush. Each record is an independent block, so
// a Spec handle can be shared by both directions after a rekey.
type blockTransform struct {
	sink      io.Writer
	buf       bytes.Buffer
	transform func(src []byte) ([]byte, error)
}

func (t *blockTransform) Write(p []byte) (int, error) {
	return t.buf.Write(p)
}

func (t *blockTransform) Flush() error {
	out, err := t.transform(t.buf.Bytes())
	t.buf.Reset()
	if err != nil {
		return err
	}

	_, err = t.sink.Write(out)

	return err
}
