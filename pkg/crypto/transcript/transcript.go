// SPDX-FileCopyrightText: 2023 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

// Package transcript provides the running digest accumulated over handshake
// plaintext, used later to authenticate the handshake as a whole.
package transcript

import (
	"crypto/md5"  //nolint:gosec // required by the SSL 3.0/TLS 1.0 transcript
	"crypto/sha1" //nolint:gosec // required by the SSL 3.0/TLS 1.0 transcript
	"encoding"
	"errors"
	"hash"
)

var errNotCloneable = errors.New("digest state is not cloneable")

// Hash is a running digest with a non-destructive snapshot. Clone copies the
// digest state so a query can be finalized without disturbing the running
// transcript.
type Hash interface {
	Update(p []byte)
	Clone() (Hash, error)
	Sum() []byte
	Size() int
}

func cloneState(src, dst hash.Hash) error {
	marshaler, ok := src.(encoding.BinaryMarshaler)
	if !ok {
		return errNotCloneable
	}
	unmarshaler, ok := dst.(encoding.BinaryUnmarshaler)
	if !ok {
		return errNotCloneable
	}

	state, err := marshaler.MarshalBinary()
	if err != nil {
		return err
	}

	return unmarshaler.UnmarshalBinary(state)
}

// Single is a Hash backed by one digest algorithm.
type Single struct {
	newHash func() hash.Hash
	digest  hash.Hash
}

// New creates a Single transcript over the given digest constructor,
// e.g. sha256.New.
func New(newHash func() hash.Hash) *Single {
	return &Single{newHash: newHash, digest: newHash()}
}

// Update appends p to the running digest.
func (s *Single) Update(p []byte) {
	// hash.Hash.Write never returns an error
	_, _ = s.digest.Write(p)
}

// Clone returns an independent copy of the running digest state.
func (s *Single) Clone() (Hash, error) {
	clone := &Single{newHash: s.newHash, digest: s.newHash()}
	if err := cloneState(s.digest, clone.digest); err != nil {
		return nil, err
	}

	return clone, nil
}

// Sum finalizes a copy of the digest. The running state is untouched.
func (s *Single) Sum() []byte {
	return s.digest.Sum(nil)
}

// Size returns the digest output length.
func (s *Single) Size() int {
	return s.digest.Size()
}

// Combined is the MD5+SHA-1 digest pair used by the SSL 3.0 and TLS 1.0/1.1
// transcript. Its output is the MD5 sum followed by the SHA-1 sum.
type Combined struct {
	md5Digest  hash.Hash
	sha1Digest hash.Hash
}

// NewCombined creates the MD5+SHA-1 transcript digest.
func NewCombined() *Combined {
	return &Combined{
		md5Digest:  md5.New(),  //nolint:gosec
		sha1Digest: sha1.New(), //nolint:gosec
	}
}

// Update appends p to both running digests.
func (c *Combined) Update(p []byte) {
	_, _ = c.md5Digest.Write(p)
	_, _ = c.sha1Digest.Write(p)
}

// Clone returns an independent copy of both digest states.
func (c *Combined) Clone() (Hash, error) {
	clone := NewCombined()
	if err := cloneState(c.md5Digest, clone.md5Digest); err != nil {
		return nil, err
	}
	if err := cloneState(c.sha1Digest, clone.sha1Digest); err != nil {
		return nil, err
	}

	return clone, nil
}

// Sum finalizes copies of both digests. The running state is untouched.
func (c *Combined) Sum() []byte {
	out := make([]byte, 0, c.Size())
	out = c.md5Digest.Sum(out)

	return c.sha1Digest.Sum(out)
}

// Size returns the combined digest output length.
func (c *Combined) Size() int {
	return c.md5Digest.Size() + c.sha1Digest.Size()
}
