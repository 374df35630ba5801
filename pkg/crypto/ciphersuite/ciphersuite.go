// SPDX-FileCopyrightText: 2023 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

// Package ciphersuite provides the encryption operations needed for a TLS CipherSpec
package ciphersuite

import (
	"encoding/binary"
	"errors"

	"github.com/pion/tlsrecord/pkg/protocol"
)

var (
	// ErrDecrypt is returned for every decode failure. Authentication and
	// padding failures are deliberately indistinguishable.
	//nolint:err113
	ErrDecrypt = &protocol.FatalError{Err: errors.New("failed to decrypt record")}

	//nolint:err113
	errNotEnoughRoomForNonce = &protocol.FatalError{Err: errors.New("record not long enough to contain nonce")}
)

// Cipher encrypts plaintext into ciphertext and back, keyed by the record
// sequence number and content type. One Cipher is active per direction and
// handles are replaced wholesale on rekey.
type Cipher interface {
	EncodePlaintext(seq uint64, contentType protocol.ContentType, plaintext []byte) ([]byte, error)
	DecodeCiphertext(seq uint64, contentType protocol.ContentType, ciphertext []byte) ([]byte, error)
}

// NullCipher is the identity Cipher every connection starts with. It is a
// concrete spec rather than a nil handle so the record pipeline stays
// branch-free.
type NullCipher struct{}

// EncodePlaintext returns the plaintext untouched.
func (NullCipher) EncodePlaintext(_ uint64, _ protocol.ContentType, plaintext []byte) ([]byte, error) {
	return plaintext, nil
}

// DecodeCiphertext returns the ciphertext untouched.
func (NullCipher) DecodeCiphertext(_ uint64, _ protocol.ContentType, ciphertext []byte) ([]byte, error) {
	return ciphertext, nil
}

// generateAEADAdditionalData builds the TLS 1.2 AEAD additional data
//
//	seq_num(8) || type(1) || version(2) || length(2)
//
// https://tools.ietf.org/html/rfc5246#section-6.2.3.3
func generateAEADAdditionalData(seq uint64, contentType protocol.ContentType, version protocol.Version, payloadLen int) []byte {
	var additionalData [13]byte

	binary.BigEndian.PutUint64(additionalData[:], seq)
	additionalData[8] = byte(contentType)
	additionalData[9] = version.Major
	additionalData[10] = version.Minor
	binary.BigEndian.PutUint16(additionalData[len(additionalData)-2:], uint16(payloadLen)) //nolint:gosec

	return additionalData[:]
}
