// SPDX-FileCopyrightText: 2023 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package ciphersuite

import (
	"crypto/aes"
	"crypto/cipher"
	"encoding/binary"

	"github.com/pion/tlsrecord/pkg/protocol"
)

const (
	gcmTagLength           = 16
	gcmNonceLength         = 12
	gcmExplicitNonceLength = 8
)

// GCM provides an AES-GCM AEAD Cipher for TLS 1.2 records.
//
// The 8 byte explicit nonce carried in each record is the sequence number,
// the implicit part is the 4 byte write IV.
//
// https://tools.ietf.org/html/rfc5288#section-3
type GCM struct {
	localGCM      cipher.AEAD
	remoteGCM     cipher.AEAD
	localWriteIV  []byte
	remoteWriteIV []byte
	version       protocol.Version
}

// NewGCM creates a TLS AES-GCM Cipher. The local half seals outgoing
// records, the remote half opens incoming ones.
func NewGCM(version protocol.Version, localKey, localWriteIV, remoteKey, remoteWriteIV []byte) (*GCM, error) {
	localBlock, err := aes.NewCipher(localKey)
	if err != nil {
		return nil, err
	}
	localGCM, err := cipher.NewGCM(localBlock)
	if err != nil {
		return nil, err
	}

	remoteBlock, err := aes.NewCipher(remoteKey)
	if err != nil {
		return nil, err
	}
	remoteGCM, err := cipher.NewGCM(remoteBlock)
	if err != nil {
		return nil, err
	}

	return &GCM{
		localGCM:      localGCM,
		remoteGCM:     remoteGCM,
		localWriteIV:  localWriteIV,
		remoteWriteIV: remoteWriteIV,
		version:       version,
	}, nil
}

// EncodePlaintext encrypts a record payload with the current write sequence
// number.
func (g *GCM) EncodePlaintext(seq uint64, contentType protocol.ContentType, plaintext []byte) ([]byte, error) {
	nonce := make([]byte, gcmNonceLength)
	copy(nonce, g.localWriteIV[:4])
	binary.BigEndian.PutUint64(nonce[4:], seq)

	additionalData := generateAEADAdditionalData(seq, contentType, g.version, len(plaintext))

	out := make([]byte, gcmExplicitNonceLength, gcmExplicitNonceLength+len(plaintext)+gcmTagLength)
	copy(out, nonce[4:])

	return g.localGCM.Seal(out, nonce, plaintext, additionalData), nil
}

// DecodeCiphertext decrypts a record payload with the current read sequence
// number.
func (g *GCM) DecodeCiphertext(seq uint64, contentType protocol.ContentType, ciphertext []byte) ([]byte, error) {
	if len(ciphertext) < gcmExplicitNonceLength+gcmTagLength {
		return nil, errNotEnoughRoomForNonce
	}

	nonce := make([]byte, gcmNonceLength)
	copy(nonce, g.remoteWriteIV[:4])
	copy(nonce[4:], ciphertext[:gcmExplicitNonceLength])
	in := ciphertext[gcmExplicitNonceLength:]

	additionalData := generateAEADAdditionalData(seq, contentType, g.version, len(in)-gcmTagLength)

	out, err := g.remoteGCM.Open(nil, nonce, in, additionalData)
	if err != nil {
		return nil, ErrDecrypt
	}

	return out, nil
}
