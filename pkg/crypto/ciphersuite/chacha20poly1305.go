// SPDX-FileCopyrightText: 2023 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package ciphersuite

import (
	"crypto/cipher"

	"github.com/pion/tlsrecord/pkg/protocol"
	"golang.org/x/crypto/chacha20poly1305"
)

const (
	chachaTagLength   = 16
	chachaNonceLength = 12
)

// ChaCha20Poly1305 provides a ChaCha20-Poly1305 AEAD Cipher for TLS 1.2
// records.
//
// Per RFC 7905 the nonce is formed by XOR-ing the write IV with the padded
// 64 bit sequence number; no explicit nonce is carried in the record.
type ChaCha20Poly1305 struct {
	localCipher   cipher.AEAD
	remoteCipher  cipher.AEAD
	localWriteIV  []byte
	remoteWriteIV []byte
	version       protocol.Version
}

// NewChaCha20Poly1305 creates a TLS ChaCha20-Poly1305 Cipher. The local half
// seals outgoing records, the remote half opens incoming ones.
func NewChaCha20Poly1305(version protocol.Version, localKey, localWriteIV, remoteKey, remoteWriteIV []byte) (*ChaCha20Poly1305, error) {
	localChaCha20Poly1305, err := chacha20poly1305.New(localKey)
	if err != nil {
		return nil, err
	}

	remoteChaCha20Poly1305, err := chacha20poly1305.New(remoteKey)
	if err != nil {
		return nil, err
	}

	return &ChaCha20Poly1305{
		localCipher:   localChaCha20Poly1305,
		remoteCipher:  remoteChaCha20Poly1305,
		localWriteIV:  localWriteIV,
		remoteWriteIV: remoteWriteIV,
		version:       version,
	}, nil
}

func chachaNonce(writeIV []byte, seq uint64) [chachaNonceLength]byte {
	var nonce [chachaNonceLength]byte
	copy(nonce[:], writeIV)

	// XOR the last 8 bytes of the nonce with the sequence number
	for i := 0; i < 8; i++ {
		nonce[4+i] ^= byte(seq >> (56 - uint(i)*8)) //nolint:gosec
	}

	return nonce
}

// EncodePlaintext encrypts a record payload with the current write sequence
// number.
func (c *ChaCha20Poly1305) EncodePlaintext(seq uint64, contentType protocol.ContentType, plaintext []byte) ([]byte, error) {
	nonce := chachaNonce(c.localWriteIV, seq)
	additionalData := generateAEADAdditionalData(seq, contentType, c.version, len(plaintext))

	return c.localCipher.Seal(nil, nonce[:], plaintext, additionalData), nil
}

// DecodeCiphertext decrypts a record payload with the current read sequence
// number.
func (c *ChaCha20Poly1305) DecodeCiphertext(seq uint64, contentType protocol.ContentType, ciphertext []byte) ([]byte, error) {
	if len(ciphertext) < chachaTagLength {
		return nil, ErrDecrypt
	}

	nonce := chachaNonce(c.remoteWriteIV, seq)
	additionalData := generateAEADAdditionalData(seq, contentType, c.version, len(ciphertext)-chachaTagLength)

	out, err := c.remoteCipher.Open(nil, nonce[:], ciphertext, additionalData)
	if err != nil {
		return nil, ErrDecrypt
	}

	return out, nil
}
