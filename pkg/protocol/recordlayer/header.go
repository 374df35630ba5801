// SPDX-FileCopyrightText: 2023 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package recordlayer

import (
	"github.com/pion/tlsrecord/pkg/protocol"
	"golang.org/x/crypto/cryptobyte"
)

const (
	// HeaderSize is the fixed size of a TLS record header.
	HeaderSize = 5
	// MaxPlaintextLength is the maximum record payload before compression
	// and encryption.
	//
	// https://tools.ietf.org/html/rfc5246#section-6.2.1
	MaxPlaintextLength = 1 << 14
	// MaxCiphertextLength is the maximum payload the 16 bit record length
	// field can declare.
	MaxCiphertextLength = 1<<16 - 1
)

// Header is the TLS record header
//
//	| type: u8 | version: u8 u8 | length: u16 |
//
// https://tools.ietf.org/html/rfc5246#section-6.2.1
type Header struct {
	ContentType protocol.ContentType
	Version     protocol.Version
	ContentLen  uint16
}

// Marshal encodes a TLS record header to binary.
func (h *Header) Marshal() ([]byte, error) {
	if !protocol.IsValidContentType(h.ContentType) {
		return nil, ErrInvalidContentType
	}

	var out cryptobyte.Builder
	out.AddUint8(uint8(h.ContentType))
	out.AddUint8(h.Version.Major)
	out.AddUint8(h.Version.Minor)
	out.AddUint16(h.ContentLen)

	return out.Bytes()
}

// Unmarshal populates a TLS record header from binary.
func (h *Header) Unmarshal(data []byte) error {
	str := cryptobyte.String(data)

	var contentType uint8
	if !str.ReadUint8(&contentType) ||
		!str.ReadUint8(&h.Version.Major) ||
		!str.ReadUint8(&h.Version.Minor) ||
		!str.ReadUint16(&h.ContentLen) {
		return ErrBufferTooSmall
	}

	h.ContentType = protocol.ContentType(contentType)
	if !protocol.IsValidContentType(h.ContentType) {
		return ErrInvalidContentType
	}
	if !protocol.IsValidVersion(h.Version) {
		return ErrUnsupportedProtocolVersion
	}

	return nil
}
