// SPDX-FileCopyrightText: 2023 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

// Package recordlayer implements the TLS Record Layer framing https://tools.ietf.org/html/rfc5246#section-6
package recordlayer

import "errors"

var (
	// ErrBufferTooSmall is returned when the provided buffer cannot hold a
	// complete record header.
	ErrBufferTooSmall = errors.New("buffer is too small")
	// ErrInvalidContentType is returned for content type values outside the
	// record layer enumeration.
	ErrInvalidContentType = errors.New("invalid content type")
	// ErrUnsupportedProtocolVersion is returned for version bytes this
	// implementation cannot carry records for.
	ErrUnsupportedProtocolVersion = errors.New("unsupported protocol version")
	// ErrRecordOverflow is returned when a payload does not fit the 16 bit
	// record length field.
	ErrRecordOverflow = errors.New("record payload exceeds maximum length")
)
