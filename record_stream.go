// SPDX-FileCopyrightText: 2023 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

// Package tlsrecord implements the TLS/SSL record layer: the framing,
// sequencing, compression, and encryption pipeline that sits between a raw
// byte transport and the handshake/application logic above it.
package tlsrecord

import (
	"bytes"
	"io"

	"github.com/pion/logging"
	"github.com/pion/tlsrecord/pkg/compression"
	"github.com/pion/tlsrecord/pkg/crypto/ciphersuite"
	"github.com/pion/tlsrecord/pkg/crypto/transcript"
	"github.com/pion/tlsrecord/pkg/protocol"
	"github.com/pion/tlsrecord/pkg/protocol/alert"
	"github.com/pion/tlsrecord/pkg/protocol/recordlayer"
)

type flusher interface {
	Flush() error
}

// halfState is the per-direction record state. The sequence number and the
// active specs must only be touched by the single caller that owns this
// direction.
type halfState struct {
	seq     uint64
	cipher  ciphersuite.Cipher
	comp    compression.Spec
	scratch bytes.Buffer // used only by non-identity compression transforms
}

// nextSeq returns the sequence number for the record being processed and
// advances the counter. The counter always advances, whether or not the
// record turns out to be usable.
func (h *halfState) nextSeq() uint64 {
	seq := h.seq
	h.seq++

	return seq
}

// drainScratch copies out the scratch contents and resets the buffer so it
// is never aliased across records.
func (h *halfState) drainScratch() []byte {
	out := append([]byte(nil), h.scratch.Bytes()...)
	h.scratch.Reset()

	return out
}

// RecordStream frames, sequences, compresses and encrypts records over an
// ordered byte transport. The transport is assumed reliable and ordered,
// such as a TCP stream.
//
// RecordStream performs no internal locking: the read pipeline and the write
// pipeline may be driven from two different goroutines, but calls into the
// same direction must be serialized by the caller.
type RecordStream struct {
	reader io.Reader
	writer io.Writer

	read  halfState
	write halfState

	hash transcript.Hash

	initialVersion   protocol.Version
	peerVersion      protocol.Version
	peerVersionKnown bool

	log logging.LeveledLogger
}

// NewRecordStream creates a RecordStream over the given transport halves.
// Both directions start with the identity cipher and compression specs and
// sequence number zero.
func NewRecordStream(reader io.Reader, writer io.Writer, config *Config) *RecordStream {
	nullCompression := compression.Null{}
	nullCipher := ciphersuite.NullCipher{}

	return &RecordStream{
		reader:         reader,
		writer:         writer,
		read:           halfState{cipher: nullCipher, comp: nullCompression},
		write:          halfState{cipher: nullCipher, comp: nullCompression},
		hash:           config.newTranscript(),
		initialVersion: config.initialVersion(),
		log:            config.logger(),
	}
}

// DecideWriteSpec installs the negotiated compression and cipher as the
// write spec and resets the write sequence number to zero. It is the commit
// point after a ChangeCipherSpec record has been sent. The handshake layer
// must invoke it exactly once per negotiated epoch, before
// ActivateReadSpec; re-invoking it overwrites the active spec and resets
// the counter again.
func (r *RecordStream) DecideWriteSpec(comp compression.Spec, ciph ciphersuite.Cipher) {
	r.write.comp = comp
	r.write.cipher = ciph
	r.write.seq = 0
	r.log.Tracef("write spec decided, write sequence reset")
}

// ActivateReadSpec copies the current write compression and cipher into the
// read slot and resets the read sequence number to zero. A negotiated suite
// is symmetric: once the peer confirms it switched, the read side adopts
// the spec the write side already committed to.
func (r *RecordStream) ActivateReadSpec() {
	r.read.comp = r.write.comp
	r.read.cipher = r.write.cipher
	r.read.seq = 0
	r.log.Tracef("peer spec received, read sequence reset")
}

// DiscoveredPeerVersion returns the protocol version pinned from the first
// record ever read, if one has been read yet.
func (r *RecordStream) DiscoveredPeerVersion() (protocol.Version, bool) {
	return r.peerVersion, r.peerVersionKnown
}

func (r *RecordStream) version() protocol.Version {
	if r.peerVersionKnown {
		return r.peerVersion
	}

	return r.initialVersion
}

// WriteMessage sends msg as exactly one record of the given content type:
// handshake bytes are folded into the transcript, then the payload is
// compressed, encrypted with the current write sequence number, framed and
// written to the transport. No fragmentation or coalescing is performed.
//
// A transport failure leaves the write sequence number already advanced, so
// the caller must treat it as connection-fatal; there is no safe resend
// without a rekey.
func (r *RecordStream) WriteMessage(contentType protocol.ContentType, msg []byte) error {
	if contentType == protocol.ContentTypeHandshake {
		// The transcript covers plaintext handshake bytes only, never
		// compressed or encrypted bytes.
		r.hash.Update(msg)
	}

	payload := msg
	sink := io.Writer(&r.write.scratch)
	if cOut := r.write.comp.Compress(sink); cOut != sink {
		if err := transformInto(cOut, msg); err != nil {
			r.write.scratch.Reset()

			return fatalAlert(alert.InternalError, err)
		}
		payload = r.write.drainScratch()
	}

	ciphertext, err := r.write.cipher.EncodePlaintext(r.write.nextSeq(), contentType, payload)
	if err != nil {
		return fatalAlert(alert.InternalError, err)
	}
	if len(ciphertext) > recordlayer.MaxCiphertextLength {
		return fatalAlert(alert.RecordOverflow, errRecordOverflow)
	}

	header := &recordlayer.Header{
		ContentType: contentType,
		Version:     r.version(),
		ContentLen:  uint16(len(ciphertext)), //nolint:gosec
	}
	headerRaw, err := header.Marshal()
	if err != nil {
		return fatalAlert(alert.InternalError, err)
	}

	frame := make([]byte, 0, len(headerRaw)+len(ciphertext))
	frame = append(frame, headerRaw...)
	frame = append(frame, ciphertext...)

	if _, err := r.writer.Write(frame); err != nil {
		return err
	}

	return r.Flush()
}

// ReadRecord reads exactly one record from the transport, decrypts it with
// the current read sequence number and decompresses it, returning the
// content type and plaintext. The transcript is not updated on the read
// path; absorbing inbound handshake bytes is the consumer's responsibility.
func (r *RecordStream) ReadRecord() (protocol.ContentType, []byte, error) {
	headerRaw := make([]byte, recordlayer.HeaderSize)
	if _, err := io.ReadFull(r.reader, headerRaw); err != nil {
		return 0, nil, err
	}

	var header recordlayer.Header
	if err := header.Unmarshal(headerRaw); err != nil {
		return 0, nil, fatalAlert(alert.DecodeError, err)
	}

	if !r.peerVersionKnown {
		r.peerVersion = header.Version
		r.peerVersionKnown = true
		r.log.Tracef("discovered peer version %d.%d", header.Version.Major, header.Version.Minor)
	} else if !header.Version.Equal(r.peerVersion) {
		return 0, nil, fatalAlert(alert.IllegalParameter, errVersionMismatch)
	}

	body := make([]byte, header.ContentLen)
	if _, err := io.ReadFull(r.reader, body); err != nil {
		return 0, nil, err
	}

	decoded, err := r.read.cipher.DecodeCiphertext(r.read.nextSeq(), header.ContentType, body)
	if err != nil {
		// Authentication and padding failures must stay indistinguishable.
		return 0, nil, fatalAlert(alert.BadRecordMac, err)
	}

	plaintext := decoded
	sink := io.Writer(&r.read.scratch)
	if cOut := r.read.comp.Decompress(sink); cOut != sink {
		if err := transformInto(cOut, decoded); err != nil {
			r.read.scratch.Reset()

			return 0, nil, fatalAlert(alert.DecompressionFailure, errDecompressionFailure)
		}
		plaintext = r.read.drainScratch()
	}

	return header.ContentType, plaintext, nil
}

// transformInto runs one record payload through a non-identity compression
// transform.
func transformInto(dst io.Writer, payload []byte) error {
	if _, err := dst.Write(payload); err != nil {
		return err
	}
	if f, ok := dst.(flusher); ok {
		return f.Flush()
	}

	return nil
}

// CurrentHash returns the transcript digest over all handshake bytes
// written so far. The running state is cloned before finalizing, so the
// query never disturbs the transcript. The sender discriminator is folded
// into the clone in legacy SSL 3.0 mode only.
func (r *RecordStream) CurrentHash(sender []byte) ([]byte, error) {
	clone, err := r.hash.Clone()
	if err != nil {
		return nil, &InternalError{Err: err}
	}

	if r.version().IsSSL() && sender != nil {
		clone.Update(sender)
	}

	return clone.Sum(), nil
}

// Flush flushes the transport writer, if it supports flushing.
func (r *RecordStream) Flush() error {
	if f, ok := r.writer.(flusher); ok {
		return f.Flush()
	}

	return nil
}

// Close tears down both transport directions. Both close attempts are
// always made; the first failure is the one surfaced.
func (r *RecordStream) Close() error {
	var firstErr error

	if c, ok := r.reader.(io.Closer); ok {
		firstErr = c.Close()
	}
	if c, ok := r.writer.(io.Closer); ok {
		if err := c.Close(); firstErr == nil {
			firstErr = err
		}
	}

	return firstErr
}
