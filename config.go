// SPDX-FileCopyrightText: 2023 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package tlsrecord

import (
	"github.com/pion/logging"
	"github.com/pion/tlsrecord/pkg/crypto/transcript"
	"github.com/pion/tlsrecord/pkg/protocol"
)

// Config is used to configure a RecordStream. After passing it to
// NewRecordStream it must not be modified.
type Config struct {
	// InitialVersion is placed in outbound record headers until the peer
	// version has been discovered from the first inbound record. If zero it
	// defaults to TLS 1.0.
	InitialVersion protocol.Version

	// NewTranscript constructs the running handshake digest. If nil the
	// MD5+SHA-1 combined digest is used, matching the InitialVersion
	// default.
	NewTranscript func() transcript.Hash

	// LoggerFactory produces the logger for record layer tracing. If nil a
	// default factory is used.
	LoggerFactory logging.LoggerFactory
}

var zeroVersion protocol.Version //nolint:gochecknoglobals

func (c *Config) initialVersion() protocol.Version {
	if c == nil || c.InitialVersion == zeroVersion {
		return protocol.VersionTLS10
	}

	return c.InitialVersion
}

func (c *Config) newTranscript() transcript.Hash {
	if c == nil || c.NewTranscript == nil {
		return transcript.NewCombined()
	}

	return c.NewTranscript()
}

func (c *Config) logger() logging.LeveledLogger {
	factory := logging.LoggerFactory(nil)
	if c != nil {
		factory = c.LoggerFactory
	}
	if factory == nil {
		factory = logging.NewDefaultLoggerFactory()
	}

	return factory.NewLogger("tlsrecord")
}
