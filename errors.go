// SPDX-FileCopyrightText: 2023 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package tlsrecord

import (
	"errors"
	"fmt"

	"github.com/pion/tlsrecord/pkg/protocol"
	"github.com/pion/tlsrecord/pkg/protocol/alert"
)

// Typed errors.
var (
	//nolint:err113
	errVersionMismatch = &FatalError{Err: errors.New("record version does not match discovered peer version")}
	//nolint:err113
	errRecordOverflow = &FatalError{Err: errors.New("record payload exceeds maximum length")}
	//nolint:err113
	errDecompressionFailure = &FatalError{Err: errors.New("failed to decompress record")}
)

// FatalError indicates that the connection is no longer available.
type FatalError = protocol.FatalError

// InternalError indicates an internal error caused by the implementation,
// and the connection is no longer available.
type InternalError = protocol.InternalError

// TemporaryError indicates that the connection is still available, but the
// request failed temporarily.
type TemporaryError = protocol.TemporaryError

// TimeoutError indicates that the request timed out.
type TimeoutError = protocol.TimeoutError

// AlertError pairs a fatal record layer error with the alert class the
// handshake layer should raise before terminating the connection. The
// record layer never sends alerts itself; that policy belongs to the layer
// above.
type AlertError struct {
	Alert alert.Alert
	Err   error
}

func (e *AlertError) Error() string {
	return fmt.Sprintf("%s: %v", e.Alert.String(), e.Err)
}

// Unwrap implements Go1.13 error unwrapper.
func (e *AlertError) Unwrap() error { return e.Err }

// Is compares AlertErrors by their alert class.
func (e *AlertError) Is(err error) bool {
	var other *AlertError
	if errors.As(err, &other) {
		return e.Alert == other.Alert
	}

	return false
}

func fatalAlert(desc alert.Description, err error) *AlertError {
	return &AlertError{
		Alert: alert.Alert{Level: alert.Fatal, Description: desc},
		Err:   err,
	}
}
