// SPDX-FileCopyrightText: 2023 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

// Package protocol provides the TLS wire format
package protocol

// Version enums.
var (
	VersionSSL30 = Version{Major: 0x03, Minor: 0x00} //nolint:gochecknoglobals
	VersionTLS10 = Version{Major: 0x03, Minor: 0x01} //nolint:gochecknoglobals
	VersionTLS11 = Version{Major: 0x03, Minor: 0x02} //nolint:gochecknoglobals
	VersionTLS12 = Version{Major: 0x03, Minor: 0x03} //nolint:gochecknoglobals
)

// Version is the major/minor value in the record layer
// and ClientHello/ServerHello
//
// https://tools.ietf.org/html/rfc4346#section-6.2.1
type Version struct {
	Major, Minor uint8
}

// Equal determines if two protocol versions are equal.
func (v Version) Equal(x Version) bool {
	return v.Major == x.Major && v.Minor == x.Minor
}

// IsSSL returns true for the legacy SSL 3.0 version. SSL 3.0 folds a
// sender discriminator into transcript hash queries, TLS does not.
func (v Version) IsSSL() bool {
	return v.Equal(VersionSSL30)
}

// IsValidBytes returns true if the bytes represent a version this
// implementation can carry records for.
func IsValidBytes(major, minor uint8) bool {
	return major == 0x03 && minor <= 0x03
}

// IsValidVersion returns true if the version is one this implementation
// can carry records for.
func IsValidVersion(v Version) bool {
	return IsValidBytes(v.Major, v.Minor)
}
