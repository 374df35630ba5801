// SPDX-FileCopyrightText: 2023 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package compression

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNullIsIdentity(t *testing.T) {
	var sink bytes.Buffer
	var spec Null

	out := spec.Compress(&sink)
	assert.Equal(t, &sink, out, "Compress must return the sink itself to signal pass-through")

	out = spec.Decompress(&sink)
	assert.Equal(t, &sink, out, "Decompress must return the sink itself to signal pass-through")
}

func newZstd(t *testing.T) Spec {
	t.Helper()
	spec, err := NewZstd()
	require.NoError(t, err)

	return spec
}

func TestBlockRoundTrip(t *testing.T) {
	payloads := [][]byte{
		{},
		[]byte("a"),
		[]byte("hello hello hello hello hello hello"),
		bytes.Repeat([]byte{0xAB}, 1<<14),
	}

	for _, test := range []struct {
		Name string
		Spec Spec
	}{
		{Name: "Deflate", Spec: Deflate{}},
		{Name: "Zstd", Spec: newZstd(t)},
		{Name: "Brotli", Spec: Brotli{}},
		{Name: "Snappy", Spec: Snappy{}},
		{Name: "LZ4", Spec: LZ4{}},
	} {
		test := test
		t.Run(test.Name, func(t *testing.T) {
			for _, payload := range payloads {
				var compressed bytes.Buffer
				cw := test.Spec.Compress(&compressed)
				require.NotEqual(t, &compressed, cw, "non-identity Spec must wrap the sink")

				_, err := cw.Write(payload)
				require.NoError(t, err)
				require.NoError(t, cw.(Flusher).Flush())

				var plain bytes.Buffer
				dw := test.Spec.Decompress(&plain)

				_, err = dw.Write(compressed.Bytes())
				require.NoError(t, err)
				require.NoError(t, dw.(Flusher).Flush())

				assert.Equal(t, payload, append([]byte{}, plain.Bytes()...))
			}
		})
	}
}

func TestBlocksAreIndependent(t *testing.T) {
	// A Spec handle is shared by both directions after a rekey; record N+1
	// must decompress without any state from record N.
	spec := Deflate{}

	var first, second bytes.Buffer
	cw := spec.Compress(&first)
	_, err := cw.Write([]byte("first record"))
	require.NoError(t, err)
	require.NoError(t, cw.(Flusher).Flush())

	cw = spec.Compress(&second)
	_, err = cw.Write([]byte("second record"))
	require.NoError(t, err)
	require.NoError(t, cw.(Flusher).Flush())

	var plain bytes.Buffer
	dw := spec.Decompress(&plain)
	_, err = dw.Write(second.Bytes())
	require.NoError(t, err)
	require.NoError(t, dw.(Flusher).Flush())

	assert.Equal(t, []byte("second record"), plain.Bytes())
}
