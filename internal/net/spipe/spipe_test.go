// SPDX-FileCopyrightText: 2023 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package spipe

import (
	"io"
	"testing"
	"time"

	"github.com/pion/transport/v3/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPipeOrderedDelivery(t *testing.T) {
	connA, connB := Pipe()

	_, err := connA.Write([]byte("hello "))
	require.NoError(t, err)
	_, err = connA.Write([]byte("world"))
	require.NoError(t, err)

	buf := make([]byte, 11)
	_, err = io.ReadFull(connB, buf)
	require.NoError(t, err)
	assert.Equal(t, []byte("hello world"), buf)
}

func TestPipeDrainsToEOF(t *testing.T) {
	lim := test.TimeOut(time.Second * 5)
	defer lim.Stop()

	connA, connB := Pipe()

	_, err := connA.Write([]byte("tail"))
	require.NoError(t, err)
	require.NoError(t, connA.Close())

	buf := make([]byte, 4)
	_, err = io.ReadFull(connB, buf)
	require.NoError(t, err)
	assert.Equal(t, []byte("tail"), buf)

	_, err = connB.Read(buf)
	assert.ErrorIs(t, err, io.EOF)

	_, err = connB.Write([]byte("x"))
	assert.ErrorIs(t, err, io.ErrClosedPipe)
}

func TestPipeCloseUnblocksReader(t *testing.T) {
	lim := test.TimeOut(time.Second * 5)
	defer lim.Stop()

	report := test.CheckRoutines(t)
	defer report()

	connA, connB := Pipe()

	done := make(chan error, 1)
	go func() {
		buf := make([]byte, 1)
		_, err := connB.Read(buf)
		done <- err
	}()

	time.Sleep(10 * time.Millisecond)
	require.NoError(t, connA.Close())

	assert.ErrorIs(t, <-done, io.EOF)
}
