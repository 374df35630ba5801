// SPDX-FileCopyrightText: 2023 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

// Package spipe provides a buffered, ordered in-memory byte stream pipe.
package spipe

import (
	"bytes"
	"io"
	"sync"
)

// Pipe creates a pair of connected stream ends on memory. Writes on one end
// become reads on the other, in order. Closing one end shuts down both
// directions: the peer drains any buffered bytes and then reads EOF.
func Pipe() (io.ReadWriteCloser, io.ReadWriteCloser) {
	s0 := newStream()
	s1 := newStream()

	return &conn{rd: s0, wr: s1}, &conn{rd: s1, wr: s0}
}

type stream struct {
	mu     sync.Mutex
	cond   *sync.Cond
	buf    bytes.Buffer
	closed bool
}

func newStream() *stream {
	s := &stream{}
	s.cond = sync.NewCond(&s.mu)

	return s
}

func (s *stream) write(p []byte) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return 0, io.ErrClosedPipe
	}

	n, err := s.buf.Write(p)
	s.cond.Broadcast()

	return n, err
}

func (s *stream) read(p []byte) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for s.buf.Len() == 0 {
		if s.closed {
			return 0, io.EOF
		}
		s.cond.Wait()
	}

	return s.buf.Read(p)
}

func (s *stream) close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.closed = true
	s.cond.Broadcast()
}

type conn struct {
	rd, wr    *stream
	closeOnce sync.Once
}

func (c *conn) Read(p []byte) (int, error) {
	return c.rd.read(p)
}

func (c *conn) Write(p []byte) (int, error) {
	return c.wr.write(p)
}

func (c *conn) Close() error {
	c.closeOnce.Do(func() {
		c.rd.close()
		c.wr.close()
	})

	return nil
}
