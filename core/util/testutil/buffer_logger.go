// Package testutil provides small, dependency-light test helpers shared by
// this module's own test suites: a concurrency-safe buffer and a
// logger.Logger backed by one, for asserting on emitted log lines.
package testutil

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/retailcrm/go-phonenumber/core/logger"
)

// ReadBuffer is implemented by BufferLogger. Its methods give access to the
// buffer contents and the ability to read it as an io.Reader or reset it.
type ReadBuffer interface {
	io.Reader
	fmt.Stringer
	Bytes() []byte
	Reset()
}

// BufferedLogger is a logger.Logger that records everything written to it
// as JSON lines, for assertions in tests.
type BufferedLogger interface {
	ReadBuffer
	logger.Logger
}

// BufferLogger is the BufferedLogger implementation.
type BufferLogger struct {
	logger.Logger
	buf *LockableBuffer
}

// NewBufferedLogger returns a BufferedLogger writing JSON lines at debug level.
func NewBufferedLogger() BufferedLogger {
	buf := &LockableBuffer{}
	return &BufferLogger{
		Logger: logger.NewDefault(slog.New(slog.NewJSONHandler(buf, logger.DefaultOpts))),
		buf:    buf,
	}
}

func (l *BufferLogger) Read(p []byte) (n int, err error) {
	return l.buf.Read(p)
}

func (l *BufferLogger) String() string {
	return l.buf.String()
}

func (l *BufferLogger) Bytes() []byte {
	return l.buf.Bytes()
}

func (l *BufferLogger) Reset() {
	l.buf.Reset()
}
