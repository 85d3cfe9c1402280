package handles

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/google/uuid"
	"go.uber.org/atomic"
)

// ErrClosed is returned when reading from or writing to a stream handle
// that has already been closed.
var ErrClosed = errors.New("stream handle is closed")

// Mode records the I/O direction a stream was opened for. It is a tag
// carried by the handle for the benefit of the consuming tool; the handle
// itself does not enforce it.
type Mode int

const (
	// ModeRead marks a stream acquired for reading.
	ModeRead Mode = iota
	// ModeWrite marks a stream acquired for writing.
	ModeWrite
)

// String returns the human-readable name of the mode.
func (m Mode) String() string {
	if m == ModeWrite {
		return "write"
	}

	return "read"
}

// Stream is an open stream backed by an operating-system file. Each stream
// carries a unique id so that log lines about it can be correlated.
type Stream struct {
	id   uuid.UUID
	file *os.File
	mode Mode
}

// NewStream wraps an already-open operating-system file.
func NewStream(file *os.File, mode Mode) *Stream {
	return &Stream{
		id:   uuid.New(),
		file: file,
		mode: mode,
	}
}

// StreamFromFD wraps a raw file descriptor. The descriptor must already be
// open; the wrapper takes ownership of it.
func StreamFromFD(fd uintptr, mode Mode) *Stream {
	return NewStream(os.NewFile(fd, fmt.Sprintf("fd-%d", fd)), mode)
}

// Kind returns KindStream.
func (s *Stream) Kind() Kind {
	return KindStream
}

// ID returns the stream's correlation id.
func (s *Stream) ID() uuid.UUID {
	return s.id
}

// Mode returns the I/O direction the stream was acquired for.
func (s *Stream) Mode() Mode {
	return s.mode
}

// Open returns true if the stream has not been closed.
func (s *Stream) Open() bool {
	return s.file != nil
}

// Read reads from the underlying file.
func (s *Stream) Read(p []byte) (int, error) {
	if s.file == nil {
		return 0, ErrClosed
	}

	return s.file.Read(p) //nolint:wrapcheck
}

// Write writes to the underlying file.
func (s *Stream) Write(p []byte) (int, error) {
	if s.file == nil {
		return 0, ErrClosed
	}

	return s.file.Write(p) //nolint:wrapcheck
}

// Close closes the underlying file. Closing an already-closed stream is a
// no-op.
func (s *Stream) Close() error {
	if s.file == nil {
		return nil
	}

	file := s.file
	s.file = nil

	if err := file.Close(); err != nil {
		return fmt.Errorf("close stream %s: %w", s.id, err)
	}

	return nil
}

// String returns a diagnostic representation of the stream.
func (s *Stream) String() string {
	state := "open"
	if s.file == nil {
		state = "closed"
	}

	return fmt.Sprintf("stream:%s mode=%s %s", s.id, s.mode, state)
}

// StringStream is an open in-memory stream backed by a buffer. It stands in
// for a real stream when the consuming tool renders to or reads from memory.
type StringStream struct {
	id     uuid.UUID
	buf    bytes.Buffer
	closed bool
}

// NewStringStream creates an in-memory stream seeded with the given
// contents. Pass the empty string for a write-only scratch stream.
func NewStringStream(contents string) *StringStream {
	ss := &StringStream{id: uuid.New()}
	ss.buf.WriteString(contents)

	return ss
}

// Kind returns KindStringStream.
func (s *StringStream) Kind() Kind {
	return KindStringStream
}

// ID returns the stream's correlation id.
func (s *StringStream) ID() uuid.UUID {
	return s.id
}

// Open returns true if the stream has not been closed.
func (s *StringStream) Open() bool {
	return !s.closed
}

// Read reads from the in-memory buffer.
func (s *StringStream) Read(p []byte) (int, error) {
	if s.closed {
		return 0, ErrClosed
	}

	return s.buf.Read(p) //nolint:wrapcheck
}

// Write appends to the in-memory buffer.
func (s *StringStream) Write(p []byte) (int, error) {
	if s.closed {
		return 0, ErrClosed
	}

	return s.buf.Write(p) //nolint:wrapcheck
}

// Contents returns the unread portion of the buffer.
func (s *StringStream) Contents() string {
	return s.buf.String()
}

// Close marks the stream closed. Closing an already-closed stream is a
// no-op.
func (s *StringStream) Close() error {
	s.closed = true

	return nil
}

// String returns a diagnostic representation of the stream.
func (s *StringStream) String() string {
	state := "open"
	if s.closed {
		state = "closed"
	}

	return fmt.Sprintf("string-stream:%s %s", s.id, state)
}

// cleanupLogger holds the logger used by CloseQuietly. Atomic storage lets
// tests swap in their own logger without racing concurrent cleanup.
var cleanupLogger atomic.Pointer[slog.Logger] //nolint:gochecknoglobals

// SetCleanupLogger replaces the logger used by CloseQuietly. Passing nil
// restores the process-default slog logger.
func SetCleanupLogger(logger *slog.Logger) {
	cleanupLogger.Store(logger)
}

// CloseQuietly closes the given handle and logs a failure instead of
// returning it. Intended for defer statements on coerced stream handles
// where the caller has no error path left.
func CloseQuietly(closer io.Closer, msg string) {
	if err := closer.Close(); err != nil {
		logger := cleanupLogger.Load()
		if logger == nil {
			logger = slog.Default()
		}

		logger.Error(msg, "error", err)
	}
}
