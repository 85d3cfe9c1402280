package handles

import (
	"errors"
	"io"
	"os"
	"testing"

	"github.com/neilotoole/slogt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTestFile(t *testing.T, path string) {
	t.Helper()

	require.NoError(t, os.WriteFile(path, []byte("=head1 NAME\n"), 0o600))
}

func TestStream_WrapsOpenFile(t *testing.T) {
	t.Parallel()

	file, err := os.CreateTemp(t.TempDir(), "stream_*.pod")
	require.NoError(t, err)

	stream := NewStream(file, ModeWrite)

	assert.Equal(t, KindStream, stream.Kind())
	assert.Equal(t, ModeWrite, stream.Mode())
	assert.True(t, stream.Open())
	assert.NotEqual(t, stream.ID().String(), "00000000-0000-0000-0000-000000000000")

	_, err = stream.Write([]byte("# NAME\n"))
	require.NoError(t, err)

	require.NoError(t, stream.Close())
	assert.False(t, stream.Open())
}

func TestStream_FromFD(t *testing.T) {
	t.Parallel()

	file, err := os.CreateTemp(t.TempDir(), "fd_*.pod")
	require.NoError(t, err)

	_, err = file.WriteString("contents")
	require.NoError(t, err)
	_, err = file.Seek(0, io.SeekStart)
	require.NoError(t, err)

	stream := StreamFromFD(file.Fd(), ModeRead)

	assert.Equal(t, ModeRead, stream.Mode())
	assert.True(t, stream.Open())

	data, err := io.ReadAll(stream)
	require.NoError(t, err)
	assert.Equal(t, "contents", string(data))

	require.NoError(t, stream.Close())
}

func TestStream_ClosedRejectsIO(t *testing.T) {
	t.Parallel()

	file, err := os.CreateTemp(t.TempDir(), "closed_*.pod")
	require.NoError(t, err)

	stream := NewStream(file, ModeRead)
	require.NoError(t, stream.Close())

	_, err = stream.Read(make([]byte, 1))
	assert.ErrorIs(t, err, ErrClosed)

	_, err = stream.Write([]byte("x"))
	assert.ErrorIs(t, err, ErrClosed)

	// Double close is a no-op.
	assert.NoError(t, stream.Close())
}

func TestStringStream_ReadWrite(t *testing.T) {
	t.Parallel()

	stream := NewStringStream("seed")

	assert.Equal(t, KindStringStream, stream.Kind())
	assert.True(t, stream.Open())

	_, err := stream.Write([]byte(" extra"))
	require.NoError(t, err)
	assert.Equal(t, "seed extra", stream.Contents())

	data, err := io.ReadAll(stream)
	require.NoError(t, err)
	assert.Equal(t, "seed extra", string(data))
}

func TestStringStream_Close(t *testing.T) {
	t.Parallel()

	stream := NewStringStream("")
	require.NoError(t, stream.Close())

	assert.False(t, stream.Open())

	_, err := stream.Write([]byte("x"))
	assert.ErrorIs(t, err, ErrClosed)

	_, err = stream.Read(make([]byte, 1))
	assert.ErrorIs(t, err, ErrClosed)

	assert.NoError(t, stream.Close())
}

func TestMode_String(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "read", ModeRead.String())
	assert.Equal(t, "write", ModeWrite.String())
}

// failingCloser always fails to close.
type failingCloser struct{}

var errCloseRefused = errors.New("close refused")

func (failingCloser) Close() error {
	return errCloseRefused
}

func TestCloseQuietly_LogsFailure(t *testing.T) { //nolint:paralleltest
	SetCleanupLogger(slogt.New(t))
	defer SetCleanupLogger(nil)

	// Must not panic or return an error.
	CloseQuietly(failingCloser{}, "failed to close coerced stream")
}

func TestCloseQuietly_Success(t *testing.T) { //nolint:paralleltest
	SetCleanupLogger(slogt.New(t))
	defer SetCleanupLogger(nil)

	CloseQuietly(NewStringStream(""), "failed to close string stream")
}
