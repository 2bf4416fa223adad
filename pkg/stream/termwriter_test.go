package stream

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTermWriter_Emit_AppendsNewline(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	sink := NewWriterSink(&buf)
	require.NoError(t, sink.Emit("hello"))
	require.NoError(t, sink.Emit("a\nb"))
	assert.Equal(t, "hello\na\nb\n", buf.String())
	assert.Equal(t, 2, sink.(*termWriter).lines)
}

type failingWriter struct{}

var errClosedPipe = errors.New("closed pipe")

func (failingWriter) Write([]byte) (int, error) { return 0, errClosedPipe }

func TestTermWriter_Emit_WrapsWriteError(t *testing.T) {
	t.Parallel()

	err := NewWriterSink(failingWriter{}).Emit("x")
	assert.ErrorIs(t, err, errClosedPipe)
}
