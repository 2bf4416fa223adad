package stream

import (
	"fmt"
	"io"
)

// Sink receives rendered output, one block per call. A block may span
// several lines; the sink terminates it.
type Sink interface {
	Emit(text string) error
}

// SinkFunc adapts a function to Sink.
type SinkFunc func(text string) error

func (f SinkFunc) Emit(text string) error { return f(text) }

// termWriter is the single point of output in pipe mode. All rendered
// blocks flow through it, so nothing else writes to stdout while a stream
// is running.
type termWriter struct {
	out   io.Writer
	lines int
}

// NewWriterSink returns a sink that writes each block to out followed by a
// newline.
func NewWriterSink(out io.Writer) Sink {
	return &termWriter{out: out}
}

// Emit writes a block to the scrolling output. Always appends \n.
func (w *termWriter) Emit(s string) error {
	if _, err := fmt.Fprintln(w.out, s); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	w.lines++
	return nil
}
