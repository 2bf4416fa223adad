package stream

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/nxadm/tail"
)

// Source yields input lines without their terminators. Next reports false
// at end of input, on a read error (see Err) or when ctx is done.
type Source interface {
	Next(ctx context.Context) (string, bool)
	Err() error
}

// scanResult carries a scanned line or terminal error from the scanner goroutine.
type scanResult struct {
	line string
	err  error
}

// ReaderSource reads lines from an io.Reader.
//
// Cancellation: the scanner runs in a background goroutine. When ctx is
// done, Next closes the reader (if it implements io.Closer) to unblock the
// scanner. Otherwise the caller must close the underlying reader to avoid
// leaking the goroutine.
type ReaderSource struct {
	r     io.Reader
	lines chan scanResult
	stop  chan struct{}
	err   error
	done  bool
}

// NewReaderSource starts scanning r. Lines up to 1MB are accepted.
func NewReaderSource(r io.Reader) *ReaderSource {
	s := &ReaderSource{r: r, lines: make(chan scanResult), stop: make(chan struct{})}
	go s.scan()
	return s
}

func (s *ReaderSource) scan() {
	defer close(s.lines)
	scanner := bufio.NewScanner(s.r)
	// Allow large lines: linker and compiler invocations get long.
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		select {
		case s.lines <- scanResult{line: strings.TrimSuffix(scanner.Text(), "\r")}:
		case <-s.stop:
			return
		}
	}
	if err := scanner.Err(); err != nil {
		select {
		case s.lines <- scanResult{err: err}:
		case <-s.stop:
		}
	}
}

func (s *ReaderSource) Next(ctx context.Context) (string, bool) {
	if s.done {
		return "", false
	}
	select {
	case <-ctx.Done():
		s.finish()
		if c, ok := s.r.(io.Closer); ok {
			_ = c.Close()
		}
		return "", false
	case res, ok := <-s.lines:
		if !ok {
			s.finish()
			return "", false
		}
		if res.err != nil {
			s.err = fmt.Errorf("scanning input: %w", res.err)
			s.finish()
			return "", false
		}
		return res.line, true
	}
}

func (s *ReaderSource) finish() {
	if !s.done {
		s.done = true
		close(s.stop)
	}
}

// Err returns the first read error, if any.
func (s *ReaderSource) Err() error { return s.err }

// FileFollower follows a growing file, like tail -F. It never reaches end of
// input on its own; it ends when ctx is done or Stop is called.
type FileFollower struct {
	t   *tail.Tail
	err error
}

// FollowFile starts following path from its beginning. The file must exist.
func FollowFile(path string) (*FileFollower, error) {
	t, err := tail.TailFile(path, tail.Config{
		Follow:    true,
		ReOpen:    true,
		MustExist: true,
		Logger:    tail.DiscardingLogger,
	})
	if err != nil {
		return nil, fmt.Errorf("follow %s: %w", path, err)
	}
	return &FileFollower{t: t}, nil
}

func (f *FileFollower) Next(ctx context.Context) (string, bool) {
	select {
	case <-ctx.Done():
		return "", false
	case line, ok := <-f.t.Lines:
		if !ok {
			if err := f.t.Err(); err != nil && !errors.Is(err, tail.ErrStop) {
				f.err = fmt.Errorf("following %s: %w", f.t.Filename, err)
			}
			return "", false
		}
		if line.Err != nil {
			f.err = fmt.Errorf("following %s: %w", f.t.Filename, line.Err)
			return "", false
		}
		return strings.TrimSuffix(line.Text, "\r"), true
	}
}

// Err returns the error that ended following, if any.
func (f *FileFollower) Err() error { return f.err }

// Stop ends following and releases the file watcher.
func (f *FileFollower) Stop() error {
	err := f.t.Stop()
	f.t.Cleanup()
	return err
}

// SliceSource yields fixed lines. It is handy for tests and for re-running
// captured output.
type SliceSource struct {
	lines []string
	pos   int
}

// NewSliceSource returns a source over lines.
func NewSliceSource(lines ...string) *SliceSource {
	return &SliceSource{lines: lines}
}

func (s *SliceSource) Next(ctx context.Context) (string, bool) {
	if ctx.Err() != nil || s.pos >= len(s.lines) {
		return "", false
	}
	s.pos++
	return s.lines[s.pos-1], true
}

func (s *SliceSource) Err() error { return nil }
