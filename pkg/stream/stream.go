// Package stream drives classification and rendering over a line stream.
package stream

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/dkoosis/xcfo/pkg/capture"
	"github.com/dkoosis/xcfo/pkg/classify"
)

var errNoRenderer = errors.New("stream: no renderer")

// Observer sees every capture the driver produces, including suppressed ones.
type Observer func(c capture.Capture)

// Options configure Run.
type Options struct {
	// Table defaults to classify.DefaultTable().
	Table    *classify.Table
	Renderer capture.Formatter
	// Suppress lists categories that are classified but not rendered.
	Suppress CategorySet
	// Passthrough emits unrecognized lines unchanged. Off, they are dropped.
	Passthrough bool
	Observers   []Observer
	// Logger defaults to a discarding logger.
	Logger *slog.Logger
}

// state is the driver state between lines.
type state int

const (
	stateScanning state = iota
	stateAwaitingContinuation
)

func (s state) String() string {
	if s == stateAwaitingContinuation {
		return "awaiting_continuation"
	}
	return "scanning"
}

// cursor hands out at most budget lines that follow a matched line.
type cursor struct {
	ctx    context.Context
	src    Source
	budget int
	pulled int
	eof    bool
}

func (c *cursor) next() (string, bool) {
	if c.budget <= 0 || c.eof {
		return "", false
	}
	c.budget--
	line, ok := c.src.Next(c.ctx)
	if !ok {
		c.eof = true
		return "", false
	}
	c.pulled++
	return line, true
}

// drain consumes whatever budget the renderer left, so those lines are never
// classified on their own.
func (c *cursor) drain() int {
	n := 0
	for c.budget > 0 && !c.eof {
		if _, ok := c.next(); ok {
			n++
		}
	}
	return n
}

// driver is the core state machine.
type driver struct {
	src   Source
	sink  Sink
	opts  Options
	log   *slog.Logger
	state state
	stats Stats
}

// Run classifies every line of src, renders it with opts.Renderer and emits
// the result to sink. Rendering problems never stop the stream: a renderer
// panic is logged and the original line is emitted instead. Run returns
// when src is exhausted, ctx is done (returning ctx.Err()) or the sink fails.
func Run(ctx context.Context, src Source, sink Sink, opts Options) (Stats, error) {
	if opts.Table == nil {
		opts.Table = classify.DefaultTable()
	}
	if opts.Renderer == nil {
		return Stats{}, errNoRenderer
	}
	log := opts.Logger
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	d := &driver{src: src, sink: sink, opts: opts, log: log}
	d.stats.Captures = make(map[capture.Category]int)

	for {
		line, ok := src.Next(ctx)
		if !ok {
			break
		}
		eof, err := d.handle(ctx, line)
		if err != nil {
			return d.stats, err
		}
		if eof {
			break
		}
	}
	if err := ctx.Err(); err != nil {
		return d.stats, err
	}
	if err := src.Err(); err != nil {
		return d.stats, err
	}
	return d.stats, nil
}

// handle processes one line in Scanning state and any continuation it
// pulls. It reports whether the source hit end of input while pulling.
func (d *driver) handle(ctx context.Context, line string) (bool, error) {
	if d.state != stateScanning {
		return false, fmt.Errorf("stream: line handled while %s", d.state)
	}
	d.stats.Lines++
	m := d.opts.Table.Classify(line)
	c := m.Capture
	d.stats.record(c)
	for _, obs := range d.opts.Observers {
		obs(c)
	}

	cur := &cursor{ctx: ctx, src: d.src, budget: m.Continuation}
	d.state = stateAwaitingContinuation
	defer func() { d.state = stateScanning }()

	var (
		text     string
		rendered bool
	)
	if d.suppressed(c) {
		d.stats.Suppressed++
	} else {
		var err error
		text, rendered, err = d.render(c, cur.next)
		if err != nil {
			d.stats.Recovered++
			d.log.Warn("renderer failed, passing line through",
				"category", c.Category().String(), "error", err)
			text, rendered = line, true
		}
	}
	if n := cur.drain(); n > 0 {
		d.log.Debug("drained continuation", "category", c.Category().String(), "lines", n)
	}
	d.stats.Lines += cur.pulled

	if rendered {
		if err := d.sink.Emit(text); err != nil {
			return cur.eof, err
		}
		d.stats.Emitted++
	}
	return cur.eof, nil
}

func (d *driver) suppressed(c capture.Capture) bool {
	if c.Category() == capture.Unrecognized {
		return !d.opts.Passthrough || d.opts.Suppress.Has(capture.Unrecognized)
	}
	return d.opts.Suppress.Has(c.Category())
}

func (d *driver) render(c capture.Capture, next capture.Next) (text string, ok bool, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("render %s: %v", c.Category(), r)
		}
	}()
	text, ok = c.Format(d.opts.Renderer, next)
	return text, ok, nil
}
