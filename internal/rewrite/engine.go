package rewrite

import (
	"bytes"
	"context"
	"io"
)

// EmitFunc receives resolved output in order. The slice is only valid for the
// duration of the call; implementations that retain it must copy. Blocking in
// the emit call is the backpressure mechanism: the engine produces no further
// output (and pulls no further bytes from a substituted stream) until it
// returns.
type EmitFunc func(p []byte) error

type state int

const (
	stateSearchStart state = iota
	stateScanName
	stateMatchEnd
)

const forwardBufSize = 32 << 10

// Engine is the incremental rewriter. It is created once per stream, fed
// chunks strictly in arrival order via Process, and finalized with Finish.
// It is not safe for concurrent use; the delivering transport serializes
// calls, as any ordered stream source does.
type Engine struct {
	opt  options
	res  Resolver
	emit EmitFunc

	// buf holds received bytes not yet emitted or consumed by a match. Once
	// an attempt is open (matched > 0 or state past stateSearchStart) its
	// first byte sits at buf[0].
	buf []byte
	// pos is the buffer index of the end-pattern candidate in stateMatchEnd.
	pos int
	// matched counts confirmed bytes of the pattern currently being verified,
	// carried across chunk boundaries.
	matched int
	st      state

	scratch []byte
	err     error
	done    bool
}

// NewEngine builds an engine over the given resolver and output sink.
// Configuration problems surface immediately as ErrInvalidConfig.
func NewEngine(res Resolver, emit EmitFunc, opts ...Option) (*Engine, error) {
	o, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}
	return &Engine{opt: o, res: res, emit: emit}, nil
}

// Process ingests the next chunk and emits whatever output it can prove
// final. The engine takes ownership of chunk: when its buffer is empty the
// chunk becomes the buffer outright, with no copy. Any error is terminal for
// the stream and is returned again on subsequent calls.
func (e *Engine) Process(ctx context.Context, chunk []byte) error {
	if e.err != nil {
		return e.err
	}
	if e.done {
		return errFinished
	}
	if len(chunk) == 0 {
		return nil
	}
	if len(e.buf) == 0 {
		e.buf = chunk
	} else {
		e.buf = append(e.buf, chunk...)
	}
	if err := e.drive(ctx); err != nil {
		e.err = err
		return err
	}
	return nil
}

// Finish flushes the residual buffer verbatim and makes the engine inert.
// Whatever remains buffered never completed a start+end match, so it is
// literal text by construction.
func (e *Engine) Finish() error {
	if e.err != nil {
		return e.err
	}
	if e.done {
		return errFinished
	}
	e.done = true
	if len(e.buf) > 0 {
		if err := e.emit(e.buf); err != nil {
			e.err = err
			return err
		}
		e.buf = nil
	}
	e.st = stateSearchStart
	e.pos, e.matched = 0, 0
	return nil
}

// drive advances the state machine until the buffer is exhausted or more
// input is required.
func (e *Engine) drive(ctx context.Context) error {
	for {
		var (
			more bool
			err  error
		)
		switch e.st {
		case stateSearchStart:
			more, err = e.stepSearchStart()
		case stateScanName:
			more, err = e.stepScanName()
		case stateMatchEnd:
			more, err = e.stepMatchEnd(ctx)
		}
		if err != nil {
			return err
		}
		if !more {
			return nil
		}
	}
}

// stepSearchStart releases bytes that can no longer open a placeholder and
// verifies the start pattern, possibly across chunk boundaries.
func (e *Engine) stepSearchStart() (bool, error) {
	if e.matched == 0 {
		i := bytes.IndexByte(e.buf, e.opt.start[0])
		if i < 0 {
			// nothing here can open a placeholder
			if err := e.release(len(e.buf)); err != nil {
				return false, err
			}
			return false, nil
		}
		if i > 0 {
			if err := e.release(i); err != nil {
				return false, err
			}
		}
		e.matched = 1
	}
	for e.matched < len(e.opt.start) {
		if e.matched >= len(e.buf) {
			// pattern may continue in the next chunk
			return false, nil
		}
		if e.buf[e.matched] != e.opt.start[e.matched] {
			// not a start pattern after all; only the first byte is
			// provably literal, the rest is rescanned
			if err := e.release(1); err != nil {
				return false, err
			}
			e.matched = 0
			return true, nil
		}
		e.matched++
	}
	e.st = stateScanName
	e.matched = 0
	return true, nil
}

// stepScanName looks for the first byte of either pattern inside the name
// region, bounded by the configured maximum name length.
func (e *Engine) stepScanName() (bool, error) {
	lo := len(e.opt.start)
	window := e.buf[lo:]
	if len(window) > e.opt.maxNameLen+1 {
		window = window[:e.opt.maxNameLen+1]
	}
	iEnd := bytes.IndexByte(window, e.opt.end[0])
	iStart := bytes.IndexByte(window, e.opt.start[0])

	switch {
	case iEnd >= 0 && (iStart < 0 || iEnd <= iStart):
		e.pos = lo + iEnd
		e.st = stateMatchEnd
		e.matched = 0
		return true, nil

	case iStart >= 0:
		// a new placeholder opens before this one closed: abandon the
		// current attempt and restart at the new occurrence
		if e.opt.log != nil {
			e.opt.log.Debug("placeholder reopened before closing, restarting match")
		}
		if err := e.release(lo + iStart); err != nil {
			return false, err
		}
		e.st = stateSearchStart
		e.matched = 1
		return true, nil

	case len(window) > e.opt.maxNameLen:
		if e.opt.strict {
			return false, nameTooLongErr(e.opt.maxNameLen)
		}
		if e.opt.log != nil {
			e.opt.log.Warn("placeholder name over limit, passing through", "limit", e.opt.maxNameLen)
		}
		if err := e.release(lo + len(window)); err != nil {
			return false, err
		}
		e.st = stateSearchStart
		e.matched = 0
		return true, nil

	default:
		return false, nil
	}
}

// stepMatchEnd verifies the end pattern and, on a full match, hands the
// trimmed name to the resolver.
func (e *Engine) stepMatchEnd(ctx context.Context) (bool, error) {
	for e.matched < len(e.opt.end) {
		idx := e.pos + e.matched
		if idx >= len(e.buf) {
			return false, nil
		}
		if e.buf[idx] != e.opt.end[e.matched] {
			// the candidate was not an end pattern; fall back to searching
			// from the next buffered byte
			if err := e.release(1); err != nil {
				return false, err
			}
			e.st = stateSearchStart
			e.matched = 0
			return true, nil
		}
		e.matched++
	}

	raw := e.buf[len(e.opt.start):e.pos]
	name := string(bytes.TrimSpace(raw))
	total := e.pos + len(e.opt.end)

	val, err := e.res.Resolve(ctx, name)
	if err != nil {
		return false, err
	}
	switch {
	case !val.found:
		if e.opt.strict {
			return false, unresolvedErr(name)
		}
		if e.opt.log != nil {
			e.opt.log.Warn("unresolved placeholder passed through", "name", name)
		}
		if err := e.release(total); err != nil {
			return false, err
		}

	case val.stream != nil:
		if e.opt.log != nil {
			e.opt.log.Debug("placeholder resolved from stream", "name", name)
		}
		if err := e.forward(ctx, val.stream); err != nil {
			return false, err
		}
		e.discard(total)

	default:
		if e.opt.log != nil {
			e.opt.log.Debug("placeholder resolved", "name", name)
		}
		if len(val.data) > 0 {
			if err := e.emit(val.data); err != nil {
				return false, err
			}
		}
		e.discard(total)
	}

	e.st = stateSearchStart
	e.pos, e.matched = 0, 0
	return true, nil
}

// forward copies a substituted stream to the output, one scratch buffer at a
// time so sink backpressure throttles how fast the stream is drained. The
// forwarded bytes are never scanned for placeholders.
func (e *Engine) forward(ctx context.Context, r io.Reader) error {
	if c, ok := r.(io.Closer); ok {
		defer c.Close()
	}
	if e.scratch == nil {
		e.scratch = make([]byte, forwardBufSize)
	}
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		n, err := r.Read(e.scratch)
		if n > 0 {
			if perr := e.emit(e.scratch[:n]); perr != nil {
				return perr
			}
		}
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
	}
}

// release emits the first n buffered bytes as literal output and drops them.
func (e *Engine) release(n int) error {
	if n == 0 {
		return nil
	}
	if err := e.emit(e.buf[:n]); err != nil {
		return err
	}
	e.discard(n)
	return nil
}

// discard drops the first n buffered bytes without emitting them.
func (e *Engine) discard(n int) {
	if n >= len(e.buf) {
		e.buf = nil
		return
	}
	e.buf = e.buf[n:]
}
