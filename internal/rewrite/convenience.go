package rewrite

import (
	"bytes"
	"context"
	"fmt"
	"io"
)

const readChunkSize = 4096

// Reader wraps an io.Reader, rewriting placeholders on the fly. Output is
// byte-identical to feeding the source through an Engine chunk by chunk.
type Reader struct {
	ctx     context.Context
	src     io.Reader
	eng     *Engine
	out     bytes.Buffer
	scratch []byte
	srcErr  error
}

// NewReader builds a streaming Reader over src. The context bounds resolver
// calls made while reading.
func NewReader(ctx context.Context, src io.Reader, res Resolver, opts ...Option) (*Reader, error) {
	r := &Reader{ctx: ctx, src: src, scratch: make([]byte, readChunkSize)}
	eng, err := NewEngine(res, func(p []byte) error {
		r.out.Write(p)
		return nil
	}, opts...)
	if err != nil {
		return nil, err
	}
	r.eng = eng
	return r, nil
}

func (r *Reader) Read(p []byte) (int, error) {
	for r.out.Len() == 0 {
		if r.srcErr != nil {
			return 0, r.srcErr
		}
		n, err := r.src.Read(r.scratch)
		if n > 0 {
			// the engine owns its chunk, so hand it a copy of the scratch
			chunk := make([]byte, n)
			copy(chunk, r.scratch[:n])
			if perr := r.eng.Process(r.ctx, chunk); perr != nil {
				r.srcErr = perr
				return 0, perr
			}
		}
		if err == io.EOF {
			if ferr := r.eng.Finish(); ferr != nil {
				r.srcErr = ferr
				return 0, ferr
			}
			r.srcErr = io.EOF
		} else if err != nil {
			r.srcErr = err
		}
	}
	return r.out.Read(p)
}

// Writer wraps an io.Writer, rewriting placeholders in everything written to
// it. Close flushes the residual buffer; until then trailing bytes that might
// still open a placeholder are withheld.
type Writer struct {
	ctx context.Context
	eng *Engine
}

// NewWriter builds a streaming Writer over dst.
func NewWriter(ctx context.Context, dst io.Writer, res Resolver, opts ...Option) (*Writer, error) {
	eng, err := NewEngine(res, func(p []byte) error {
		_, werr := dst.Write(p)
		return werr
	}, opts...)
	if err != nil {
		return nil, err
	}
	return &Writer{ctx: ctx, eng: eng}, nil
}

func (w *Writer) Write(p []byte) (int, error) {
	// Write must not retain p, so the engine gets its own copy.
	chunk := make([]byte, len(p))
	copy(chunk, p)
	if err := w.eng.Process(w.ctx, chunk); err != nil {
		return 0, err
	}
	return len(p), nil
}

func (w *Writer) Close() error { return w.eng.Finish() }

// Bytes runs a whole in-memory input through the engine and returns the fully
// materialized output. The entire result is held in memory; unsuitable for
// large inputs.
func Bytes(ctx context.Context, in []byte, res Resolver, opts ...Option) ([]byte, error) {
	var out bytes.Buffer
	eng, err := NewEngine(res, func(p []byte) error {
		out.Write(p)
		return nil
	}, opts...)
	if err != nil {
		return nil, err
	}
	if err := eng.Process(ctx, in); err != nil {
		return nil, err
	}
	if err := eng.Finish(); err != nil {
		return nil, err
	}
	return out.Bytes(), nil
}

// String is Bytes for string input and output.
func String(ctx context.Context, in string, res Resolver, opts ...Option) (string, error) {
	out, err := Bytes(ctx, []byte(in), res, opts...)
	if err != nil {
		return "", err
	}
	return string(out), nil
}

// Transform accepts loosely typed input (string, []byte, or io.Reader) and
// returns the rewritten bytes. Anything else is rejected with
// ErrUnsupportedChunk.
func Transform(ctx context.Context, in any, res Resolver, opts ...Option) ([]byte, error) {
	switch v := in.(type) {
	case []byte:
		return Bytes(ctx, v, res, opts...)
	case string:
		return Bytes(ctx, []byte(v), res, opts...)
	case io.Reader:
		r, err := NewReader(ctx, v, res, opts...)
		if err != nil {
			return nil, err
		}
		return io.ReadAll(r)
	default:
		return nil, fmt.Errorf("%w: %T", ErrUnsupportedChunk, in)
	}
}
