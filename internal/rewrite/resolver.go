package rewrite

import (
	"context"
	"io"
)

// Value is the outcome of resolving a placeholder name. The zero Value means
// the name has no replacement; construct the other variants with BytesValue,
// StringValue, or StreamValue.
type Value struct {
	data   []byte
	stream io.Reader
	found  bool
}

// NotFound reports that the resolver had no value for the name.
var NotFound = Value{}

// BytesValue wraps a replacement byte sequence.
func BytesValue(p []byte) Value { return Value{data: p, found: true} }

// StringValue wraps a replacement string.
func StringValue(s string) Value { return Value{data: []byte(s), found: true} }

// StreamValue wraps a byte-producing stream. The engine forwards the stream's
// bytes to its output in order, honoring sink backpressure, and never scans
// them for placeholders. If r is also an io.Closer it is closed once drained.
func StreamValue(r io.Reader) Value { return Value{stream: r, found: true} }

// Found reports whether the value carries a replacement.
func (v Value) Found() bool { return v.found }

// Bytes returns the replacement bytes. It is nil for stream values.
func (v Value) Bytes() []byte { return v.data }

// Stream returns the backing reader for a stream value, or nil otherwise.
func (v Value) Stream() io.Reader { return v.stream }

// Resolver maps a trimmed placeholder name to its replacement. Resolve may
// block (e.g. on I/O); the engine suspends further processing until it
// returns. Implementations must be safe for use from multiple engines if they
// are shared, and a returned error aborts the whole stream.
type Resolver interface {
	Resolve(ctx context.Context, name string) (Value, error)
}

// ResolverFunc adapts a function to the Resolver interface.
type ResolverFunc func(ctx context.Context, name string) (Value, error)

func (f ResolverFunc) Resolve(ctx context.Context, name string) (Value, error) {
	return f(ctx, name)
}

// Vars is a Resolver backed by an exact-key lookup table.
type Vars map[string]string

func (v Vars) Resolve(_ context.Context, name string) (Value, error) {
	s, ok := v[name]
	if !ok {
		return NotFound, nil
	}
	return StringValue(s), nil
}
