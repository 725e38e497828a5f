package rewrite

import (
	"fmt"
	"log/slog"
)

const (
	// DefaultMaxNameLen caps the bytes scanned between the start and end
	// pattern, surrounding whitespace included, before a placeholder attempt
	// is abandoned.
	DefaultMaxNameLen = 100

	// DefaultStartPattern and DefaultEndPattern delimit placeholders unless
	// overridden with WithPatterns.
	DefaultStartPattern = "{{"
	DefaultEndPattern   = "}}"
)

type options struct {
	start      []byte
	end        []byte
	maxNameLen int
	strict     bool
	log        *slog.Logger
}

// Option configures an Engine at construction time.
type Option func(*options)

// WithPatterns overrides the placeholder delimiters. Both patterns must be
// non-empty.
func WithPatterns(start, end string) Option {
	return func(o *options) {
		o.start = []byte(start)
		o.end = []byte(end)
	}
}

// WithMaxNameLen overrides the maximum variable-name length in bytes.
func WithMaxNameLen(n int) Option {
	return func(o *options) { o.maxNameLen = n }
}

// WithStrict makes unresolved names and over-length names fatal for the
// stream instead of passing the original bytes through.
func WithStrict() Option {
	return func(o *options) { o.strict = true }
}

// WithLogger enables debug/warn logging of resolution events and fallback
// paths. Logging is disabled when no logger is set.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) { o.log = l }
}

func buildOptions(opts []Option) (options, error) {
	o := options{
		start:      []byte(DefaultStartPattern),
		end:        []byte(DefaultEndPattern),
		maxNameLen: DefaultMaxNameLen,
	}
	for _, fn := range opts {
		fn(&o)
	}
	if len(o.start) == 0 {
		return o, fmt.Errorf("%w: empty start pattern", ErrInvalidConfig)
	}
	if len(o.end) == 0 {
		return o, fmt.Errorf("%w: empty end pattern", ErrInvalidConfig)
	}
	if o.maxNameLen <= 0 {
		return o, fmt.Errorf("%w: max name length %d", ErrInvalidConfig, o.maxNameLen)
	}
	return o, nil
}
