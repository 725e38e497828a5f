package rewrite

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"
)

// feed runs input through a fresh engine in fixed-size chunks and returns the
// collected output. chunk <= 0 delivers the whole input at once.
func feed(t *testing.T, input string, res Resolver, chunk int, opts ...Option) (string, error) {
	t.Helper()
	var out bytes.Buffer
	eng, err := NewEngine(res, func(p []byte) error {
		out.Write(p)
		return nil
	}, opts...)
	if err != nil {
		t.Fatalf("NewEngine: %v", err)
	}
	ctx := context.Background()
	if chunk <= 0 {
		chunk = len(input) + 1
	}
	for i := 0; i < len(input); i += chunk {
		j := i + chunk
		if j > len(input) {
			j = len(input)
		}
		if err := eng.Process(ctx, []byte(input[i:j])); err != nil {
			return out.String(), err
		}
	}
	if err := eng.Finish(); err != nil {
		return out.String(), err
	}
	return out.String(), nil
}

func echoResolver() Resolver {
	return ResolverFunc(func(_ context.Context, name string) (Value, error) {
		return StringValue(name), nil
	})
}

func TestRoundTrip(t *testing.T) {
	got, err := feed(t, "Hello, {{ name }}!", Vars{"name": "World"}, 0)
	if err != nil {
		t.Fatalf("feed: %v", err)
	}
	if got != "Hello, World!" {
		t.Fatalf("got %q", got)
	}
}

func TestIdentityWithoutPlaceholders(t *testing.T) {
	const input = "no placeholders here, just text with } and { loose braces"
	for _, chunk := range []int{1, 2, 7, 0} {
		got, err := feed(t, input, Vars{}, chunk)
		if err != nil {
			t.Fatalf("chunk=%d: %v", chunk, err)
		}
		if got != input {
			t.Fatalf("chunk=%d: got %q", chunk, got)
		}
	}
}

func TestChunkBoundaryInvariance(t *testing.T) {
	res := echoResolver()
	inputs := []string{
		"Hello, {{ name }}!",
		"{{ one }} {{ two }} {{ three }}",
		"{{a}}{{b}}{{c}}",
		"text {{ unfinished",
		"{{ open {{ nested }}",
		"lone { brace }} and {{",
		"{{ x }}} trailing",
		"prefix {{  padded  }} suffix",
	}
	for _, input := range inputs {
		want, err := feed(t, input, res, 0)
		if err != nil {
			t.Fatalf("%q whole: %v", input, err)
		}
		for _, chunk := range []int{1, 2, 3, 5} {
			got, err := feed(t, input, res, chunk)
			if err != nil {
				t.Fatalf("%q chunk=%d: %v", input, chunk, err)
			}
			if got != want {
				t.Fatalf("%q chunk=%d: got %q, want %q", input, chunk, got, want)
			}
		}
	}
}

func TestMultiplePlaceholdersSingleByteChunks(t *testing.T) {
	got, err := feed(t, "{{ one }} {{ two }} {{ three }}", echoResolver(), 1)
	if err != nil {
		t.Fatalf("feed: %v", err)
	}
	if got != "one two three" {
		t.Fatalf("got %q", got)
	}
}

func TestUnresolvedPassThrough(t *testing.T) {
	const input = "Hello, {{ name }}!"
	got, err := feed(t, input, Vars{}, 0)
	if err != nil {
		t.Fatalf("feed: %v", err)
	}
	if got != input {
		t.Fatalf("got %q", got)
	}
}

func TestUnresolvedStrictFails(t *testing.T) {
	got, err := feed(t, "Hello, {{ name }}!", Vars{}, 0, WithStrict())
	if !errors.Is(err, ErrUnresolvedVariable) {
		t.Fatalf("want ErrUnresolvedVariable, got %v", err)
	}
	if !strings.Contains(err.Error(), `"name"`) {
		t.Fatalf("error should carry the name: %v", err)
	}
	// bytes before the failing placeholder were already delivered, nothing after
	if got != "Hello, " {
		t.Fatalf("output before failure: got %q", got)
	}
}

type fillReader struct{ b byte }

func (r fillReader) Read(p []byte) (int, error) {
	for i := range p {
		p[i] = r.b
	}
	return len(p), nil
}

func TestStreamValueSubstitution(t *testing.T) {
	const want = 25_000_000
	res := ResolverFunc(func(_ context.Context, name string) (Value, error) {
		if name != "t" {
			return NotFound, nil
		}
		return StreamValue(io.LimitReader(fillReader{'z'}, want)), nil
	})
	var n int
	eng, err := NewEngine(res, func(p []byte) error {
		n += len(p)
		return nil
	})
	if err != nil {
		t.Fatalf("NewEngine: %v", err)
	}
	if err := eng.Process(context.Background(), []byte("{{ t }}")); err != nil {
		t.Fatalf("Process: %v", err)
	}
	if err := eng.Finish(); err != nil {
		t.Fatalf("Finish: %v", err)
	}
	if n != want {
		t.Fatalf("output length %d, want %d", n, want)
	}
}

type closeTracker struct {
	io.Reader
	closed bool
}

func (c *closeTracker) Close() error {
	c.closed = true
	return nil
}

func TestStreamValueCloserClosed(t *testing.T) {
	tr := &closeTracker{Reader: strings.NewReader("v")}
	res := ResolverFunc(func(context.Context, string) (Value, error) {
		return StreamValue(tr), nil
	})
	got, err := feed(t, "{{ x }}", res, 0)
	if err != nil {
		t.Fatalf("feed: %v", err)
	}
	if got != "v" {
		t.Fatalf("got %q", got)
	}
	if !tr.closed {
		t.Fatal("substituted stream was not closed")
	}
}

func TestMaxNameLenLenient(t *testing.T) {
	const input = "a {{ 0123456789 }} b"
	got, err := feed(t, input, echoResolver(), 0, WithMaxNameLen(5))
	if err != nil {
		t.Fatalf("feed: %v", err)
	}
	if got != input {
		t.Fatalf("got %q", got)
	}
}

func TestMaxNameLenStrict(t *testing.T) {
	_, err := feed(t, "a {{ 0123456789 }} b", echoResolver(), 0, WithMaxNameLen(5), WithStrict())
	if !errors.Is(err, ErrNameTooLong) {
		t.Fatalf("want ErrNameTooLong, got %v", err)
	}
}

func TestMaxNameLenBoundary(t *testing.T) {
	// name region of exactly the cap still resolves, one byte past does not
	got, err := feed(t, "{{abcde}}", echoResolver(), 0, WithMaxNameLen(5))
	if err != nil {
		t.Fatalf("feed: %v", err)
	}
	if got != "abcde" {
		t.Fatalf("exact cap: got %q", got)
	}
	got, err = feed(t, "{{abcdef}}", echoResolver(), 0, WithMaxNameLen(5))
	if err != nil {
		t.Fatalf("feed: %v", err)
	}
	if got != "{{abcdef}}" {
		t.Fatalf("over cap: got %q", got)
	}
}

func TestMaxNameLenInvariantToChunking(t *testing.T) {
	const input = "x{{ aaaaaaaaaa }}y"
	whole, err := feed(t, input, echoResolver(), 0, WithMaxNameLen(4))
	if err != nil {
		t.Fatalf("whole: %v", err)
	}
	single, err := feed(t, input, echoResolver(), 1, WithMaxNameLen(4))
	if err != nil {
		t.Fatalf("single: %v", err)
	}
	if whole != single {
		t.Fatalf("chunking observable: %q vs %q", whole, single)
	}
}

func TestOverlappingStartRestarts(t *testing.T) {
	got, err := feed(t, "{{ one {{ two }}", echoResolver(), 0)
	if err != nil {
		t.Fatalf("feed: %v", err)
	}
	if got != "{{ one two" {
		t.Fatalf("got %q", got)
	}
}

func TestEndPatternFalseCandidate(t *testing.T) {
	// "}x" is not a closing pattern; the real one comes later
	got, err := feed(t, "{{ a }x yz", echoResolver(), 0)
	if err != nil {
		t.Fatalf("feed: %v", err)
	}
	if got != "{{ a }x yz" {
		t.Fatalf("got %q", got)
	}
}

func TestTrailingBraceAfterClose(t *testing.T) {
	got, err := feed(t, "{{ a }}}", Vars{"a": "A"}, 0)
	if err != nil {
		t.Fatalf("feed: %v", err)
	}
	if got != "A}" {
		t.Fatalf("got %q", got)
	}
}

func TestCustomPatterns(t *testing.T) {
	got, err := feed(t, "x <% a %> y", Vars{"a": "A"}, 1, WithPatterns("<%", "%>"))
	if err != nil {
		t.Fatalf("feed: %v", err)
	}
	if got != "x A y" {
		t.Fatalf("got %q", got)
	}
}

func TestSingleBytePatterns(t *testing.T) {
	got, err := feed(t, "cost: $price; total: $total;", Vars{"price": "9", "total": "18"}, 1, WithPatterns("$", ";"))
	if err != nil {
		t.Fatalf("feed: %v", err)
	}
	if got != "cost: 9 total: 18" {
		t.Fatalf("got %q", got)
	}
}

func TestIdenticalDelimiters(t *testing.T) {
	got, err := feed(t, "a %x% b", Vars{"x": "X"}, 0, WithPatterns("%", "%"))
	if err != nil {
		t.Fatalf("feed: %v", err)
	}
	if got != "a X b" {
		t.Fatalf("got %q", got)
	}
}

func TestEmptyReplacement(t *testing.T) {
	got, err := feed(t, "[{{ gone }}]", Vars{"gone": ""}, 0)
	if err != nil {
		t.Fatalf("feed: %v", err)
	}
	if got != "[]" {
		t.Fatalf("got %q", got)
	}
}

func TestNameWhitespaceTrimmed(t *testing.T) {
	var seen string
	res := ResolverFunc(func(_ context.Context, name string) (Value, error) {
		seen = name
		return StringValue("ok"), nil
	})
	if _, err := feed(t, "{{\t name \t}}", res, 0); err != nil {
		t.Fatalf("feed: %v", err)
	}
	if seen != "name" {
		t.Fatalf("resolver saw %q", seen)
	}
}

func TestFinishFlushesIncompletePlaceholder(t *testing.T) {
	for _, input := range []string{"tail {{", "tail {{ open", "tail {{ open }", "tail {"} {
		got, err := feed(t, input, echoResolver(), 0)
		if err != nil {
			t.Fatalf("%q: %v", input, err)
		}
		if got != input {
			t.Fatalf("%q: got %q", input, got)
		}
	}
}

func TestResolverErrorAbortsAndSticks(t *testing.T) {
	boom := errors.New("boom")
	res := ResolverFunc(func(context.Context, string) (Value, error) {
		return NotFound, boom
	})
	eng, err := NewEngine(res, func([]byte) error { return nil })
	if err != nil {
		t.Fatalf("NewEngine: %v", err)
	}
	ctx := context.Background()
	if err := eng.Process(ctx, []byte("{{ a }}")); !errors.Is(err, boom) {
		t.Fatalf("want resolver error, got %v", err)
	}
	if err := eng.Process(ctx, []byte("more")); !errors.Is(err, boom) {
		t.Fatalf("error must be sticky, got %v", err)
	}
	if err := eng.Finish(); !errors.Is(err, boom) {
		t.Fatalf("Finish after failure: %v", err)
	}
}

func TestProcessAfterFinish(t *testing.T) {
	eng, err := NewEngine(Vars{}, func([]byte) error { return nil })
	if err != nil {
		t.Fatalf("NewEngine: %v", err)
	}
	if err := eng.Finish(); err != nil {
		t.Fatalf("Finish: %v", err)
	}
	if err := eng.Process(context.Background(), []byte("x")); err == nil {
		t.Fatal("Process after Finish must fail")
	}
}

func TestInvalidConfiguration(t *testing.T) {
	cases := [][]Option{
		{WithPatterns("", "}}")},
		{WithPatterns("{{", "")},
		{WithMaxNameLen(0)},
		{WithMaxNameLen(-1)},
	}
	for i, opts := range cases {
		if _, err := NewEngine(Vars{}, func([]byte) error { return nil }, opts...); !errors.Is(err, ErrInvalidConfig) {
			t.Fatalf("case %d: want ErrInvalidConfig, got %v", i, err)
		}
	}
}

func TestEmitErrorPropagates(t *testing.T) {
	sinkErr := errors.New("sink full")
	eng, err := NewEngine(Vars{}, func([]byte) error { return sinkErr })
	if err != nil {
		t.Fatalf("NewEngine: %v", err)
	}
	if err := eng.Process(context.Background(), []byte("plain text")); !errors.Is(err, sinkErr) {
		t.Fatalf("want sink error, got %v", err)
	}
}

func TestBufferStaysBounded(t *testing.T) {
	eng, err := NewEngine(Vars{}, func([]byte) error { return nil }, WithMaxNameLen(16))
	if err != nil {
		t.Fatalf("NewEngine: %v", err)
	}
	ctx := context.Background()
	chunk := []byte(strings.Repeat("abcdefgh", 512))
	for i := 0; i < 100; i++ {
		c := make([]byte, len(chunk))
		copy(c, chunk)
		if err := eng.Process(ctx, c); err != nil {
			t.Fatalf("Process: %v", err)
		}
		limit := len(eng.opt.start) + eng.opt.maxNameLen + len(eng.opt.end) + 1
		if len(eng.buf) > limit {
			t.Fatalf("pending buffer grew to %d, limit %d", len(eng.buf), limit)
		}
	}
}
