package pipeline

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"sluice/internal/rewrite"
	"sluice/source"
)

type memSource struct {
	chunks [][]byte
}

func (m *memSource) Configure(any) error { return nil }
func (m *memSource) Close() error        { return nil }

func (m *memSource) Run(ctx context.Context, emit source.EmitFunc) error {
	for _, c := range m.chunks {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := emit(c); err != nil {
			return err
		}
	}
	return nil
}

type memSink struct {
	out bytes.Buffer
}

func (m *memSink) Configure(any) error { return nil }
func (m *memSink) Close() error        { return nil }

func (m *memSink) Push(p []byte) error {
	m.out.Write(p)
	return nil
}

func TestRunnerRewritesAcrossChunks(t *testing.T) {
	// the placeholder straddles the chunk boundary on purpose
	src := &memSource{chunks: [][]byte{
		[]byte("hello {{ na"),
		[]byte("me }}, bye"),
	}}
	snk := &memSink{}

	r := NewRunner()
	r.SetSource(src)
	r.AddSink(snk)
	r.SetResolver(rewrite.Vars{"name": "world"})

	if err := r.Run(context.Background()); err != nil {
		t.Fatalf("run: %v", err)
	}
	if got := snk.out.String(); got != "hello world, bye" {
		t.Fatalf("got %q", got)
	}
}

func TestRunnerFansOutToAllSinks(t *testing.T) {
	src := &memSource{chunks: [][]byte{[]byte("{{ a }}")}}
	one, two := &memSink{}, &memSink{}

	r := NewRunner()
	r.SetSource(src)
	r.AddSink(one)
	r.AddSink(two)
	r.SetResolver(rewrite.Vars{"a": "x"})

	if err := r.Run(context.Background()); err != nil {
		t.Fatalf("run: %v", err)
	}
	if one.out.String() != "x" || two.out.String() != "x" {
		t.Fatalf("sinks diverged: %q vs %q", one.out.String(), two.out.String())
	}
}

func TestRunnerStrictErrorSurfaces(t *testing.T) {
	src := &memSource{chunks: [][]byte{[]byte("{{ nope }}")}}
	snk := &memSink{}

	r := NewRunner()
	r.SetSource(src)
	r.AddSink(snk)
	r.SetResolver(rewrite.Vars{})
	r.SetOptions([]rewrite.Option{rewrite.WithStrict()})

	if err := r.Run(context.Background()); err == nil {
		t.Fatalf("expected an unresolved-variable error")
	}
}

func TestCompileEndToEnd(t *testing.T) {
	dir := t.TempDir()

	in := filepath.Join(dir, "in.txt")
	if err := os.WriteFile(in, []byte("addr={{ host }}:{{ port }}\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	vars := filepath.Join(dir, "vars.yaml")
	if err := os.WriteFile(vars, []byte("host: db.local\nport: \"5432\"\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	out := filepath.Join(dir, "out.txt")

	pipe := filepath.Join(dir, "pipeline.yaml")
	yaml := `schema_version: v1
source:
  kind: file
  path: in.txt
resolver:
  kind: table
  vars: vars.yaml
sinks: [file]
sink_configs:
  file:
    path: ` + out + `
`
	if err := os.WriteFile(pipe, []byte(yaml), 0o644); err != nil {
		t.Fatal(err)
	}

	r, err := Compile(pipe)
	if err != nil {
		t.Fatalf("compile: %v", err)
	}
	if err := r.Run(context.Background()); err != nil {
		t.Fatalf("run: %v", err)
	}

	got, err := os.ReadFile(out)
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != "addr=db.local:5432\n" {
		t.Fatalf("got %q", got)
	}
}

func TestCompileRejectsUnknownResolver(t *testing.T) {
	dir := t.TempDir()
	pipe := filepath.Join(dir, "pipeline.yaml")
	if err := os.WriteFile(pipe, []byte("schema_version: v1\nresolver:\n  kind: ldap\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Compile(pipe); err == nil {
		t.Fatalf("expected an error for resolver kind ldap")
	}
}
