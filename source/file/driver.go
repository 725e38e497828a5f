// Package file provides a source driver reading a file (or stdin) in
// fixed-size chunks. Chunk size is a delivery detail only; the rewriter's
// output does not depend on it.
package file

import (
	"context"
	"fmt"
	"io"
	"os"

	"sluice/source"
)

const defaultChunkBytes = 32 << 10

type Config struct {
	Path       string `yaml:"path"` // "" or "-" reads stdin
	ChunkBytes int    `yaml:"chunk_bytes"`
}

type driver struct {
	cfg Config
	f   *os.File
}

func (d *driver) Configure(raw any) error {
	c, ok := raw.(Config)
	if !ok {
		return fmt.Errorf("file-source: expected Config, got %T", raw)
	}
	if c.ChunkBytes <= 0 {
		c.ChunkBytes = defaultChunkBytes
	}
	d.cfg = c
	return nil
}

func (d *driver) Run(ctx context.Context, emit source.EmitFunc) error {
	in := os.Stdin
	if d.cfg.Path != "" && d.cfg.Path != "-" {
		f, err := os.Open(d.cfg.Path)
		if err != nil {
			return err
		}
		d.f = f
		in = f
	}
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		// fresh buffer per chunk: the pipeline takes ownership
		buf := make([]byte, d.cfg.ChunkBytes)
		n, err := in.Read(buf)
		if n > 0 {
			if eerr := emit(buf[:n]); eerr != nil {
				return eerr
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

func (d *driver) Close() error {
	if d.f != nil {
		return d.f.Close()
	}
	return nil
}

func init() {
	source.Register("file", func() source.Adapter { return &driver{} })
}
