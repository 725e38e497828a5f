package file

import (
	"bufio"
	"fmt"
	"os"

	"sluice/sink"
)

type Config struct {
	Path   string `yaml:"path"`
	Append bool   `yaml:"append"`
}

type driver struct {
	f *os.File
	w *bufio.Writer
}

func (d *driver) Configure(raw any) error {
	c, ok := raw.(Config)
	if !ok {
		return fmt.Errorf("file-sink: expected Config, got %T", raw)
	}
	if c.Path == "" {
		return fmt.Errorf("file-sink: path required")
	}
	flags := os.O_CREATE | os.O_WRONLY
	if c.Append {
		flags |= os.O_APPEND
	} else {
		flags |= os.O_TRUNC
	}
	f, err := os.OpenFile(c.Path, flags, 0o644)
	if err != nil {
		return err
	}
	d.f = f
	d.w = bufio.NewWriter(f)
	return nil
}

func (d *driver) Push(p []byte) error {
	_, err := d.w.Write(p)
	return err
}

func (d *driver) Close() error {
	if d.w == nil {
		return nil
	}
	if err := d.w.Flush(); err != nil {
		_ = d.f.Close()
		return err
	}
	return d.f.Close()
}

func init() {
	sink.Register("file", func() sink.Adapter { return &driver{} })
}
