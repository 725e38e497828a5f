package stdout

import (
	"bufio"
	"fmt"
	"os"
	"sync"
	"time"

	"sluice/sink"
)

/* ────────── public YAML config ────────── */
type Config struct {
	DelayMS int `yaml:"delay_ms"` // artificial per-push delay
	FlushMS int `yaml:"flush_ms"` // 0 = flush on every push
}

/* ────────── driver ────────── */
type driver struct {
	cfg Config

	mu    sync.Mutex // guards w+timer
	w     *bufio.Writer
	timer *time.Timer // nil → no timer armed
}

/* ────────── sink.Adapter ────────── */
func (d *driver) Configure(raw any) error {
	c, ok := raw.(Config)
	if !ok {
		return fmt.Errorf("stdout-sink: expected Config, got %T", raw)
	}
	d.cfg = c
	d.w = bufio.NewWriter(os.Stdout)
	return nil
}

func (d *driver) Push(p []byte) error {
	if d.cfg.DelayMS > 0 {
		time.Sleep(time.Duration(d.cfg.DelayMS) * time.Millisecond)
	}

	d.mu.Lock()
	defer d.mu.Unlock()
	if _, err := d.w.Write(p); err != nil {
		return err
	}
	if d.cfg.FlushMS <= 0 {
		return d.w.Flush()
	}
	if d.timer == nil {
		d.timer = time.AfterFunc(
			time.Duration(d.cfg.FlushMS)*time.Millisecond,
			d.timerFlush,
		)
	}
	return nil
}

func (d *driver) Close() error {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.stopTimerLocked()
	if d.w == nil {
		return nil
	}
	return d.w.Flush()
}

/* ────────── internals ────────── */

// called by the background timer goroutine
func (d *driver) timerFlush() {
	d.mu.Lock()
	_ = d.w.Flush()
	d.timer = nil // re-arm on next Push
	d.mu.Unlock()
}

// must be called with d.mu held
func (d *driver) stopTimerLocked() {
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}

/* ────────── auto-register ────────── */
func init() {
	sink.Register("stdout", func() sink.Adapter { return &driver{} })
}
