package source

import (
	"context"
	"fmt"
)

// EmitFunc hands one chunk of raw input to the pipeline. The receiver takes
// ownership of the slice. A returned error stops the source.
type EmitFunc func(chunk []byte) error

// Adapter is the common behaviour every input driver exposes. Run delivers
// chunks strictly in order until the input ends (nil) or ctx is done.
type Adapter interface {
	Configure(cfg any) error
	Run(ctx context.Context, emit EmitFunc) error
	Close() error
}

/*──────── registry ───────*/

type factory = func() Adapter

var reg = map[string]factory{}

// Register is called from each driver's init() or main() factory map.
func Register(name string, f factory) { reg[name] = f }

func NewAdapter(name string) (Adapter, error) {
	if f, ok := reg[name]; ok {
		return f(), nil
	}
	return nil, fmt.Errorf("unknown source %q", name)
}
