package sink

import "fmt"

// Adapter is the common behaviour every sink exposes. Push consumes one
// output chunk; the slice is only valid for the duration of the call, so
// drivers that hand it to asynchronous machinery must copy. Blocking in Push
// is how a slow sink exerts backpressure on the whole pipeline.
type Adapter interface {
	Configure(cfg any) error // driver-specific YAML ⇒ struct
	Push(p []byte) error
	Close() error // flushes and is idempotent
}

/*──────── registry ───────*/

type factory = func() Adapter

var reg = map[string]factory{}

func Register(name string, f factory) { reg[name] = f }

func NewAdapter(name string) (Adapter, error) {
	if f, ok := reg[name]; ok {
		return f(), nil
	}
	return nil, fmt.Errorf("unknown sink %q", name)
}
