// Package engine wires the process-level pieces (pipeline runner, resolver
// server, metrics) for the sluice binary.
package engine

import (
	"context"

	"sluice/internal/pipeline"
	"sluice/internal/transport"
)

type Engine struct {
	transport *transport.Server
	runner    *pipeline.Runner
}

// Run blocks until the work is done or ctx is cancelled. In server mode that
// means serving until shutdown; in pipeline and filter mode it means draining
// the source.
func (e *Engine) Run(ctx context.Context) error {
	if e.transport != nil {
		go func() {
			<-ctx.Done()
			e.transport.Stop()
		}()
		return e.transport.Serve()
	}
	return e.runner.Run(ctx)
}
