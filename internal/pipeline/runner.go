// Package pipeline assembles a source, the rewrite engine, and one or more
// sinks from a YAML pipeline spec, and drives bytes through them.
package pipeline

import (
	"context"
	"errors"
	"io"

	"sluice/internal/logging"
	"sluice/internal/rewrite"
	"sluice/internal/telemetry"
	"sluice/sink"
	"sluice/source"
)

type Runner struct {
	source   source.Adapter
	sinks    []sink.Adapter
	resolver rewrite.Resolver
	opts     []rewrite.Option

	closers []io.Closer // extra resources released after Run (e.g. a gRPC resolver)
}

func NewRunner() *Runner { return &Runner{} }

func (r *Runner) SetSource(s source.Adapter)       { r.source = s }
func (r *Runner) AddSink(s sink.Adapter)           { r.sinks = append(r.sinks, s) }
func (r *Runner) SetResolver(res rewrite.Resolver) { r.resolver = res }
func (r *Runner) SetOptions(opts []rewrite.Option) { r.opts = opts }

func (r *Runner) addCloser(c io.Closer) { r.closers = append(r.closers, c) }

// pushChunk fans one rewritten chunk out to every sink.
func (r *Runner) pushChunk(p []byte) error {
	for _, s := range r.sinks {
		if err := s.Push(p); err != nil {
			return err
		}
	}
	telemetry.BytesOut.Add(float64(len(p)))
	return nil
}

// Run consumes the source until it ends or ctx is cancelled, rewriting
// everything in between. All sinks and the source are closed on the way out.
func (r *Runner) Run(ctx context.Context) error {
	if r.source == nil {
		return errors.New("runner: no source configured")
	}
	if r.resolver == nil {
		r.resolver = rewrite.Vars{}
	}

	eng, err := rewrite.NewEngine(&countingResolver{r.resolver}, r.pushChunk, r.opts...)
	if err != nil {
		return err
	}

	runErr := r.source.Run(ctx, func(chunk []byte) error {
		telemetry.BytesIn.Add(float64(len(chunk)))
		return eng.Process(ctx, chunk)
	})
	if runErr == nil {
		runErr = eng.Finish()
	}

	if cerr := r.source.Close(); cerr != nil && runErr == nil {
		runErr = cerr
	}
	for _, s := range r.sinks {
		if cerr := s.Close(); cerr != nil && runErr == nil {
			runErr = cerr
		}
	}
	for _, c := range r.closers {
		_ = c.Close()
	}

	if runErr != nil {
		logging.L().Error("pipeline stopped", "err", runErr)
	}
	return runErr
}

// countingResolver feeds the resolver metrics without changing outcomes.
type countingResolver struct {
	inner rewrite.Resolver
}

func (c *countingResolver) Resolve(ctx context.Context, name string) (rewrite.Value, error) {
	val, err := c.inner.Resolve(ctx, name)
	switch {
	case err != nil:
		telemetry.ResolveErrors.Inc()
	case val.Found():
		telemetry.PlaceholdersResolved.Inc()
	default:
		telemetry.PlaceholdersPassed.Inc()
	}
	return val, err
}
