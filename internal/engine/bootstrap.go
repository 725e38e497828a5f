package engine

import (
	"fmt"

	"sluice/internal/config"
	"sluice/internal/pipeline"
	"sluice/internal/rewrite"
	"sluice/internal/spec"
	"sluice/internal/telemetry"
	"sluice/internal/transport"
	"sluice/sink"
	"sluice/sink/stdout"
	"sluice/source"
	srcfile "sluice/source/file"
)

// Config selects one of the three run modes. Exactly one of ServePort,
// PipelineYml, or the default filter mode applies.
type Config struct {
	PipelineYml string // run a YAML pipeline
	VarsFile    string // variable table (filter and serve modes)
	ServePort   int    // expose the table as a gRPC resolver instead of rewriting
	MetricsPort int    // 0 disables /metrics

	Rewrite spec.RewriteSpec // flag overrides used in filter mode
}

func Bootstrap(cfg Config) (*Engine, error) {
	if cfg.MetricsPort > 0 {
		telemetry.Expose(cfg.MetricsPort)
	}

	if cfg.ServePort > 0 {
		res, err := tableResolver(cfg.VarsFile)
		if err != nil {
			return nil, err
		}
		srv, err := transport.StartServer(cfg.ServePort, res)
		if err != nil {
			return nil, fmt.Errorf("transport: %w", err)
		}
		return &Engine{transport: srv}, nil
	}

	if cfg.PipelineYml != "" {
		runner, err := pipeline.Compile(cfg.PipelineYml)
		if err != nil {
			return nil, fmt.Errorf("pipeline: %w", err)
		}
		return &Engine{runner: runner}, nil
	}

	// filter mode: stdin through the rewriter to stdout
	runner, err := filterRunner(cfg)
	if err != nil {
		return nil, err
	}
	return &Engine{runner: runner}, nil
}

func tableResolver(varsFile string) (rewrite.Resolver, error) {
	if varsFile == "" {
		return rewrite.Vars{}, nil
	}
	return config.LoadVars(varsFile)
}

func filterRunner(cfg Config) (*pipeline.Runner, error) {
	r := pipeline.NewRunner()

	res, err := tableResolver(cfg.VarsFile)
	if err != nil {
		return nil, err
	}
	r.SetResolver(res)
	r.SetOptions(pipeline.OptionsFrom(cfg.Rewrite))

	src, err := source.NewAdapter("file")
	if err != nil {
		return nil, err
	}
	if err := src.Configure(srcfile.Config{Path: "-"}); err != nil {
		return nil, err
	}
	r.SetSource(src)

	out, err := sink.NewAdapter("stdout")
	if err != nil {
		return nil, err
	}
	if err := out.Configure(stdout.Config{}); err != nil {
		return nil, err
	}
	r.AddSink(out)
	return r, nil
}
