package pipeline

import (
	"fmt"

	"sluice/internal/config"
	"sluice/internal/logging"
	"sluice/internal/rewrite"
	"sluice/internal/spec"
	"sluice/internal/transport"
	"sluice/sink"
	sinkfile "sluice/sink/file"
	sinkkafka "sluice/sink/kafka"
	"sluice/sink/stdout"
	"sluice/source"
	srcfile "sluice/source/file"
	srckafka "sluice/source/kafka"
)

// Compile turns a pipeline YAML into a ready-to-run Runner.
func Compile(path string) (*Runner, error) {
	cfg, err := config.LoadPipelineSpec(path)
	if err != nil {
		return nil, err
	}
	r := NewRunner()

	res, closer, err := buildResolver(cfg.Resolver)
	if err != nil {
		return nil, err
	}
	r.SetResolver(res)
	if closer != nil {
		r.addCloser(closer)
	}
	r.SetOptions(OptionsFrom(cfg.Rewrite))

	src, err := buildSource(cfg)
	if err != nil {
		return nil, err
	}
	r.SetSource(src)

	if len(cfg.Sinks) == 0 {
		cfg.Sinks = []string{"stdout"}
	}
	for _, name := range cfg.Sinks {
		sDrv, err := sink.NewAdapter(name)
		if err != nil {
			return nil, err
		}
		switch name {
		case "stdout":
			err = sDrv.Configure(stdout.Config(cfg.SinkConfigs.Stdout))
		case "file":
			err = sDrv.Configure(sinkfile.Config(cfg.SinkConfigs.File))
		case "kafka":
			err = sDrv.Configure(sinkkafka.Config(cfg.SinkConfigs.Kafka))
		default:
			err = fmt.Errorf("no config block for sink %q", name)
		}
		if err != nil {
			return nil, err
		}
		r.AddSink(sDrv)
	}
	return r, nil
}

// OptionsFrom maps the YAML rewrite block onto engine options, leaving engine
// defaults in place for zero values.
func OptionsFrom(rs spec.RewriteSpec) []rewrite.Option {
	var opts []rewrite.Option
	if rs.Start != "" || rs.End != "" {
		start, end := rs.Start, rs.End
		if start == "" {
			start = rewrite.DefaultStartPattern
		}
		if end == "" {
			end = rewrite.DefaultEndPattern
		}
		opts = append(opts, rewrite.WithPatterns(start, end))
	}
	if rs.MaxNameLen > 0 {
		opts = append(opts, rewrite.WithMaxNameLen(rs.MaxNameLen))
	}
	if rs.Strict {
		opts = append(opts, rewrite.WithStrict())
	}
	if rs.Log {
		opts = append(opts, rewrite.WithLogger(logging.L()))
	}
	return opts
}

func buildResolver(rs spec.ResolverSpec) (rewrite.Resolver, *transport.Client, error) {
	switch rs.Kind {
	case "", "table":
		if rs.Vars == "" {
			return rewrite.Vars{}, nil, nil
		}
		vars, err := config.LoadVars(rs.Vars)
		if err != nil {
			return nil, nil, err
		}
		return vars, nil, nil
	case "grpc":
		if rs.Address == "" {
			return nil, nil, fmt.Errorf("resolver kind grpc requires an address")
		}
		cli, err := transport.Dial(rs.Address)
		if err != nil {
			return nil, nil, err
		}
		return cli, cli, nil
	default:
		return nil, nil, fmt.Errorf("unsupported resolver kind %q", rs.Kind)
	}
}

func buildSource(cfg spec.File) (source.Adapter, error) {
	switch cfg.Source.Kind {
	case "", "file", "stdin":
		src, err := source.NewAdapter("file")
		if err != nil {
			return nil, err
		}
		path := cfg.Source.Path
		if cfg.Source.Kind == "stdin" {
			path = "-"
		}
		if err := src.Configure(srcfile.Config{Path: path, ChunkBytes: cfg.Source.ChunkBytes}); err != nil {
			return nil, err
		}
		return src, nil
	case "kafka":
		driver := cfg.Source.Driver
		if driver == "" {
			driver = "sarama"
		}
		src, err := source.NewAdapter(driver)
		if err != nil {
			return nil, err
		}
		kc, err := srckafka.LoadConfig(cfg.Source.Config)
		if err != nil {
			return nil, err
		}
		if err := src.Configure(kc); err != nil {
			return nil, err
		}
		return src, nil
	default:
		return nil, fmt.Errorf("unsupported source %q", cfg.Source.Kind)
	}
}
