package main

import (
	"context"
	"flag"
	"log"
	"os/signal"
	"syscall"

	"sluice/internal/engine"
	"sluice/internal/logging"

	_ "sluice/sink/file"
	_ "sluice/sink/kafka"
	_ "sluice/source/kafka"
)

func main() {
	var cfg engine.Config
	flag.StringVar(&cfg.PipelineYml, "pipeline", "", "pipeline YAML to run")
	flag.StringVar(&cfg.VarsFile, "vars", "", "variable table YAML (filter and serve modes)")
	flag.IntVar(&cfg.ServePort, "serve", 0, "serve the variable table as a gRPC resolver on this port")
	flag.IntVar(&cfg.MetricsPort, "metrics-port", 0, "expose prometheus metrics on this port (0 = off)")
	flag.StringVar(&cfg.Rewrite.Start, "start", "", "placeholder start pattern (filter mode)")
	flag.StringVar(&cfg.Rewrite.End, "end", "", "placeholder end pattern (filter mode)")
	flag.IntVar(&cfg.Rewrite.MaxNameLen, "max-name-len", 0, "longest placeholder name considered (filter mode)")
	flag.BoolVar(&cfg.Rewrite.Strict, "strict", false, "fail on unresolved placeholders (filter mode)")
	flag.Parse()

	logging.InitFromEnv()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	e, err := engine.Bootstrap(cfg)
	if err != nil {
		log.Fatalf("bootstrap: %v", err)
	}
	if err := e.Run(ctx); err != nil && ctx.Err() == nil {
		log.Fatalf("sluice: %v", err)
	}
}
