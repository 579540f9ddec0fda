// Command eval-demo runs the demonstration web service: a prompt passthrough
// to a language-model provider plus the /evaluate harness endpoint.
package main

import (
	"context"
	"log"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"

	"github.com/kashyap-bhatt15/eval-demo/config"
	"github.com/kashyap-bhatt15/eval-demo/logger"
	"github.com/kashyap-bhatt15/eval-demo/model"
	"github.com/kashyap-bhatt15/eval-demo/server"
)

func main() {
	ctx := context.Background()

	cfg := config.FromEnv()
	cfg.Logger = logger.NewDefaultLogger()

	// Fail-fast configuration check, before anything is served.
	if err := cfg.Validate(); err != nil {
		log.Fatal(err)
	}

	if cfg.Debug {
		exporter, err := stdouttrace.New(stdouttrace.WithPrettyPrint())
		if err != nil {
			log.Fatal(err)
		}
		tp := sdktrace.NewTracerProvider(sdktrace.WithBatcher(exporter))
		defer tp.Shutdown(ctx) //nolint:errcheck
		otel.SetTracerProvider(tp)
	}

	m, err := model.New(ctx, cfg)
	if err != nil {
		log.Fatal(err)
	}

	srv, err := server.New(cfg, m)
	if err != nil {
		log.Fatal(err)
	}

	if err := srv.Start(); err != nil {
		log.Fatal(err)
	}
}
