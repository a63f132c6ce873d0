// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package trace builds the tracer the VM opens a span with for every call.
package trace

import (
	"context"
	"errors"
	"time"

	"github.com/ava-labs/avalanchego/trace"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/zipkin"
	"go.opentelemetry.io/otel/sdk/resource"

	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.4.0"
	oteltrace "go.opentelemetry.io/otel/trace"
)

const (
	exportTimeout = 10 * time.Second
	// shutdownTimeout exceeds exportTimeout so in-flight exports finish.
	shutdownTimeout = 15 * time.Second

	DefaultEndpoint = "http://localhost:9411/api/v2/spans"
)

var ErrMissingEndpoint = errors.New("trace endpoint not set")

type Config struct {
	Enabled bool `yaml:"enabled"`

	// SampleRate is the fraction of calls traced. Values >= 1 trace every
	// call and values <= 0 none.
	SampleRate float64 `yaml:"sampleRate"`

	// Endpoint is the zipkin collector spans are exported to.
	Endpoint string `yaml:"endpoint"`
	Service  string `yaml:"service"`
	Version  string `yaml:"version"`
}

func NewDefaultConfig() Config {
	return Config{
		SampleRate: 1,
		Endpoint:   DefaultEndpoint,
		Service:    "curvevm",
	}
}

var _ trace.Tracer = (*tracer)(nil)

type tracer struct {
	oteltrace.Tracer

	// nil when tracing is disabled
	tp *sdktrace.TracerProvider
}

func (t *tracer) Close() error {
	if t.tp == nil {
		return nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return t.tp.Shutdown(ctx)
}

// New returns a no-op tracer unless [cfg] enables tracing.
func New(cfg Config) (trace.Tracer, error) {
	if !cfg.Enabled {
		return Noop(cfg.Service), nil
	}
	if len(cfg.Endpoint) == 0 {
		return nil, ErrMissingEndpoint
	}

	exporter, err := zipkin.New(cfg.Endpoint)
	if err != nil {
		return nil, err
	}
	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter, sdktrace.WithExportTimeout(exportTimeout)),
		sdktrace.WithResource(
			resource.NewWithAttributes(
				semconv.SchemaURL,
				attribute.String("version", cfg.Version),
				semconv.ServiceNameKey.String(cfg.Service),
			),
		),
		sdktrace.WithSampler(sdktrace.TraceIDRatioBased(cfg.SampleRate)),
	)
	return &tracer{
		Tracer: tp.Tracer(cfg.Service),
		tp:     tp,
	}, nil
}

// Noop returns a tracer that records nothing.
func Noop(name string) trace.Tracer {
	return &tracer{
		Tracer: oteltrace.NewNoopTracerProvider().Tracer(name),
	}
}
