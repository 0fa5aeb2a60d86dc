// Package telemetry configures OpenTelemetry tracing for the server.
package telemetry

import (
	"context"
	"fmt"
	"io"
	"os"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.4.0"
	"go.opentelemetry.io/otel/trace"
)

const tracerName = "github.com/shehryarbajwa/browserbase-orchestrator"

// Span attribute keys
var (
	AttrSessionID = attribute.Key("session.id")
	AttrCommand   = attribute.Key("command.name")
	AttrKind      = attribute.Key("command.kind")
)

// Provider wraps the SDK tracer provider
type Provider struct {
	provider *sdktrace.TracerProvider
}

// Options configures tracing
type Options struct {
	ServiceName string
	// Stdout exports spans to standard output; otherwise spans are
	// sampled but not exported.
	Stdout bool
	// Writer overrides the stdout destination, for tests.
	Writer io.Writer
}

// NewProvider builds the tracer provider and installs it globally.
func NewProvider(opts Options) (*Provider, error) {
	res, err := resource.New(
		context.Background(),
		resource.WithAttributes(
			semconv.ServiceNameKey.String(opts.ServiceName),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create resource: %w", err)
	}

	tpOpts := []sdktrace.TracerProviderOption{
		sdktrace.WithResource(res),
		sdktrace.WithSampler(sdktrace.AlwaysSample()),
	}

	if opts.Stdout || opts.Writer != nil {
		w := opts.Writer
		if w == nil {
			w = os.Stdout
		}
		exporter, err := stdouttrace.New(stdouttrace.WithWriter(w))
		if err != nil {
			return nil, fmt.Errorf("failed to create trace exporter: %w", err)
		}
		tpOpts = append(tpOpts, sdktrace.WithSyncer(exporter))
	}

	provider := sdktrace.NewTracerProvider(tpOpts...)
	otel.SetTracerProvider(provider)

	return &Provider{provider: provider}, nil
}

// Tracer returns the server's tracer.
func (p *Provider) Tracer() trace.Tracer {
	return p.provider.Tracer(tracerName)
}

// Shutdown flushes and stops the provider.
func (p *Provider) Shutdown(ctx context.Context) error {
	return p.provider.Shutdown(ctx)
}

// Tracer returns the globally installed tracer.
func Tracer() trace.Tracer {
	return otel.Tracer(tracerName)
}
