/*
Copyright 2024 The Kubernetes Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package app

import (
	"context"
	"fmt"
	"io"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
	"github.com/spf13/pflag"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"google.golang.org/grpc"
	"k8s.io/klog/v2"
)

const serviceName = "paretorank"

type observabilityOptions struct {
	metricsFile  string
	otlpEndpoint string
	otlpInsecure bool
}

func (o *observabilityOptions) AddFlags(fs *pflag.FlagSet) {
	fs.StringVar(&o.metricsFile, "metrics-file", o.metricsFile, `Write the run metrics in Prometheus text format to this file, or to stderr when "-".`)
	fs.StringVar(&o.otlpEndpoint, "otlp-endpoint", o.otlpEndpoint, "Export run and generation spans to this OTLP gRPC endpoint. Tracing is off when empty.")
	fs.BoolVar(&o.otlpInsecure, "otlp-insecure", o.otlpInsecure, "Connect to the OTLP endpoint without TLS.")
}

// setupTracing installs a global tracer provider exporting to the OTLP
// endpoint. The returned function flushes and stops it.
func (o *observabilityOptions) setupTracing(ctx context.Context) (func(context.Context) error, error) {
	if o.otlpEndpoint == "" {
		return func(context.Context) error { return nil }, nil
	}

	opts := []otlptracegrpc.Option{
		otlptracegrpc.WithEndpoint(o.otlpEndpoint),
		otlptracegrpc.WithDialOption(grpc.WithUserAgent(serviceName)),
	}
	if o.otlpInsecure {
		opts = append(opts, otlptracegrpc.WithInsecure())
	}
	exporter, err := otlptracegrpc.New(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("creating trace exporter: %w", err)
	}

	provider := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(resource.NewSchemaless(attribute.String("service.name", serviceName))),
	)
	otel.SetTracerProvider(provider)
	klog.FromContext(ctx).V(2).Info("Exporting traces", "endpoint", o.otlpEndpoint)
	return provider.Shutdown, nil
}

func (o *observabilityOptions) writeMetrics(stderr io.Writer, g prometheus.Gatherer) error {
	switch o.metricsFile {
	case "":
		return nil
	case "-":
		return writeMetricFamilies(stderr, g)
	}
	if err := prometheus.WriteToTextfile(o.metricsFile, g); err != nil {
		return fmt.Errorf("writing metrics: %w", err)
	}
	return nil
}

func writeMetricFamilies(w io.Writer, g prometheus.Gatherer) error {
	families, err := g.Gather()
	if err != nil {
		return fmt.Errorf("gathering metrics: %w", err)
	}
	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return fmt.Errorf("writing metrics: %w", err)
		}
	}
	return nil
}

// shutdownTracing stops the provider, logging instead of failing the
// command when spans cannot be flushed.
func shutdownTracing(ctx context.Context, shutdown func(context.Context) error) {
	if err := shutdown(context.WithoutCancel(ctx)); err != nil {
		klog.FromContext(ctx).Error(err, "Failed to flush traces")
	}
}
