package observability

// https://opentelemetry.io/docs/languages/go/exporters/

import (
	"context"
	"time"

	prom "github.com/prometheus/client_golang/prometheus"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/prometheus"
	"go.opentelemetry.io/otel/exporters/stdout/stdoutmetric"
	"go.opentelemetry.io/otel/sdk/metric"
)

// Shutdown flushes the pending data points and stops the exporter.
type Shutdown func(ctx context.Context) error

// InstallConsoleExporter installs a global meter provider printing every
// instrument, the allocator stats included, on each interval.
// Serves for test/dev environment.
func InstallConsoleExporter(interval, timeout time.Duration, opts ...stdoutmetric.Option) (Shutdown, error) {
	exporter, err := stdoutmetric.New(opts...)
	if err != nil {
		return nil, err
	}
	mp := metric.NewMeterProvider(metric.WithReader(metric.NewPeriodicReader(
		exporter,
		metric.WithInterval(interval),
		metric.WithTimeout(timeout),
	)))
	otel.SetMeterProvider(mp)
	return mp.Shutdown, nil
}

// InstallPrometheusExporter installs a global meter provider collected by
// reg. A nil reg means the prometheus default registerer.
func InstallPrometheusExporter(reg prom.Registerer) (Shutdown, error) {
	opts := make([]prometheus.Option, 0, 1)
	if reg != nil {
		opts = append(opts, prometheus.WithRegisterer(reg))
	}
	exporter, err := prometheus.New(opts...)
	if err != nil {
		return nil, err
	}
	mp := metric.NewMeterProvider(metric.WithReader(exporter))
	otel.SetMeterProvider(mp)
	return mp.Shutdown, nil
}
