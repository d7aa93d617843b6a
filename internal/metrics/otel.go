package metrics

import (
	"context"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetrichttp"
	promexporter "go.opentelemetry.io/otel/exporters/prometheus"
	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	semconv "go.opentelemetry.io/otel/semconv/v1.24.0"
)

var (
	promReaderFactory = prometheusComponents
	otlpReaderFactory = buildOTLPReader
	instrumentFactory = newOtelInstruments
)

// TelemetryConfig controls how metrics are exported.
type TelemetryConfig struct {
	Enabled      bool
	Port         string
	ServiceName  string
	OtlpEndpoint string
	OtlpInsecure bool
}

// Setup configures OpenTelemetry metrics with a Prometheus exporter and
// optional OTLP exporter. It returns a Recorder, the Prometheus HTTP
// handler, and a shutdown function.
func Setup(ctx context.Context, cfg TelemetryConfig) (*Recorder, http.Handler, func(context.Context) error, error) {
	if !cfg.Enabled {
		return NewRecorder(), nil, func(context.Context) error { return nil }, nil
	}

	if cfg.ServiceName == "" {
		cfg.ServiceName = "leaguehub"
	}

	promReader, promHandler, err := promReaderFactory()
	if err != nil {
		return nil, nil, nil, err
	}

	opts := []sdkmetric.Option{sdkmetric.WithReader(promReader)}

	if cfg.OtlpEndpoint != "" {
		otlpReader, err := otlpReaderFactory(ctx, cfg.OtlpEndpoint, cfg.OtlpInsecure)
		if err != nil {
			return nil, nil, nil, err
		}
		opts = append(opts, sdkmetric.WithReader(otlpReader))
	}

	res, err := resource.New(ctx,
		resource.WithAttributes(semconv.ServiceName(cfg.ServiceName)),
	)
	if err != nil {
		return nil, nil, nil, err
	}

	opts = append(opts, sdkmetric.WithResource(res))

	provider := sdkmetric.NewMeterProvider(opts...)

	otelInst, err := instrumentFactory(provider)
	if err != nil {
		return nil, nil, nil, err
	}

	rec := newRecorder(otelInst)
	shutdown := func(c context.Context) error {
		return provider.Shutdown(c)
	}

	return rec, promHandler, shutdown, nil
}

func buildOTLPReader(ctx context.Context, endpoint string, insecure bool) (sdkmetric.Reader, error) {
	otlpOpts := []otlpmetrichttp.Option{otlpmetrichttp.WithEndpoint(endpoint)}
	if insecure {
		otlpOpts = append(otlpOpts, otlpmetrichttp.WithInsecure())
	}
	otlpExp, err := otlpmetrichttp.New(ctx, otlpOpts...)
	if err != nil {
		return nil, err
	}
	return sdkmetric.NewPeriodicReader(otlpExp, sdkmetric.WithInterval(15*time.Second)), nil
}

func prometheusComponents() (sdkmetric.Reader, http.Handler, error) {
	reg := prometheus.NewRegistry()
	promExp, err := promexporter.New(promexporter.WithRegisterer(reg))
	if err != nil {
		return nil, nil, err
	}
	return promExp, promhttp.HandlerFor(reg, promhttp.HandlerOpts{}), nil
}

type otelInstruments struct {
	meter            metric.Meter
	requests         metric.Int64Counter
	requestLatencyMs metric.Float64Histogram
	mutations        metric.Int64Counter
	authTransitions  metric.Int64Counter
	persistFailures  metric.Int64Counter
	notifications    metric.Int64Counter
}

func newOtelInstruments(provider metric.MeterProvider) (*otelInstruments, error) {
	meter := provider.Meter("leaguehub")

	requests, err := meter.Int64Counter("http_requests_total")
	if err != nil {
		return nil, err
	}
	requestLatency, err := meter.Float64Histogram("http_request_duration_ms")
	if err != nil {
		return nil, err
	}
	mutations, err := meter.Int64Counter("registry_mutations_total")
	if err != nil {
		return nil, err
	}
	authTransitions, err := meter.Int64Counter("auth_transitions_total")
	if err != nil {
		return nil, err
	}
	persistFailures, err := meter.Int64Counter("persist_failures_total")
	if err != nil {
		return nil, err
	}
	notificationsEmitted, err := meter.Int64Counter("notifications_emitted_total")
	if err != nil {
		return nil, err
	}

	return &otelInstruments{
		meter:            meter,
		requests:         requests,
		requestLatencyMs: requestLatency,
		mutations:        mutations,
		authTransitions:  authTransitions,
		persistFailures:  persistFailures,
		notifications:    notificationsEmitted,
	}, nil
}

func (o *otelInstruments) recordHTTPRequest(method, path string, status int, duration time.Duration) {
	if o == nil {
		return
	}
	attrs := []attribute.KeyValue{
		attribute.String(AttrMethod, method),
		attribute.String(AttrPath, path),
		attribute.Int(AttrStatus, status),
	}
	o.count(o.requests, attrs...)
	o.observe(o.requestLatencyMs, float64(duration.Milliseconds()), attrs...)
}

func (o *otelInstruments) recordMutation(op string, err error) {
	if o == nil {
		return
	}
	outcome := OutcomeOK
	if err != nil {
		outcome = OutcomeRejected
	}
	o.count(o.mutations,
		attribute.String(AttrOp, op),
		attribute.String(AttrOutcome, outcome),
	)
}

func (o *otelInstruments) recordAuthTransition(from, to string) {
	if o == nil {
		return
	}
	o.count(o.authTransitions,
		attribute.String(AttrFrom, from),
		attribute.String(AttrTo, to),
	)
}

func (o *otelInstruments) recordPersistFailure(record string) {
	if o == nil {
		return
	}
	o.count(o.persistFailures, attribute.String(AttrRecord, record))
}

func (o *otelInstruments) recordNotification(kind string) {
	if o == nil {
		return
	}
	o.count(o.notifications, attribute.String(AttrType, kind))
}

func (o *otelInstruments) count(counter metric.Int64Counter, attrs ...attribute.KeyValue) {
	if counter == nil {
		return
	}
	counter.Add(context.Background(), 1, metric.WithAttributes(attrs...))
}

func (o *otelInstruments) observe(hist metric.Float64Histogram, value float64, attrs ...attribute.KeyValue) {
	if hist == nil {
		return
	}
	hist.Record(context.Background(), value, metric.WithAttributes(attrs...))
}
