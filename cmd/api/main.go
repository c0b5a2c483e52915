package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"sync"
	"syscall"
	"time"

	"geraetewart-server/cmd/api/wire"
	"geraetewart-server/cmd/config"
	"geraetewart-server/internal/infra/async"
	"geraetewart-server/internal/infra/httpserver"

	"go.opentelemetry.io/contrib/instrumentation/runtime"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetricgrpc"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	"go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	"go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.4.0"
)

var (
	logLevelMapping = map[string]slog.Level{
		"debug": slog.LevelDebug,
		"info":  slog.LevelInfo,
		"warn":  slog.LevelWarn,
		"error": slog.LevelError,
	}
)

func main() {
	config := config.LoadConfig()

	level := logLevelMapping[config.General.LogLevel]
	handler := slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{AddSource: true, Level: level, ReplaceAttr: slogReplaceAttr})
	slog.SetDefault(slog.New(handler))
	slog.Info("🚒 geraetewart server is initializing")
	slog.Debug("config loaded", "data", config)

	shutdownOtel := startOTel()

	internalBroker := async.NewLocalBroker()

	httpServer := httpserver.NewServer(
		httpserver.ServerOpts{
			Addr:           config.HTTP.Addr,
			AllowedOrigins: config.HTTP.AllowedOrigins,
		},
		handleWireInjector(wire.InitializeEquipmentController()).(httpserver.Controller),
		handleWireInjector(wire.InitializeMasterDataController()).(httpserver.Controller),
		handleWireInjector(wire.InitializeTemplateController()).(httpserver.Controller),
		handleWireInjector(wire.InitializeRecordController()).(httpserver.Controller),
		handleWireInjector(wire.InitializeGenerationController(internalBroker)).(httpserver.Controller),
		handleWireInjector(wire.InitializeRunStreamController(internalBroker)).(httpserver.Controller),
		handleWireInjector(wire.InitializeMissionController()).(httpserver.Controller),
		handleWireInjector(wire.InitializeSettingsController()).(httpserver.Controller),
		handleWireInjector(wire.InitializeReportController()).(httpserver.Controller),
	)

	appCtx, cancelFn := context.WithCancel(context.Background())
	go httpServer.Run()

	var wg sync.WaitGroup
	workers := make([]async.Worker, 0, 2)

	if config.Scheduler.Enabled {
		ticker := time.NewTicker(config.Scheduler.TickInterval)
		generationWorker := handleWireInjector(wire.InitializeGenerationWorker(ticker, config.Scheduler.Cron, internalBroker)).(async.Worker)
		workers = append(workers, generationWorker)
	}

	emailWorker := handleWireInjector(wire.InitializeEmailWorker(internalBroker)).(async.Worker)
	workers = append(workers, emailWorker)

	for _, worker := range workers {
		wg.Add(1)
		go worker.Run(appCtx, wg.Done)
	}

	signalChannel := make(chan os.Signal, 2)
	signal.Notify(signalChannel, os.Interrupt, syscall.SIGTERM)

	<-signalChannel
	shutdownOtel()

	cancelFn()
	for _, worker := range workers {
		worker.Shutdown()
	}
	wg.Wait()
	httpServer.Shutdown()
	internalBroker.Stop()
	slog.Info("good bye!!!")
	os.Exit(0)
}

func slogReplaceAttr(groups []string, a slog.Attr) slog.Attr {
	if a.Key == slog.SourceKey {
		source := a.Value.Any().(*slog.Source)
		source.File = filepath.Base(source.File)
		return slog.Any(a.Key, source)
	}
	return a
}

type ShutdownFunc func() error

const (
	_defautlEndpoint = "localhost:4317"
	_collectPeriod   = 30 * time.Second
	_collectTimeout  = 35 * time.Second
	_minimumInterval = time.Minute
)

var (
	_histogramBuckets = []float64{5, 10, 25, 50, 75, 100, 250, 500, 750, 1000, 2500, 5000, 7500, 10000, 25000, 50000, 100000}
)

func startOTel() ShutdownFunc {
	slog.Info("starting OTel providers")
	shutdown, err := otelStart(context.Background())
	if err != nil {
		panic(err)
	}

	return shutdown
}

func otelStart(ctx context.Context) (ShutdownFunc, error) {
	metricsShutdownFunc, err := startMetricsProvider(ctx)
	if err != nil {
		return nil, err
	}

	traceShutdownFunc, err := startTraceProvider(ctx)
	if err != nil {
		return nil, err
	}

	return func() error {
		if err := metricsShutdownFunc(); err != nil {
			return err
		}
		if err := traceShutdownFunc(); err != nil {
			return err
		}
		return nil
	}, nil
}

func startTraceProvider(ctx context.Context) (ShutdownFunc, error) {
	exp, err := newTraceExporter(ctx)
	if err != nil {
		return nil, err
	}

	tp := trace.NewTracerProvider(
		trace.WithBatcher(exp),
		trace.WithResource(resource.NewWithAttributes(
			semconv.SchemaURL,
			semconv.ServiceNameKey.String("geraetewart-server"),
		)),
	)
	otel.SetTracerProvider(tp)

	return func() error {
		return tp.Shutdown(ctx)
	}, nil
}

func newTraceExporter(ctx context.Context) (trace.SpanExporter, error) {
	endpoint := _defautlEndpoint
	if value, ok := os.LookupEnv("GERAETEWART_SERVER_OTELCOL_ENDPOINT"); ok {
		endpoint = value
	}

	return otlptracegrpc.New(
		ctx,
		otlptracegrpc.WithEndpoint(endpoint),
		otlptracegrpc.WithInsecure(),
	)
}

func startMetricsProvider(ctx context.Context) (ShutdownFunc, error) {
	exp, err := newMetricExporter(ctx)
	if err != nil {
		return nil, err
	}

	mp := newMeterProvider(exp)
	otel.SetMeterProvider(mp)

	err = runtime.Start(runtime.WithMinimumReadMemStatsInterval(_minimumInterval))
	if err != nil {
		return nil, err
	}

	return func() error {
		return mp.Shutdown(ctx)
	}, nil
}

func newMetricExporter(ctx context.Context) (metric.Exporter, error) {
	endpoint := _defautlEndpoint
	if value, ok := os.LookupEnv("GERAETEWART_SERVER_OTELCOL_ENDPOINT"); ok {
		endpoint = value
	}

	return otlpmetricgrpc.New(
		ctx,
		otlpmetricgrpc.WithEndpoint(endpoint),
		otlpmetricgrpc.WithInsecure(),
	)
}

func newMeterProvider(metricExporter metric.Exporter) *metric.MeterProvider {
	return metric.NewMeterProvider(
		metric.WithReader(
			metric.NewPeriodicReader(
				metricExporter,
				metric.WithTimeout(_collectTimeout),
				metric.WithInterval(_collectPeriod))),
		metric.WithView(metric.NewView(
			metric.Instrument{
				Name: "*",
				Kind: metric.InstrumentKindHistogram,
			},
			metric.Stream{
				Aggregation: metric.AggregationExplicitBucketHistogram{
					Boundaries: _histogramBuckets,
				},
			},
		)),
	)
}

func handleWireInjector(value any, err error) any {
	if err != nil {
		panic(err)
	}

	return value
}
