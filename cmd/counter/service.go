package main

import (
	"context"
	"os"

	"github.com/google/wire"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/sdk/trace"

	"github.com/weegigs/wee-counter-go/counter"
	"github.com/weegigs/wee-counter-go/presenter"
	"github.com/weegigs/wee-counter-go/we"
)

type App struct {
	Config    Config
	Presenter *presenter.CounterPresenter
	Journal   *we.Journal
	Log       *zerolog.Logger
	Access    *logrus.Logger
}

func NewCounter(cfg Config) (*counter.Counter, error) {
	if err := cfg.Counter.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid counter options")
	}

	return counter.FromOptions(cfg.Counter), nil
}

func NewJournal() *we.Journal {
	return we.NewJournal()
}

func NewLogger(cfg Config) (*zerolog.Logger, error) {
	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, errors.Wrap(err, "invalid log level")
	}

	logger := zerolog.New(cfg.Output).Level(level).With().Timestamp().Logger()
	return &logger, nil
}

func NewAccessLogger(cfg Config) (*logrus.Logger, error) {
	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, errors.Wrap(err, "invalid log level")
	}

	logger := logrus.New()
	logger.SetOutput(cfg.Output)
	logger.SetLevel(level)
	return logger, nil
}

func NewPresenter(c *counter.Counter, journal *we.Journal, log *zerolog.Logger) *presenter.CounterPresenter {
	return presenter.New(c, presenter.WithJournal(journal), presenter.Logger(log))
}

type Tracing struct{}

// NewTracing installs the configured exporter. The cleanup flushes pending spans.
func NewTracing(ctx context.Context, cfg Config) (Tracing, func(), error) {
	var exporter trace.SpanExporter
	var err error

	switch cfg.Trace {
	case TraceNone, "":
		return Tracing{}, func() {}, nil
	case TraceConsole:
		exporter, err = we.ConsoleExporter(cfg.Output)
	case TraceJaeger:
		exporter, err = we.JaegerExporter(os.Getenv("JAEGER_ENDPOINT"))
	case TraceHoneycomb:
		exporter, err = we.HoneycombExporter(ctx, os.Getenv("HONEYCOMB_API_KEY"), os.Getenv("HONEYCOMB_DATASET"))
	default:
		return Tracing{}, nil, errors.Errorf("unsupported trace exporter %q", cfg.Trace)
	}
	if err != nil {
		return Tracing{}, nil, errors.Wrap(err, "failed to create trace exporter")
	}

	shutdown := we.InstallTracing(exporter)
	return Tracing{}, func() { _ = shutdown(context.Background()) }, nil
}

func NewApp(cfg Config, p *presenter.CounterPresenter, journal *we.Journal, log *zerolog.Logger, access *logrus.Logger, _ Tracing) *App {
	return &App{
		Config:    cfg,
		Presenter: p,
		Journal:   journal,
		Log:       log,
		Access:    access,
	}
}

var Providers = wire.NewSet(
	NewCounter,
	NewJournal,
	NewLogger,
	NewAccessLogger,
	NewPresenter,
	NewTracing,
	NewApp,
)
