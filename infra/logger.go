package infra

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"go.opentelemetry.io/contrib/bridges/otelslog"
	"go.opentelemetry.io/otel/exporters/otlp/otlplog/otlploghttp"
	sdklog "go.opentelemetry.io/otel/sdk/log"
	"go.opentelemetry.io/otel/sdk/resource"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"

	"github.com/jrandrade/datastore-gateway/config"
	"github.com/jrandrade/datastore-gateway/utils"
)

// LoggerClient is the audit logger. Every handler outcome goes through it;
// it is a side-effect sink only and never fails a request: slog handlers
// swallow emission errors and the OTLP pipeline exports in the background.
type LoggerClient struct {
	logger   *slog.Logger
	provider *sdklog.LoggerProvider
}

// InitLoggerClient builds the audit logger. With an OTLP endpoint configured
// the entries are bridged to an OTLP/HTTP log exporter; otherwise they go to
// stdout.
func InitLoggerClient(cfg *config.EnvConfig) (*LoggerClient, error) {
	if cfg.Log.OTLPEndpoint == "" {
		return &LoggerClient{
			logger: slog.New(slog.NewTextHandler(os.Stdout, nil)),
		}, nil
	}

	res := resource.NewWithAttributes(
		semconv.SchemaURL,
		semconv.ServiceNameKey.String(cfg.ServiceName),
	)

	opts := []otlploghttp.Option{otlploghttp.WithEndpoint(cfg.Log.OTLPEndpoint)}
	if cfg.Log.OTLPInsecure {
		opts = append(opts, otlploghttp.WithInsecure())
	}
	exporter, err := otlploghttp.New(context.Background(), opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize OTLP log exporter: %w", err)
	}

	provider := sdklog.NewLoggerProvider(
		sdklog.WithProcessor(sdklog.NewBatchProcessor(exporter)),
		sdklog.WithResource(res),
	)

	return &LoggerClient{
		logger:   slog.New(otelslog.NewHandler(cfg.ServiceName, otelslog.WithLoggerProvider(provider))),
		provider: provider,
	}, nil
}

// NewNoopLogger returns a logger that discards everything. Test helper.
func NewNoopLogger() *LoggerClient {
	return &LoggerClient{
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

func (l *LoggerClient) InfoWithContextf(ctx context.Context, format string, args ...any) {
	l.logger.InfoContext(ctx, fmt.Sprintf(format, args...), l.requestAttrs(ctx)...)
}

func (l *LoggerClient) WarningWithContextf(ctx context.Context, format string, args ...any) {
	l.logger.WarnContext(ctx, fmt.Sprintf(format, args...), l.requestAttrs(ctx)...)
}

func (l *LoggerClient) ErrorWithContextf(ctx context.Context, err error, format string, args ...any) {
	attrs := l.requestAttrs(ctx)
	if err != nil {
		attrs = append(attrs, slog.String("error", err.Error()))
	}
	l.logger.ErrorContext(ctx, fmt.Sprintf(format, args...), attrs...)
}

func (l *LoggerClient) requestAttrs(ctx context.Context) []any {
	if id := utils.RequestIDFromContext(ctx); id != "" {
		return []any{slog.String("request_id", id)}
	}
	return nil
}

// Shutdown flushes any batched log records.
func (l *LoggerClient) Shutdown(ctx context.Context) error {
	if l.provider == nil {
		return nil
	}
	return l.provider.Shutdown(ctx)
}
