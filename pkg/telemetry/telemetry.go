// pkg/telemetry/telemetry.go

package telemetry

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	cerr "github.com/cockroachdb/errors"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	sdkresource "go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.21.0"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
)

var (
	tracer   trace.Tracer
	provider *sdktrace.TracerProvider
)

// Init configures OpenTelemetry; call this early in main(). Telemetry is
// opt-in: without the marker file a noop tracer is installed.
func Init(service string) error {
	if !IsEnabled() {
		tp := noop.NewTracerProvider()
		otel.SetTracerProvider(tp)
		tracer = tp.Tracer(service)
		return nil
	}

	dir, err := stateDir()
	if err != nil {
		return err
	}

	// Spans are appended as JSONL, one record per line.
	file, err := os.OpenFile(filepath.Join(dir, "telemetry.jsonl"), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return cerr.Wrap(err, "open telemetry file")
	}

	exp, err := stdouttrace.New(
		stdouttrace.WithWriter(file),
		stdouttrace.WithoutTimestamps(),
	)
	if err != nil {
		file.Close()
		return cerr.Wrap(err, "create telemetry exporter")
	}

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exp),
		sdktrace.WithResource(
			sdkresource.NewWithAttributes(
				semconv.SchemaURL,
				attribute.String("service.name", service),
				attribute.String("host.name", hostname()),
				attribute.String("user_id", AnonTelemetryID()),
			),
		),
	)

	otel.SetTracerProvider(tp)
	tracer = tp.Tracer(service)
	provider = tp
	return nil
}

// Shutdown flushes buffered spans and stops the provider. The batch exporter
// only writes on flush, so a short-lived CLI must call this before exiting
// or telemetry.jsonl stays empty.
func Shutdown(ctx context.Context) error {
	if provider == nil {
		return nil
	}
	if err := provider.Shutdown(ctx); err != nil {
		return cerr.Wrap(err, "shutdown tracer provider")
	}
	return nil
}

// Start begins a telemetry span with optional attributes.
func Start(ctx context.Context, name string, attrs ...attribute.KeyValue) (context.Context, trace.Span) {
	if ctx == nil {
		ctx = context.Background()
	}
	if tracer == nil {
		tp := noop.NewTracerProvider()
		tracer = tp.Tracer("genpass")
	}
	return tracer.Start(ctx, name, trace.WithAttributes(attrs...))
}

// IsEnabled reports whether the user has opted in to telemetry.
func IsEnabled() bool {
	home, err := os.UserHomeDir()
	if err != nil {
		return false
	}
	_, err = os.Stat(filepath.Join(home, ".genpass", "telemetry_on"))
	return err == nil
}

// AnonTelemetryID returns a stable anonymous identifier for this install.
func AnonTelemetryID() string {
	dir, err := stateDir()
	if err != nil {
		return "anonymous"
	}
	idPath := filepath.Join(dir, "telemetry_id")
	if raw, err := os.ReadFile(idPath); err == nil {
		if id := strings.TrimSpace(string(raw)); id != "" {
			return id
		}
	}
	id := uuid.NewString()
	if err := os.WriteFile(idPath, []byte(id+"\n"), 0o600); err != nil {
		return "anonymous"
	}
	return id
}

// TruncateArgs joins command arguments for span attributes, capped so that
// oversized input never lands in telemetry.
func TruncateArgs(args []string) string {
	full := strings.Join(args, " ")
	if len(full) > 256 {
		return full[:256] + "..."
	}
	return full
}

func stateDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", cerr.Wrap(err, "resolve home directory")
	}
	dir := filepath.Join(home, ".genpass")
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return "", cerr.Wrap(err, "create telemetry directory")
	}
	return dir, nil
}

func hostname() string {
	if h, err := os.Hostname(); err == nil {
		return h
	}
	return "unknown"
}
