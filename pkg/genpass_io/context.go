// pkg/genpass_io/context.go

package genpass_io

import (
	"context"
	"os"
	"runtime"
	"strings"
	"time"

	"github.com/CodeMonkeyCybersecurity/genpass/pkg/genpass_err"
	"github.com/CodeMonkeyCybersecurity/genpass/pkg/shared"
	"github.com/CodeMonkeyCybersecurity/genpass/pkg/telemetry"
	cerr "github.com/cockroachdb/errors"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

// RuntimeContext carries everything a command handler needs: a context, a
// scoped logger, the telemetry span, and free-form attributes for End().
type RuntimeContext struct {
	Ctx        context.Context
	Log        *zap.Logger
	Span       trace.Span
	Timestamp  time.Time
	Command    string
	Attributes map[string]string
}

// NewContext sets up tracing and a command-scoped logger.
func NewContext(ctx context.Context, cmdName string) *RuntimeContext {
	ctx, span := telemetry.Start(ctx, cmdName)
	traceID := span.SpanContext().TraceID().String()

	log := zap.L().With(
		zap.String("command", cmdName),
		zap.String("trace_id", traceID),
	).Named(cmdName)

	return &RuntimeContext{
		Ctx:        ctx,
		Span:       span,
		Log:        log,
		Timestamp:  time.Now(),
		Command:    cmdName,
		Attributes: make(map[string]string),
	}
}

// HandlePanic recovers panics, logs them, and converts to an error.
func (rc *RuntimeContext) HandlePanic(errPtr *error) {
	if r := recover(); r != nil {
		*errPtr = cerr.AssertionFailedf("panic: %v", r)
		rc.Log.Error("panic recovered", zap.Any("panic", r))
	}
}

// End logs the outcome, records span attributes, and flushes logs.
func (rc *RuntimeContext) End(errPtr *error) {
	defer rc.Span.End()

	duration := time.Since(rc.Timestamp)
	success := (*errPtr == nil)

	if success {
		rc.Log.Info("Command completed", zap.Duration("duration", duration))
	} else if genpass_err.IsExpectedUserError(*errPtr) {
		rc.Log.Warn("Command rejected input", zap.Duration("duration", duration), zap.Error(*errPtr))
	} else {
		rc.Log.Error("Command failed", zap.Duration("duration", duration), zap.Error(*errPtr))
	}

	rc.Span.SetAttributes(
		attribute.Bool("success", success),
		attribute.Int64("duration_ms", duration.Milliseconds()),
		attribute.String("os", runtime.GOOS),
		attribute.String("args", telemetry.TruncateArgs(os.Args[1:])),
		attribute.String("version", shared.Version),
		attribute.String("category", CommandCategory(rc.Command)),
		attribute.String("error_type", classifyError(*errPtr)),
	)
	for k, v := range rc.Attributes {
		rc.Span.SetAttributes(attribute.String(k, v))
	}

	shared.SafeSync()
}

func classifyError(err error) string {
	if err == nil {
		return ""
	}
	if genpass_err.IsExpectedUserError(err) {
		return "user"
	}
	return "system"
}

// CommandCategory buckets command names for telemetry.
func CommandCategory(cmd string) string {
	switch {
	case strings.HasPrefix(cmd, "version"):
		return "meta"
	default:
		return "generate"
	}
}
