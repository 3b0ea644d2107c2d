package toolaudit

import (
	"context"
	"encoding/json"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/Additional-Code/storefront/internal/config"
	"github.com/Additional-Code/storefront/internal/messaging"
	"github.com/Additional-Code/storefront/internal/tools"
	"github.com/Additional-Code/storefront/internal/worker"
)

var workerTracer = otel.Tracer("github.com/Additional-Code/storefront/worker/toolaudit")

// Module registers the tool audit worker handler.
var Module = fx.Module("worker_toolaudit",
	fx.Provide(
		fx.Annotate(
			NewToolInvokedHandler,
			fx.ResultTags(`group:"worker.handlers"`),
		),
	),
)

// NewToolInvokedHandler sets up a worker handler that records tool
// invocations from the audit topic.
func NewToolInvokedHandler(logger *zap.Logger, cfg config.Config) worker.HandlerRegistration {
	handler := func(ctx context.Context, msg messaging.Message) error {
		ctx, span := workerTracer.Start(ctx, "worker.toolaudit.process", trace.WithAttributes(
			attribute.String("messaging.topic", msg.Topic),
		))
		defer span.End()

		var event tools.InvokedEvent
		if err := json.Unmarshal(msg.Value, &event); err != nil {
			logger.Error("failed to decode tool invoked event", zap.Error(err))

			span.RecordError(err)
			span.SetStatus(codes.Error, "decode error")
			return err
		}
		logger.Info("tool invocation audited",
			zap.String("tool", event.Tool),
			zap.Bool("succeeded", event.Succeeded),
			zap.Int64("duration_ms", event.DurationMS),
		)

		return nil
	}

	return worker.HandlerRegistration{
		Topic:   cfg.Messaging.Kafka.Topic,
		Handler: handler,
	}
}
