// Package observability wires OpenTelemetry tracing and metrics for the
// client.
//
// The request pipeline always creates spans through the global tracer
// provider and records ClientMetrics when they are supplied. Both are no-ops
// until a provider is installed:
//
//	shutdown, err := observability.Setup(ctx, cfg)
//	defer shutdown(ctx)
//
//	metrics, err := observability.NewClientMetrics(observability.Meter(observability.InstrumentationName))
package observability
