// Package zaplog implements the engine's log.Logger contract on top of
// go.uber.org/zap.
//
// Environment profiles select the encoder: production-class environments
// emit JSON, local development emits console output. When the context
// carries an active OpenTelemetry span, trace_id and span_id fields are
// appended so log lines correlate with traces.
package zaplog
