// Package observe provides observability primitives for bootstrap runs.
//
// It is a pure instrumentation library: no execution, no I/O beyond
// exporter setup. The orchestrator wraps each run and each iteration with a
// Middleware, which records a span, metrics and a structured log line.
//
// # Telemetry
//
// Spans:
//
//   - bootscore.run: one per run, attributes describe the configuration.
//   - bootscore.iteration: one per iteration, child of the run span.
//
// Metrics:
//
//   - bootscore.iterations.total: completed iterations.
//   - bootscore.iterations.errors: failed iterations.
//   - bootscore.redraws.total: degenerate draws that were redrawn.
//   - bootscore.iteration.duration_ms: iteration wall time.
//   - bootscore.score: per-iteration combined score.
//   - bootscore.runs.total / bootscore.runs.errors: whole runs.
//
// Logs are JSON lines written through zap.
package observe
