// Package trace records what the CSS pipeline is doing while it runs.
//
// Tracers are attached to a context and picked up by the pipeline and the
// file driver. Every stage (parse, each plugin, stringify, map) opens a span:
//
//	ctx = trace.WithFile(trace.WithTracer(ctx, tracer), "a.css")
//	ctx, span := trace.Start(ctx, trace.ScopeStage, "parse")
//	defer span.End("")
//
// Implementations:
//
//   - Nop: disabled tracing, zero cost
//   - StreamTracer: writes each event immediately (text or NDJSON)
//   - RingTracer: keeps the last N events for post-mortem dumps
//   - MultiTracer: fans out to several tracers
//
// Verbosity is controlled by Level, granularity of an event by Scope.
// Lexer, parser and the node model never trace; only the orchestration
// layers above them do.
package trace
