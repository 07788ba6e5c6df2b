package trace

import "context"

type (
	tracerKey struct{}
	spanKey   struct{}
	fileKey   struct{}
)

// FromContext extracts the Tracer from context, Nop if absent.
func FromContext(ctx context.Context) Tracer {
	if ctx == nil {
		return Nop
	}
	if t, ok := ctx.Value(tracerKey{}).(Tracer); ok {
		return t
	}
	return Nop
}

// WithTracer attaches a Tracer to context.
func WithTracer(ctx context.Context, t Tracer) context.Context {
	if t == nil {
		t = Nop
	}
	return context.WithValue(ctx, tracerKey{}, t)
}

// CurrentSpan returns the active span ID stored in ctx, or 0.
func CurrentSpan(ctx context.Context) uint64 {
	if ctx == nil {
		return 0
	}
	id, _ := ctx.Value(spanKey{}).(uint64)
	return id
}

// WithSpan records span as the parent for spans opened further down.
func WithSpan(ctx context.Context, span *Span) context.Context {
	if span.ID() == 0 {
		return ctx
	}
	return context.WithValue(ctx, spanKey{}, span.ID())
}

// WithFile tags every span started from ctx with the css file being worked on.
func WithFile(ctx context.Context, file string) context.Context {
	return context.WithValue(ctx, fileKey{}, file)
}

// FileFrom returns the file set by WithFile.
func FileFrom(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	file, _ := ctx.Value(fileKey{}).(string)
	return file
}

// Start opens a span with the tracer, parent and file found in ctx and
// returns a context in which it is the parent.
//
//	ctx, span := trace.Start(ctx, trace.ScopeStage, "parse")
//	defer span.End("")
func Start(ctx context.Context, scope Scope, name string) (context.Context, *Span) {
	span := begin(FromContext(ctx), scope, name, FileFrom(ctx), CurrentSpan(ctx))
	return WithSpan(ctx, span), span
}
