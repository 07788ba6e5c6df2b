package driver

import (
	"context"
	"fmt"
	"path/filepath"
	"reflect"
	"runtime"
	"strings"
	"time"

	"github.com/spf13/afero"
	"go.uber.org/multierr"
	"golang.org/x/sync/errgroup"

	"github.com/morishitter/postcss/internal/format"
	"github.com/morishitter/postcss/internal/observ"
	"github.com/morishitter/postcss/internal/pipeline"
	"github.com/morishitter/postcss/internal/sourcemap"
	"github.com/morishitter/postcss/internal/trace"
)

// ProcessRequest describes one multi-file run.
type ProcessRequest struct {
	Files []string
	// OutDir receives <name>.css and <name>.css.map; nothing is written
	// when it is empty.
	OutDir    string
	Processor *pipeline.Processor
	// Map is passed to every file; From and To are filled per file.
	Map  *pipeline.MapOptions
	Jobs int
	FS   afero.Fs
	// Cache is optional.
	Cache *DiskCache
	// Indent returns the fallback style for path; nil keeps the defaults.
	Indent   func(path string) format.Options
	Progress ProgressSink
}

// FileResult is the outcome for one input.
type FileResult struct {
	Path string
	// Out and MapOut are the written files, empty when nothing was written.
	Out    string
	MapOut string
	CSS    string
	// Map is the separate map JSON.
	Map     string
	Cached  bool
	Timings observ.Report
	Err     error
}

// ProcessFiles runs the processor over every file in parallel. Results keep
// the order of req.Files. A failing file does not stop the others; all
// failures are returned together.
func ProcessFiles(ctx context.Context, req ProcessRequest) ([]FileResult, error) {
	if len(req.Files) == 0 {
		return nil, nil
	}
	if req.FS == nil {
		req.FS = afero.NewOsFs()
	}
	if req.Processor == nil {
		req.Processor = pipeline.New()
	}
	jobs := req.Jobs
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}
	if req.OutDir != "" {
		if err := req.FS.MkdirAll(req.OutDir, 0o755); err != nil {
			return nil, fmt.Errorf("output dir: %w", err)
		}
	}

	ctx, span := trace.Start(ctx, trace.ScopeDriver, "process-files")
	defer span.End("")

	plugins, ok := pluginKeys(req.Processor)
	if !ok {
		req.Cache = nil
	}
	for _, f := range req.Files {
		emit(req.Progress, Event{File: f, Stage: StageRead, Status: StatusQueued})
	}

	// Результаты (индексы уникальны для каждой горутины, мьютекс не нужен)
	results := make([]FileResult, len(req.Files))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(jobs, len(req.Files)))
	for i, path := range req.Files {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			results[i] = processOne(gctx, &req, path, plugins)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return results, err
	}

	var errs error
	for i := range results {
		if results[i].Err != nil {
			errs = multierr.Append(errs, results[i].Err)
		}
	}
	return results, errs
}

func processOne(ctx context.Context, req *ProcessRequest, path string, plugins []string) FileResult {
	ctx, span := trace.Start(trace.WithFile(ctx, path), trace.ScopeFile, "file")
	started := time.Now()
	res := FileResult{Path: path}

	fail := func(stage Stage, err error) FileResult {
		res.Err = err
		emit(req.Progress, Event{File: path, Stage: stage, Status: StatusError, Err: err, Elapsed: time.Since(started)})
		span.End("failed")
		return res
	}

	emit(req.Progress, Event{File: path, Stage: StageRead, Status: StatusWorking})
	css, err := ReadInput(req.FS, path)
	if err != nil {
		return fail(StageRead, fmt.Errorf("%s: %w", path, err))
	}

	opts := pipeline.Options{From: path, Map: req.Map, FS: req.FS}
	if req.OutDir != "" {
		res.Out = filepath.Join(req.OutDir, filepath.Base(path))
		opts.To = res.Out
	}
	if req.Indent != nil {
		opts.Format = req.Indent(path)
	}

	key := cacheKey(path, css, opts, plugins)
	cacheable := req.Cache != nil && !hasExternalMap(css)
	var payload DiskPayload
	hit := false
	if cacheable {
		// ошибка чтения кэша не фатальна: просто пересчитаем
		hit, _ = req.Cache.Get(key, &payload)
	}

	if hit {
		res.CSS, res.Map, res.Timings, res.Cached = payload.CSS, payload.Map, payload.Timings, true
		emit(req.Progress, Event{File: path, Stage: StageProcess, Status: StatusCached})
		trace.Point(trace.FromContext(ctx), trace.ScopeFile, "cache-hit", path, span.ID())
	} else {
		emit(req.Progress, Event{File: path, Stage: StageProcess, Status: StatusWorking})
		out, err := req.Processor.Process(ctx, pipeline.CSS(css), opts)
		if err != nil {
			return fail(StageProcess, err)
		}
		res.CSS = out.CSS
		if out.Map != nil {
			res.Map = out.Map.String()
		}
		if out.Timings != nil {
			res.Timings = *out.Timings
		}
		if cacheable {
			_ = req.Cache.Put(key, &DiskPayload{Path: path, CSS: res.CSS, Map: res.Map, Timings: res.Timings})
		}
	}

	if res.Out != "" {
		emit(req.Progress, Event{File: path, Stage: StageWrite, Status: StatusWorking})
		if err := writeOutputs(req.FS, &res); err != nil {
			return fail(StageWrite, err)
		}
	}
	emit(req.Progress, Event{File: path, Stage: StageWrite, Status: StatusDone, Elapsed: time.Since(started)})
	span.End("")
	return res
}

func writeOutputs(fsys afero.Fs, res *FileResult) error {
	if err := afero.WriteFile(fsys, res.Out, []byte(res.CSS), 0o644); err != nil {
		return fmt.Errorf("%s: %w", res.Out, err)
	}
	if res.Map == "" {
		return nil
	}
	res.MapOut = res.Out + ".map"
	if ann, ok := sourcemap.Annotation(res.CSS); ok && !strings.HasPrefix(ann, "data:") {
		res.MapOut = filepath.Join(filepath.Dir(res.Out), filepath.FromSlash(ann))
		if err := fsys.MkdirAll(filepath.Dir(res.MapOut), 0o755); err != nil {
			return err
		}
	}
	if err := afero.WriteFile(fsys, res.MapOut, []byte(res.Map), 0o644); err != nil {
		return fmt.Errorf("%s: %w", res.MapOut, err)
	}
	return nil
}

// hasExternalMap reports an annotation pointing at a file: its content is
// not part of the cache key.
func hasExternalMap(css string) bool {
	ann, ok := sourcemap.Annotation(css)
	return ok && !strings.HasPrefix(ann, "data:")
}

// pluginKeys describes the plugins for the cache key. A named plugin is its
// name, a plugin value is its type and fields. Functions have no identity
// that survives a run, so a processor with an unnamed func is not cacheable.
func pluginKeys(p *pipeline.Processor) ([]string, bool) {
	list := p.Plugins()
	keys := make([]string, len(list))
	for i, pl := range list {
		if n, ok := pl.(pipeline.Named); ok && n.Name() != "" {
			keys[i] = "name:" + n.Name()
			continue
		}
		if reflect.ValueOf(pl).Kind() == reflect.Func {
			return nil, false
		}
		keys[i] = fmt.Sprintf("value:%T%+v", pl, pl)
	}
	return keys, true
}
