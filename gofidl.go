// Package gofidl is the semantic core of a Franca IDL toolchain.
//
// A Processor takes syntax trees from an external parser, follows their
// imports, merges packages that span several files, binds every type and
// value reference, and folds constant expressions with Franca's numeric
// typing rules.
//
// Example:
//
//	p := gofidl.New(myParser,
//	    gofidl.WithSearchPaths("models"),
//	    gofidl.WithLogger(slog.Default()),
//	)
//	pkg, err := p.ImportFile(ctx, "models/app.fidl")
//	if errors.Is(err, gofidl.ErrUnresolvedReference) { ... }
package gofidl

import (
	"errors"
	"log/slog"
	"maps"
	"slices"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"

	"github.com/gofidl/gofidl/ast"
	"github.com/gofidl/gofidl/internal/eval"
	"github.com/gofidl/gofidl/internal/graph"
	"github.com/gofidl/gofidl/internal/resolver"
	"github.com/gofidl/gofidl/internal/types"
)

// ErrNoParser is returned when a file must be parsed but the processor was
// created without a parser.
var ErrNoParser = errors.New("no FIDL parser provided")

// LevelTrace is a custom log level more verbose than Debug.
// Use for per-item logging (bound references, folded constants).
// Enable with: &slog.HandlerOptions{Level: slog.Level(-8)}
const LevelTrace = types.LevelTrace

// SearchPathEnv is the environment variable read by WithEnvSearchPaths.
const SearchPathEnv = "FIDL_PATH"

const tracerName = "github.com/gofidl/gofidl"

// Parser turns FIDL source into an unresolved syntax tree. The processor
// calls it once per distinct file.
type Parser interface {
	Parse(path string, src []byte) (*ast.Package, error)
}

// ParserFunc adapts a function to the Parser interface.
type ParserFunc func(path string, src []byte) (*ast.Package, error)

// Parse calls f.
func (f ParserFunc) Parse(path string, src []byte) (*ast.Package, error) {
	return f(path, src)
}

// Option configures a Processor.
type Option func(*options)

type options struct {
	logger         *slog.Logger
	searchPaths    []string
	envSearchPaths bool
	source         Source
	metrics        *Metrics
	tracerProvider trace.TracerProvider
}

// WithLogger sets the logger for debug/trace output.
// If not set, no logging occurs (zero overhead).
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) { o.logger = logger }
}

// WithSearchPaths appends directories probed for relative imports that are
// not found next to the importing file.
func WithSearchPaths(dirs ...string) Option {
	return func(o *options) { o.searchPaths = append(o.searchPaths, dirs...) }
}

// WithEnvSearchPaths appends the existing directories listed in FIDL_PATH
// after any explicit search paths.
func WithEnvSearchPaths() Option {
	return func(o *options) { o.envSearchPaths = true }
}

// WithSource replaces the file system the processor reads from. Files
// added with AddFile are always consulted first.
func WithSource(src Source) Option {
	return func(o *options) { o.source = src }
}

// WithMetrics records import metrics.
func WithMetrics(m *Metrics) Option {
	return func(o *options) { o.metrics = m }
}

// WithTracerProvider sets the OpenTelemetry tracer provider. The global
// provider is used by default.
func WithTracerProvider(tp trace.TracerProvider) Option {
	return func(o *options) { o.tracerProvider = tp }
}

// Processor owns the packages of one compilation session. It is not safe
// for concurrent use; serialize calls or use one processor per goroutine.
type Processor struct {
	parser      Parser
	session     string
	log         types.Logger
	memory      *MemorySource
	source      Source
	searchPaths []string

	// files maps absolute paths to the canonical package they were
	// merged into; packages maps package names to that object.
	files    map[string]*ast.Package
	packages map[string]*ast.Package
	// loading holds the packages on the current import chain.
	loading map[string]*ast.Package

	imports  *graph.Graph
	resolver *resolver.Resolver
	eval     *eval.Evaluator
	metrics  *Metrics
	tracer   trace.Tracer
}

// New returns a processor. parser may be nil when only ImportPackage is
// used.
func New(parser Parser, opts ...Option) *Processor {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	session := uuid.NewString()
	base := o.logger
	if base != nil {
		base = base.With(slog.String("session", session))
	}

	p := &Processor{
		parser:   parser,
		session:  session,
		log:      types.NewLogger(base, "importer"),
		memory:   NewMemorySource(),
		files:    make(map[string]*ast.Package),
		packages: make(map[string]*ast.Package),
		loading:  make(map[string]*ast.Package),
		imports:  graph.New(),
		resolver: resolver.New(base),
		eval:     eval.New(base),
		metrics:  o.metrics,
	}

	fallback := o.source
	if fallback == nil {
		fallback = OSSource()
	}
	p.source = Multi(p.memory, fallback)

	p.searchPaths = absPaths(o.searchPaths)
	if o.envSearchPaths {
		p.searchPaths = dedup(append(p.searchPaths, discoverEnvSearchPaths(p.log)...))
	}

	tp := o.tracerProvider
	if tp == nil {
		tp = otel.GetTracerProvider()
	}
	p.tracer = tp.Tracer(tracerName)

	p.log.Log(slog.LevelDebug, "processor created",
		slog.Int("search_paths", len(p.searchPaths)))
	return p
}

// AddFile registers an in-memory file. It shadows any file at the same
// path on disk.
func (p *Processor) AddFile(path string, content []byte) error {
	abs, err := absPath(path)
	if err != nil {
		return err
	}
	p.memory.Add(abs, content)
	return nil
}

// Session returns the unique id attached to this processor's logs.
func (p *Processor) Session() string {
	return p.session
}

// SearchPaths returns the directories probed for relative imports.
func (p *Processor) SearchPaths() []string {
	return slices.Clone(p.searchPaths)
}

// Files returns the loaded files by absolute path.
func (p *Processor) Files() map[string]*ast.Package {
	return maps.Clone(p.files)
}

// Packages returns the loaded packages by name.
func (p *Processor) Packages() map[string]*ast.Package {
	return maps.Clone(p.packages)
}

// File returns the package a file was merged into, or nil.
func (p *Processor) File(path string) *ast.Package {
	abs, err := absPath(path)
	if err != nil {
		return nil
	}
	return p.files[abs]
}

// Package returns the named package, or nil.
func (p *Processor) Package(name string) *ast.Package {
	return p.packages[name]
}

// ImportCycles returns the import cycles encountered so far. Each cycle
// lists its files sorted.
func (p *Processor) ImportCycles() [][]string {
	return p.imports.FindCycles()
}

// ImportOrder returns the loaded files with imports before importers.
// Files on a cycle come last.
func (p *Processor) ImportOrder() []string {
	order, cycles := p.imports.ResolutionOrder()
	for _, c := range cycles {
		order = append(order, c...)
	}
	return order
}
