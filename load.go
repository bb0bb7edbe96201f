package gofidl

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/gofidl/gofidl/ast"
	"github.com/gofidl/gofidl/internal/types"
)

// ImportFile loads the FIDL file at path together with everything it
// imports, and returns the canonical package the file was merged into.
//
// path is tried as given (relative to the working directory), then against
// each search path. A file that was already loaded is not parsed again.
func (p *Processor) ImportFile(ctx context.Context, path string) (*ast.Package, error) {
	ctx, span := p.tracer.Start(ctx, "gofidl.ImportFile",
		trace.WithAttributes(attribute.String("fidl.path", path)))
	defer span.End()

	start := time.Now()
	pkg, _, err := p.importFile(ctx, path, "")
	return p.finish(span, start, pkg, err)
}

// ImportPackage processes a package that was parsed from path outside the
// processor: its imports are loaded, its references bound, its constants
// folded, and it is merged into the package registry. Importing a path
// that is already loaded does nothing.
func (p *Processor) ImportPackage(ctx context.Context, path string, pkg *ast.Package) error {
	ctx, span := p.tracer.Start(ctx, "gofidl.ImportPackage",
		trace.WithAttributes(attribute.String("fidl.path", path)))
	defer span.End()

	start := time.Now()
	abs, err := absPath(path)
	if err == nil {
		pkg, err = p.importPackage(ctx, abs, pkg)
	}
	_, err = p.finish(span, start, pkg, err)
	return err
}

func (p *Processor) finish(span trace.Span, start time.Time, pkg *ast.Package, err error) (*ast.Package, error) {
	elapsed := time.Since(start)
	p.metrics.observeImport(elapsed, err)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		p.log.Log(slog.LevelDebug, "import failed",
			slog.String("kind", types.KindOf(err).String()),
			slog.String("error", err.Error()))
		return nil, err
	}
	span.SetAttributes(
		attribute.String("fidl.package", pkg.Name),
		attribute.Int("fidl.files", len(p.files)),
	)
	p.log.Log(slog.LevelInfo, "import complete",
		slog.String("package", pkg.Name),
		slog.Int("files", len(p.files)),
		slog.Int("packages", len(p.packages)),
		slog.Duration("elapsed", elapsed))
	return pkg, nil
}

// importFile locates, parses and processes one file. It returns the
// canonical package and the absolute path the file was found at.
func (p *Processor) importFile(ctx context.Context, file, importerDir string) (*ast.Package, string, error) {
	if err := ctx.Err(); err != nil {
		return nil, "", err
	}

	abs, err := p.locate(file, importerDir)
	if err != nil {
		return nil, "", err
	}

	if pkg, ok := p.files[abs]; ok {
		p.log.Trace("file cached", slog.String("path", abs))
		return pkg, abs, nil
	}
	if pkg, ok := p.loading[abs]; ok {
		p.metrics.cycleSuppressed()
		p.log.Log(slog.LevelDebug, "import cycle suppressed",
			slog.String("path", abs),
			slog.String("package", pkg.Name))
		return pkg, abs, nil
	}

	if p.parser == nil {
		return nil, "", ErrNoParser
	}
	src, err := readAll(p.source, abs)
	if err != nil {
		return nil, "", fmt.Errorf("read %s: %w", abs, err)
	}
	fresh, err := p.parser.Parse(abs, src)
	if err != nil {
		e := types.Errorf(types.KindParseFailed, abs, "Failed to parse '%s': %v", abs, err)
		e.Err = err
		return nil, "", e
	}
	if fresh == nil {
		return nil, "", types.Errorf(types.KindParseFailed, abs, "Failed to parse '%s': no package produced", abs)
	}
	p.metrics.fileImported()
	p.log.Log(slog.LevelDebug, "file parsed",
		slog.String("path", abs),
		slog.String("package", fresh.Name),
		slog.Int("imports", len(fresh.Imports)))

	pkg, err := p.importPackage(ctx, abs, fresh)
	if err != nil {
		return nil, "", err
	}
	return pkg, abs, nil
}

// locate finds file as given, then next to the importing file, then in
// each search path.
func (p *Processor) locate(file, importerDir string) (string, error) {
	if abs, err := absPath(file); err == nil && p.source.Exists(abs) {
		return abs, nil
	}
	if !filepath.IsAbs(file) {
		dirs := p.searchPaths
		if importerDir != "" {
			dirs = append([]string{importerDir}, dirs...)
		}
		for _, dir := range dirs {
			candidate := filepath.Join(dir, file)
			if p.source.Exists(candidate) {
				return candidate, nil
			}
		}
	}
	return "", types.Errorf(types.KindModelNotFound, file, "Model '%s' not found.", file)
}

func (p *Processor) importPackage(ctx context.Context, abs string, pkg *ast.Package) (*ast.Package, error) {
	if pkg == nil {
		return nil, types.Errorf(types.KindParseFailed, abs, "Failed to parse '%s': no package produced", abs)
	}
	if existing, ok := p.files[abs]; ok {
		return existing, nil
	}
	if inProgress, ok := p.loading[abs]; ok {
		return inProgress, nil
	}

	p.loading[abs] = pkg
	defer delete(p.loading, abs)

	p.imports.AddNode(abs)
	if !pkg.HasFile(abs) {
		pkg.Files = append(pkg.Files, abs)
	}
	for _, ns := range pkg.Namespaces() {
		ns.Package = pkg
		ns.File = abs
	}

	dir := filepath.Dir(abs)
	for _, imp := range pkg.Imports {
		imported, importedPath, err := p.importFile(ctx, imp.File, dir)
		if err != nil {
			return nil, err
		}
		p.imports.AddEdge(abs, importedPath)
		imp.Package = imported
		imp.Path = importedPath
		if err := p.resolver.LinkImport(pkg, imp); err != nil {
			return nil, err
		}
	}
	p.resolver.LinkPackage(pkg)

	bound, folded, enumerators := p.resolver.Bound(), p.eval.Folded(), p.eval.Enumerators()
	for _, ns := range pkg.Namespaces() {
		if err := p.resolver.ResolveTypes(ns); err != nil {
			return nil, err
		}
	}
	for _, ns := range pkg.Namespaces() {
		if err := p.eval.ResolveConstants(ns); err != nil {
			return nil, err
		}
	}
	p.metrics.resolved(p.resolver.Bound()-bound, p.eval.Folded()-folded, p.eval.Enumerators()-enumerators)

	return p.merge(abs, pkg)
}

// merge registers pkg under its name, or splices it into the package of
// the same name loaded from another file.
func (p *Processor) merge(abs string, pkg *ast.Package) (*ast.Package, error) {
	existing, ok := p.packages[pkg.Name]
	if !ok || existing == pkg {
		p.packages[pkg.Name] = pkg
		p.files[abs] = pkg
		p.log.Log(slog.LevelDebug, "package registered",
			slog.String("package", pkg.Name),
			slog.String("path", abs))
		return pkg, nil
	}
	if existing.HasFile(abs) {
		p.files[abs] = existing
		return existing, nil
	}

	for _, ns := range pkg.TypeCollections {
		if existing.TypeCollection(ns.Name) != nil {
			return nil, duplicateNamespace(existing, ns)
		}
	}
	for _, ns := range pkg.Interfaces {
		if existing.Interface(ns.Name) != nil {
			return nil, duplicateNamespace(existing, ns)
		}
	}

	existing.Merge(pkg)
	p.rewire(pkg, existing)
	p.files[abs] = existing
	p.metrics.packageMerged()
	p.log.Log(slog.LevelDebug, "package merged",
		slog.String("package", existing.Name),
		slog.String("path", abs),
		slog.Int("files", len(existing.Files)))
	return existing, nil
}

// rewire points imports that captured the transient package object at
// the canonical one.
func (p *Processor) rewire(from, to *ast.Package) {
	fix := func(pkg *ast.Package) {
		for _, imp := range pkg.Imports {
			if imp.Package == from {
				imp.Package = to
			}
		}
	}
	for _, pkg := range p.packages {
		fix(pkg)
	}
	for _, pkg := range p.loading {
		fix(pkg)
	}
}

func duplicateNamespace(pkg *ast.Package, ns *ast.Namespace) error {
	return types.Errorf(types.KindDuplicateNamespace, ns.FQN(),
		"Namespace '%s' is already defined in package '%s'.", ns.Name, pkg.Name)
}
