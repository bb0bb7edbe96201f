package gofidl

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	promtest "github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"

	"github.com/gofidl/gofidl/ast"
	"github.com/gofidl/gofidl/internal/testutil"
)

func cycleModels() []testutil.Model {
	return []testutil.Model{
		{Path: model("a.fidl"), Build: testutil.Package("A", func(p *ast.Package) {
			p.AddImport("b.fidl", "")
			p.AddTypeCollection("TC").MustDefine(
				uint32Const("x", ast.Int(1)),
				ast.NewTypedef("T", ast.Ref("U")),
			)
		})},
		{Path: model("b.fidl"), Build: testutil.Package("A", func(p *ast.Package) {
			p.AddImport("a.fidl", "")
			p.AddTypeCollection("TC2").MustDefine(ast.NewTypedef("U", ast.NewPrimitive(ast.TypeInt8)))
		})},
	}
}

func TestMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewMetrics(reg)
	p, _ := newTestProcessor(t, cycleModels(), WithMetrics(m))

	_, err := p.ImportFile(context.Background(), model("a.fidl"))
	require.NoError(t, err)

	require.Equal(t, 2.0, promtest.ToFloat64(m.FilesImported))
	require.Equal(t, 1.0, promtest.ToFloat64(m.PackagesMerged))
	require.Equal(t, 1.0, promtest.ToFloat64(m.CyclesSuppressed))
	require.Equal(t, 1.0, promtest.ToFloat64(m.ReferencesResolved))
	require.Equal(t, 1.0, promtest.ToFloat64(m.ConstantsFolded))
	require.Equal(t, 0.0, promtest.ToFloat64(m.EnumeratorsFolded))

	_, err = p.ImportFile(context.Background(), model("missing.fidl"))
	require.Error(t, err)
	require.Equal(t, 1.0, promtest.ToFloat64(m.ImportErrors.WithLabelValues("model-not-found")))

	count, err := promtest.GatherAndCount(reg, "gofidl_import_seconds")
	require.NoError(t, err)
	require.Equal(t, 1, count)
}

func TestMetricsNil(t *testing.T) {
	var m *Metrics
	m.observeImport(0, nil)
	m.fileImported()
	m.packageMerged()
	m.cycleSuppressed()
	m.resolved(1, 1, 1)
}

func TestTracing(t *testing.T) {
	sr := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(sr))
	p, _ := newTestProcessor(t, cycleModels(), WithTracerProvider(tp))

	_, err := p.ImportFile(context.Background(), model("a.fidl"))
	require.NoError(t, err)
	_, err = p.ImportFile(context.Background(), model("missing.fidl"))
	require.Error(t, err)

	spans := sr.Ended()
	require.Len(t, spans, 2)

	ok := spans[0]
	require.Equal(t, "gofidl.ImportFile", ok.Name())
	require.Contains(t, ok.Attributes(), attribute.String("fidl.path", model("a.fidl")))
	require.Contains(t, ok.Attributes(), attribute.String("fidl.package", "A"))
	require.NotEqual(t, codes.Error, ok.Status().Code)

	failed := spans[1]
	require.Equal(t, codes.Error, failed.Status().Code)
	require.Equal(t, "Model '"+model("missing.fidl")+"' not found.", failed.Status().Description)
	require.NotEmpty(t, failed.Events())
}

func TestLogging(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: LevelTrace}))
	p, _ := newTestProcessor(t, cycleModels(), WithLogger(logger))

	_, err := p.ImportFile(context.Background(), model("a.fidl"))
	require.NoError(t, err)

	out := buf.String()
	require.Contains(t, out, `"session":"`+p.Session()+`"`)
	require.Contains(t, out, `"component":"importer"`)
	require.Contains(t, out, `"component":"resolver"`)
	require.Contains(t, out, `"component":"eval"`)
	require.Contains(t, out, "import cycle suppressed")
	require.Contains(t, out, "package merged")
	require.Contains(t, out, "import complete")
}

func TestNoLogger(t *testing.T) {
	p, _ := newTestProcessor(t, cycleModels())
	_, err := p.ImportFile(context.Background(), model("a.fidl"))
	require.NoError(t, err)
	require.NotEmpty(t, p.Session())
}
