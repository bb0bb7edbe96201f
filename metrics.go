package gofidl

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/gofidl/gofidl/internal/types"
)

// Metrics holds the Prometheus collectors updated by a Processor.
// A nil *Metrics records nothing.
type Metrics struct {
	ImportDuration     prometheus.Histogram
	ImportErrors       *prometheus.CounterVec
	FilesImported      prometheus.Counter
	PackagesMerged     prometheus.Counter
	CyclesSuppressed   prometheus.Counter
	ReferencesResolved prometheus.Counter
	ConstantsFolded    prometheus.Counter
	EnumeratorsFolded  prometheus.Counter
}

// NewMetrics creates the collectors and registers them with reg. A nil reg
// leaves them unregistered.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		ImportDuration: f.NewHistogram(prometheus.HistogramOpts{
			Name:    "gofidl_import_seconds",
			Help:    "Time spent importing a FIDL file and its dependencies.",
			Buckets: prometheus.DefBuckets,
		}),
		ImportErrors: f.NewCounterVec(prometheus.CounterOpts{
			Name: "gofidl_import_errors_total",
			Help: "Total number of failed imports by error kind.",
		}, []string{"kind"}),
		FilesImported: f.NewCounter(prometheus.CounterOpts{
			Name: "gofidl_files_imported_total",
			Help: "Total number of FIDL files parsed.",
		}),
		PackagesMerged: f.NewCounter(prometheus.CounterOpts{
			Name: "gofidl_packages_merged_total",
			Help: "Total number of files merged into an already loaded package.",
		}),
		CyclesSuppressed: f.NewCounter(prometheus.CounterOpts{
			Name: "gofidl_import_cycles_suppressed_total",
			Help: "Total number of imports skipped because the file was already being loaded.",
		}),
		ReferencesResolved: f.NewCounter(prometheus.CounterOpts{
			Name: "gofidl_references_resolved_total",
			Help: "Total number of type references bound to a definition.",
		}),
		ConstantsFolded: f.NewCounter(prometheus.CounterOpts{
			Name: "gofidl_constants_folded_total",
			Help: "Total number of constants evaluated.",
		}),
		EnumeratorsFolded: f.NewCounter(prometheus.CounterOpts{
			Name: "gofidl_enumerators_folded_total",
			Help: "Total number of enumerator values evaluated.",
		}),
	}
}

func (m *Metrics) observeImport(d time.Duration, err error) {
	if m == nil {
		return
	}
	m.ImportDuration.Observe(d.Seconds())
	if err != nil {
		m.ImportErrors.WithLabelValues(errorLabel(err)).Inc()
	}
}

func (m *Metrics) fileImported() {
	if m != nil {
		m.FilesImported.Inc()
	}
}

func (m *Metrics) packageMerged() {
	if m != nil {
		m.PackagesMerged.Inc()
	}
}

func (m *Metrics) cycleSuppressed() {
	if m != nil {
		m.CyclesSuppressed.Inc()
	}
}

func (m *Metrics) resolved(refs, constants, enumerators int) {
	if m == nil {
		return
	}
	m.ReferencesResolved.Add(float64(refs))
	m.ConstantsFolded.Add(float64(constants))
	m.EnumeratorsFolded.Add(float64(enumerators))
}

func errorLabel(err error) string {
	if kind := types.KindOf(err); kind != types.ErrKindUnknown {
		return kind.String()
	}
	return "other"
}
