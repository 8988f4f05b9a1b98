package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCollector_RegistersCounters(t *testing.T) {
	reg := prometheus.NewRegistry()
	c := NewCollector(reg)
	require.NotNil(t, c)

	c.RecordAdd("users", "added")
	c.RecordDelete("users", true)
	c.RecordImportRow("users.csv", OutcomeAccepted)

	families, err := reg.Gather()
	require.NoError(t, err)

	names := make([]string, 0, len(families))
	for _, mf := range families {
		names = append(names, mf.GetName())
	}
	assert.ElementsMatch(t, []string{
		"fitcoach_repository_add_total",
		"fitcoach_repository_delete_total",
		"fitcoach_import_rows_total",
	}, names)
}

func TestNewCollector_PanicsOnDoubleRegistration(t *testing.T) {
	reg := prometheus.NewRegistry()
	NewCollector(reg)
	assert.Panics(t, func() { NewCollector(reg) })
}

func TestRecordAdd_LabelsByResult(t *testing.T) {
	c := NewCollector(prometheus.NewRegistry())

	c.RecordAdd("users", "added")
	c.RecordAdd("users", "added")
	c.RecordAdd("users", "rejected_duplicate")
	c.RecordAdd("coaches", "added")

	assert.Equal(t, 2.0, testutil.ToFloat64(c.repositoryAdds.WithLabelValues("users", "added")))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.repositoryAdds.WithLabelValues("users", "rejected_duplicate")))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.repositoryAdds.WithLabelValues("coaches", "added")))
	assert.Equal(t, 3, testutil.CollectAndCount(c.repositoryAdds))
}

func TestRecordDelete_LabelsByFound(t *testing.T) {
	c := NewCollector(prometheus.NewRegistry())

	c.RecordDelete("clients", true)
	c.RecordDelete("clients", false)
	c.RecordDelete("clients", false)

	assert.Equal(t, 1.0, testutil.ToFloat64(c.repositoryDeletes.WithLabelValues("clients", "true")))
	assert.Equal(t, 2.0, testutil.ToFloat64(c.repositoryDeletes.WithLabelValues("clients", "false")))
}

func TestRecordImportRow(t *testing.T) {
	c := NewCollector(prometheus.NewRegistry())

	c.RecordImportRow("exercises.csv", OutcomeAccepted)
	c.RecordImportRow("exercises.csv", OutcomeRejected)
	c.RecordImportRow("exercises.csv", OutcomeAccepted)

	assert.Equal(t, 2.0, testutil.ToFloat64(c.importRows.WithLabelValues("exercises.csv", OutcomeAccepted)))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.importRows.WithLabelValues("exercises.csv", OutcomeRejected)))
}

func TestSummary_FlattensCounters(t *testing.T) {
	reg := prometheus.NewRegistry()
	c := NewCollector(reg)

	c.RecordAdd("users", "added")
	c.RecordImportRow("levels.csv", OutcomeRejected)
	c.RecordImportRow("levels.csv", OutcomeRejected)

	summary, err := Summary(reg)
	require.NoError(t, err)

	assert.Equal(t, map[string]float64{
		"fitcoach_repository_add_total{repository=users,result=added}": 1,
		"fitcoach_import_rows_total{file=levels.csv,outcome=rejected}": 2,
	}, summary)
}

func TestSummary_SkipsNonCounters(t *testing.T) {
	reg := prometheus.NewRegistry()
	gauge := prometheus.NewGauge(prometheus.GaugeOpts{Name: "fitcoach_test_gauge", Help: "test"})
	reg.MustRegister(gauge)
	gauge.Set(4)

	summary, err := Summary(reg)
	require.NoError(t, err)
	assert.Empty(t, summary)
}
