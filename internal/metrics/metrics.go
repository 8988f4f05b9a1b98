// Package metrics counts repository writes and import outcomes with
// Prometheus collectors registered on a caller-supplied registry.
package metrics

import (
	"sort"
	"strconv"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
)

// Import row outcomes.
const (
	OutcomeAccepted = "accepted"
	OutcomeRejected = "rejected"
)

// Collector implements repository.Recorder and the importer's row recorder.
type Collector struct {
	repositoryAdds    *prometheus.CounterVec
	repositoryDeletes *prometheus.CounterVec
	importRows        *prometheus.CounterVec
}

// NewCollector creates a Collector and registers its counters on reg.
func NewCollector(reg prometheus.Registerer) *Collector {
	c := &Collector{
		repositoryAdds: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "fitcoach_repository_add_total",
			Help: "Repository add attempts by result.",
		}, []string{"repository", "result"}),
		repositoryDeletes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "fitcoach_repository_delete_total",
			Help: "Repository delete attempts by whether an item was found.",
		}, []string{"repository", "found"}),
		importRows: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "fitcoach_import_rows_total",
			Help: "CSV rows read by file and outcome.",
		}, []string{"file", "outcome"}),
	}

	reg.MustRegister(
		c.repositoryAdds,
		c.repositoryDeletes,
		c.importRows,
	)

	return c
}

// RecordAdd counts one add attempt.
func (c *Collector) RecordAdd(repository string, result string) {
	c.repositoryAdds.WithLabelValues(repository, result).Inc()
}

// RecordDelete counts one delete attempt.
func (c *Collector) RecordDelete(repository string, found bool) {
	c.repositoryDeletes.WithLabelValues(repository, strconv.FormatBool(found)).Inc()
}

// RecordImportRow counts one CSV row.
func (c *Collector) RecordImportRow(file string, outcome string) {
	c.importRows.WithLabelValues(file, outcome).Inc()
}

// Summary flattens every counter in gatherer into "name{k=v,...}" keys,
// for the end-of-run log line.
func Summary(gatherer prometheus.Gatherer) (map[string]float64, error) {
	families, err := gatherer.Gather()
	if err != nil {
		return nil, err
	}

	out := make(map[string]float64)
	for _, mf := range families {
		for _, m := range mf.GetMetric() {
			if m.GetCounter() == nil {
				continue
			}
			pairs := make([]string, 0, len(m.GetLabel()))
			for _, lp := range m.GetLabel() {
				pairs = append(pairs, lp.GetName()+"="+lp.GetValue())
			}
			sort.Strings(pairs)
			key := mf.GetName()
			if len(pairs) > 0 {
				key += "{" + strings.Join(pairs, ",") + "}"
			}
			out[key] = m.GetCounter().GetValue()
		}
	}
	return out, nil
}
