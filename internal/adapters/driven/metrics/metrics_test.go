package metrics

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/edi-cli/internal/core/domain"
)

func family(t *testing.T, m *Metrics, name string) *dto.MetricFamily {
	t.Helper()
	families, err := m.Registry().Gather()
	require.NoError(t, err)
	for _, f := range families {
		if f.GetName() == name {
			return f
		}
	}
	t.Fatalf("metric family %s not gathered", name)
	return nil
}

func labels(metric *dto.Metric) map[string]string {
	out := make(map[string]string)
	for _, l := range metric.GetLabel() {
		out[l.GetName()] = l.GetValue()
	}
	return out
}

func TestMetrics_ObserveConversion(t *testing.T) {
	m := New()

	m.ObserveConversion(domain.CommandToStructured, domain.DialectX12, true, 2*time.Millisecond)
	m.ObserveConversion(domain.CommandToStructured, domain.DialectX12, true, time.Millisecond)
	m.ObserveConversion(domain.CommandType, domain.DialectUnknown, false, time.Millisecond)

	counters := family(t, m, "edi_conversions_total")
	require.Len(t, counters.GetMetric(), 2)

	values := make(map[string]float64)
	for _, metric := range counters.GetMetric() {
		l := labels(metric)
		values[l["command"]+"|"+l["dialect"]+"|"+l["outcome"]] = metric.GetCounter().GetValue()
	}
	assert.Equal(t, 2.0, values["edi2json|X12|success"])
	assert.Equal(t, 1.0, values["type|UNKNOWN|failure"])

	histograms := family(t, m, "edi_conversion_duration_seconds")
	var samples uint64
	for _, metric := range histograms.GetMetric() {
		samples += metric.GetHistogram().GetSampleCount()
	}
	assert.Equal(t, uint64(3), samples)
}

func TestMetrics_IndependentRegistries(t *testing.T) {
	a, b := New(), New()

	a.ObserveConversion(domain.CommandEncoding, domain.DialectEdifact, true, 0)

	assert.Len(t, family(t, a, "edi_conversions_total").GetMetric(), 1)
	families, err := b.Registry().Gather()
	require.NoError(t, err)
	assert.Empty(t, families)
}

func TestMetrics_NilSafe(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() {
		m.ObserveConversion(domain.CommandType, domain.DialectX12, true, time.Second)
	})
}

func TestMetrics_Handler(t *testing.T) {
	m := New()
	m.ObserveConversion(domain.CommandToDocument, domain.DialectX12, false, time.Millisecond)

	server := httptest.NewServer(m.Handler())
	defer server.Close()

	resp, err := http.Get(server.URL)
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, string(body), `edi_conversions_total{command="json2edi",dialect="X12",outcome="failure"} 1`)
}
