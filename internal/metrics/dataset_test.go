package metrics

import (
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDataset_ObserveLoad(t *testing.T) {
	reg := prometheus.NewRegistry()
	m, err := NewDataset(reg)
	require.NoError(t, err)

	m.ObserveLoad("http", nil, 120*time.Millisecond, 42)
	m.ObserveLoad("http", errors.New("boom"), time.Second, 0)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.loads.WithLabelValues("http", ResultSuccess)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.loads.WithLabelValues("http", ResultError)))
	// a failed load keeps the last good size
	assert.Equal(t, 42.0, testutil.ToFloat64(m.records))
	assert.Equal(t, 1, testutil.CollectAndCount(m.loadDuration))
}

func TestDataset_ObserveView(t *testing.T) {
	reg := prometheus.NewRegistry()
	m, err := NewDataset(reg)
	require.NoError(t, err)

	m.ObserveView(0)
	m.ObserveView(500)

	assert.Equal(t, 1, testutil.CollectAndCount(m.filteredRows))
}

func TestDataset_DuplicateRegistration(t *testing.T) {
	reg := prometheus.NewRegistry()
	_, err := NewDataset(reg)
	require.NoError(t, err)

	_, err = NewDataset(reg)
	assert.Error(t, err)
}

func TestDataset_NilIsNoop(t *testing.T) {
	var m *Dataset
	assert.NotPanics(t, func() {
		m.ObserveLoad("http", nil, time.Second, 1)
		m.ObserveView(1)
	})
}
