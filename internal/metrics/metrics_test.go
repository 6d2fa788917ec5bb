package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterInventoryMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	n := 3

	require.NoError(t, RegisterInventoryMetrics(reg, func() int { return n }))

	count, err := testutil.GatherAndCount(reg, "inventory_products")
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	families, err := reg.Gather()
	require.NoError(t, err)
	require.Len(t, families, 1)
	assert.Equal(t, float64(3), families[0].GetMetric()[0].GetGauge().GetValue())
}

func TestRegisterInventoryMetrics_Twice(t *testing.T) {
	reg := prometheus.NewRegistry()

	require.NoError(t, RegisterInventoryMetrics(reg, func() int { return 0 }))
	assert.Error(t, RegisterInventoryMetrics(reg, func() int { return 0 }))
}
