package metrics

import (
	"fmt"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smartha35378-uc/MSCS532-Assignment3-Efficiency/shared/ds/hashtable"
)

var _ hashtable.Observer = (*TableObserver)(nil)

func TestTableObserver(t *testing.T) {
	obs := NewTableObserver("obs_test")
	ht, err := hashtable.New[string, int](hashtable.Config[string]{
		InitialCapacity: 4,
		MaxLoadFactor:   0.75,
		Observer:        obs,
	})
	require.NoError(t, err)

	for i := 0; i < 10; i++ {
		ht.Set(fmt.Sprintf("key-%d", i), i)
	}
	_, err = ht.Delete("key-0")
	require.NoError(t, err)

	assert.Equal(t, float64(10), testutil.ToFloat64(InsertCount.WithLabelValues("obs_test")))
	assert.Equal(t, float64(1), testutil.ToFloat64(DeleteCount.WithLabelValues("obs_test")))
	assert.Equal(t, float64(9), testutil.ToFloat64(TableEntries.WithLabelValues("obs_test")))
	assert.Equal(t, float64(ht.Capacity()), testutil.ToFloat64(TableCapacity.WithLabelValues("obs_test")))
	assert.Equal(t, float64(ht.Stats().Resizes), testutil.ToFloat64(ResizeCount.WithLabelValues("obs_test")))
	assert.Greater(t, testutil.ToFloat64(RehashedEntries.WithLabelValues("obs_test")), float64(0))
}
