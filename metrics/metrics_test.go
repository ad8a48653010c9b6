package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestRideRequestsTotal(t *testing.T) {
	before := testutil.ToFloat64(RideRequestsTotal.WithLabelValues("ok"))
	RideRequestsTotal.WithLabelValues("ok").Inc()
	assert.Equal(t, before+1, testutil.ToFloat64(RideRequestsTotal.WithLabelValues("ok")))
}

func TestSnapshotNodes(t *testing.T) {
	SnapshotNodes.Set(42)
	assert.Equal(t, 42.0, testutil.ToFloat64(SnapshotNodes))
}
