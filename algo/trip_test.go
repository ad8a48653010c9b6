package algo

import (
	"errors"
	"testing"

	"auto-dispatch/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tripGraph(t *testing.T) *Graph {
	return mustGraph(t, append(triangleNodes(), model.Node{ID: "D", X: 10, Y: 10}), triangleRoads())
}

func TestPlanTrip(t *testing.T) {
	g := tripGraph(t)

	trip, err := PlanTrip(g, model.Point{X: 0.4, Y: 0.2}, "B", "C")
	require.NoError(t, err)

	assert.Equal(t, "A", trip.Anchor.ID)
	assert.Equal(t, model.Point{X: 0.4, Y: 0.2}, trip.Start)
	assert.Equal(t, []string{"A", "B"}, trip.Pickup.IDs())
	assert.Equal(t, []string{"B", "C"}, trip.Dropoff.IDs())
	assert.Equal(t, 10.0, trip.ETA)
	assert.Equal(t, trip.Pickup.Cost+trip.Dropoff.Cost, trip.ETA)

	require.Len(t, trip.Combined, len(trip.Pickup.Path)+len(trip.Dropoff.Path)-1)
	assert.Equal(t, "B", trip.Combined[len(trip.Pickup.Path)-1].ID)
	assert.Equal(t, []string{"A", "B", "C"}, PathResult{Path: trip.Combined}.IDs())
}

func TestPlanTripVehicleAlreadyAtPickup(t *testing.T) {
	g := tripGraph(t)

	trip, err := PlanTrip(g, model.Point{X: 0, Y: 4}, "B", "C")
	require.NoError(t, err)

	assert.Equal(t, []string{"B"}, trip.Pickup.IDs())
	assert.Zero(t, trip.Pickup.Cost)
	assert.Equal(t, []string{"B", "C"}, PathResult{Path: trip.Combined}.IDs())
	assert.Equal(t, 5.0, trip.ETA)
}

func TestPlanTripPickupEqualsDropoff(t *testing.T) {
	g := tripGraph(t)

	trip, err := PlanTrip(g, model.Point{X: 5, Y: 5}, "A", "A")
	require.NoError(t, err)
	assert.Equal(t, []string{"C", "B", "A"}, PathResult{Path: trip.Combined}.IDs())
	assert.Equal(t, 10.0, trip.ETA)
}

func TestPlanTripFailures(t *testing.T) {
	tests := []struct {
		name      string
		pickup    string
		dropoff   string
		wantLeg   Leg
		wantIs    []error
		wantNotIs []error
	}{
		{
			name:      "pickup unreachable",
			pickup:    "D",
			dropoff:   "C",
			wantLeg:   LegPickup,
			wantIs:    []error{ErrNoRouteToPickup, ErrNoPathFound},
			wantNotIs: []error{ErrNoRouteToDestination},
		},
		{
			name:      "pickup unknown",
			pickup:    "Z",
			dropoff:   "C",
			wantLeg:   LegPickup,
			wantIs:    []error{ErrNoRouteToPickup, ErrUnknownNode},
			wantNotIs: []error{ErrNoPathFound},
		},
		{
			name:      "dropoff unreachable",
			pickup:    "B",
			dropoff:   "D",
			wantLeg:   LegDropoff,
			wantIs:    []error{ErrNoRouteToDestination, ErrNoPathFound},
			wantNotIs: []error{ErrNoRouteToPickup},
		},
		{
			name:    "dropoff unknown",
			pickup:  "B",
			dropoff: "Z",
			wantLeg: LegDropoff,
			wantIs:  []error{ErrNoRouteToDestination, ErrUnknownNode},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := PlanTrip(tripGraph(t), model.Point{}, tt.pickup, tt.dropoff)
			require.Error(t, err)

			var legErr *LegError
			require.True(t, errors.As(err, &legErr))
			assert.Equal(t, tt.wantLeg, legErr.Leg)
			for _, target := range tt.wantIs {
				assert.ErrorIs(t, err, target)
			}
			for _, target := range tt.wantNotIs {
				assert.NotErrorIs(t, err, target)
			}
		})
	}
}

func TestPlanTripEmptyGraph(t *testing.T) {
	_, err := PlanTrip(mustGraph(t, nil, nil), model.Point{}, "A", "B")
	assert.ErrorIs(t, err, ErrEmptyCandidateSet)
}
