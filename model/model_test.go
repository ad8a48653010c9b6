package model

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRoadMultiplier(t *testing.T) {
	tests := []struct {
		in, want float64
	}{
		{0, 1},
		{-2, 1},
		{math.NaN(), 1},
		{math.Inf(1), 1},
		{0.25, 0.25},
		{3, 3},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Road{TrafficMultiplier: tt.in}.Multiplier(), "multiplier %v", tt.in)
	}
}

func TestAutoIsIdle(t *testing.T) {
	assert.True(t, Auto{}.IsIdle())
	assert.True(t, Auto{Status: AutoIdle}.IsIdle())
	assert.False(t, Auto{Status: AutoPickup}.IsIdle())
	assert.False(t, Auto{Status: AutoOnTrip}.IsIdle())
}

func TestSnapshotFindAuto(t *testing.T) {
	snap := Snapshot{Autos: []Auto{{ID: "a1", CurrentX: 1}, {ID: "a2", CurrentY: 2}}}

	a, ok := snap.FindAuto("a2")
	assert.True(t, ok)
	assert.Equal(t, Point{X: 0, Y: 2}, a.Position())

	_, ok = snap.FindAuto("a3")
	assert.False(t, ok)
}
