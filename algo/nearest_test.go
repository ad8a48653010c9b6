package algo

import (
	"testing"

	"auto-dispatch/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNearest(t *testing.T) {
	nodes := []model.Node{
		{ID: "n1", X: 10, Y: 0},
		{ID: "n2", X: 3, Y: 3},
		{ID: "n3", X: -2, Y: 4},
		{ID: "n4", X: 6, Y: 0},
	}

	tests := []struct {
		name  string
		point model.Point
		want  string
	}{
		{"exact match", model.Point{X: 10, Y: 0}, "n1"},
		{"global minimum", model.Point{X: 2, Y: 2}, "n2"},
		{"tie goes to first in input order", model.Point{X: 4.5, Y: 1.5}, "n2"},
		{"negative side", model.Point{X: -5, Y: 5}, "n3"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Nearest(tt.point, nodes)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.ID)
		})
	}
}

func TestNearestEmptyCandidateSet(t *testing.T) {
	_, err := Nearest(model.Point{}, []model.Node{})
	assert.ErrorIs(t, err, ErrEmptyCandidateSet)

	_, err = Nearest[model.Auto](model.Point{}, nil)
	assert.ErrorIs(t, err, ErrEmptyCandidateSet)
}
