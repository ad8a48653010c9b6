package algo

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want ErrorKind
	}{
		{"nil", nil, KindNone},
		{"auto not found", fmt.Errorf("%w: a1", ErrAutoNotFound), KindAutoNotFound},
		{"no nodes", fmt.Errorf("%w: %w", ErrNoNodes, ErrEmptyCandidateSet), KindNoNodes},
		{"pickup leg", &LegError{Leg: LegPickup, Err: ErrNoPathFound}, KindNoRouteToPickup},
		{"pickup leg with unknown node", &LegError{Leg: LegPickup, Err: &UnknownNodeError{IDs: []string{"x"}}}, KindNoRouteToPickup},
		{"dropoff leg", &LegError{Leg: LegDropoff, Err: ErrNoPathFound}, KindNoRouteToDestination},
		{"bare unknown node", &UnknownNodeError{IDs: []string{"x"}}, KindUnknownNode},
		{"empty candidates", ErrEmptyCandidateSet, KindEmptyCandidateSet},
		{"invariant inside a leg", &LegError{Leg: LegDropoff, Err: fmt.Errorf("%w: negative", ErrInvariantViolation)}, KindInternal},
		{"anything else", errors.New("boom"), KindUnknown},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.err))
		})
	}
}

func TestLegErrorMessage(t *testing.T) {
	err := &LegError{Leg: LegDropoff, Err: &UnknownNodeError{IDs: []string{"n9"}}}
	assert.Equal(t, "cannot find a valid road to the destination: unknown node: n9", err.Error())
	assert.Equal(t, "dropoff", err.Leg.String())
	assert.Equal(t, "pickup", LegPickup.String())
}
