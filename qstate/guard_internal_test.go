package qstate

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestMeasure_InstabilityGuard drives the renormalization guard directly
// with a denormalized register: the selected branch carries ~0 weight, so
// Measure must fail with ErrNumericalInstability instead of emitting NaN.
func TestMeasure_InstabilityGuard(t *testing.T) {
	s := &StateVector{amps: []complex128{1e-12, 0}, n: 1}

	_, err := s.Measure(0, BasisZ, rand.New(rand.NewSource(1)))
	assert.ErrorIs(t, err, ErrNumericalInstability)
}
