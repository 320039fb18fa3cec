package distill_test

import (
	"context"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/qdistill/circuit"
	"github.com/katalvlaran/qdistill/distill"
	"github.com/katalvlaran/qdistill/noise"
	"github.com/katalvlaran/qdistill/sampler"
)

// TestPostSelect_BBPSSWRule checks acceptance, projection and the
// success-rate arithmetic on a hand-built histogram.
func TestPostSelect_BBPSSWRule(t *testing.T) {
	prog := circuit.NewBBPSSW()
	h := sampler.Histogram{
		Counts: map[string]int{
			"0000": 40, // c1 == c3 == 0: accepted, data "00"
			"0101": 30, // c1 == c3 == 1: accepted, data "00"
			"0100": 20, // c1 != c3: rejected
			"0011": 10, // c1 != c3: rejected
		},
		Completed: 100,
	}

	sel := distill.PostSelect(h, prog)
	assert.False(t, sel.Degenerate)
	assert.Equal(t, 70, sel.Accepted)
	assert.InDelta(t, 0.70, sel.SuccessRate, 1e-12)
	assert.Equal(t, map[string]int{"00": 70}, sel.Output)
}

// TestPostSelect_Degenerate covers both void cases.
func TestPostSelect_Degenerate(t *testing.T) {
	prog := circuit.NewMagic3()

	empty := distill.PostSelect(sampler.Histogram{Counts: map[string]int{}}, prog)
	assert.True(t, empty.Degenerate)
	assert.Zero(t, empty.SuccessRate)

	// Every shot trips a syndrome; nothing survives.
	rejected := distill.PostSelect(sampler.Histogram{
		Counts:    map[string]int{"010": 5, "001": 5},
		Completed: 10,
	}, prog)
	assert.True(t, rejected.Degenerate)
	assert.Zero(t, rejected.SuccessRate)
	assert.Empty(t, rejected.Output)
}

func TestFidelity(t *testing.T) {
	ideal := map[string]float64{"00": 0.5, "11": 0.5}

	assert.Zero(t, distill.Fidelity(nil, ideal), "empty output")
	assert.InDelta(t, 1.0,
		distill.Fidelity(map[string]int{"00": 500, "11": 500}, ideal), 1e-12,
		"exact match")
	assert.InDelta(t, 0.5,
		distill.Fidelity(map[string]int{"00": 1000}, ideal), 1e-12,
		"half the support")
	assert.Zero(t,
		distill.Fidelity(map[string]int{"01": 1000}, ideal),
		"disjoint support")
}

func TestIdealOutput(t *testing.T) {
	bb := distill.IdealOutput(circuit.BBPSSW)
	assert.InDelta(t, 0.5, bb["00"], 1e-12)
	assert.InDelta(t, 0.5, bb["11"], 1e-12)

	m3 := distill.IdealOutput(circuit.Magic3)
	assert.InDelta(t, math.Pow(math.Cos(3*math.Pi/8), 2), m3["0"], 1e-12)
	assert.InDelta(t, 1.0, m3["0"]+m3["1"], 1e-12)

	m15 := distill.IdealOutput(circuit.Magic15Ring)
	assert.InDelta(t, math.Pow(math.Cos(math.Pi/8), 2), m15["0"], 1e-12)
	assert.Equal(t, m15, distill.IdealOutput(circuit.Magic15Star))

	assert.Nil(t, distill.IdealOutput(circuit.Protocol(42)))
}

func TestTheory(t *testing.T) {
	_, err := distill.Theory(circuit.Magic3, -0.1)
	assert.ErrorIs(t, err, noise.ErrInvalidStrength)
	_, err = distill.Theory(circuit.Protocol(42), 0.1)
	assert.ErrorIs(t, err, circuit.ErrUnknownProtocol)

	for _, p := range []circuit.Protocol{circuit.BBPSSW, circuit.Magic3, circuit.Magic15Ring} {
		pred, err := distill.Theory(p, 0)
		require.NoError(t, err)
		assert.Zero(t, pred.OutputErrorRate, "%s at eps=0", p)
		assert.Equal(t, 1.0, pred.OutputFidelity, "%s at eps=0", p)
		assert.Equal(t, 1.0, pred.PredictedSuccess, "%s at eps=0", p)
	}

	pred, err := distill.Theory(circuit.Magic15Star, 0.1)
	require.NoError(t, err)
	assert.InDelta(t, 0.035, pred.OutputErrorRate, 1e-12)
	assert.InDelta(t, math.Pow(0.8, 14), pred.PredictedSuccess, 1e-12)

	pred, err = distill.Theory(circuit.Magic3, 0.1)
	require.NoError(t, err)
	assert.InDelta(t, 0.03, pred.OutputErrorRate, 1e-12)
	assert.InDelta(t, 0.64, pred.PredictedSuccess, 1e-12)
}

// TestRun_NoiselessIsPerfect: at eps=0 every protocol accepts every shot
// and reproduces its ideal output distribution.
func TestRun_NoiselessIsPerfect(t *testing.T) {
	ctx := context.Background()
	cases := []struct {
		p     circuit.Protocol
		shots int
	}{
		{circuit.BBPSSW, 10000},
		{circuit.Magic3, 10000},
		{circuit.Magic15Ring, 300},
		{circuit.Magic15Star, 300},
	}
	for _, tc := range cases {
		res, err := distill.Run(ctx, tc.p, 0, tc.shots, distill.WithSeed(1))
		require.NoError(t, err, tc.p)
		assert.Equal(t, tc.shots, res.Completed, tc.p)
		assert.Equal(t, 1.0, res.SuccessRate, "%s: noiseless acceptance must be exact", tc.p)
		assert.False(t, res.Degenerate, tc.p)
		assert.Greater(t, res.FidelityEstimate, 0.98, tc.p)
	}
}

// TestRun_SuppressesError: the residual error of the distilled output is
// below the input noise strength.
func TestRun_SuppressesError(t *testing.T) {
	const eps = 0.05
	res, err := distill.Run(context.Background(), circuit.Magic3, eps, 8000,
		distill.WithSeed(5))
	require.NoError(t, err)
	require.False(t, res.Degenerate)

	assert.Less(t, res.SuccessRate, 1.0, "noise must trip some syndromes")
	assert.Less(t, 1-res.FidelityEstimate, eps,
		"distilled error must beat the input error rate")
}

// TestRun_FidelityMonotonicInNoise: more input noise, less output
// fidelity. Sampled far enough apart to dominate shot noise.
func TestRun_FidelityMonotonicInNoise(t *testing.T) {
	ctx := context.Background()
	low, err := distill.Run(ctx, circuit.Magic3, 0.02, 8000, distill.WithSeed(9))
	require.NoError(t, err)
	high, err := distill.Run(ctx, circuit.Magic3, 0.12, 8000, distill.WithSeed(9))
	require.NoError(t, err)

	assert.Greater(t, low.FidelityEstimate, high.FidelityEstimate)
	assert.Greater(t, low.SuccessRate, high.SuccessRate)
}

// TestRun_TheoryAgreement: at small eps the empirical acceptance rate
// tracks the closed-form prediction.
func TestRun_TheoryAgreement(t *testing.T) {
	const eps = 0.001
	res, err := distill.Run(context.Background(), circuit.Magic3, eps, 20000,
		distill.WithSeed(13))
	require.NoError(t, err)
	pred, err := distill.Theory(circuit.Magic3, eps)
	require.NoError(t, err)

	assert.InDelta(t, pred.PredictedSuccess, res.SuccessRate, 0.02)
	assert.InDelta(t, pred.OutputFidelity, res.FidelityEstimate, 0.02)
}

// TestSweep_Magic15RingTracksTheory sweeps the 15-to-1 code: acceptance
// decays monotonically with noise, and at tiny eps the fidelity estimate
// stays close to the cubic-suppression prediction. Shot counts are kept
// small; a 15-qubit register is 32768 amplitudes per gate.
func TestSweep_Magic15RingTracksTheory(t *testing.T) {
	const shots = 300
	levels := []float64{0, 0.001, 0.005, 0.02}

	points, err := distill.Sweep(context.Background(), circuit.Magic15Ring,
		levels, shots, distill.WithSeed(17))
	require.NoError(t, err)
	require.Len(t, points, len(levels))

	for i, pt := range points {
		require.NoError(t, pt.Err, "level %g", levels[i])
		if i > 0 {
			assert.LessOrEqual(t, pt.Result.SuccessRate, points[i-1].Result.SuccessRate,
				"acceptance must not grow with noise")
		}
	}

	assert.Equal(t, 1.0, points[0].Result.SuccessRate, "noiseless acceptance is exact")
	assert.InDelta(t, points[1].Prediction.OutputFidelity,
		points[1].Result.FidelityEstimate, 0.1,
		"cubic suppression at eps=0.001")
}

func TestRun_UnknownProtocol(t *testing.T) {
	_, err := distill.Run(context.Background(), circuit.Protocol(42), 0.1, 10)
	assert.ErrorIs(t, err, circuit.ErrUnknownProtocol)
}

func TestSweep(t *testing.T) {
	ctx := context.Background()
	levels := []float64{0, 0.05, 1.7, 0.1}

	points, err := distill.Sweep(ctx, circuit.Magic3, levels, 2000, distill.WithSeed(21))
	require.NoError(t, err, "a bad level must not abort the sweep")
	require.Len(t, points, len(levels))

	for i, pt := range points {
		assert.Equal(t, levels[i], pt.Result.Noise, "input order preserved")
	}
	assert.NoError(t, points[0].Err)
	assert.Equal(t, 1.0, points[0].Result.SuccessRate)
	assert.NoError(t, points[1].Err)
	assert.ErrorIs(t, points[2].Err, noise.ErrInvalidStrength)
	assert.Zero(t, points[2].Result.Completed)
	assert.NoError(t, points[3].Err)
}

func TestSweep_Cancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	points, err := distill.Sweep(ctx, circuit.Magic3, []float64{0, 0.1}, 100)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, points, "only fully completed points are kept")
}
