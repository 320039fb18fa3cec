package sampler_test

import (
	"context"
	"testing"

	"github.com/katalvlaran/qdistill/circuit"
	"github.com/katalvlaran/qdistill/noise"
	"github.com/katalvlaran/qdistill/sampler"
)

func benchmarkRun(b *testing.B, prog *circuit.Program, shots int) {
	b.Helper()
	ctx := context.Background()
	spec := noise.NewSpec(0.01)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := sampler.Run(ctx, prog, spec, shots, sampler.WithSeed(int64(i))); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkRun_BBPSSW_1kShots(b *testing.B) {
	benchmarkRun(b, circuit.NewBBPSSW(), 1000)
}

func BenchmarkRun_Magic3_1kShots(b *testing.B) {
	benchmarkRun(b, circuit.NewMagic3(), 1000)
}

func BenchmarkRun_Magic15Ring_100Shots(b *testing.B) {
	benchmarkRun(b, circuit.NewMagic15Ring(), 100)
}
