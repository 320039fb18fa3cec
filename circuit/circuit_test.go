package circuit_test

import (
	"testing"

	"github.com/katalvlaran/qdistill/circuit"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// cnotsBetweenBarriers extracts the CNOT (control, target) pairs of the
// encode and decode stages: the CNOT runs immediately before and after
// the transversal-T block.
func encodeDecodeCNOTs(t *testing.T, p *circuit.Program) (encode, decode [][2]int) {
	t.Helper()

	// Locate the transversal block: the run of OpT ops.
	firstT, lastT := -1, -1
	for i, op := range p.Ops {
		if op.Kind == circuit.OpT {
			if firstT < 0 {
				firstT = i
			}
			lastT = i
		}
	}
	require.GreaterOrEqual(t, firstT, 0, "magic program must contain a transversal T block")

	for _, op := range p.Ops[:firstT] {
		if op.Kind == circuit.OpCNOT {
			encode = append(encode, [2]int{op.Control, op.Target})
		}
	}
	for _, op := range p.Ops[lastT+1:] {
		if op.Kind == circuit.OpCNOT {
			decode = append(decode, [2]int{op.Control, op.Target})
		}
	}
	return encode, decode
}

// TestMagicPrograms_DecodeIsReversedEncode verifies the structural-inverse
// invariant for every magic-state constructor.
func TestMagicPrograms_DecodeIsReversedEncode(t *testing.T) {
	for _, proto := range []circuit.Protocol{circuit.Magic3, circuit.Magic15Ring, circuit.Magic15Star} {
		p, err := circuit.New(proto)
		require.NoError(t, err)

		encode, decode := encodeDecodeCNOTs(t, p)
		require.NotEmpty(t, encode, "%s: encode layer missing", proto)
		require.Len(t, decode, len(encode), "%s: decode length", proto)
		for i := range encode {
			assert.Equal(t, encode[i], decode[len(decode)-1-i],
				"%s: decode op %d is not the mirrored encode op", proto, i)
		}
	}
}

// TestMagicPrograms_TransversalCoversBlock verifies every qubit receives
// exactly one transversal T.
func TestMagicPrograms_TransversalCoversBlock(t *testing.T) {
	for _, proto := range []circuit.Protocol{circuit.Magic3, circuit.Magic15Ring, circuit.Magic15Star} {
		p, err := circuit.New(proto)
		require.NoError(t, err)

		seen := make(map[int]int)
		for _, op := range p.Ops {
			if op.Kind == circuit.OpT {
				seen[op.Target]++
			}
		}
		require.Len(t, seen, p.Qubits, "%s: transversal block width", proto)
		for q, n := range seen {
			assert.Equal(t, 1, n, "%s: qubit %d must get exactly one T", proto, q)
		}
	}
}

// TestMagicPrograms_EncodeChainReachesAllQubits verifies the fan-out
// property: tracking the data qubit's chain through the encode CNOTs
// touches the whole block, which is what makes T⊗k a logical operation.
func TestMagicPrograms_EncodeChainReachesAllQubits(t *testing.T) {
	for _, proto := range []circuit.Protocol{circuit.Magic3, circuit.Magic15Ring, circuit.Magic15Star} {
		p, err := circuit.New(proto)
		require.NoError(t, err)

		encode, _ := encodeDecodeCNOTs(t, p)
		chain := map[int]bool{0: true}
		for _, cx := range encode {
			if chain[cx[0]] {
				chain[cx[1]] = !chain[cx[1]]
			}
		}
		count := 0
		for _, in := range chain {
			if in {
				count++
			}
		}
		assert.Equal(t, p.Qubits, count, "%s: data chain must cover all qubits exactly once", proto)
	}
}

// TestMagicPrograms_MeasurementMap verifies the syndrome/data split and
// the classical-bit bindings.
func TestMagicPrograms_MeasurementMap(t *testing.T) {
	for _, proto := range []circuit.Protocol{circuit.Magic3, circuit.Magic15Ring, circuit.Magic15Star} {
		p, err := circuit.New(proto)
		require.NoError(t, err)

		assert.Equal(t, circuit.AcceptAllZero, p.Rule)
		assert.Equal(t, []int{0}, p.DataBits, "%s: single data bit", proto)
		assert.Len(t, p.SyndromeBits, p.Qubits-1, "%s: one syndrome per check qubit", proto)

		measured := make(map[int]int)
		for _, op := range p.Ops {
			if op.Kind == circuit.OpMeasure {
				measured[op.Target] = op.CBit
			}
		}
		require.Len(t, measured, p.Qubits, "%s: every qubit measured once", proto)
		for q, cbit := range measured {
			assert.Equal(t, q, cbit, "%s: qubit→bit map is the identity", proto)
		}
	}
}

// TestBBPSSW_Structure verifies the purification program's fixed layout.
func TestBBPSSW_Structure(t *testing.T) {
	p := circuit.NewBBPSSW()

	assert.Equal(t, 4, p.Qubits)
	assert.Equal(t, 4, p.ClassicalBits)
	assert.Equal(t, circuit.AcceptAllEqual, p.Rule)
	assert.Equal(t, []int{1, 3}, p.SyndromeBits, "A2/B2 agreement bits")
	assert.Equal(t, []int{0, 2}, p.DataBits, "surviving pair (A1, B1)")

	var cnots [][2]int
	for _, op := range p.Ops {
		if op.Kind == circuit.OpCNOT {
			cnots = append(cnots, [2]int{op.Control, op.Target})
		}
	}
	assert.Equal(t, [][2]int{{0, 2}, {1, 3}, {0, 1}, {2, 3}}, cnots)
}

// TestProgram_Accept covers both acceptance rules.
func TestProgram_Accept(t *testing.T) {
	bb := circuit.NewBBPSSW()
	assert.True(t, bb.Accept(circuit.Bits{0, 0, 1, 0}), "c1==c3==0")
	assert.True(t, bb.Accept(circuit.Bits{1, 1, 0, 1}), "c1==c3==1")
	assert.False(t, bb.Accept(circuit.Bits{0, 1, 0, 0}), "c1!=c3")

	m3 := circuit.NewMagic3()
	assert.True(t, m3.Accept(circuit.Bits{1, 0, 0}), "data bit does not matter")
	assert.False(t, m3.Accept(circuit.Bits{0, 1, 0}))
	assert.False(t, m3.Accept(circuit.Bits{0, 0, 1}))
}

// TestProgram_DataKey covers the data-bit locator.
func TestProgram_DataKey(t *testing.T) {
	bb := circuit.NewBBPSSW()
	assert.Equal(t, "11", bb.DataKey(circuit.Bits{1, 0, 1, 0}))
	assert.Equal(t, "01", bb.DataKey(circuit.Bits{0, 1, 1, 1}))

	m3 := circuit.NewMagic3()
	assert.Equal(t, "1", m3.DataKey(circuit.Bits{1, 0, 0}))
}

// TestBits_String verifies the histogram key rendering (bit 0 leftmost).
func TestBits_String(t *testing.T) {
	assert.Equal(t, "0110", circuit.Bits{0, 1, 1, 0}.String())
	assert.Equal(t, "", circuit.Bits{}.String())
}

// TestParseProtocol covers the round trip and the unknown sentinel.
func TestParseProtocol(t *testing.T) {
	for _, proto := range []circuit.Protocol{circuit.BBPSSW, circuit.Magic3, circuit.Magic15Ring, circuit.Magic15Star} {
		got, err := circuit.ParseProtocol(proto.String())
		require.NoError(t, err)
		assert.Equal(t, proto, got)
	}

	_, err := circuit.ParseProtocol("ghz")
	assert.ErrorIs(t, err, circuit.ErrUnknownProtocol)

	_, err = circuit.New(circuit.Protocol(42))
	assert.ErrorIs(t, err, circuit.ErrUnknownProtocol)
}
