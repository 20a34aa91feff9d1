package serde

import (
	"testing"

	"github.com/cryptopix-dev/cryptopix-clwe/ring"
	"github.com/stretchr/testify/require"
)

func TestPackUnpackRoundTrip(t *testing.T) {
	p := ring.NewPoly()
	for i := range p.Coeffs {
		p.Coeffs[i] = int16((i * 37) % int(ring.Q))
	}
	got := Unpack(Pack(p))
	require.Equal(t, p.Coeffs, got.Coeffs)
}

func TestCompressBoundary(t *testing.T) {
	for _, d := range []int{4, 5, 10, 11} {
		// Compress/decompress is lossy by at most one half-step of the
		// d-bit quantization, plus slack for Q's rounding to a power of two.
		bound := int16(ring.Q>>uint(d)) + 2
		for x := int16(0); x < ring.Q; x += 17 {
			y := Compress(x, d)
			back := Decompress(y, d)
			diff := back - x
			if diff < 0 {
				diff = -diff
			}
			cyclic := diff
			if ring.Q-diff < cyclic {
				cyclic = ring.Q - diff
			}
			require.LessOrEqualf(t, cyclic, bound,
				"compress/decompress(%d, d=%d) drifted by %d", x, d, cyclic)
		}
	}
}

func TestCompressedPackRoundTrip(t *testing.T) {
	for _, d := range []int{4, 10} {
		vals := make([]uint16, ring.N)
		for i := range vals {
			vals[i] = uint16(i) % (1 << uint(d))
		}
		packed := PackCompressed(vals, d)
		require.Equal(t, CompressedPolyBytes(d), len(packed))
		got := UnpackCompressed(packed, d, ring.N)
		require.Equal(t, vals, got)
	}
}

func TestMessageRoundTrip(t *testing.T) {
	for trial := 0; trial < 8; trial++ {
		var m [32]byte
		for i := range m {
			m[i] = byte((trial*97 + i*31) % 256)
		}
		p := EncodeMessage(m)
		got := DecodeMessage(p)
		require.Equal(t, m, got)
	}
}

func TestMessageRoundTripAllZeroAllOne(t *testing.T) {
	var zero, one [32]byte
	for i := range one {
		one[i] = 0xFF
	}
	require.Equal(t, zero, DecodeMessage(EncodeMessage(zero)))
	require.Equal(t, one, DecodeMessage(EncodeMessage(one)))
}
