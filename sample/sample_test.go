package sample

import (
	"bytes"
	"testing"

	"github.com/cryptopix-dev/cryptopix-clwe/ring"
	"github.com/cryptopix-dev/cryptopix-clwe/xof"
	"github.com/stretchr/testify/require"
)

func TestUniformInRange(t *testing.T) {
	p := ring.NewPoly()
	Uniform(p, bytes.Repeat([]byte{0xAB}, 32))
	for _, c := range p.Coeffs {
		require.True(t, c >= 0 && c < ring.Q)
	}
}

func TestUniformDeterministic(t *testing.T) {
	seed := bytes.Repeat([]byte{0x11}, 32)
	a, b := ring.NewPoly(), ring.NewPoly()
	Uniform(a, seed)
	Uniform(b, seed)
	require.Equal(t, a.Coeffs, b.Coeffs)
}

func TestCBDBounded(t *testing.T) {
	for _, eta := range []int{2, 3} {
		p := ring.NewPoly()
		CBD(p, eta, bytes.Repeat([]byte{0x55}, 32), xof.TagCBDSecretS, 0)
		for _, c := range p.Coeffs {
			// Centered around 0 before reduction the magnitude is <= eta;
			// after Reduce(), values in [0, eta] or [Q-eta, Q) are valid.
			require.True(t, (c >= 0 && c <= int16(eta)) || (c >= ring.Q-int16(eta) && c < ring.Q))
		}
	}
}

func TestCBDNonceChangesOutput(t *testing.T) {
	sigma := bytes.Repeat([]byte{0x77}, 32)
	a, b := ring.NewPoly(), ring.NewPoly()
	CBD(a, 3, sigma, xof.TagCBDSecretS, 0)
	CBD(b, 3, sigma, xof.TagCBDSecretS, 1)
	require.NotEqual(t, a.Coeffs, b.Coeffs)
}

func TestExpandADeterministicAndSquare(t *testing.T) {
	rho := bytes.Repeat([]byte{0x09}, 32)
	m1 := ExpandA(3, rho)
	m2 := ExpandA(3, rho)
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			require.True(t, m1.Rows[i][j].IsNTT)
			require.Equal(t, m1.Rows[i][j].Coeffs, m2.Rows[i][j].Coeffs)
		}
	}
}

func TestExpandAAsymmetricInIndices(t *testing.T) {
	rho := bytes.Repeat([]byte{0x0A}, 32)
	m := ExpandA(2, rho)
	require.NotEqual(t, m.Rows[0][1].Coeffs, m.Rows[1][0].Coeffs)
}
