package params

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseKnownNames(t *testing.T) {
	for _, tc := range []struct {
		s    string
		want Name
	}{
		{"L1", L1},
		{"L3", L3},
		{"L5", L5},
	} {
		got, err := Parse(tc.s)
		require.NoError(t, err)
		require.Equal(t, tc.want, got)
	}
}

func TestParseUnknownNameReturnsConfigError(t *testing.T) {
	_, err := Parse("L2")
	require.Error(t, err)
	var cfgErr *ConfigError
	require.ErrorAs(t, err, &cfgErr)
}

func TestStringRoundTrip(t *testing.T) {
	for _, n := range []Name{L1, L3, L5} {
		parsed, err := Parse(n.String())
		require.NoError(t, err)
		require.Equal(t, n, parsed)
	}
	require.Equal(t, "Invalid", Name(99).String())
}

func TestJSONRoundTrip(t *testing.T) {
	for _, n := range []Name{L1, L3, L5} {
		b, err := json.Marshal(n)
		require.NoError(t, err)

		var got Name
		require.NoError(t, json.Unmarshal(b, &got))
		require.Equal(t, n, got)
	}
}

func TestJSONUnmarshalUnknownNameReturnsConfigError(t *testing.T) {
	var n Name
	err := json.Unmarshal([]byte(`"bogus"`), &n)
	require.Error(t, err)
	var cfgErr *ConfigError
	require.ErrorAs(t, err, &cfgErr)
}

func TestSetByName(t *testing.T) {
	s, err := SetByName("L3")
	require.NoError(t, err)
	require.Equal(t, Get(L3), s)

	_, err = SetByName("nope")
	require.Error(t, err)
	var cfgErr *ConfigError
	require.ErrorAs(t, err, &cfgErr)
}

func TestByteSizeAccessors(t *testing.T) {
	l1 := Get(L1)
	require.Equal(t, 800, l1.PublicKeySize())
	require.Equal(t, 768, l1.CiphertextSize())

	l5 := Get(L5)
	require.Equal(t, 1568, l5.PublicKeySize())
	require.Equal(t, 1568, l5.CiphertextSize())
}
