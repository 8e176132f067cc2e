package flex

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestResolve_ByUnit(t *testing.T) {
	cases := []struct {
		name string
		v    Value
		ref  float64
		want float64
	}{
		{"point ignores reference", Point(10), 200, 10},
		{"percent of reference", Percent(25), 200, 50},
		{"auto resolves undefined", ValueAuto, 200, math.NaN()},
		{"undefined resolves undefined", ValueUndefined, 200, math.NaN()},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := Resolve(c.v, c.ref)
			if math.IsNaN(c.want) {
				require.True(t, math.IsNaN(got))
			} else {
				require.Equal(t, c.want, got)
			}
		})
	}
}

func TestResolveMargin_AutoResolvesToZero(t *testing.T) {
	require.Equal(t, 0.0, ResolveMargin(ValueAuto, 100))
	require.Equal(t, 10.0, ResolveMargin(Point(10), 100))
	require.Equal(t, 10.0, ResolveMargin(Percent(10), 100))
}

func TestFloatsEqual_TreatsNaNAsEqualToNaN(t *testing.T) {
	require.True(t, FloatsEqual(math.NaN(), math.NaN()))
	require.False(t, FloatsEqual(math.NaN(), 1))
	require.True(t, FloatsEqual(1.00001, 1.00002))
	require.False(t, FloatsEqual(1, 2))
}
