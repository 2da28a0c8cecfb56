// SPDX-License-Identifier: MIT

package codec_test

import (
	"bytes"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/schoolnet/builder"
	"github.com/katalvlaran/schoolnet/codec"
	"github.com/katalvlaran/schoolnet/core"
)

func save(n *core.Network) string {
	var buf bytes.Buffer
	if err := codec.Save(&buf, n); err != nil {
		return "<" + err.Error() + ">"
	}
	return buf.String()
}

// Save∘Load∘Save is the identity for any accessible network.
func TestRoundTrip_Property(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 150
	parameters.Rng.Seed(99)

	properties := gopter.NewProperties(parameters)

	properties.Property("save-load-save is stable", prop.ForAll(
		func(size int, percent int, seed int64, naive bool) bool {
			n, err := builder.BuildNetwork(
				[]builder.BuilderOption{builder.WithSeed(seed), builder.WithSymbNumb("t")},
				builder.RandomSparse(size, float64(percent)/100))
			if err != nil {
				return false
			}
			if naive {
				n.ApplyFullCoverage()
			} else {
				n.SolveGreedy()
			}

			first := save(n)
			m, res, err := codec.Load(bytes.NewBufferString(first))
			if err != nil || res.FallbackApplied {
				return false
			}
			return save(m) == first
		},
		gen.IntRange(1, 20), gen.IntRange(0, 100), gen.Int64(), gen.Bool(),
	))

	properties.TestingRun(t)
}

func TestRoundTrip_Builders(t *testing.T) {
	t.Parallel()

	cons := map[string]builder.Constructor{
		"star":  builder.Star(6),
		"wheel": builder.Wheel(6),
		"grid":  builder.Grid(3, 4),
		"mixed": builder.WithPrefixed("x", builder.Cycle(5)),
	}
	for name, con := range cons {
		n, err := builder.BuildNetwork(nil, con, builder.Isolated(2))
		require.NoError(t, err, name)
		n.SolveGreedy()

		first := save(n)
		m, res, err := codec.Load(bytes.NewBufferString(first))
		require.NoError(t, err, name)
		require.False(t, res.FallbackApplied, name)
		require.Equal(t, n.Towns(), m.Towns(), name)
		require.Equal(t, n.Roads(), m.Roads(), name)
		require.Equal(t, n.Facilities(), m.Facilities(), name)
		require.Equal(t, first, save(m), name)
	}
}
