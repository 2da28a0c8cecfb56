// SPDX-License-Identifier: MIT

// Package builder contains unit tests for the configuration primitives
// (builderConfig and BuilderOption).
package builder

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestIDSchemeOptions verifies that ID scheme options are applied in order.
func TestIDSchemeOptions(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "7", newBuilderConfig().name(7))
	assert.Equal(t, "A", newBuilderConfig(WithSymbolIDs()).name(0))
	assert.Equal(t, "AB", newBuilderConfig(WithExcelColumnIDs()).name(27))
	assert.Equal(t, "t3", newBuilderConfig(WithSymbNumb("t")).name(3))
	assert.Equal(t, "3", newBuilderConfig(WithSymbolIDs(), WithDefaultIDs()).name(3), "last option wins")

	assert.Panics(t, func() { WithIDScheme(nil) })
}

func TestPrefixOption(t *testing.T) {
	t.Parallel()

	cfg := newBuilderConfig(WithPrefix("n-"), WithSymbolIDs())
	assert.Equal(t, "n-B", cfg.name(1))
	assert.Equal(t, "n-"+CenterTownID, cfg.fixed(CenterTownID))
}

// TestRNGOptions verifies reproducibility with WithSeed and WithRand.
func TestRNGOptions(t *testing.T) {
	t.Parallel()

	assert.Nil(t, newBuilderConfig().rng, "no randomness by default")

	a := newBuilderConfig(WithSeed(42))
	b := newBuilderConfig(WithSeed(42))
	require.NotNil(t, a.rng)
	for i := 0; i < 5; i++ {
		assert.Equal(t, a.rng.Int63(), b.rng.Int63())
	}

	r := rand.New(rand.NewSource(1))
	assert.Same(t, r, newBuilderConfig(WithRand(r)).rng)
	assert.Panics(t, func() { WithRand(nil) })
}
