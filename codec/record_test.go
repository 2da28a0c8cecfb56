// SPDX-License-Identifier: MIT

package codec_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/schoolnet/codec"
)

func TestParseLine(t *testing.T) {
	t.Parallel()

	ok := []struct {
		line string
		want codec.Record
	}{
		{"ville(Paris)", codec.Record{Kind: codec.KindTown, A: "Paris"}},
		{"ville(Paris).", codec.Record{Kind: codec.KindTown, A: "Paris"}},
		{"ville(Saint Denis)\r", codec.Record{Kind: codec.KindTown, A: "Saint Denis"}},
		{"route(A,B)", codec.Record{Kind: codec.KindRoad, A: "A", B: "B"}},
		{"route(A,B).", codec.Record{Kind: codec.KindRoad, A: "A", B: "B"}},
		{"ecole(A)", codec.Record{Kind: codec.KindFacility, A: "A"}},
	}
	for _, tc := range ok {
		got, err := codec.ParseLine(tc.line)
		require.NoError(t, err, tc.line)
		assert.Equal(t, tc.want, got, tc.line)
	}

	bad := []struct {
		line string
		want error
	}{
		{"", codec.ErrEmptyLine},
		{"\r", codec.ErrEmptyLine},
		{"   ", codec.ErrMalformedLine},
		{"ville(A) ", codec.ErrMalformedLine},
		{" ville(A)", codec.ErrMalformedLine},
		{"ville()", codec.ErrMalformedLine},
		{"ville(A", codec.ErrMalformedLine},
		{"ville(A)..", codec.ErrMalformedLine},
		{"town(A)", codec.ErrMalformedLine},
		{"Ville(A)", codec.ErrMalformedLine},
		{"route(A)", codec.ErrMalformedLine},
		{"route(A,)", codec.ErrMalformedLine},
		{"route(A,B,C)", codec.ErrMalformedLine},
		{"ecole(A,B)", codec.ErrMalformedLine},
		{"ville(A(B))", codec.ErrMalformedLine},
	}
	for _, tc := range bad {
		_, err := codec.ParseLine(tc.line)
		assert.ErrorIs(t, err, tc.want, "%q", tc.line)
	}
}

func TestRecord_String(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "ville(X)", codec.Record{Kind: codec.KindTown, A: "X"}.String())
	assert.Equal(t, "route(X,Y)", codec.Record{Kind: codec.KindRoad, A: "X", B: "Y"}.String())
	assert.Equal(t, "ecole(Y)", codec.Record{Kind: codec.KindFacility, A: "Y"}.String())
	assert.Equal(t, "unknown", codec.Kind(0).String())

	assert.True(t, codec.ValidName("Y"))
	assert.False(t, codec.ValidName("a,b"))
}
