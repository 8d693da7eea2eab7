package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vexlio/graphmat/core"
)

func TestKey_Encoding(t *testing.T) {
	g := core.New("A", "B", "C")
	_, _ = g.SetWeight("A", "B", 5)
	_, _ = g.SetWeight("B", "C", 2)

	assert.Equal(t, "A|B|C@A#B#5|B#C#2", g.Key())
}

func TestKey_EmptyAndEdgeless(t *testing.T) {
	assert.Equal(t, "@", core.New().Key())
	assert.Equal(t, "A|B@", core.New("A", "B").Key())
}

func TestParseKey_RoundTrip(t *testing.T) {
	g := core.New("A", "B", "C", "D")
	_, _ = g.SetWeight("A", "B", 5)
	_, _ = g.SetWeight("B", "C", 2)
	_, _ = g.SetWeight("D", "A", 0)

	back, err := core.ParseKey(g.Key())
	require.NoError(t, err)

	// Isomorphic: same vertices, same weighted edges.
	assert.ElementsMatch(t, g.Vertices(), back.Vertices())
	assert.ElementsMatch(t, g.Edges(), back.Edges())
}

func TestParseKey_Malformed(t *testing.T) {
	cases := []struct {
		name string
		key  string
	}{
		{"no section separator", "A|B"},
		{"two section separators", "A@B@C"},
		{"edge entry too short", "A|B@A#B"},
		{"edge entry too long", "A|B@A#B#1#2"},
		{"non-numeric weight", "A|B@A#B#heavy"},
		{"edge to unknown vertex", "A|B@A#Z#1"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := core.ParseKey(tc.key)
			assert.ErrorIs(t, err, core.ErrMalformedKey)
		})
	}
}

func TestDense_Export(t *testing.T) {
	g := core.New("A", "B")
	_, _ = g.SetWeight("A", "B", 5)

	d := g.Dense()
	require.NotNil(t, d)
	r, c := d.Dims()
	assert.Equal(t, 2, r)
	assert.Equal(t, 2, c)
	assert.Equal(t, 5.0, d.At(0, 1))
	// Absent edges export as zero.
	assert.Equal(t, 0.0, d.At(1, 0))

	assert.Nil(t, core.New().Dense())
}
