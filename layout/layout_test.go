package layout_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.lepak.sg/bstviz/anim"
	"go.lepak.sg/bstviz/layout"
	"go.lepak.sg/bstviz/tree/bst"
)

func TestGrid(t *testing.T) {
	t.Run("empty", func(t *testing.T) {
		assert.Empty(t, layout.Grid(&bst.Tree[int]{}))
	})

	t.Run("sample", func(t *testing.T) {
		tr, dups := bst.FromValues(15, 6, 23, 4, 7, 20, 50)
		require.Empty(t, dups)

		want := anim.Lookup[int]{
			4:  {X: 0, Y: 2},
			6:  {X: 1, Y: 1},
			7:  {X: 2, Y: 2},
			15: {X: 3, Y: 0},
			20: {X: 4, Y: 2},
			23: {X: 5, Y: 1},
			50: {X: 6, Y: 2},
		}
		assert.Equal(t, want, layout.Grid(tr))
	})

	t.Run("x follows key order", func(t *testing.T) {
		tr := bst.BuildRandom(30, 3)
		lookup := layout.Grid(tr)
		require.Len(t, lookup, 30)

		// keys are 0..29, so key and in-order rank coincide
		for k, at := range lookup {
			assert.Equal(t, k, at.X, "key %d", k)
		}
	})
}

func TestPlace(t *testing.T) {
	tr, dups := bst.FromValues(2, 1, 3)
	require.Empty(t, dups)

	boxes := layout.Place(tr)
	require.Len(t, boxes, 3)

	root := boxes[0]
	assert.Equal(t, 2, root.Value)
	assert.Equal(t, anim.Coord{X: 1, Y: 0}, root.At)
	require.NotNil(t, root.Left)
	require.NotNil(t, root.Right)
	assert.Equal(t, 1, *root.Left)
	assert.Equal(t, 3, *root.Right)

	for _, leaf := range boxes[1:] {
		assert.Nil(t, leaf.Left, "leaf %d", leaf.Value)
		assert.Nil(t, leaf.Right, "leaf %d", leaf.Value)
		assert.Equal(t, 1, leaf.At.Y, "leaf %d", leaf.Value)
	}
}
