package model

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBrushCollectionDeduplicatesBySemanticKey(t *testing.T) {
	bc := NewBrushCollection()
	b := Brush{ID: "ignored", Color: [3]uint8{1, 2, 3}, StrokeWidthCm: 0.5}

	id1 := bc.AddBrush(b)
	id2 := bc.AddBrush(b)

	require.Equal(t, id1, id2)
	require.Len(t, bc.Brushes(), 1)
	require.Equal(t, []string{id1, id2}, bc.Mapping())
}

func TestBrushCollectionDistinguishesDifferentBrushes(t *testing.T) {
	bc := NewBrushCollection()
	a := Brush{Color: [3]uint8{1, 2, 3}, StrokeWidthCm: 0.5}
	b := Brush{Color: [3]uint8{4, 5, 6}, StrokeWidthCm: 0.5}

	idA := bc.AddBrush(a)
	idB := bc.AddBrush(b)

	require.NotEqual(t, idA, idB)
	require.Len(t, bc.Brushes(), 2)
}

func TestBrushCollectionCoercesNonFiniteWidthBits(t *testing.T) {
	bc := NewBrushCollection()
	nan := Brush{StrokeWidthCm: math.NaN()}
	inf := Brush{StrokeWidthCm: math.Inf(1)}

	idNaN := bc.AddBrush(nan)
	idInf := bc.AddBrush(inf)

	require.Equal(t, idNaN, idInf)
}

func TestCloseBrushWidthCoercesZeroToPointOne(t *testing.T) {
	b := Brush{StrokeWidthCm: 0}
	b = CloseBrushWidth(b, 0)
	require.Equal(t, 0.1, b.StrokeWidthCm)
}

func TestCloseBrushWidthLeavesNonZeroAlone(t *testing.T) {
	b := Brush{StrokeWidthCm: 0.5}
	b = CloseBrushWidth(b, 0)
	require.Equal(t, 0.5, b.StrokeWidthCm)
}

func TestCloseBrushWidthHonorsConfiguredFloorAboveDefault(t *testing.T) {
	b := Brush{StrokeWidthCm: 0.2}
	b = CloseBrushWidth(b, 0.3)
	require.Equal(t, 0.3, b.StrokeWidthCm)
}
