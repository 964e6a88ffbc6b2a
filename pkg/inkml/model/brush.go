// Package model holds the codec's higher-level domain objects: brushes and
// their deduplicating collection, and the result shapes the parser and
// canonicalizer hand back to callers.
package model

import (
	"fmt"
	"math"
)

// Brush is a stroke's render attributes: color, width, transparency and
// pressure behavior. A Brush is immutable once its closing </brush> tag has
// been processed by the document parser.
type Brush struct {
	ID             string
	Color          [3]uint8
	StrokeWidthCm  float64
	IgnorePressure bool
	Transparency   uint8
}

// InitBrushWithID returns the default brush a <brush id="..."> start tag
// opens: black, zero-width (closed out to 0.1cm at </brush>, spec.md §4.7),
// opaque, pressure-respecting.
func InitBrushWithID(id string) Brush {
	return Brush{ID: id, Color: [3]uint8{0, 0, 0}}
}

// semanticKey is the tuple brush deduplication hashes on: color, the bit
// pattern of a non-finite-coerced stroke width, ignore-pressure and
// transparency. Using the raw bits (rather than the float itself) gives
// total equality, which float64 equality does not provide, so the key is
// usable in a plain Go map.
type semanticKey struct {
	color          [3]uint8
	strokeWidthBits uint64
	ignorePressure bool
	transparency   uint8
}

func bitsOf(strokeWidthCm float64) uint64 {
	if math.IsNaN(strokeWidthCm) || math.IsInf(strokeWidthCm, 0) {
		return math.Float64bits(0.0)
	}
	return math.Float64bits(strokeWidthCm)
}

func keyOf(b Brush) semanticKey {
	return semanticKey{
		color:          b.Color,
		strokeWidthBits: bitsOf(b.StrokeWidthCm),
		ignorePressure: b.IgnorePressure,
		transparency:   b.Transparency,
	}
}

// BrushCollection deduplicates semantically-equal brushes to a single
// canonical entry and remembers, for every AddBrush call, which canonical
// id it resolved to.
type BrushCollection struct {
	brushes    map[string]Brush
	dedupIndex map[semanticKey]string
	mapping    []string
}

// NewBrushCollection returns an empty collection.
func NewBrushCollection() *BrushCollection {
	return &BrushCollection{
		brushes:    make(map[string]Brush),
		dedupIndex: make(map[semanticKey]string),
	}
}

// AddBrush registers b (a clone is stored under the canonical id) and
// returns the id it was assigned: a fresh "br<n>" if no semantically equal
// brush has been seen, or the existing id otherwise. AddBrush is idempotent
// with respect to b's semantic key: calling it twice with an equal brush
// yields one entry in Brushes and two entries in the emit mapping, both
// pointing at that entry (spec.md §8).
func (bc *BrushCollection) AddBrush(b Brush) string {
	key := keyOf(b)

	if id, ok := bc.dedupIndex[key]; ok {
		bc.mapping = append(bc.mapping, id)
		return id
	}

	id := fmt.Sprintf("br%d", len(bc.brushes)+1)
	newBrush := b
	newBrush.ID = id
	bc.brushes[id] = newBrush
	bc.dedupIndex[key] = id
	bc.mapping = append(bc.mapping, id)
	return id
}

// Brushes returns the canonical id -> Brush map.
func (bc *BrushCollection) Brushes() map[string]Brush {
	return bc.brushes
}

// Mapping returns, in AddBrush call order, the canonical id each call
// resolved to.
func (bc *BrushCollection) Mapping() []string {
	return bc.mapping
}

// CloseBrushWidth applies the "never emit an invisible brush" coercion
// (spec.md §4.7): a brush whose stroke width closed out at exactly 0.0 is
// widened to 0.1cm (the dialect's own 0.0 -> 0.1 coercion); any other
// width is kept. minBrushWidthCm, the caller's configured minimum, then
// widens any narrower brush to it.
func CloseBrushWidth(b Brush, minBrushWidthCm float64) Brush {
	if b.StrokeWidthCm == 0 {
		b.StrokeWidthCm = 0.1
	}
	if b.StrokeWidthCm < minBrushWidthCm {
		b.StrokeWidthCm = minBrushWidthCm
	}
	return b
}
