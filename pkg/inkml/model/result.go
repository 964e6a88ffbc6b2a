package model

import "github.com/go-inkml/inkml/pkg/inkml/types"

// TraceRecord is one (context, brush, samples) entry as observed by the
// document parser, before canonicalization resolves the context/brush
// references. These are stored by id rather than by pointer and resolved
// against the context and brush tables by the canonicalizer (spec.md §9).
// The parser itself requires a trace's brushRef to name an already-defined
// brush at the <trace> start tag, and its context to exist by the time the
// trace's character data is decoded.
type TraceRecord struct {
	ContextID string
	BrushID   string
	Samples   []types.ChannelData
}

// ParserResult is the raw output of the document parser: every trace
// record alongside the context and brush tables it references.
type ParserResult struct {
	Traces   []TraceRecord
	Contexts map[string]types.Context
	Brushes  map[string]Brush
}

// FormattedStroke is a stroke in canonical, physical-unit form: X and Y in
// cm, F normalized to [0,1]. All three sequences share a length.
type FormattedStroke struct {
	X []float64
	Y []float64
	F []float64
}

// StrokeWithBrush pairs a canonical stroke with the (cloned) brush that was
// referenced when it was parsed, mirroring the public API's
// seq<(FormattedStroke, Brush)> return shape (spec.md §6).
type StrokeWithBrush struct {
	Stroke FormattedStroke
	Brush  Brush
}
