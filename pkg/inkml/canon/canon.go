// Package canon implements the canonicalizer (spec.md §4.6): it resolves a
// parsed document's trace records against its context and brush tables and
// converts each one into a canonical, physical-unit stroke.
package canon

import (
	"github.com/go-inkml/inkml/pkg/inkml/model"
	"github.com/go-inkml/inkml/pkg/inkml/types"
)

// Canonicalize resolves every trace record in result against its context
// and brush, producing one StrokeWithBrush per trace. A trace whose context
// has no X or no Y channel is silently skipped (spec.md §4.6) - this is not
// an error, since such a context is meaningless as a pen stroke but may
// still legitimately exist in a document using channels this codec does not
// model spatially.
func Canonicalize(result *model.ParserResult) ([]model.StrokeWithBrush, error) {
	out := make([]model.StrokeWithBrush, 0, len(result.Traces))

	for _, tr := range result.Traces {
		ctx, ok := result.Contexts[tr.ContextID]
		if !ok {
			return nil, types.NewError(types.ErrUnknownContext, "trace references context %q", tr.ContextID)
		}

		brush, ok := result.Brushes[tr.BrushID]
		if !ok {
			return nil, types.NewError(types.ErrUnknownBrush, "trace references brush %q", tr.BrushID)
		}

		xIdx, hasX := ctx.ChannelExists(types.ChannelX)
		yIdx, hasY := ctx.ChannelExists(types.ChannelY)
		if !hasX || !hasY {
			continue
		}

		x := tr.Samples[xIdx].CastToFloat(ctx.Channels[xIdx].Scaling())
		y := tr.Samples[yIdx].CastToFloat(ctx.Channels[yIdx].Scaling())

		f := make([]float64, len(x))
		for i := range f {
			f[i] = 1.0
		}
		if fIdx, hasF := ctx.ChannelExists(types.ChannelF); hasF {
			f = tr.Samples[fIdx].CastToFloat(ctx.Channels[fIdx].Scaling())
		}

		out = append(out, model.StrokeWithBrush{
			Stroke: model.FormattedStroke{X: x, Y: y, F: f},
			Brush:  brush,
		})
	}

	return out, nil
}
