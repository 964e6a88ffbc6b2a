// Package emit implements the writer side of the codec (spec.md §4.7): it
// turns a set of canonical strokes back into an InkML-dialect document.
package emit

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/go-inkml/inkml/pkg/inkml/config"
	"github.com/go-inkml/inkml/pkg/inkml/model"
	"github.com/go-inkml/inkml/pkg/inkml/types"
)

// Write renders strokes as a well-formed InkML-dialect fragment: a single
// <ink> root holding a <definitions> block (a default-with-pressure context
// plus every distinct brush, deduplicated by semantic key) and one <trace>
// per stroke. The output carries no XML declaration and is not
// pretty-printed, matching the dialect's observed emit shape, except for
// conf.TrailingNewlineOnEmit's optional trailing "\n". A nil conf falls
// back to config.NewDefaultConfiguration().
func Write(strokes []model.StrokeWithBrush, conf *config.Configuration) ([]byte, error) {
	if conf == nil {
		conf = config.NewDefaultConfiguration()
	}

	bc := model.NewBrushCollection()
	brushRefs := make([]string, len(strokes))
	for i, s := range strokes {
		brushRefs[i] = bc.AddBrush(s.Brush)
	}

	var b strings.Builder
	b.WriteString(`<ink xmlns="http://www.w3.org/2003/InkML">`)
	b.WriteString("<definitions>")
	writeContext(&b, types.DefaultContextWithPressure())
	writeBrushes(&b, bc)
	b.WriteString("</definitions>")

	for i, s := range strokes {
		if err := writeTrace(&b, brushRefs[i], s.Stroke); err != nil {
			return nil, err
		}
	}
	b.WriteString("</ink>")
	if conf.TrailingNewlineOnEmit {
		b.WriteString("\n")
	}

	return []byte(b.String()), nil
}

func writeContext(b *strings.Builder, ctx types.Context) {
	fmt.Fprintf(b, `<context id=%q>`, ctx.Name)
	b.WriteString("<traceFormat>")
	for _, ch := range ctx.Channels {
		fmt.Fprintf(b, `<channel name=%q type=%q units=%q`, ch.Kind, ch.Type, ch.ChannelUnit)
		if ch.MaxValue != nil {
			fmt.Fprintf(b, ` max=%q`, strconv.FormatInt(ch.MaxValue.Int(), 10))
		}
		b.WriteString("/>")
	}
	b.WriteString("</traceFormat>")
	for _, ch := range ctx.Channels {
		fmt.Fprintf(b, `<channelProperty channel=%q name="resolution" value=%q units=%q/>`,
			ch.Kind, formatFloat(ch.ResolutionValue), ch.ResolutionUnit)
	}
	b.WriteString("</context>")
}

func writeBrushes(b *strings.Builder, bc *model.BrushCollection) {
	brushes := bc.Brushes()
	for i := 1; i <= len(brushes); i++ {
		writeBrush(b, brushes[fmt.Sprintf("br%d", i)])
	}
}

func writeBrush(b *strings.Builder, brush model.Brush) {
	fmt.Fprintf(b, `<brush xml:id=%q>`, brush.ID)

	width := formatFloat(brush.StrokeWidthCm * 10)
	fmt.Fprintf(b, `<brushProperty name="width" value=%q units="cm"/>`, width)
	fmt.Fprintf(b, `<brushProperty name="height" value=%q units="cm"/>`, width)
	fmt.Fprintf(b, `<brushProperty name="color" value=%q/>`, formatColor(brush.Color))

	if brush.Transparency > 0 && brush.Color != [3]uint8{0, 0, 0} {
		fmt.Fprintf(b, `<brushProperty name="transparency" value="%d"/>`, brush.Transparency)
	}
	if brush.IgnorePressure {
		b.WriteString(`<brushProperty name="ignorePressure" value="1"/>`)
	}

	b.WriteString("</brush>")
}

func writeTrace(b *strings.Builder, brushRef string, stroke model.FormattedStroke) error {
	if len(stroke.X) != len(stroke.Y) || len(stroke.X) != len(stroke.F) {
		return types.NewError(types.ErrMalformedDocument, "stroke has mismatched x/y/f lengths")
	}

	fmt.Fprintf(b, `<trace contextRef="#ctx0" brushRef="#%s">`, brushRef)
	for i := range stroke.X {
		if i > 0 {
			b.WriteString(",")
		}
		fmt.Fprintf(b, "%d %d %d",
			round(stroke.X[i]*1000),
			round(stroke.Y[i]*1000),
			round(stroke.F[i]*32767),
		)
	}
	b.WriteString("</trace>")
	return nil
}

func round(v float64) int64 {
	return int64(math.Round(v))
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

func formatColor(c [3]uint8) string {
	return fmt.Sprintf("#%02X%02X%02X", c[0], c[1], c[2])
}
