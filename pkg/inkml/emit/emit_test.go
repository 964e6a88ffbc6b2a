package emit

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/go-inkml/inkml/pkg/inkml/config"
	"github.com/go-inkml/inkml/pkg/inkml/model"
)

func TestWriteDeduplicatesEqualBrushes(t *testing.T) {
	brush := model.Brush{ID: "whatever", Color: [3]uint8{10, 20, 30}, StrokeWidthCm: 0.3}
	strokes := []model.StrokeWithBrush{
		{Stroke: model.FormattedStroke{X: []float64{0.1}, Y: []float64{0.1}, F: []float64{1.0}}, Brush: brush},
		{Stroke: model.FormattedStroke{X: []float64{0.2}, Y: []float64{0.2}, F: []float64{1.0}}, Brush: brush},
	}

	out, err := Write(strokes, nil)
	require.NoError(t, err)

	doc := string(out)
	require.Equal(t, 1, strings.Count(doc, "<brush "))
	require.Equal(t, 2, strings.Count(doc, "<trace "))
	require.Equal(t, 2, strings.Count(doc, `brushRef="#br1"`))
}

func TestWriteIsDeterministicAcrossPasses(t *testing.T) {
	strokes := []model.StrokeWithBrush{
		{Stroke: model.FormattedStroke{X: []float64{0.1, 0.2}, Y: []float64{0.3, 0.4}, F: []float64{1.0, 0.5}},
			Brush: model.Brush{Color: [3]uint8{0, 0, 0}, StrokeWidthCm: 0.5}},
	}

	first, err := Write(strokes, nil)
	require.NoError(t, err)
	second, err := Write(strokes, nil)
	require.NoError(t, err)
	require.Equal(t, first, second)
}

func TestWriteNoDeclarationNoPrettyPrint(t *testing.T) {
	out, err := Write(nil, nil)
	require.NoError(t, err)
	doc := string(out)
	require.False(t, strings.HasPrefix(doc, "<?xml"))
	require.False(t, strings.Contains(doc, "\n"))
	require.True(t, strings.HasPrefix(doc, `<ink xmlns="http://www.w3.org/2003/InkML">`))
}

func TestWriteAppendsTrailingNewlineWhenConfigured(t *testing.T) {
	cfg := config.NewDefaultConfiguration()
	cfg.TrailingNewlineOnEmit = true

	out, err := Write(nil, cfg)
	require.NoError(t, err)
	require.True(t, strings.HasSuffix(string(out), "\n"))
}

func TestWriteSampleEncoding(t *testing.T) {
	strokes := []model.StrokeWithBrush{
		{Stroke: model.FormattedStroke{X: []float64{0.5, 1.0}, Y: []float64{0.5, 1.0}, F: []float64{0.5, 0.5}},
			Brush: model.Brush{Color: [3]uint8{0, 0, 0}, StrokeWidthCm: 0.5}},
	}

	out, err := Write(strokes, nil)
	require.NoError(t, err)
	// round(0.5*32767) rounds the exact tie 16383.5 away from zero to 16384.
	require.Contains(t, string(out), "500 500 16384,1000 1000 16384")
}
