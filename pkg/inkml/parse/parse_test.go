package parse

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/go-inkml/inkml/pkg/inkml/config"
	"github.com/go-inkml/inkml/pkg/inkml/types"
)

const docA = `<ink xmlns="http://www.w3.org/2003/InkML">
<definitions>
<context id="ctx0">
<traceFormat>
<channel name="X" type="integer"/>
<channel name="Y" type="integer"/>
<channel name="F" type="integer" max="32767"/>
</traceFormat>
</context>
<brush xml:id="br1">
<brushProperty name="color" value="#000000"/>
<brushProperty name="width" value="0.5" units="cm"/>
</brush>
</definitions>
<trace contextRef="#ctx0" brushRef="#br1">500 500 16383,'500 '500 '0</trace>
</ink>`

func TestParseScenarioAMinimalRoundTrip(t *testing.T) {
	result, err := Parse(strings.NewReader(docA), nil)
	require.NoError(t, err)
	require.Len(t, result.Traces, 1)
	require.Equal(t, "ctx0", result.Traces[0].ContextID)
	require.Equal(t, "br1", result.Traces[0].BrushID)

	brush := result.Brushes["br1"]
	require.Equal(t, [3]uint8{0, 0, 0}, brush.Color)
	require.Equal(t, 0.5, brush.StrokeWidthCm)
}

func TestParseDuplicateContext(t *testing.T) {
	doc := `<ink><context id="ctx0"/><context id="ctx0"/></ink>`
	_, err := Parse(strings.NewReader(doc), nil)
	require.Error(t, err)
	code, ok := types.CodeOf(err)
	require.True(t, ok)
	require.Equal(t, types.ErrDuplicateContext, code)
}

func TestParseDuplicateBrush(t *testing.T) {
	doc := `<ink><brush id="br1"/><brush id="br1"/></ink>`
	_, err := Parse(strings.NewReader(doc), nil)
	require.Error(t, err)
	code, ok := types.CodeOf(err)
	require.True(t, ok)
	require.Equal(t, types.ErrDuplicateBrush, code)
}

func TestParseScenarioEAmbiguousBrush(t *testing.T) {
	doc := `<ink>
<context id="ctx0">
<traceFormat><channel name="X" type="integer"/><channel name="Y" type="integer"/></traceFormat>
</context>
<brush xml:id="br1"/>
<brush xml:id="br2"/>
<trace contextRef="#ctx0">1 2</trace>
</ink>`
	_, err := Parse(strings.NewReader(doc), nil)
	require.Error(t, err)
	code, ok := types.CodeOf(err)
	require.True(t, ok)
	require.Equal(t, types.ErrAmbiguousBrush, code)
}

func TestParseScenarioFDefaultContextSynthesis(t *testing.T) {
	doc := `<ink>
<traceFormat><channel name="X" type="integer"/><channel name="Y" type="integer"/></traceFormat>
<trace>1 2</trace>
</ink>`
	result, err := Parse(strings.NewReader(doc), nil)
	require.NoError(t, err)
	require.Contains(t, result.Contexts, "ctx0")
	require.Equal(t, "ctx0", result.Traces[0].ContextID)
}

func TestParseSynthesizesDefaultBrushWhenNoneDefined(t *testing.T) {
	doc := `<ink>
<traceFormat><channel name="X" type="integer"/><channel name="Y" type="integer"/></traceFormat>
<trace>1 2</trace>
</ink>`
	result, err := Parse(strings.NewReader(doc), nil)
	require.NoError(t, err)
	require.Contains(t, result.Brushes, "br0")
	brush := result.Brushes["br0"]
	require.Equal(t, [3]uint8{255, 255, 255}, brush.Color)
	require.True(t, brush.IgnorePressure)
}

func TestParseColorAndTransparencyClamping(t *testing.T) {
	doc := `<ink>
<brush xml:id="br1">
<brushProperty name="color" value="#FF8040"/>
<brushProperty name="transparency" value="300"/>
</brush>
</ink>`
	result, err := Parse(strings.NewReader(doc), nil)
	require.NoError(t, err)
	brush := result.Brushes["br1"]
	require.Equal(t, [3]uint8{255, 128, 64}, brush.Color)
	require.Equal(t, uint8(255), brush.Transparency)
}

func TestParseBrushCloseCoercesZeroWidth(t *testing.T) {
	doc := `<ink><brush xml:id="br1"><brushProperty name="color" value="#112233"/></brush></ink>`
	result, err := Parse(strings.NewReader(doc), nil)
	require.NoError(t, err)
	require.Equal(t, 0.1, result.Brushes["br1"].StrokeWidthCm)
}

func TestParseUsesConfiguredDefaultResolutionValue(t *testing.T) {
	doc := `<ink><context id="ctx0"><traceFormat><channel name="X" type="integer"/></traceFormat></context></ink>`
	cfg := config.NewDefaultConfiguration()
	cfg.DefaultResolutionValue = 2540

	result, err := Parse(strings.NewReader(doc), cfg)
	require.NoError(t, err)
	require.Equal(t, 2540.0, result.Contexts["ctx0"].Channels[0].ResolutionValue)
}

func TestParseUsesConfiguredMinBrushWidth(t *testing.T) {
	doc := `<ink><brush xml:id="br1"><brushProperty name="color" value="#112233"/></brush></ink>`
	cfg := config.NewDefaultConfiguration()
	cfg.MinBrushWidthCm = 0.4

	result, err := Parse(strings.NewReader(doc), cfg)
	require.NoError(t, err)
	require.Equal(t, 0.4, result.Brushes["br1"].StrokeWidthCm)
}
