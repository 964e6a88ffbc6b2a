package canon

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/go-inkml/inkml/pkg/inkml/parse"
)

func TestCanonicalizeScenarioAMinimalRoundTrip(t *testing.T) {
	doc := `<ink xmlns="http://www.w3.org/2003/InkML">
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

	result, err := parse.Parse(strings.NewReader(doc), nil)
	require.NoError(t, err)

	strokes, err := Canonicalize(result)
	require.NoError(t, err)
	require.Len(t, strokes, 1)

	s := strokes[0].Stroke
	require.InDeltaSlice(t, []float64{0.5, 1.0}, s.X, 1e-9)
	require.InDeltaSlice(t, []float64{0.5, 1.0}, s.Y, 1e-9)
	require.InDelta(t, 0.5, s.F[0], 1e-4)
	require.InDelta(t, 0.5, s.F[1], 1e-4)
}

func TestCanonicalizeScenarioBMissingPressureChannel(t *testing.T) {
	doc := `<ink>
<context id="ctx0">
<traceFormat><channel name="X" type="integer"/><channel name="Y" type="integer"/></traceFormat>
</context>
<brush xml:id="br1"/>
<trace contextRef="#ctx0" brushRef="#br1">1000 2000,'1000 '0</trace>
</ink>`

	result, err := parse.Parse(strings.NewReader(doc), nil)
	require.NoError(t, err)

	strokes, err := Canonicalize(result)
	require.NoError(t, err)
	require.Len(t, strokes, 1)

	s := strokes[0].Stroke
	require.InDeltaSlice(t, []float64{1.0, 2.0}, s.X, 1e-9)
	require.InDeltaSlice(t, []float64{2.0, 2.0}, s.Y, 1e-9)
	require.Equal(t, []float64{1.0, 1.0}, s.F)
}

func TestCanonicalizeSkipsTraceWithoutXY(t *testing.T) {
	doc := `<ink>
<context id="ctx0">
<traceFormat><channel name="OA" type="integer"/></traceFormat>
</context>
<brush xml:id="br1"/>
<trace contextRef="#ctx0" brushRef="#br1">45</trace>
</ink>`

	result, err := parse.Parse(strings.NewReader(doc), nil)
	require.NoError(t, err)

	strokes, err := Canonicalize(result)
	require.NoError(t, err)
	require.Empty(t, strokes)
}
