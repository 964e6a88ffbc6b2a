// Package parse implements the ink dialect's document parser: a
// single-pass state machine driven by a streaming XML event reader that
// builds up contexts, brushes and trace records (spec.md §4.5).
package parse

import (
	"encoding/xml"
	"io"
	"strconv"
	"strings"

	"github.com/go-inkml/inkml/pkg/inkml/config"
	"github.com/go-inkml/inkml/pkg/inkml/model"
	"github.com/go-inkml/inkml/pkg/inkml/tracedata"
	"github.com/go-inkml/inkml/pkg/inkml/types"
	"github.com/go-inkml/inkml/pkg/log"
)

// origin disambiguates whether the currently open context was opened by an
// explicit <context> tag or synthesized for a bare <traceFormat> - only
// the latter is closed again by </traceFormat> (spec.md §9).
type origin int

const (
	originNone origin = iota
	originContext
	originTraceFormat
)

// state is the single mutable struct the whole parse holds: current
// context id, current brush id, whether we're inside a <trace>, and how
// the current context was opened. The same currentContextID/currentBrushID
// fields double as scratch space for a <trace>'s resolved contextRef/
// brushRef between its start tag and its character data, exactly as
// spec.md §9 describes.
type state struct {
	contexts map[string]types.Context
	brushes  map[string]model.Brush
	traces   []model.TraceRecord

	cfg *config.Configuration

	currentContextID *string
	contextOrigin    origin
	currentBrushID   *string
	isTrace          bool
}

func newState(cfg *config.Configuration) *state {
	return &state{
		contexts: make(map[string]types.Context),
		brushes:  make(map[string]model.Brush),
		cfg:      cfg,
	}
}

// Parse streams r as an InkML-dialect document and returns the raw parser
// result: every trace record alongside the context and brush tables it
// references (spec.md §6, "parse"). A nil conf falls back to
// config.NewDefaultConfiguration().
func Parse(r io.Reader, conf *config.Configuration) (*model.ParserResult, error) {
	if conf == nil {
		conf = config.NewDefaultConfiguration()
	}

	dec := xml.NewDecoder(r)
	st := newState(conf)

	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, types.WrapError(types.ErrXML, err, "reading document")
		}

		switch t := tok.(type) {
		case xml.StartElement:
			if err := st.handleStart(t); err != nil {
				return nil, err
			}
		case xml.EndElement:
			if err := st.handleEnd(t); err != nil {
				return nil, err
			}
		case xml.CharData:
			if err := st.handleChars([]byte(t)); err != nil {
				return nil, err
			}
		}
	}

	return &model.ParserResult{
		Traces:   st.traces,
		Contexts: st.contexts,
		Brushes:  st.brushes,
	}, nil
}

func (st *state) handleStart(t xml.StartElement) error {
	switch t.Name.Local {
	case "context":
		return st.startContext(t)
	case "inkSource":
		log.Debug.Printf("inkSource %s", types.AttrDefault(t, "id", ""))
		return nil
	case "traceFormat":
		return st.startTraceFormat()
	case "channel":
		return st.startChannel(t)
	case "channelProperty":
		return st.startChannelProperty(t)
	case "brush":
		return st.startBrush(t)
	case "brushProperty":
		return st.startBrushProperty(t)
	case "trace":
		return st.startTrace(t)
	default:
		return nil
	}
}

func (st *state) handleEnd(t xml.EndElement) error {
	switch t.Name.Local {
	case "brush":
		return st.endBrush()
	case "context":
		st.currentContextID = nil
		st.contextOrigin = originNone
		return nil
	case "traceFormat":
		if st.currentContextID != nil && st.contextOrigin == originTraceFormat {
			st.currentContextID = nil
			st.contextOrigin = originNone
		}
		return nil
	case "trace":
		st.isTrace = false
		return nil
	default:
		return nil
	}
}

func (st *state) startContext(t xml.StartElement) error {
	id := types.AttrDefault(t, "id", "ctx0")
	if _, exists := st.contexts[id]; exists {
		return types.NewError(types.ErrDuplicateContext, "context %q already defined", id)
	}
	st.contexts[id] = types.CreateEmptyContext(id)
	st.currentContextID = &id
	st.contextOrigin = originContext
	return nil
}

func (st *state) startTraceFormat() error {
	if st.currentContextID == nil {
		id := "ctx0"
		st.contexts[id] = types.CreateEmptyContext(id)
		st.currentContextID = &id
		st.contextOrigin = originTraceFormat
	}
	return nil
}

func (st *state) startChannel(t xml.StartElement) error {
	if st.currentContextID == nil {
		return types.NewError(types.ErrMalformedDocument, "channel element outside of any context")
	}
	attrs := types.Attrs(t, "name", "type", "units", "max")
	ch, err := types.InitialiseChannelFromAttributes(attrs[0], attrs[1], attrs[2], attrs[3], st.cfg.DefaultResolutionValue)
	if err != nil {
		return err
	}
	ctx := st.contexts[*st.currentContextID]
	ctx.AppendChannel(ch)
	st.contexts[*st.currentContextID] = ctx
	return nil
}

func (st *state) startChannelProperty(t xml.StartElement) error {
	attrs := types.Attrs(t, "channel", "name", "value", "units")
	channelName, name, value, units := attrs[0], attrs[1], attrs[2], attrs[3]

	if name == nil || *name != "resolution" {
		log.Debug.Printf("channelProperty %v ignored", name)
		return nil
	}

	if st.currentContextID == nil {
		return types.NewError(types.ErrMalformedDocument, "channelProperty outside of any context")
	}
	if channelName == nil || value == nil || units == nil {
		return types.NewError(types.ErrMalformedDocument, "channelProperty missing channel/value/units")
	}

	kind, err := types.ParseChannelKind(channelName)
	if err != nil {
		return err
	}

	ctx := st.contexts[*st.currentContextID]
	idx, ok := ctx.ChannelExists(kind)
	if !ok {
		return types.NewError(types.ErrMissingChannel, "channelProperty references unknown channel %s", kind)
	}

	resolutionValue, err := strconv.ParseFloat(*value, 64)
	if err != nil {
		return types.NewError(types.ErrInvalidNumber, "channelProperty resolution value %q: %v", *value, err)
	}

	resolutionUnit, err := types.ParseResolutionUnit(units)
	if err != nil {
		return err
	}

	ctx.Channels[idx].ResolutionValue = resolutionValue
	ctx.Channels[idx].ResolutionUnit = resolutionUnit
	return nil
}

func (st *state) startBrush(t xml.StartElement) error {
	id := types.AttrDefault(t, "id", "br0")
	if _, exists := st.brushes[id]; exists {
		return types.NewError(types.ErrDuplicateBrush, "brush %q already defined", id)
	}
	st.brushes[id] = model.InitBrushWithID(id)
	st.currentBrushID = &id
	return nil
}

func (st *state) startBrushProperty(t xml.StartElement) error {
	if st.currentBrushID == nil {
		return types.NewError(types.ErrMalformedDocument, "brushProperty outside of any brush")
	}
	attrs := types.Attrs(t, "name", "value", "units")
	name, value, units := attrs[0], attrs[1], attrs[2]
	if name == nil {
		log.Debug.Printf("brushProperty without name ignored")
		return nil
	}

	brush := st.brushes[*st.currentBrushID]

	switch *name {
	case "width", "height":
		if value == nil || units == nil {
			return types.NewError(types.ErrMalformedDocument, "brushProperty %s missing value/units", *name)
		}
		v, err := strconv.ParseFloat(*value, 64)
		if err != nil {
			return types.NewError(types.ErrInvalidNumber, "brushProperty %s value %q: %v", *name, *value, err)
		}
		unit, ok := types.ParseChannelUnit(units)
		if !ok {
			return types.NewError(types.ErrInvalidVocabulary, "brushProperty %s units %q", *name, *units)
		}
		cm, err := unit.ConvertTo(types.UnitCm, v)
		if err != nil {
			return err
		}
		if cm > brush.StrokeWidthCm {
			brush.StrokeWidthCm = cm
		}

	case "color":
		if value == nil {
			return types.NewError(types.ErrMalformedDocument, "brushProperty color missing value")
		}
		color, err := parseColor(*value)
		if err != nil {
			return err
		}
		brush.Color = color

	case "transparency":
		if value == nil {
			return types.NewError(types.ErrMalformedDocument, "brushProperty transparency missing value")
		}
		transparency, err := parseTransparency(*value)
		if err != nil {
			return err
		}
		brush.Transparency = transparency

	case "ignorePressure":
		if value == nil {
			return types.NewError(types.ErrMalformedDocument, "brushProperty ignorePressure missing value")
		}
		b, err := parseIgnorePressure(*value)
		if err != nil {
			return err
		}
		brush.IgnorePressure = b

	default:
		log.Debug.Printf("brushProperty %q ignored", *name)
		st.brushes[*st.currentBrushID] = brush
		return nil
	}

	st.brushes[*st.currentBrushID] = brush
	return nil
}

func (st *state) endBrush() error {
	if st.currentBrushID == nil {
		return nil
	}
	brush := st.brushes[*st.currentBrushID]
	st.brushes[*st.currentBrushID] = model.CloseBrushWidth(brush, st.cfg.MinBrushWidthCm)
	st.currentBrushID = nil
	return nil
}

func (st *state) startTrace(t xml.StartElement) error {
	st.isTrace = true

	contextRef := strings.TrimPrefix(types.AttrDefault(t, "contextRef", "ctx0"), "#")
	st.currentContextID = &contextRef

	if raw, ok := types.Attr(t, "brushRef"); ok {
		id := strings.TrimPrefix(raw, "#")
		if _, exists := st.brushes[id]; !exists {
			return types.NewError(types.ErrMissingBrush, "trace references unknown brush %q", id)
		}
		st.currentBrushID = &id
		return nil
	}

	switch len(st.brushes) {
	case 0:
		st.currentBrushID = nil
	case 1:
		for id := range st.brushes {
			id := id
			st.currentBrushID = &id
		}
	default:
		return types.NewError(types.ErrAmbiguousBrush, "trace has no brushRef and %d brushes are defined", len(st.brushes))
	}
	return nil
}

func (st *state) handleChars(data []byte) error {
	if !st.isTrace {
		return nil
	}
	if len(strings.TrimSpace(string(data))) == 0 {
		return nil
	}

	ctxID := *st.currentContextID
	ctx, ok := st.contexts[ctxID]
	if !ok {
		return types.NewError(types.ErrUnknownContext, "trace references context %q, which is not yet defined", ctxID)
	}

	channelTypes := make([]types.ChannelType, len(ctx.Channels))
	for i, ch := range ctx.Channels {
		channelTypes[i] = ch.Type
	}

	samples, err := tracedata.Decode(string(data), channelTypes)
	if err != nil {
		return err
	}

	brushID := ""
	if st.currentBrushID != nil {
		brushID = *st.currentBrushID
	} else if len(st.brushes) == 0 {
		brushID = "br0"
		st.brushes[brushID] = model.Brush{
			ID:             brushID,
			Color:          [3]uint8{255, 255, 255},
			StrokeWidthCm:  0.1,
			IgnorePressure: true,
			Transparency:   0,
		}
	} else {
		return types.NewError(types.ErrMissingBrush, "trace has no resolved brush")
	}

	st.traces = append(st.traces, model.TraceRecord{
		ContextID: ctxID,
		BrushID:   brushID,
		Samples:   samples,
	})

	st.currentContextID = nil
	st.currentBrushID = nil
	return nil
}

func parseColor(s string) ([3]uint8, error) {
	if len(s) != 7 || s[0] != '#' {
		return [3]uint8{}, types.NewError(types.ErrInvalidColor, "%q", s)
	}
	v, err := strconv.ParseUint(s[1:], 16, 32)
	if err != nil {
		return [3]uint8{}, types.NewError(types.ErrInvalidColor, "%q: %v", s, err)
	}
	return [3]uint8{
		uint8(v >> 16 & 0xFF),
		uint8(v >> 8 & 0xFF),
		uint8(v & 0xFF),
	}, nil
}

func parseTransparency(s string) (uint8, error) {
	v, err := strconv.ParseUint(s, 10, 16)
	if err != nil {
		return 0, types.NewError(types.ErrInvalidNumber, "transparency %q: %v", s, err)
	}
	if v > 255 {
		return 255, nil
	}
	return uint8(v), nil
}

func parseIgnorePressure(s string) (bool, error) {
	switch s {
	case "1", "true":
		return true, nil
	case "0", "false":
		return false, nil
	default:
		return false, types.NewError(types.ErrInvalidBoolean, "ignorePressure %q", s)
	}
}
