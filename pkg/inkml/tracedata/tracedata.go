// Package tracedata implements the ink dialect's trace-data micro-parser:
// decoding the compact, whitespace-insensitive, modifier-prefixed numeric
// encoding used inside a <trace> element's character data into typed,
// per-channel sample sequences.
package tracedata

import (
	"strconv"
	"strings"

	"github.com/go-inkml/inkml/pkg/inkml/types"
)

// modifier is the token that prefixes a column value, selecting how it
// combines with the column's prior sample.
type modifier int

const (
	modExplicit modifier = iota
	modSingleDifference
	modDoubleDifference
)

// Decode parses raw, the full character payload of a <trace> element, into
// one types.ChannelData per entry of channelTypes (spec.md §4.4). raw is
// split into samples on ",", with trailing whitespace-only remainders
// dropped; every remaining sample must supply exactly len(channelTypes)
// column values.
func Decode(raw string, channelTypes []types.ChannelType) ([]types.ChannelData, error) {
	d := newDecoder(channelTypes)
	segments := splitSamples(raw)
	for _, seg := range segments {
		if err := d.decodeSegment(seg); err != nil {
			return nil, err
		}
	}
	return d.data, nil
}

// splitSamples splits raw on "," and drops trailing whitespace-only
// remainders (spec.md §4.4: "trailing whitespace-only remainders are
// ignored").
func splitSamples(raw string) []string {
	segments := strings.Split(raw, ",")
	for len(segments) > 0 {
		last := segments[len(segments)-1]
		if strings.TrimFunc(last, isSpace) == "" {
			segments = segments[:len(segments)-1]
			continue
		}
		break
	}
	return segments
}

func isSpace(r rune) bool {
	switch r {
	case ' ', '\r', '\n', '\t':
		return true
	default:
		return false
	}
}

type decoder struct {
	channelTypes []types.ChannelType
	data         []types.ChannelData
	lastModifier []modifier
	lastDiff     []types.ChannelDataEl
}

func newDecoder(channelTypes []types.ChannelType) *decoder {
	d := &decoder{
		channelTypes: channelTypes,
		data:         make([]types.ChannelData, len(channelTypes)),
		lastModifier: make([]modifier, len(channelTypes)),
		lastDiff:     make([]types.ChannelDataEl, len(channelTypes)),
	}
	for i, t := range channelTypes {
		d.data[i] = types.DataForType(t)
		d.lastDiff[i] = t.NullValue()
		d.lastModifier[i] = modExplicit
	}
	return d
}

// decodeSegment decodes one comma-separated sample. It mirrors, character
// by character, the state machine of the codec's original implementation:
// a modifier token updates the "current modifier" immediately (even
// in-flight, before any pending value is committed with it), and that
// current modifier is not reset between columns except when a modifier
// token, or the '-' concatenation rule, explicitly sets it. This is
// intentional fidelity to the observed behavior (spec.md §9), not an
// oversight.
func (d *decoder) decodeSegment(seg string) error {
	numChannels := len(d.channelTypes)
	runes := []rune(seg)
	i := 0
	col := 0
	var value []rune
	valueFound := false
	current := d.lastModifier[0]

	for col < numChannels {
		if i >= len(runes) {
			if valueFound {
				if err := d.commit(col, current, string(value)); err != nil {
					return err
				}
				d.lastModifier[col] = current
				col++
				value = value[:0]
				valueFound = false
				continue
			}
			return types.NewError(types.ErrTruncatedSegment, "sample %q ended before all %d channels were filled", seg, numChannels)
		}

		ch := runes[i]
		i++

		switch {
		case isSpace(ch):
			if valueFound {
				if err := d.commit(col, current, string(value)); err != nil {
					return err
				}
				d.lastModifier[col] = current
				col++
				value = value[:0]
				valueFound = false
			}

		case ch == '!':
			current = modExplicit
			if valueFound {
				if err := d.commit(col, current, string(value)); err != nil {
					return err
				}
				d.lastModifier[col] = current
				col++
				value = value[:0]
				valueFound = false
			}

		case ch == '\'':
			current = modSingleDifference
			if valueFound {
				if err := d.commit(col, current, string(value)); err != nil {
					return err
				}
				d.lastModifier[col] = current
				col++
				value = value[:0]
				valueFound = false
			}

		case ch == '"':
			current = modDoubleDifference
			if valueFound {
				if err := d.commit(col, current, string(value)); err != nil {
					return err
				}
				d.lastModifier[col] = current
				col++
				value = value[:0]
				valueFound = false
			}

		case (ch >= '0' && ch <= '9') || ch == '.':
			valueFound = true
			value = append(value, ch)

		case ch == '-':
			if valueFound {
				if err := d.commit(col, current, string(value)); err != nil {
					return err
				}
				d.lastModifier[col] = current
				col++
				value = value[:0]
				if col >= numChannels {
					return types.NewError(types.ErrUnexpectedTrailing, "sample %q has more column values than %d channels", seg, numChannels)
				}
				valueFound = true
				current = d.lastModifier[col]
				value = append(value, ch)
			} else {
				valueFound = true
				value = append(value, ch)
			}

		case ch == 'T' || ch == 'F':
			valueFound = true
			value = append(value, ch)
			if err := d.commit(col, current, string(value)); err != nil {
				return err
			}
			d.lastModifier[col] = current
			col++
			value = value[:0]
			valueFound = false

		default:
			return types.NewError(types.ErrUnexpectedChar, "unexpected char %q in sample %q", ch, seg)
		}
	}

	for ; i < len(runes); i++ {
		if !isSpace(runes[i]) {
			return types.NewError(types.ErrUnexpectedTrailing, "unexpected trailing char %q in sample %q", runes[i], seg)
		}
	}

	return nil
}

// commit parses valueStr per the column's declared type and the modifier in
// effect, pushing the reconstructed sample into d.data[col] and updating
// the running delta accumulator (spec.md §4.4, rules 1-3). Explicit samples
// never reset the accumulator - it only ever adds up deltas - matching the observed
// behavior documented as an open question in spec.md §9.
func (d *decoder) commit(col int, mod modifier, valueStr string) error {
	t := d.channelTypes[col]

	if t == types.TypeBool {
		switch valueStr {
		case "T":
			d.data[col].PushBool(true)
		case "F":
			d.data[col].PushBool(false)
		default:
			return types.NewError(types.ErrTypeMismatch, "column %d is boolean, got %q", col, valueStr)
		}
		return nil
	}

	if valueStr == "T" || valueStr == "F" {
		return types.NewError(types.ErrTypeMismatch, "column %d is not boolean, got %q", col, valueStr)
	}

	if t == types.TypeInteger {
		v, err := strconv.ParseInt(valueStr, 10, 64)
		if err != nil {
			return types.NewError(types.ErrInvalidNumber, "column %d: %q: %v", col, valueStr, err)
		}
		return d.commitInt(col, mod, v)
	}

	v, err := strconv.ParseFloat(valueStr, 64)
	if err != nil {
		return types.NewError(types.ErrInvalidNumber, "column %d: %q: %v", col, valueStr, err)
	}
	return d.commitDouble(col, mod, v)
}

func (d *decoder) commitInt(col int, mod modifier, value int64) error {
	switch mod {
	case modExplicit:
		d.data[col].PushInt(value)
	case modSingleDifference:
		previous, ok := d.data[col].LastInt()
		if !ok {
			return types.NewError(types.ErrMissingPrevious, "column %d: single-difference with no previous sample", col)
		}
		diff := d.lastDiff[col].Int() + value
		d.lastDiff[col] = types.IntEl(diff)
		d.data[col].PushInt(value + previous)
	case modDoubleDifference:
		previous, ok := d.data[col].LastInt()
		if !ok {
			return types.NewError(types.ErrMissingPrevious, "column %d: double-difference with no previous sample", col)
		}
		lastDiff := d.lastDiff[col].Int()
		d.lastDiff[col] = types.IntEl(lastDiff + value)
		d.data[col].PushInt(value + previous + lastDiff)
	}
	return nil
}

func (d *decoder) commitDouble(col int, mod modifier, value float64) error {
	switch mod {
	case modExplicit:
		d.data[col].PushDouble(value)
	case modSingleDifference:
		previous, ok := d.data[col].LastDouble()
		if !ok {
			return types.NewError(types.ErrMissingPrevious, "column %d: single-difference with no previous sample", col)
		}
		diff := d.lastDiff[col].Float() + value
		d.lastDiff[col] = types.DoubleEl(diff)
		d.data[col].PushDouble(value + previous)
	case modDoubleDifference:
		previous, ok := d.data[col].LastDouble()
		if !ok {
			return types.NewError(types.ErrMissingPrevious, "column %d: double-difference with no previous sample", col)
		}
		lastDiff := d.lastDiff[col].Float()
		d.lastDiff[col] = types.DoubleEl(lastDiff + value)
		d.data[col].PushDouble(value + previous + lastDiff)
	}
	return nil
}
