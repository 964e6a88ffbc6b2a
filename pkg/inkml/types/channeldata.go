package types

// elKind tags the scalar variant carried by a ChannelDataEl. Go has no
// native sum type, so this mirrors the discriminant the original's Rust
// enum carries implicitly.
type elKind int

const (
	elInteger elKind = iota
	elDouble
	elBool
)

// ChannelDataEl is a single typed scalar: the per-channel accumulator used
// while reconstructing deltas in the trace-data micro-parser, and the
// typed form of a channel's optional max attribute. Decisions always key
// on the channel's declared ChannelType, known at Channel construction;
// callers never need to probe the variant dynamically.
type ChannelDataEl struct {
	kind elKind
	i    int64
	f    float64
}

// IntEl builds an integer-variant scalar.
func IntEl(v int64) ChannelDataEl { return ChannelDataEl{kind: elInteger, i: v} }

// DoubleEl builds a double-variant scalar.
func DoubleEl(v float64) ChannelDataEl { return ChannelDataEl{kind: elDouble, f: v} }

// BoolEl builds the (valueless) boolean-variant scalar.
func BoolEl() ChannelDataEl { return ChannelDataEl{kind: elBool} }

// IsInteger reports whether el carries the integer variant.
func (el ChannelDataEl) IsInteger() bool { return el.kind == elInteger }

// IsDouble reports whether el carries the double variant.
func (el ChannelDataEl) IsDouble() bool { return el.kind == elDouble }

// Int returns el's integer payload; only meaningful when IsInteger.
func (el ChannelDataEl) Int() int64 { return el.i }

// Float returns el's double payload; only meaningful when IsDouble.
func (el ChannelDataEl) Float() float64 { return el.f }

// ToFloat casts el to a float64 regardless of variant: Bool renders as 1.0,
// matching the original's ChannelDataEl::to_float.
func (el ChannelDataEl) ToFloat() float64 {
	switch el.kind {
	case elInteger:
		return float64(el.i)
	case elBool:
		return 1.0
	default:
		return el.f
	}
}

// SameVariant reports whether el and other carry the same scalar variant
// (the property the Channel invariant on max_value states; the codec itself
// upholds that invariant by parsing max with the channel's own type, not by
// calling SameVariant).
func (el ChannelDataEl) SameVariant(other ChannelDataEl) bool {
	return el.kind == other.kind
}

// ChannelData is a tagged, per-channel sample sequence: one column of a
// Context's trace, holding every sample decoded for that column.
type ChannelData struct {
	kind elKind
	ints []int64
	fs   []float64
	bs   []bool
}

// NewIntegerData builds an (initially empty) integer-variant ChannelData.
func NewIntegerData() ChannelData { return ChannelData{kind: elInteger} }

// NewDoubleData builds an (initially empty) double-variant ChannelData.
func NewDoubleData() ChannelData { return ChannelData{kind: elDouble} }

// NewBoolData builds an (initially empty) bool-variant ChannelData.
func NewBoolData() ChannelData { return ChannelData{kind: elBool} }

// DataForType builds an empty ChannelData of the storage variant that t
// dictates (spec.md §3: Integer/Decimal/Double/Bool pick Integer/Double/
// Double/Bool storage respectively).
func DataForType(t ChannelType) ChannelData {
	switch t {
	case TypeInteger:
		return NewIntegerData()
	case TypeBool:
		return NewBoolData()
	default:
		return NewDoubleData()
	}
}

// Len returns the number of samples held, regardless of variant.
func (d ChannelData) Len() int {
	switch d.kind {
	case elInteger:
		return len(d.ints)
	case elBool:
		return len(d.bs)
	default:
		return len(d.fs)
	}
}

// PushInt appends an integer sample. The caller must know d is the integer
// variant; pushing the wrong variant is a programmer error (ErrTypeMismatch
// is reserved for the trace-data payload's own type checks).
func (d *ChannelData) PushInt(v int64) { d.ints = append(d.ints, v) }

// PushDouble appends a double sample.
func (d *ChannelData) PushDouble(v float64) { d.fs = append(d.fs, v) }

// PushBool appends a boolean sample.
func (d *ChannelData) PushBool(v bool) { d.bs = append(d.bs, v) }

// LastInt returns the most recently pushed integer sample.
func (d ChannelData) LastInt() (int64, bool) {
	if len(d.ints) == 0 {
		return 0, false
	}
	return d.ints[len(d.ints)-1], true
}

// LastDouble returns the most recently pushed double sample.
func (d ChannelData) LastDouble() (float64, bool) {
	if len(d.fs) == 0 {
		return 0, false
	}
	return d.fs[len(d.fs)-1], true
}

// IsInteger reports whether d is the integer variant.
func (d ChannelData) IsInteger() bool { return d.kind == elInteger }

// IsDouble reports whether d is the double variant.
func (d ChannelData) IsDouble() bool { return d.kind == elDouble }

// IsBool reports whether d is the bool variant.
func (d ChannelData) IsBool() bool { return d.kind == elBool }

// Ints returns the raw integer slice (nil unless IsInteger).
func (d ChannelData) Ints() []int64 { return d.ints }

// Doubles returns the raw double slice (nil unless IsDouble).
func (d ChannelData) Doubles() []float64 { return d.fs }

// Bools returns the raw bool slice (nil unless IsBool).
func (d ChannelData) Bools() []bool { return d.bs }

// CastToFloat maps d element-wise into physical units by multiplying each
// sample by scaling (spec.md §4.6): Integer/Double samples scale directly,
// Bool samples map true/false to 1.0/0.0 first.
func (d ChannelData) CastToFloat(scaling float64) []float64 {
	switch d.kind {
	case elInteger:
		out := make([]float64, len(d.ints))
		for i, v := range d.ints {
			out[i] = float64(v) * scaling
		}
		return out
	case elBool:
		out := make([]float64, len(d.bs))
		for i, v := range d.bs {
			if v {
				out[i] = scaling
			}
		}
		return out
	default:
		out := make([]float64, len(d.fs))
		for i, v := range d.fs {
			out[i] = v * scaling
		}
		return out
	}
}
