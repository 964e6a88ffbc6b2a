package types

import "fmt"

// ChannelKind is the closed set of channel kinds this codec understands.
// Unlike the full InkML spec's open channel list, only pen position,
// pressure and orientation channels are recognized (spec.md Non-goals).
type ChannelKind int

const (
	ChannelX ChannelKind = iota
	ChannelY
	ChannelF
	ChannelOA
	ChannelOE
	ChannelOTx
	ChannelOTy
)

// ParseChannelKind parses an optional channel name attribute. A nil or
// unrecognized name is ErrInvalidVocabulary.
func ParseChannelKind(name *string) (ChannelKind, error) {
	if name == nil {
		return 0, NewError(ErrInvalidVocabulary, "channel kind: missing name attribute")
	}
	switch *name {
	case "X":
		return ChannelX, nil
	case "Y":
		return ChannelY, nil
	case "F":
		return ChannelF, nil
	case "OA":
		return ChannelOA, nil
	case "OE":
		return ChannelOE, nil
	case "OTx":
		return ChannelOTx, nil
	case "OTy":
		return ChannelOTy, nil
	default:
		return 0, NewError(ErrInvalidVocabulary, "channel kind: %q", *name)
	}
}

// String renders k the way channel elements are emitted. The original
// implementation this codec is modeled on rendered ChannelOE as "OF" - a
// typo. This codec always emits "OE".
func (k ChannelKind) String() string {
	switch k {
	case ChannelX:
		return "X"
	case ChannelY:
		return "Y"
	case ChannelF:
		return "F"
	case ChannelOA:
		return "OA"
	case ChannelOE:
		return "OE"
	case ChannelOTx:
		return "OTx"
	case ChannelOTy:
		return "OTy"
	default:
		return fmt.Sprintf("ChannelKind(%d)", int(k))
	}
}

// DefaultUnit is the physical unit a channel of this kind carries absent an
// explicit unit attribute.
func (k ChannelKind) DefaultUnit() ChannelUnit {
	switch k {
	case ChannelX, ChannelY:
		return UnitCm
	case ChannelF:
		return UnitDev
	default:
		return UnitDeg
	}
}

// DefaultResolutionUnit is the resolution unit a channel of this kind
// carries absent a channelProperty override.
func (k ChannelKind) DefaultResolutionUnit() ResolutionUnit {
	switch k {
	case ChannelX, ChannelY:
		return ResOneOverCm
	case ChannelF:
		return ResOneOverDev
	default:
		return ResOneOverDeg
	}
}

// ChannelType is the storage/encoding type of a channel's samples.
type ChannelType int

const (
	TypeInteger ChannelType = iota
	TypeDecimal             // default
	TypeDouble
	TypeBool
)

// ParseChannelType parses an optional type attribute, defaulting to Decimal
// when absent (spec.md §3).
func ParseChannelType(name *string) (ChannelType, error) {
	if name == nil {
		return TypeDecimal, nil
	}
	switch *name {
	case "integer":
		return TypeInteger, nil
	case "decimal":
		return TypeDecimal, nil
	case "double":
		return TypeDouble, nil
	case "boolean":
		return TypeBool, nil
	default:
		return 0, NewError(ErrInvalidVocabulary, "channel type: %q", *name)
	}
}

func (t ChannelType) String() string {
	switch t {
	case TypeInteger:
		return "integer"
	case TypeDecimal:
		return "decimal"
	case TypeDouble:
		return "double"
	case TypeBool:
		return "boolean"
	default:
		return fmt.Sprintf("ChannelType(%d)", int(t))
	}
}

// NullValue is the zero sample for a channel of type t.
func (t ChannelType) NullValue() ChannelDataEl {
	switch t {
	case TypeInteger:
		return ChannelDataEl{kind: elInteger, i: 0}
	case TypeBool:
		return ChannelDataEl{kind: elBool}
	default:
		return ChannelDataEl{kind: elDouble, f: 0.0}
	}
}

// ChannelUnit is a physical distance/device/angle unit.
type ChannelUnit int

const (
	UnitMM ChannelUnit = iota
	UnitCm
	UnitM
	UnitDev
	UnitDeg
	UnitHimetric
)

// ParseChannelUnit parses an optional unit attribute. Unlike ParseChannelKind
// and ParseChannelType, a missing or unrecognized unit is not itself an
// error here: callers fall back to the channel kind's default unit.
func ParseChannelUnit(name *string) (ChannelUnit, bool) {
	if name == nil {
		return 0, false
	}
	switch *name {
	case "mm":
		return UnitMM, true
	case "cm":
		return UnitCm, true
	case "m":
		return UnitM, true
	case "dev":
		return UnitDev, true
	case "deg":
		return UnitDeg, true
	case "himetric":
		return UnitHimetric, true
	default:
		return 0, false
	}
}

func (u ChannelUnit) String() string {
	switch u {
	case UnitMM:
		return "mm"
	case UnitCm:
		return "cm"
	case UnitM:
		return "m"
	case UnitDev:
		return "dev"
	case UnitDeg:
		return "deg"
	case UnitHimetric:
		return "himetric"
	default:
		return fmt.Sprintf("ChannelUnit(%d)", int(u))
	}
}

// ConvertTo converts value, expressed in u, into target, per the table in
// spec.md §4.1: mm/cm/m interconvert by powers of ten, himetric converts
// to mm/cm/m (and mm/cm/m convert back to himetric by the inverse factor),
// deg and dev are each only convertible to themselves. Every other pairing
// is ErrIncompatibleUnits.
func (u ChannelUnit) ConvertTo(target ChannelUnit, value float64) (float64, error) {
	if u == target {
		return value, nil
	}

	toMM, ok := u.toMillimeters()
	if ok {
		targetPerMM, ok2 := target.millimetersPer()
		if ok2 {
			return (value * toMM) * targetPerMM, nil
		}
	}

	return 0, NewError(ErrIncompatibleUnits, "cannot convert %s to %s", u, target)
}

// toMillimeters reports the multiplier from u to millimeters, for the
// distance-like units (mm, cm, m, himetric).
func (u ChannelUnit) toMillimeters() (float64, bool) {
	switch u {
	case UnitMM:
		return 1.0, true
	case UnitCm:
		return 10.0, true
	case UnitM:
		return 1000.0, true
	case UnitHimetric:
		// himetric -> mm is x1e-2 per spec.md §4.1.
		return 1e-2, true
	default:
		return 0, false
	}
}

// millimetersPer reports the multiplier from millimeters to u.
func (u ChannelUnit) millimetersPer() (float64, bool) {
	switch u {
	case UnitMM:
		return 1.0, true
	case UnitCm:
		return 0.1, true
	case UnitM:
		return 1e-3, true
	case UnitHimetric:
		// mm -> himetric is the inverse of himetric -> mm (x1e-2), i.e. x100.
		return 100.0, true
	default:
		return 0, false
	}
}

// ResolutionUnit is the unit a Channel's resolution_value is expressed in.
type ResolutionUnit int

const (
	ResOneOverCm ResolutionUnit = iota
	ResOneOverMM
	ResOneOverDev
	ResOneOverDeg
	ResOneOverHimetric
)

// ParseResolutionUnit parses a channelProperty units attribute.
func ParseResolutionUnit(name *string) (ResolutionUnit, error) {
	if name == nil {
		return 0, NewError(ErrInvalidVocabulary, "resolution unit: missing units attribute")
	}
	switch *name {
	case "1/cm":
		return ResOneOverCm, nil
	case "1/mm":
		return ResOneOverMM, nil
	case "1/dev":
		return ResOneOverDev, nil
	case "1/deg":
		return ResOneOverDeg, nil
	case "1/himetric":
		return ResOneOverHimetric, nil
	default:
		return 0, NewError(ErrInvalidVocabulary, "resolution unit: %q", *name)
	}
}

func (r ResolutionUnit) String() string {
	switch r {
	case ResOneOverCm:
		return "1/cm"
	case ResOneOverMM:
		return "1/mm"
	case ResOneOverDev:
		return "1/dev"
	case ResOneOverDeg:
		return "1/deg"
	case ResOneOverHimetric:
		return "1/himetric"
	default:
		return fmt.Sprintf("ResolutionUnit(%d)", int(r))
	}
}

// baseRatio is the multiplier base_ratio used by Channel.Scaling (spec.md
// §4.1): 1.0 for 1/cm, 0.1 for 1/mm, 1/1000 for 1/himetric, 1.0 otherwise.
func (r ResolutionUnit) baseRatio() float64 {
	switch r {
	case ResOneOverMM:
		return 0.1
	case ResOneOverHimetric:
		return 1.0 / 1000.0
	default:
		return 1.0
	}
}
