package types

import "strconv"

// Channel describes one column of per-sample data: its kind (X, Y, F, ...),
// its storage type, the resolution/unit it is encoded in, and an optional
// declared maximum (used by pressure channels to normalize to [0,1]).
//
// Channel's Type never changes after construction; ResolutionValue is
// always finite; MaxValue, when present, carries the same scalar variant
// as Type (enforced at construction time).
type Channel struct {
	Kind             ChannelKind
	Type             ChannelType
	ResolutionValue  float64
	MaxValue         *ChannelDataEl
	ResolutionUnit   ResolutionUnit
	ChannelUnit      ChannelUnit
}

// Scaling returns the multiplier applied to a raw sample of this channel to
// yield its canonical physical-unit value (spec.md §4.1): pressure
// channels with a declared max normalize by 1/max; every other channel
// scales by its resolution, adjusted for the resolution unit's base ratio.
func (c Channel) Scaling() float64 {
	if c.Kind == ChannelF && c.MaxValue != nil {
		max := c.MaxValue.ToFloat()
		if max == 0 {
			return 0
		}
		return 1 / max
	}
	return c.ResolutionUnit.baseRatio() * (1 / c.ResolutionValue)
}

// InitialiseChannelFromAttributes builds a Channel from a <channel>
// element's [name, type, units?, max?] attributes (spec.md §4.1): kind and
// type are required, resolution defaults to defaultResolutionValue (the
// caller's configured fallback, absent a later channelProperty override)
// with the kind's default resolution/channel units (overridden by a
// recognized units attribute), and max, if present, is parsed using the
// channel's own type.
func InitialiseChannelFromAttributes(name, typ, unit, max *string, defaultResolutionValue float64) (Channel, error) {
	kind, err := ParseChannelKind(name)
	if err != nil {
		return Channel{}, err
	}

	channelType, err := ParseChannelType(typ)
	if err != nil {
		return Channel{}, err
	}

	channelUnit, ok := ParseChannelUnit(unit)
	if !ok {
		channelUnit = kind.DefaultUnit()
	}

	c := Channel{
		Kind:            kind,
		Type:            channelType,
		ResolutionValue: defaultResolutionValue,
		ResolutionUnit:  kind.DefaultResolutionUnit(),
		ChannelUnit:     channelUnit,
	}

	if max != nil {
		el, err := parseScalar(channelType, *max)
		if err != nil {
			return Channel{}, err
		}
		c.MaxValue = &el
	}

	return c, nil
}

// parseScalar parses s into a ChannelDataEl of the variant t dictates.
func parseScalar(t ChannelType, s string) (ChannelDataEl, error) {
	switch t {
	case TypeInteger:
		v, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return ChannelDataEl{}, NewError(ErrInvalidNumber, "%q: %v", s, err)
		}
		return IntEl(v), nil
	case TypeBool:
		switch s {
		case "T", "true", "1":
			return BoolEl(), nil
		default:
			return ChannelDataEl{}, NewError(ErrInvalidBoolean, "%q", s)
		}
	default:
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return ChannelDataEl{}, NewError(ErrInvalidNumber, "%q: %v", s, err)
		}
		return DoubleEl(v), nil
	}
}
