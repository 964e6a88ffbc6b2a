package types

// Context is a named, ordered list of channel descriptors. The order of
// Channels is load-bearing: it mirrors the per-sample column order of
// every trace referencing this context.
type Context struct {
	Name     string
	Channels []Channel
}

// CreateEmptyContext builds a Context with the given name and no channels.
func CreateEmptyContext(name string) Context {
	return Context{Name: name}
}

// ChannelExists returns the index of the first channel of the given kind,
// or -1 and false if none is present.
func (c Context) ChannelExists(kind ChannelKind) (int, bool) {
	for i, ch := range c.Channels {
		if ch.Kind == kind {
			return i, true
		}
	}
	return -1, false
}

// AppendChannel appends ch to the context's channel list, preserving
// document order.
func (c *Context) AppendChannel(ch Channel) {
	c.Channels = append(c.Channels, ch)
}

// DefaultContext is the non-pressure canonical shape: X, Y integer
// channels at 1000 1/cm resolution, cm units.
func DefaultContext() Context {
	return Context{
		Name: "ctx0",
		Channels: []Channel{
			{Kind: ChannelX, Type: TypeInteger, ResolutionValue: 1000, ResolutionUnit: ResOneOverCm, ChannelUnit: UnitCm},
			{Kind: ChannelY, Type: TypeInteger, ResolutionValue: 1000, ResolutionUnit: ResOneOverCm, ChannelUnit: UnitCm},
		},
	}
}

// DefaultContextWithPressure is DefaultContext plus an F channel at 0
// 1/dev resolution with a declared max of 32767, the shape the emitter
// writes (spec.md §3).
func DefaultContextWithPressure() Context {
	max := IntEl(32767)
	ctx := DefaultContext()
	ctx.AppendChannel(Channel{
		Kind:            ChannelF,
		Type:            TypeInteger,
		ResolutionValue: 0,
		MaxValue:        &max,
		ResolutionUnit:  ResOneOverDev,
		ChannelUnit:     UnitDev,
	})
	return ctx
}
