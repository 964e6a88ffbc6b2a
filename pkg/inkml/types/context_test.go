package types

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestContextChannelExists(t *testing.T) {
	ctx := CreateEmptyContext("ctx0")
	ctx.AppendChannel(Channel{Kind: ChannelX})
	ctx.AppendChannel(Channel{Kind: ChannelY})

	idx, ok := ctx.ChannelExists(ChannelY)
	require.True(t, ok)
	require.Equal(t, 1, idx)

	_, ok = ctx.ChannelExists(ChannelF)
	require.False(t, ok)
}

func TestDefaultContextWithPressure(t *testing.T) {
	ctx := DefaultContextWithPressure()
	require.Len(t, ctx.Channels, 3)

	idx, ok := ctx.ChannelExists(ChannelF)
	require.True(t, ok)
	require.NotNil(t, ctx.Channels[idx].MaxValue)
	require.Equal(t, int64(32767), ctx.Channels[idx].MaxValue.Int())
}
