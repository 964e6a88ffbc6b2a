package tracedata

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/go-inkml/inkml/pkg/inkml/types"
)

func threeInts() []types.ChannelType {
	return []types.ChannelType{types.TypeInteger, types.TypeInteger, types.TypeInteger}
}

func TestDecodeSimpleExplicit(t *testing.T) {
	data, err := Decode("0 0 0", threeInts())
	require.NoError(t, err)
	require.Len(t, data, 3)
	require.Equal(t, []int64{0}, data[0].Ints())
	require.Equal(t, []int64{0}, data[1].Ints())
	require.Equal(t, []int64{0}, data[2].Ints())
}

func TestDecodeSingleDifferenceInheritance(t *testing.T) {
	data, err := Decode("1 2 3,'1 '1 '1", threeInts())
	require.NoError(t, err)
	require.Equal(t, []int64{1, 2}, data[0].Ints())
	require.Equal(t, []int64{2, 3}, data[1].Ints())
	require.Equal(t, []int64{3, 4}, data[2].Ints())
}

func TestDecodeDoubleDifferenceAccumulator(t *testing.T) {
	data, err := Decode(`10 20 30,"1 "2 "3,"1 "2 "3`, threeInts())
	require.NoError(t, err)
	require.Equal(t, []int64{10, 11, 13}, data[0].Ints())
	require.Equal(t, []int64{20, 22, 26}, data[1].Ints())
	require.Equal(t, []int64{30, 33, 39}, data[2].Ints())
}

func TestDecodeDashConcatenation(t *testing.T) {
	// "0-12 0 0" against a 4-integer-column context: the dash commits column
	// 0's pending "0" and starts column 1's value with a leading "-".
	fourInts := []types.ChannelType{types.TypeInteger, types.TypeInteger, types.TypeInteger, types.TypeInteger}
	data, err := Decode("0-12 0 0", fourInts)
	require.NoError(t, err)
	require.Equal(t, []int64{0}, data[0].Ints())
	require.Equal(t, []int64{-12}, data[1].Ints())
	require.Equal(t, []int64{0}, data[2].Ints())
	require.Equal(t, []int64{0}, data[3].Ints())
}

func TestDecodeTruncatedSegment(t *testing.T) {
	_, err := Decode("0 0", threeInts())
	require.Error(t, err)
	code, ok := types.CodeOf(err)
	require.True(t, ok)
	require.Equal(t, types.ErrTruncatedSegment, code)
}

func TestDecodeUnexpectedTrailing(t *testing.T) {
	_, err := Decode("0 0 0 0", threeInts())
	require.Error(t, err)
	code, ok := types.CodeOf(err)
	require.True(t, ok)
	require.Equal(t, types.ErrUnexpectedTrailing, code)
}

func TestDecodeMissingPrevious(t *testing.T) {
	_, err := Decode("'1 '1 '1", threeInts())
	require.Error(t, err)
	code, ok := types.CodeOf(err)
	require.True(t, ok)
	require.Equal(t, types.ErrMissingPrevious, code)
}

func TestDecodeTypeMismatch(t *testing.T) {
	_, err := Decode("T 0 0", threeInts())
	require.Error(t, err)
	code, ok := types.CodeOf(err)
	require.True(t, ok)
	require.Equal(t, types.ErrTypeMismatch, code)
}

func TestDecodeBoolColumn(t *testing.T) {
	columnTypes := []types.ChannelType{types.TypeInteger, types.TypeInteger, types.TypeBool}
	data, err := Decode("0 0 T,0 0 F", columnTypes)
	require.NoError(t, err)
	require.Equal(t, []bool{true, false}, data[2].Bools())
}

func TestDecodeTrailingWhitespaceOnlySegmentIgnored(t *testing.T) {
	data, err := Decode("0 0 0, \n", threeInts())
	require.NoError(t, err)
	require.Equal(t, []int64{0}, data[0].Ints())
}
