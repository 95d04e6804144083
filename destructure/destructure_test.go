package destructure_test

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/anuragh27crony/cucumberwire/destructure"
	"github.com/anuragh27crony/cucumberwire/wire"
)

func TestFromWire_String(t *testing.T) {
	v, err := destructure.FromWire[string](wire.StringArg("hello"))
	require.NoError(t, err)
	assert.Equal(t, "hello", v)
}

func TestFromWire_StringRejectsNone(t *testing.T) {
	_, err := destructure.FromWire[string](wire.NoneArg())
	assert.Error(t, err)
}

func TestFromWire_Int(t *testing.T) {
	v, err := destructure.FromWire[int](wire.StringArg("42"))
	require.NoError(t, err)
	assert.Equal(t, 42, v)
}

func TestFromWire_IntRejectsUnparseableString(t *testing.T) {
	_, err := destructure.FromWire[int](wire.StringArg("not-a-number"))
	assert.Error(t, err)
}

func TestFromWire_Uint(t *testing.T) {
	v, err := destructure.FromWire[uint32](wire.StringArg("7"))
	require.NoError(t, err)
	assert.Equal(t, uint32(7), v)
}

func TestFromWire_Float(t *testing.T) {
	v, err := destructure.FromWire[float64](wire.StringArg("3.5"))
	require.NoError(t, err)
	assert.Equal(t, 3.5, v)
}

func TestFromWire_BoolNoneIsFalse(t *testing.T) {
	v, err := destructure.FromWire[bool](wire.NoneArg())
	require.NoError(t, err)
	assert.False(t, v)
}

func TestFromWire_BoolStringFalseIsFalse(t *testing.T) {
	v, err := destructure.FromWire[bool](wire.StringArg("false"))
	require.NoError(t, err)
	assert.False(t, v)
}

func TestFromWire_BoolAnyOtherStringIsTrue(t *testing.T) {
	v, err := destructure.FromWire[bool](wire.StringArg("true"))
	require.NoError(t, err)
	assert.True(t, v)

	v, err = destructure.FromWire[bool](wire.StringArg("yes"))
	require.NoError(t, err)
	assert.True(t, v)
}

func TestFromWire_Table(t *testing.T) {
	rows := [][]string{{"a", "b"}, {"c", "d"}}
	v, err := destructure.FromWire[[][]string](wire.TableArg(rows))
	require.NoError(t, err)
	assert.Equal(t, rows, v)
}

func TestFromWire_TableRejectsString(t *testing.T) {
	_, err := destructure.FromWire[[][]string](wire.StringArg("nope"))
	assert.Error(t, err)
}

func TestFromWire_OptionalPointerNoneIsNil(t *testing.T) {
	v, err := destructure.FromWire[*int](wire.NoneArg())
	require.NoError(t, err)
	assert.Nil(t, v)
}

func TestFromWire_OptionalPointerStringIsSet(t *testing.T) {
	v, err := destructure.FromWire[*int](wire.StringArg("9"))
	require.NoError(t, err)
	require.NotNil(t, v)
	assert.Equal(t, 9, *v)
}

func TestFromSet_ArgCountMismatch(t *testing.T) {
	_, err := destructure.FromSet([]wire.Arg{wire.StringArg("1")}, []reflect.Type{
		reflect.TypeOf(0), reflect.TypeOf(0),
	})
	require.Error(t, err)
	assert.Equal(t, "Expected [2] arguments, but found [1] in step definition", err.Error())
}

func TestFromSet_TypeMismatchReportsPosition(t *testing.T) {
	_, err := destructure.FromSet(
		[]wire.Arg{wire.StringArg("1"), wire.StringArg("not-a-bool-rejecting-table")},
		[]reflect.Type{reflect.TypeOf(0), reflect.TypeOf([][]string{})},
	)
	require.Error(t, err)
	assert.Equal(t, "Argument in position [1] did not have the correct type or was unparseable", err.Error())
}

func TestFromSet_MatchingConversionOfThreeHeterogeneousArgs(t *testing.T) {
	// Mirrors the destructure round-trip example: [String("1"), String("2"), None]
	// destructures into (u32, u32, bool) => (1, 2, false).
	args := []wire.Arg{wire.StringArg("1"), wire.StringArg("2"), wire.NoneArg()}
	types := []reflect.Type{reflect.TypeOf(uint32(0)), reflect.TypeOf(uint32(0)), reflect.TypeOf(false)}

	values, err := destructure.FromSet(args, types)
	require.NoError(t, err)
	require.Len(t, values, 3)
	assert.Equal(t, uint32(1), values[0].Interface())
	assert.Equal(t, uint32(2), values[1].Interface())
	assert.Equal(t, false, values[2].Interface())
}
