package destructure_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/anuragh27crony/cucumberwire/destructure"
	"github.com/anuragh27crony/cucumberwire/wire"
)

func TestTuple1(t *testing.T) {
	n, err := destructure.Tuple1[int]([]wire.Arg{wire.StringArg("5")})
	require.NoError(t, err)
	assert.Equal(t, 5, n)
}

func TestTuple3_MatchesDestructureRoundTripExample(t *testing.T) {
	args := []wire.Arg{wire.StringArg("1"), wire.StringArg("2"), wire.NoneArg()}
	a, b, c, err := destructure.Tuple3[uint32, uint32, bool](args)
	require.NoError(t, err)
	assert.Equal(t, uint32(1), a)
	assert.Equal(t, uint32(2), b)
	assert.False(t, c)
}

func TestTuple2_ArgCountMismatch(t *testing.T) {
	_, _, err := destructure.Tuple2[int, int]([]wire.Arg{wire.StringArg("1")})
	require.Error(t, err)
	assert.Equal(t, "Expected [2] arguments, but found [1] in step definition", err.Error())
}

func TestTuple8_AllPositionsConvert(t *testing.T) {
	args := make([]wire.Arg, 8)
	for i := range args {
		args[i] = wire.StringArg("1")
	}

	a, b, c, d, e, f, g, h, err := destructure.Tuple8[int, int, int, int, int, int, int, int](args)
	require.NoError(t, err)
	assert.Equal(t, 1, a)
	assert.Equal(t, 1, b)
	assert.Equal(t, 1, c)
	assert.Equal(t, 1, d)
	assert.Equal(t, 1, e)
	assert.Equal(t, 1, f)
	assert.Equal(t, 1, g)
	assert.Equal(t, 1, h)
}
