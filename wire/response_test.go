package wire_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/anuragh27crony/cucumberwire/wire"
)

func encode(t *testing.T, r wire.Response) string {
	t.Helper()
	b, err := wire.EncodeResponse(r)
	require.NoError(t, err)
	return string(b)
}

func TestEncodeResponse_Success(t *testing.T) {
	assert.Equal(t, `["success"]`, encode(t, wire.Success{}))
}

func TestEncodeResponse_Pending(t *testing.T) {
	assert.Equal(t, `["pending","stuff isn't done"]`, encode(t, wire.Pending{Message: "stuff isn't done"}))
}

func TestEncodeResponse_Fail(t *testing.T) {
	got := encode(t, wire.Fail{Message: "stuff is broken", Exception: ""})
	assert.Equal(t, `["fail",{"message":"stuff is broken","exception":""}]`, got)
}

func TestEncodeResponse_StepMatchesNoMatch(t *testing.T) {
	got := encode(t, wire.WithPayload{Payload: []wire.MatchReport{}})
	assert.Equal(t, `["success",[]]`, got)
}

func TestEncodeResponse_StepMatchesMatch(t *testing.T) {
	val := "arg"
	var pos uint32 = 0
	report := wire.MatchReport{
		ID:     "1",
		Args:   []wire.StepArg{{Val: &val, Pos: &pos}},
		Source: "test",
	}
	got := encode(t, wire.WithPayload{Payload: []wire.MatchReport{report}})
	assert.Equal(t, `["success",[{"id":"1","args":[{"val":"arg","pos":0}],"source":"test"}]]`, got)
}

func TestEncodeResponse_SnippetText(t *testing.T) {
	assert.Equal(t, `["success","Snippet"]`, encode(t, wire.WithPayload{Payload: "Snippet"}))
}

func TestStepArg_OptionalCaptureSerializesAsNull(t *testing.T) {
	b, err := json.Marshal(wire.StepArg{})
	require.NoError(t, err)
	assert.Equal(t, `{"val":null,"pos":null}`, string(b))
}
