package cucumberwire_test

import (
	"bufio"
	"context"
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	cucumberwire "github.com/anuragh27crony/cucumberwire"
	"github.com/anuragh27crony/cucumberwire/host"
	"github.com/anuragh27crony/cucumberwire/server"
	"github.com/anuragh27crony/cucumberwire/wire"
)

type coinWorld struct{ coins int }

func TestStart_EndToEndOverRealListener(t *testing.T) {
	world := &coinWorld{}

	s, handle, err := cucumberwire.Start[coinWorld]("127.0.0.1:0", world, func(hh *host.Host[coinWorld]) {
		hh.Given("features/coins.feature", 3, `^I have (\d+) coins$`, func(w *coinWorld, n int) {
			w.coins = n
		})
	})
	require.NoError(t, err)
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		defer cancel()
		_ = server.Shutdown(ctx, handle)
	}()

	conn, err := net.Dial("tcp", s.ListenAddr().String())
	require.NoError(t, err)
	defer conn.Close()
	reader := bufio.NewReader(conn)

	_, err = conn.Write([]byte(`["step_matches", {"name_to_match": "I have 7 coins"}]` + "\n"))
	require.NoError(t, err)
	matchLine, err := reader.ReadString('\n')
	require.NoError(t, err)
	require.Contains(t, matchLine, `"id":"0"`)

	_, err = conn.Write([]byte(`["invoke", {"id": "0", "args": ["7"]}]` + "\n"))
	require.NoError(t, err)
	invokeLine, err := reader.ReadString('\n')
	require.NoError(t, err)
	require.Equal(t, "[\"success\"]\n", invokeLine)
	require.Equal(t, 7, world.coins)
}

func TestDecodeRequest_BeginScenarioWithTags(t *testing.T) {
	req, err := wire.DecodeRequest([]byte(`["begin_scenario", {"tags": ["@smoke"]}]`))
	require.NoError(t, err)
	require.Equal(t, wire.BeginScenarioRequest{Tags: []string{"@smoke"}}, req)
}
