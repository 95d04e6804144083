// Package cucumberwire is the root convenience surface: Start wires a
// registered host up to a listening wire server in one call, mirroring the
// documented "typical use case" of the original launcher.start entry point.
package cucumberwire

import (
	"github.com/anuragh27crony/cucumberwire/host"
	"github.com/anuragh27crony/cucumberwire/server"
)

// Register is a registration callback applied to a fresh Host before the
// server starts accepting connections, the Go analogue of the original's
// `register_fns: &[&Fn(&mut CucumberRegistrar<W>)]` slice.
type Register[World any] func(h *host.Host[World])

// Start builds a Host for world, applies every register function, then
// starts a wire server on addr (server.DefaultAddr if empty) dispatching to
// it. It returns the bound *server.Server (useful for ListenAddr when addr
// requested an ephemeral port) and the server.Handle the caller uses to stop
// and wait for the server once the driver session has finished.
func Start[World any](addr string, world *World, registerFns ...Register[World]) (*server.Server, *server.Handle, error) {
	h := host.New[World](world)
	for _, fn := range registerFns {
		fn(h)
	}

	s := server.New(addr, h)
	handle, err := s.Start()
	if err != nil {
		return nil, nil, err
	}
	return s, handle, nil
}
