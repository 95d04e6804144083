// Command cucumberwire is the wire protocol host's launcher: the ambient,
// out-of-scope-per-spec convenience binary (Component G) that starts a wire
// server and, for "run", hands it off to a driver child process the way the
// original launcher.start_with_addr spawns "cucumber"/ruby.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := newRootCommand().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
