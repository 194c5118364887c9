// Command holdqueue is a command line front end for the hold queue service.
//
// Every invocation loads the persisted snapshot, runs exactly one operation and
// prints its result as JSON on stdout. Logs go to stderr.
package main

import (
	"context"
	"os"
	"os/signal"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)

	err := newRootCommand().ExecuteContext(ctx)
	stop()

	if err != nil {
		os.Exit(1)
	}
}
