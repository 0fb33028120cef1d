// Command gintmoat explores Gaussian moats from the command line.
//
// Usage:
//
//	gintmoat <jumpSize> [realPart] [flags]
//
// The default mode grows the component of 1+i. --segmented counts the same
// component with bounded memory, and --vertical searches the strip starting
// at realPart. Results go to stderr; --printprimes writes members to stdout.
package main

import (
	"context"
	"io"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

// run executes one invocation and returns the process exit code.
func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	app := newApp(stdout, stderr)
	root := app.command()
	root.SetArgs(args)
	if err := root.ExecuteContext(ctx); err != nil {
		app.fail(err)
		return 1
	}
	if app.helped {
		return 1
	}
	return 0
}
