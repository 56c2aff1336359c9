// dox2md generates markdown reference pages
// from the JSON output of the dox JavaScript documentation parser.
package main

import (
	"context"
	"errors"
	"flag"
	"io"
	"log"
	"os"
	"os/signal"

	"braces.dev/errtrace"
	"go.abhg.dev/dox2md/internal/apidoc"
	"go.abhg.dev/dox2md/internal/dox"
	"go.abhg.dev/dox2md/internal/errdefer"
	"go.abhg.dev/dox2md/internal/flagvalue"
	"go.abhg.dev/dox2md/internal/markdown"
	"go.abhg.dev/dox2md/internal/symbol"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)

	cmd := mainCmd{
		Stdin:  os.Stdin,
		Stdout: os.Stdout,
		Stderr: os.Stderr,
	}
	exitCode := cmd.Run(ctx, os.Args[1:])
	stop()
	os.Exit(exitCode)
}

// mainCmd is the actual entry point to the program.
type mainCmd struct {
	Stdin  io.Reader // == os.Stdin
	Stdout io.Writer // == os.Stdout
	Stderr io.Writer // == os.Stderr

	log *log.Logger
}

func (cmd *mainCmd) Run(ctx context.Context, args []string) (exitCode int) {
	cmd.log = log.New(cmd.Stderr, "", 0)

	opts, err := (&cliParser{
		Stdout: cmd.Stdout,
		Stderr: cmd.Stderr,
	}).Parse(args)
	if err != nil {
		// '$cmd -h' should exit with zero.
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		// No need to print anything.
		// Parse prints messages.
		return 1
	}

	if err := cmd.run(ctx, opts); err != nil {
		cmd.log.Printf("dox2md: %v", err)
		return 1
	}
	return 0
}

func (cmd *mainCmd) run(ctx context.Context, opts *params) (err error) {
	debugw, closeDebug, err := opts.Debug.Create(cmd.Stderr)
	if err != nil {
		return errtrace.Wrap(err)
	}
	defer errdefer.Run(&err, closeDebug)

	var debugLog *log.Logger
	if opts.Debug.Bool() {
		debugLog = log.New(debugw, "", 0)
	}

	blocks, err := cmd.readBlocks(opts.Input)
	if err != nil {
		return errtrace.Wrap(err)
	}
	if debugLog != nil {
		debugLog.Printf("Read %d comments from %v", len(blocks), opts.Input)
	}

	gen := Generator{
		Log: cmd.log,
		Assembler: &apidoc.Assembler{
			Namespaces: symbol.Namespaces{
				Library: string(opts.Library),
				Widget:  string(opts.Widget),
			},
			DebugLog: debugLog,
		},
		Renderer: &markdown.Renderer{
			ReleasesURL: opts.ReleasesURL,
			WikiLinks:   opts.WikiLinks,
			DebugLog:    debugLog,
		},
		Exclude: flagvalue.Strings(opts.Exclude),
	}
	pages, err := gen.Generate(blocks)
	if err != nil {
		return errtrace.Wrap(err)
	}

	w := Writer{
		Log:    cmd.log,
		OutDir: opts.OutputDir,
		Jobs:   opts.Jobs,
		DryRun: opts.DryRun,
	}
	return errtrace.Wrap(w.Write(ctx, pages))
}

// readBlocks reads dox output from the given file,
// or from stdin if the name is "-".
func (cmd *mainCmd) readBlocks(name string) (_ []*dox.Block, err error) {
	if name == "-" {
		return errtrace.Wrap2(dox.Decode(cmd.Stdin))
	}

	f, err := os.Open(name)
	if err != nil {
		return nil, errtrace.Wrap(err)
	}
	defer errdefer.Close(&err, f)

	blocks, err := dox.Decode(f)
	if err != nil {
		return nil, errtrace.Wrap(err)
	}
	return blocks, nil
}
