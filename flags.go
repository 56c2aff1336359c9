package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/peterbourgon/ff/v3"
	"go.abhg.dev/dox2md/internal/flagvalue"
	"go.abhg.dev/dox2md/internal/markdown"
	"go.abhg.dev/dox2md/internal/symbol"
)

var (
	errHelp             = flag.ErrHelp
	errInvalidArguments = errors.New("invalid arguments")
)

// _envPrefix is the prefix for environment variables
// that set flags, e.g. DOX2MD_OUT for -out.
const _envPrefix = "DOX2MD"

// params holds all arguments for dox2md.
type params struct {
	version bool
	help    Help

	Debug  flagvalue.FileSwitch
	Config string

	OutputDir string
	Jobs      int
	DryRun    bool

	Library     namespacePrefix
	Widget      namespacePrefix
	ReleasesURL string
	WikiLinks   bool
	Exclude     []flagvalue.String

	Input string
}

// cliParser parses the command line arguments for dox2md.
type cliParser struct {
	Stdout io.Writer
	Stderr io.Writer
}

func (cmd *cliParser) newFlagSet() (*params, *flag.FlagSet) {
	flag := flag.NewFlagSet("dox2md", flag.ContinueOnError)
	flag.SetOutput(cmd.Stderr)
	flag.Usage = func() {
		DefaultHelp.Write(cmd.Stderr)
	}

	p := params{
		Library: symbol.DefaultLibrary,
		Widget:  symbol.DefaultWidget,
	}

	// Filesystem:
	flag.StringVar(&p.OutputDir, "out", "docs", "")
	flag.IntVar(&p.Jobs, "jobs", 8, "")
	flag.BoolVar(&p.DryRun, "dry-run", false, "")

	// Markdown output:
	flag.Var(&p.Library, "library", "")
	flag.Var(&p.Widget, "widget", "")
	flag.StringVar(&p.ReleasesURL, "releases", markdown.DefaultReleasesURL, "")
	flag.BoolVar(&p.WikiLinks, "wiki-links", false, "")
	flag.Var(flagvalue.ListOf(&p.Exclude), "exclude", "")

	// Program-level:
	flag.StringVar(&p.Config, "config", "", "")
	flag.Var(&p.Debug, "debug", "")
	flag.BoolVar(&p.version, "version", false, "")
	flag.Var(&p.help, "help", "")
	flag.Var(&p.help, "h", "")

	return &p, flag
}

func (cmd *cliParser) Parse(args []string) (*params, error) {
	p, flag := cmd.newFlagSet()
	err := ff.Parse(flag, args,
		ff.WithEnvVarPrefix(_envPrefix),
		ff.WithConfigFileFlag("config"),
		ff.WithConfigFileParser(configFileParser),
	)
	if err != nil {
		if !errors.Is(err, errHelp) && p.Config != "" {
			// The flag package reports its own errors,
			// but ff doesn't report config file errors.
			fmt.Fprintln(cmd.Stderr, err)
		}
		return nil, err
	}
	args = flag.Args()

	if p.version {
		fmt.Fprintln(cmd.Stdout, "dox2md", _version)
		return nil, errHelp
	}

	if p.help == DefaultHelp && len(args) > 0 {
		// The user might have done "-h foo"
		// instead of "-h=foo".
		// If the argument is a known help topic,
		// take it.
		var h Help
		if err := h.Set(args[0]); err == nil {
			if _, ok := _helpTopics[h]; ok {
				p.help = h
			}
		}
	}

	switch p.help {
	case NoHelp:
		// proceed as usual
	default:
		if err := p.help.Write(cmd.Stderr); err != nil {
			fmt.Fprintln(cmd.Stderr, err)
		}
		return nil, errHelp
	}

	switch len(args) {
	case 0:
		fmt.Fprintln(cmd.Stderr, "Please provide an input file.")
		UsageHelp.Write(cmd.Stderr)
		return nil, errInvalidArguments
	case 1:
		p.Input = args[0]
	default:
		fmt.Fprintf(cmd.Stderr, "Too many arguments: %q\n", args[1:])
		UsageHelp.Write(cmd.Stderr)
		return nil, errInvalidArguments
	}

	if p.Jobs < 1 {
		fmt.Fprintln(cmd.Stderr, "-jobs must be at least 1.")
		return nil, errInvalidArguments
	}

	return p, nil
}

// namespacePrefix is a flag holding the prefix of a symbol namespace.
// A trailing "." is added if missing.
type namespacePrefix string

var _ flag.Getter = (*namespacePrefix)(nil)

func (np *namespacePrefix) Get() any { return string(*np) }

func (np *namespacePrefix) String() string { return string(*np) }

func (np *namespacePrefix) Set(s string) error {
	s = strings.TrimSpace(s)
	if s == "" || s == "." {
		return fmt.Errorf("namespace prefix must not be empty")
	}
	if !strings.HasSuffix(s, ".") {
		s += "."
	}
	*np = namespacePrefix(s)
	return nil
}
