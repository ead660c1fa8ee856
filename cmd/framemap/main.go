// Command framemap scans, dumps and exports frame log directories.
//
// Usage:
//
//	framemap scan   [flags] <dir>
//	framemap dump   [flags] <dir>
//	framemap export [flags] -o <file> <dir>
package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/pflag"

	"framemap/internal/e01"
	"framemap/internal/frame"
	"framemap/internal/logging"
	"framemap/internal/router"
)

const usage = `Usage: framemap <command> [flags] <dir>

Commands:
  scan     print one line per frame
  dump     print the display tree of each frame
  export   write decoded frames to a snapshot file
`

type command func(env *cmdEnv, args []string) error

var commands = map[string]command{
	"scan":   runScan,
	"dump":   runDump,
	"export": runExport,
}

// cmdEnv carries what every command needs.
type cmdEnv struct {
	stdout io.Writer
	stderr io.Writer
	log    zerolog.Logger
	flags  *pflag.FlagSet
	level  string
	table  *router.Table
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	if len(args) == 0 {
		fmt.Fprint(stderr, usage)
		return 1
	}

	name := args[0]
	if name == "-h" || name == "--help" || name == "help" {
		fmt.Fprint(stdout, usage)
		return 0
	}

	cmd, ok := commands[name]
	if !ok {
		fmt.Fprintf(stderr, "Error: unknown command %q\n\n%s", name, usage)
		return 1
	}

	env := &cmdEnv{
		stdout: stdout,
		stderr: stderr,
		flags:  pflag.NewFlagSet("framemap "+name, pflag.ContinueOnError),
	}
	env.flags.SetOutput(stderr)
	env.flags.StringVar(&env.level, "log-level", "", "log level: trace, debug, info, warn, error, disabled")

	if err := cmd(env, args[1:]); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return 0
		}

		fmt.Fprintf(stderr, "Error: %v\n", err)

		return 1
	}

	return 0
}

// parse parses flags, sets up logging and returns the single directory
// argument.
func (e *cmdEnv) parse(args []string) (string, error) {
	if err := e.flags.Parse(args); err != nil {
		return "", err
	}

	cfg, err := logging.FromEnv()
	if err != nil {
		return "", err
	}

	cfg.Out = e.stderr

	if e.level != "" {
		lvl, ok := logging.ParseLevel(e.level)
		if !ok {
			return "", fmt.Errorf("unknown log level %q", e.level)
		}

		cfg.Level = lvl
	}

	e.log = logging.New("framemap", cfg)

	if e.flags.NArg() != 1 {
		return "", errors.New("expected exactly one directory argument")
	}

	return e.flags.Arg(0), nil
}

// reader returns a Reader over dir decoding through the bundled routes.
func (e *cmdEnv) reader(dir string) (*frame.Reader, error) {
	cfg, err := frame.ConfigFromEnv()
	if err != nil {
		return nil, err
	}

	e.table = router.NewTable()
	if err := e01.Register(e.table); err != nil {
		return nil, fmt.Errorf("registering decoders: %w", err)
	}

	e.log.Debug().Ints("types", e.table.IDs()).Str("dir", dir).Msg("opening directory")

	return frame.NewReader(dir, e.table, frame.WithConfig(cfg), frame.WithLogger(e.log)), nil
}
