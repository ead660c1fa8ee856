// Command framemap-gen compiles a mapping schema into Go converters and a
// type router.
//
// Usage:
//
//	framemap-gen [--package name] [--log-level level] <schema> <output-dir>
package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/pflag"

	"framemap/internal/diagnostic"
	"framemap/internal/gen"
	"framemap/internal/logging"
	"framemap/internal/mapping"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	var (
		pkg      string
		logLevel string
	)

	flags := pflag.NewFlagSet("framemap-gen", pflag.ContinueOnError)
	flags.SetOutput(stderr)
	flags.StringVar(&pkg, "package", "", "package name of the generated files (default: schema namespace)")
	flags.StringVar(&logLevel, "log-level", "", "log level: trace, debug, info, warn, error, disabled (default: $"+logging.EnvLogLevel+" or info)")
	flags.Usage = func() {
		fmt.Fprintln(stderr, "Usage: framemap-gen [flags] <schema> <output-dir>")
		flags.PrintDefaults()
	}

	if err := flags.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return 0
		}

		return 1
	}

	cfg, err := logging.FromEnv()
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}

	cfg.Out = stderr

	if logLevel != "" {
		lvl, ok := logging.ParseLevel(logLevel)
		if !ok {
			fmt.Fprintf(stderr, "Error: unknown log level %q\n", logLevel)
			return 1
		}

		cfg.Level = lvl
	}

	logger := logging.New("framemap-gen", cfg)

	if flags.NArg() < 2 {
		flags.Usage()
		return 1
	}

	schemaPath, outputDir := flags.Arg(0), flags.Arg(1)

	if st, err := os.Stat(schemaPath); err != nil || st.IsDir() {
		fmt.Fprintf(stderr, "Error: schema file not found: %s\n", schemaPath)
		return 1
	}

	s, err := mapping.LoadFile(schemaPath)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}

	genCfg := gen.DefaultGeneratorConfig()
	genCfg.PackageName = pkg
	genCfg.OutputDir = outputDir

	fmt.Fprintln(stdout, "Generating converters...")

	files, diags, err := gen.NewGenerator(genCfg).Generate(s)
	report(logger, stderr, diags)

	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}

	paths, err := gen.WriteFiles(files, outputDir)
	for i := range paths {
		fmt.Fprintf(stdout, "  Generated: %s\n", files[i].Filename)
	}

	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}

	fmt.Fprintf(stdout, "\nTotal %d files generated.\n", len(files))

	return 0
}

// report prints error diagnostics to stderr and logs the rest.
func report(logger zerolog.Logger, stderr io.Writer, diags *diagnostic.Diagnostics) {
	if diags == nil {
		return
	}

	for _, d := range diags.Errors {
		fmt.Fprintf(stderr, "error: %s\n", d)
	}

	for _, d := range diags.Warnings {
		logger.Warn().Str("code", d.Code).Str("mapping", d.Mapping).Str("field", d.FieldPath).Msg(d.Message)
	}

	for _, d := range diags.Infos {
		logger.Debug().Str("code", d.Code).Str("mapping", d.Mapping).Str("field", d.FieldPath).Msg(d.Message)
	}
}
