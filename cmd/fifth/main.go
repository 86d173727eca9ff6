// Command fifth is the fifth interpreter CLI.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/tliron/commonlog"

	"nickandperla.net/fifth/pkg/fifth"

	_ "github.com/tliron/commonlog/simple"
)

func main() {
	var (
		evalStr   = flag.String("e", "", "Evaluate fifth string")
		file      = flag.String("f", "", "Execute fifth file")
		confPath  = flag.String("c", "", "Config file path (default fifth.toml if present)")
		noPrelude = flag.Bool("no-prelude", false, "Disable the prelude")
		stepLimit = flag.Int("step-limit", 0, "Abort evaluation after this many steps (0 = unlimited)")
		verbosity = flag.Int("verbose", 0, "Log verbosity (higher is chattier)")
	)

	flag.Parse()

	cfg, err := loadConfig(*confPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	// Flags override the config file.
	if *noPrelude {
		cfg.Interp.NoPrelude = true
	}
	if *stepLimit != 0 {
		cfg.Interp.StepLimit = *stepLimit
	}
	if *verbosity != 0 {
		cfg.Log.Verbosity = *verbosity
	}

	commonlog.Configure(cfg.Log.Verbosity, nil)

	opts := []fifth.Option{}
	if cfg.Interp.NoPrelude {
		opts = append(opts, fifth.WithNoPrelude())
	}
	if cfg.Interp.StepLimit > 0 {
		opts = append(opts, fifth.WithStepLimit(cfg.Interp.StepLimit))
	}

	runtime := fifth.New(opts...)

	switch {
	case *evalStr != "":
		runOnce(runtime, *evalStr)

	case *file != "":
		out, err := runtime.EvalFile(*file)
		printOutput(out)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

	case !isTerminal(os.Stdin):
		// Piped input: evaluate it as one program.
		input, readErr := io.ReadAll(os.Stdin)
		if readErr != nil {
			fmt.Fprintf(os.Stderr, "Error reading stdin: %v\n", readErr)
			os.Exit(1)
		}
		runOnce(runtime, string(input))

	default:
		runREPL(runtime, cfg)
	}
}

func runOnce(runtime *fifth.Runtime, src string) {
	out, err := runtime.Eval(src)
	printOutput(out)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func printOutput(out string) {
	if out == "" {
		return
	}
	fmt.Print(out)
	if !strings.HasSuffix(out, "\n") {
		fmt.Println()
	}
}

func isTerminal(f *os.File) bool {
	fi, err := f.Stat()
	if err != nil {
		return false
	}
	return fi.Mode()&os.ModeCharDevice != 0
}
