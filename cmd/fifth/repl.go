//go:build !(js && wasm)

package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"golang.org/x/term"

	"nickandperla.net/fifth/pkg/fifth"
)

func runREPL(runtime *fifth.Runtime, cfg Config) {
	if cfg.REPL.Banner != "" {
		fmt.Println(cfg.REPL.Banner)
		fmt.Println()
	}

	// Only print the "ok" acknowledgement when a human is typing.
	tty := term.IsTerminal(int(os.Stdin.Fd()))
	runLineREPL(runtime, cfg, tty)
}

// runLineREPL reads lines and evaluates each against the shared session.
// A trailing backslash continues the line.
func runLineREPL(runtime *fifth.Runtime, cfg Config, tty bool) {
	reader := bufio.NewReader(os.Stdin)
	var multiline strings.Builder
	inMultiline := false

	for {
		if inMultiline {
			fmt.Print("... ")
		} else {
			fmt.Print(cfg.REPL.Prompt)
		}

		line, err := reader.ReadString('\n')
		if err != nil {
			fmt.Println()
			return
		}

		line = strings.TrimRight(line, "\r\n")

		if strings.HasSuffix(line, "\\") {
			multiline.WriteString(strings.TrimSuffix(line, "\\"))
			multiline.WriteString("\n")
			inMultiline = true
			continue
		}

		var input string
		if inMultiline {
			multiline.WriteString(line)
			input = multiline.String()
			multiline.Reset()
			inMultiline = false
		} else {
			input = line
		}

		if strings.TrimSpace(input) == "" {
			continue
		}

		out, err := runtime.Eval(input)
		printOutput(out)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			continue
		}
		if tty {
			fmt.Println("ok")
		}
	}
}
